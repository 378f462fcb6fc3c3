package view

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatRevenue renders whole dollars with thousands separators, e.g. 1,234,568
func FormatRevenue(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.0f", v)
}

// FormatPercent renders two decimals and a trailing percent sign, e.g. 50000.00%
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
