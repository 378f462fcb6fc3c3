package view

import "testing"

func TestFormatRevenue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1234567.4, "1,234,567"},
		{936662225, "936,662,225"},
	}

	for _, tt := range tests {
		if got := FormatRevenue(tt.in); got != tt.want {
			t.Errorf("FormatRevenue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50000, "50000.00%"},
		{50, "50.00%"},
		{-20, "-20.00%"},
		{200, "200.00%"},
		{33.3333, "33.33%"},
		{0, "0.00%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
