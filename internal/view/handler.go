package view

import (
	"fmt"
	"sort"

	"github.com/newthinker/boxoffice/internal/core"
)

// Handler turns a control snapshot into a view descriptor. Implementations
// must be pure: the same base and snapshot always give the same descriptor.
type Handler interface {
	Render(base *Base, snap Snapshot) Descriptor
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(base *Base, snap Snapshot) Descriptor

// Render calls f(base, snap)
func (f HandlerFunc) Render(base *Base, snap Snapshot) Descriptor {
	return f(base, snap)
}

// View names
const (
	ViewLine          = "line"
	ViewSummary       = "summary"
	ViewTotalBars     = "total-bars"
	ViewYearlyBars    = "yearly-bars"
	ViewYearlySummary = "yearly-summary"
)

var handlers = map[string]Handler{
	ViewLine:          HandlerFunc(LineSeries),
	ViewSummary:       HandlerFunc(SummaryTable),
	ViewTotalBars:     HandlerFunc(TotalBars),
	ViewYearlyBars:    HandlerFunc(YearlyBars),
	ViewYearlySummary: HandlerFunc(YearlySummaryTable),
}

// Lookup returns the handler registered under name
func Lookup(name string) (Handler, error) {
	h, ok := handlers[name]
	if !ok {
		return nil, core.WrapError(core.ErrViewNotFound, fmt.Errorf("unknown view %q", name))
	}
	return h, nil
}

// Names returns the registered view names, sorted
func Names() []string {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render looks up a handler by name and renders it
func Render(base *Base, name string, snap Snapshot) (Descriptor, error) {
	h, err := Lookup(name)
	if err != nil {
		return Descriptor{}, err
	}
	return h.Render(base, snap), nil
}
