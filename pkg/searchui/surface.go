package searchui

import (
	"context"

	"github.com/nextwave/siteclient/pkg/sitesearch"
)

// InputSource is the text field the user types into.
type InputSource interface {
	Value() string
	// OnInput registers a handler for every change of the field value.
	OnInput(func(value string))
	// OnEnter registers a handler for the Enter key.
	OnEnter(func(value string))
}

// TriggerSource is the explicit search button.
type TriggerSource interface {
	OnClick(func())
}

// Panel is the results output sink. Render is called with the controller lock held,
// so implementations must not block on or call back into the controller.
type Panel interface {
	Render(State)
}

// Overlay is an optional dropdown containing the panel.
type Overlay interface {
	Close()
}

// Navigator follows a result link.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(url string)

func (f NavigatorFunc) Navigate(url string) { f(url) }

// Surface bundles the regions a host page supplies. Input, Trigger and Results are
// required; Overlay and Navigator are optional.
type Surface struct {
	Input     InputSource
	Trigger   TriggerSource
	Results   Panel
	Overlay   Overlay
	Navigator Navigator
}

func (s Surface) complete() bool {
	return s.Input != nil && s.Trigger != nil && s.Results != nil
}

// Searcher runs a remote search for the raw query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]sitesearch.Result, error)
}
