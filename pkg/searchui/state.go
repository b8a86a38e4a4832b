package searchui

import "github.com/nextwave/siteclient/pkg/sitesearch"

const (
	NoResultsMessage = "No results found"
	FailureMessage   = "Search failed. Please try again."
)

// StateKind tags what the result panel is currently showing.
type StateKind int

const (
	StateEmpty StateKind = iota
	StateLoading
	StateResults
	StateFailed
)

func (k StateKind) String() string {
	switch k {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateResults:
		return "results"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the controller-owned view of the result panel.
// Results is only meaningful for StateResults and Err only for StateFailed.
type State struct {
	Kind    StateKind
	Query   string
	Results []sitesearch.Result
	Err     error
}

// NoResults reports whether a search completed with an empty result list.
func (s State) NoResults() bool {
	return s.Kind == StateResults && len(s.Results) == 0
}
