package searchui

import (
	"fmt"
	"io"
	"sync"

	"github.com/nextwave/siteclient/pkg/siteutil"
)

// MaxTitleLength is the longest title the text panel prints before truncating.
const MaxTitleLength = 72

// WriterPanel prints each state change as plain text lines.
type WriterPanel struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterPanel(out io.Writer) *WriterPanel {
	return &WriterPanel{out: out}
}

func (p *WriterPanel) Render(state State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch state.Kind {
	case StateLoading:
		fmt.Fprintf(p.out, "Searching for %q...\n", state.Query)
	case StateFailed:
		fmt.Fprintln(p.out, FailureMessage)
	case StateResults:
		if len(state.Results) == 0 {
			fmt.Fprintln(p.out, NoResultsMessage)
			return
		}
		for i, result := range state.Results {
			fmt.Fprintf(p.out, "%d. %s [%s]\n   %s\n", i+1, siteutil.TruncateText(result.Title, MaxTitleLength), result.Type, result.URL)
		}
	}
}
