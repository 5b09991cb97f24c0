package display

import (
	"fmt"
	"io"
)

// DefaultPreviewLimit is the number of entries shown before truncation.
const DefaultPreviewLimit = 10

// Preview lists the entries a command is about to change
type Preview struct {
	Header string
	Lines  []string

	// Limit caps the listed lines (DefaultPreviewLimit when zero)
	Limit int

	// More renders the trailer for n hidden lines, e.g. "... and 3 more"
	More func(n int) string
}

// Display writes the header, up to Limit indented lines, and the trailer
func (p Preview) Display(out io.Writer) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	if p.Header != "" {
		fmt.Fprintf(out, "\n%s\n", p.Header)
	}

	for i, line := range p.Lines {
		if i == limit {
			break
		}
		fmt.Fprintf(out, "  %s\n", line)
	}

	if hidden := len(p.Lines) - limit; hidden > 0 {
		more := fmt.Sprintf("... and %d more", hidden)
		if p.More != nil {
			more = p.More(hidden)
		}
		fmt.Fprintf(out, "  %s\n", more)
	}
}
