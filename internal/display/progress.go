package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

// ProgressIndicator prints one "[N/Total] name" line per processed item
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
	color   bool
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer: w,
		total:  total,
		color:  ColorEnabled(w),
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start(header string) {
	fmt.Fprintf(p.writer, "%s\n", header)
}

// Step displays progress for the current item: [N/Total] basename (cyan)
func (p *ProgressIndicator) Step(path string) {
	p.current++
	line := fmt.Sprintf("  [%d/%d] %s", p.current, p.total, filepath.Base(path))
	fmt.Fprintln(p.writer, paint(p.color, color.FgCyan, line))
}

// Complete displays a success message with a green checkmark
func (p *ProgressIndicator) Complete(message string) {
	Success(p.writer, message)
}

// Success prints "✓ message" with a green checkmark
func Success(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", paint(ColorEnabled(w), color.FgGreen, "✓"), message)
}
