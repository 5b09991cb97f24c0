package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related paths or failures (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow on terminals
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for i, item := range w.Items {
		fmt.Fprintf(&b, "      %d. %s\n", i+1, item)
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, paint(ColorEnabled(out), color.FgYellow, b.String()))
}

// FailureWarning builds a warning listing per-item failures
func FailureWarning(title string, failures []error) Warning {
	items := make([]string, 0, len(failures))
	for _, err := range failures {
		items = append(items, err.Error())
	}
	return Warning{
		Title: title,
		Items: items,
	}
}
