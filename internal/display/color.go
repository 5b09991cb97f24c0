package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w is an interactive terminal. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether colors should be written to w.
// color.NoColor carries NO_COLOR and TERM=dumb; w must also be a terminal.
func ColorEnabled(w io.Writer) bool {
	return !color.NoColor && isTerminal(w)
}

func paint(enabled bool, attr color.Attribute, s string) string {
	if !enabled {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
