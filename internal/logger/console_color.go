package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/hsutools/internal/models"
)

// colorScheme defines consistent colors for different metric types.
// Green: changes made
// Red: failures
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	label   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		label:   color.New(color.FgCyan),
	}
}

// formatStats renders conversion counters as "label: value" pairs.
// Non-zero change counters are green and a non-zero error count is red.
func formatStats(stats models.ConversionStats, useColor bool) string {
	metrics := []struct {
		label string
		value int
		fail  bool
	}{
		{"content", stats.FilesContentModified, false},
		{"files renamed", stats.FilesRenamed, false},
		{"dirs renamed", stats.DirsRenamed, false},
		{"backups", stats.FilesBackedUp, false},
		{"errors", stats.Errors, true},
	}

	scheme := newColorScheme()
	parts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		if !useColor {
			parts = append(parts, fmt.Sprintf("%s: %d", m.label, m.value))
			continue
		}

		value := fmt.Sprintf("%d", m.value)
		switch {
		case m.value > 0 && m.fail:
			value = scheme.fail.Sprint(value)
		case m.value > 0:
			value = scheme.success.Sprint(value)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.label.Sprint(m.label), value))
	}
	return strings.Join(parts, ", ")
}
