// Package logger provides console logging for hsutools commands.
//
// ConsoleLogger writes level-filtered, timestamped lines and knows how to
// report per-entry conversion results, progress, and run summaries. It is
// safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/hsutools/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ValidLevels lists the accepted log level names, most verbose first.
var ValidLevels = []string{"trace", "debug", "info", "warn", "error"}

// ConsoleLogger logs command progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
		now:         time.Now,
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// fatih/color already honours NO_COLOR and non-TTY output
		return !color.NoColor
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	for _, valid := range ValidLevels {
		if normalized == valid {
			return normalized
		}
	}
	return "info"
}

// Level returns the effective log level.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message.
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil || !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := cl.timestamp()
	if cl.colorOutput {
		level = levelColor(level).Sprint(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, level, message)
}

func levelColor(level string) *color.Color {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack)
	case "DEBUG":
		return color.New(color.FgCyan)
	case "WARN":
		return color.New(color.FgYellow)
	case "ERROR":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}

// LogConversionResult logs one tree conversion result.
// Failures are logged at WARN, changes at DEBUG.
// Format: "[HH:MM:SS] [DEBUG] <path>: content, renamed -> <new path>"
func (cl *ConsoleLogger) LogConversionResult(result models.ConversionResult) {
	if result.Failed() {
		cl.LogWarn(fmt.Sprintf("%s: %s", result.Path, result.Error))
		return
	}

	var changes []string
	if result.ContentChanged {
		change := "content"
		if result.BackupPath != "" {
			change += fmt.Sprintf(" (backup %s)", result.BackupPath)
		}
		changes = append(changes, change)
	}
	if result.NameChanged {
		changes = append(changes, "renamed -> "+result.NewPath)
	}
	if len(changes) == 0 {
		changes = append(changes, "unchanged")
	}
	cl.LogDebug(fmt.Sprintf("%s: %s", result.Path, strings.Join(changes, ", ")))
}

// LogConversionSummary logs the counters of a tree conversion at INFO level.
// Format:
//
//	[HH:MM:SS] === Conversion Summary ===
//	[HH:MM:SS] content: N, files renamed: N, dirs renamed: N, backups: N, errors: N
//	[HH:MM:SS] Duration: <d>
func (cl *ConsoleLogger) LogConversionSummary(stats models.ConversionStats, duration time.Duration) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := cl.timestamp()
	header := "=== Conversion Summary ==="
	if cl.colorOutput {
		header = color.New(color.Bold).Sprint(header)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", ts, header)
	fmt.Fprintf(&b, "[%s] %s\n", ts, formatStats(stats, cl.colorOutput))
	fmt.Fprintf(&b, "[%s] Duration: %s\n", ts, formatDuration(duration))
	io.WriteString(cl.writer, b.String())
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func (cl *ConsoleLogger) timestamp() string {
	return cl.now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "350ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
