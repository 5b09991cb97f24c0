// Package docx converts Word documents to PDF by delegating to a headless
// LibreOffice.
package docx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrison/hsutools/internal/fileutil"
)

// Extension is the file extension picked up for conversion.
const Extension = ".docx"

// DefaultTimeout bounds a single document conversion.
const DefaultTimeout = 2 * time.Minute

// ErrConverterUnavailable is returned when no LibreOffice binary can be found.
var ErrConverterUnavailable = errors.New("LibreOffice (soffice) is not installed or not in PATH")

// binaryCandidates are tried in order when no explicit binary is configured.
var binaryCandidates = []string{"soffice", "libreoffice"}

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Logger receives per-document diagnostics. It is satisfied by logger.ConsoleLogger.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

type noopLogger struct{}

func (noopLogger) LogDebug(string) {}
func (noopLogger) LogWarn(string)  {}

// Converter is a reusable client for LibreOffice conversions.
type Converter struct {
	// SofficePath is the LibreOffice binary. Empty means search PATH.
	SofficePath string

	// Timeout bounds each document. Zero disables the bound.
	Timeout time.Duration

	Runner   Runner
	LookPath func(file string) (string, error)
	Logger   Logger
}

// NewConverter creates a Converter that runs LibreOffice from PATH.
func NewConverter() *Converter {
	return &Converter{
		Timeout:  DefaultTimeout,
		Runner:   execRunner{},
		LookPath: exec.LookPath,
		Logger:   noopLogger{},
	}
}

// Options selects the documents of a directory.
type Options struct {
	IgnoreNames   []string
	IncludeHidden bool

	// OnFile is called before each document is converted.
	OnFile func(current, total int, path string)
}

// Result lists the PDFs written and the documents that failed.
type Result struct {
	Converted []string
	Failed    []error
}

// FindDocuments returns the .docx files directly inside dir, skipping Word
// lock files (~$name.docx).
func FindDocuments(dir string, opts Options) ([]string, error) {
	scan, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions:    []string{Extension},
		IgnoreNames:   opts.IgnoreNames,
		IncludeHidden: opts.IncludeHidden,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]string, 0, len(scan.Files))
	for _, f := range scan.Files {
		if !strings.HasPrefix(filepath.Base(f), "~$") {
			docs = append(docs, f)
		}
	}
	return docs, nil
}

// Binary resolves the LibreOffice executable.
func (c *Converter) Binary() (string, error) {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	candidates := binaryCandidates
	if c.SofficePath != "" {
		candidates = []string{c.SofficePath}
	}
	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w (tried %s)", ErrConverterUnavailable, strings.Join(candidates, ", "))
}

// ConvertDirectory converts every document FindDocuments returns, writing
// each PDF next to its source. A missing LibreOffice fails before any
// document is touched; per-document failures are collected in the Result.
func (c *Converter) ConvertDirectory(ctx context.Context, dir string, opts Options) (*Result, error) {
	binary, err := c.Binary()
	if err != nil {
		return nil, err
	}

	docs, err := FindDocuments(dir, opts)
	if err != nil {
		return nil, err
	}

	log := c.Logger
	if log == nil {
		log = noopLogger{}
	}

	result := &Result{Converted: make([]string, 0, len(docs))}
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if opts.OnFile != nil {
			opts.OnFile(i+1, len(docs), doc)
		}

		pdf, err := c.convert(ctx, binary, doc)
		if err != nil {
			log.LogWarn(err.Error())
			result.Failed = append(result.Failed, err)
			continue
		}
		log.LogDebug(fmt.Sprintf("%s -> %s", doc, pdf))
		result.Converted = append(result.Converted, pdf)
	}

	return result, nil
}

func (c *Converter) convert(ctx context.Context, binary, doc string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	runner := c.Runner
	if runner == nil {
		runner = execRunner{}
	}

	outDir := filepath.Dir(doc)
	output, err := runner.Run(ctx, binary, "--headless", "--convert-to", "pdf", "--outdir", outDir, doc)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w (output: %s)", filepath.Base(doc), err, strings.TrimSpace(string(output)))
	}

	pdf := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(doc), filepath.Ext(doc))+".pdf")
	if _, err := os.Stat(pdf); err != nil {
		return "", fmt.Errorf("convert %s: no PDF produced (output: %s)", filepath.Base(doc), strings.TrimSpace(string(output)))
	}
	return pdf, nil
}
