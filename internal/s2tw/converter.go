package s2tw

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/harrison/hsutools/internal/filelock"
	"github.com/harrison/hsutools/internal/fileutil"
	"github.com/harrison/hsutools/internal/models"
)

// DefaultTextExtensions is the extension filter used when Options.Extensions is empty.
var DefaultTextExtensions = []string{
	".md", ".txt", ".json", ".yaml", ".yml", ".xml", ".html", ".htm",
	".css", ".js", ".ts", ".jsx", ".tsx", ".vue", ".py", ".java",
	".c", ".cpp", ".h", ".hpp", ".cs", ".go", ".rs", ".rb", ".php",
	".sh", ".bat", ".ps1", ".sql", ".csv", ".ini", ".cfg", ".conf",
	".toml", ".rst", ".tex", ".log", ".properties", ".env",
}

// errNotText is recorded for files that are not valid UTF-8.
var errNotText = errors.New("file is not valid UTF-8 text")

// Options controls a tree conversion.
type Options struct {
	Extensions     []string // empty selects DefaultTextExtensions
	ConvertContent bool
	ConvertNames   bool
	CreateBackups  bool
	BackupDir      string // empty keeps backups next to the originals
	BackupSuffix   string // empty selects DefaultBackupSuffix
	IgnoreNames    []string
	IncludeHidden  bool
}

// DefaultOptions converts contents and names and keeps backups next to the originals.
func DefaultOptions() Options {
	return Options{
		ConvertContent: true,
		ConvertNames:   true,
		CreateBackups:  true,
		BackupSuffix:   DefaultBackupSuffix,
	}
}

// Logger receives per-entry diagnostics. It is satisfied by logger.ConsoleLogger.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

type noopLogger struct{}

func (noopLogger) LogDebug(string) {}
func (noopLogger) LogWarn(string)  {}

// Converter walks a file or directory and converts contents and names with
// its Transformer. A Converter holds no per-call state and can be reused.
type Converter struct {
	transformer Transformer
	logger      Logger
	now         func() time.Time
}

// NewConverter creates a Converter around t. A nil t is allowed; every
// conversion then fails with ErrEngineUnavailable before touching any file.
func NewConverter(t Transformer) *Converter {
	return &Converter{
		transformer: t,
		logger:      noopLogger{},
		now:         time.Now,
	}
}

// WithLogger sets the diagnostics logger and returns the Converter.
func (c *Converter) WithLogger(l Logger) *Converter {
	if l == nil {
		l = noopLogger{}
	}
	c.logger = l
	return c
}

// pass is the mutable state of one ConvertTree call.
type pass struct {
	opts    Options
	exts    map[string]bool
	ignore  map[string]bool
	results []models.ConversionResult
	stats   models.ConversionStats
}

func (p *pass) skipName(name string) bool {
	return p.ignore[name] || (!p.opts.IncludeHidden && fileutil.IsHidden(name))
}

func (p *pass) wantsFile(name string) bool {
	return p.exts[strings.ToLower(filepath.Ext(name))]
}

// ConvertTree converts root and everything below it.
//
// Directories are processed bottom-up: every subdirectory is finished before
// the files of its parent, and the parent's subdirectories are renamed last.
// Per-entry failures are recorded in the results and counted in the stats;
// only configuration problems (no engine, missing root) return an error, and
// they do so before anything is modified.
//
// When root is a file, only its content is converted and no rename happens.
func (c *Converter) ConvertTree(root string, opts Options) ([]models.ConversionResult, models.ConversionStats, error) {
	if c.transformer == nil {
		return nil, models.ConversionStats{}, ErrEngineUnavailable
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, models.ConversionStats{}, fmt.Errorf("failed to access %s: %w", root, err)
	}

	if opts.BackupSuffix == "" {
		opts.BackupSuffix = DefaultBackupSuffix
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultTextExtensions
	}

	p := &pass{
		opts:    opts,
		exts:    fileutil.ExtensionSet(exts),
		ignore:  fileutil.NameSet(opts.IgnoreNames),
		results: make([]models.ConversionResult, 0),
	}

	if !info.IsDir() {
		c.convertSingleFile(root, p)
		return p.results, p.stats, nil
	}

	c.walk(root, p)
	return p.results, p.stats, nil
}

func (c *Converter) convertSingleFile(path string, p *pass) {
	if !p.opts.ConvertContent || !p.wantsFile(filepath.Base(path)) {
		return
	}

	r := models.ConversionResult{Path: path}
	changed, backup, err := c.convertContent(path, p)
	r.ContentChanged, r.BackupPath = changed, backup
	if err != nil {
		r.Error = err.Error()
	}
	p.results = append(p.results, r)
}

// walk processes dir bottom-up. The caller renames dir itself.
func (c *Converter) walk(dir string, p *pass) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.stats.Errors++
		p.results = append(p.results, models.ConversionResult{Path: dir, Error: err.Error()})
		c.logger.LogWarn(fmt.Sprintf("cannot read %s: %v", dir, err))
		if len(entries) == 0 {
			return
		}
	}

	var files, dirs []string
	for _, e := range entries {
		name := e.Name()
		if p.skipName(name) {
			continue
		}
		switch {
		case e.IsDir():
			dirs = append(dirs, name)
		case e.Type().IsRegular():
			files = append(files, name)
		}
	}

	for _, name := range dirs {
		c.walk(filepath.Join(dir, name), p)
	}

	for _, name := range files {
		if p.wantsFile(name) {
			c.processFile(dir, name, p)
		}
	}

	if p.opts.ConvertNames {
		for _, name := range dirs {
			c.renameDir(dir, name, p)
		}
	}
}

func (c *Converter) processFile(dir, name string, p *pass) {
	path := filepath.Join(dir, name)
	r := models.ConversionResult{Path: path}

	if p.opts.ConvertContent {
		changed, backup, err := c.convertContent(path, p)
		r.ContentChanged, r.BackupPath = changed, backup
		if err != nil {
			r.Error = err.Error()
		}
	}

	if p.opts.ConvertNames && r.Error == "" {
		newPath, err := c.renameFile(dir, name)
		switch {
		case err != nil:
			r.Error = err.Error()
			p.stats.Errors++
		case newPath != "":
			r.NameChanged = true
			r.NewPath = newPath
			p.stats.FilesRenamed++
		}
	}

	if r.Changed() || r.Failed() {
		p.results = append(p.results, r)
	}
}

// convertContent rewrites path when the converted text differs, backing it up
// first if requested. Stats are updated here.
func (c *Converter) convertContent(path string, p *pass) (bool, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		p.stats.Errors++
		c.logger.LogWarn(fmt.Sprintf("read %s: %v", path, err))
		return false, "", err
	}
	if !utf8.Valid(data) {
		p.stats.Errors++
		c.logger.LogWarn(fmt.Sprintf("skip %s: %v", path, errNotText))
		return false, "", errNotText
	}

	text := string(data)
	converted, err := c.transformer.Convert(text)
	if err != nil {
		p.stats.Errors++
		c.logger.LogWarn(fmt.Sprintf("convert %s: %v", path, err))
		return false, "", fmt.Errorf("convert content: %w", err)
	}
	if converted == text {
		return false, "", nil
	}

	var backup string
	if p.opts.CreateBackups {
		backup, err = createBackup(path, p.opts.BackupDir, p.opts.BackupSuffix, c.now())
		if err != nil {
			p.stats.Errors++
			c.logger.LogWarn(err.Error())
			return false, "", err
		}
		p.stats.FilesBackedUp++
	}

	if err := filelock.RewriteFile(path, []byte(converted)); err != nil {
		p.stats.Errors++
		c.logger.LogWarn(fmt.Sprintf("write %s: %v", path, err))
		return false, backup, err
	}

	p.stats.FilesContentModified++
	c.logger.LogDebug(fmt.Sprintf("converted content of %s", path))
	return true, backup, nil
}

// renameFile returns the new path, or "" when the name is unchanged or the
// target already exists. A taken target is not an error for files.
func (c *Converter) renameFile(dir, name string) (string, error) {
	newName, err := c.convertName(name)
	if err != nil {
		return "", err
	}
	if newName == name {
		return "", nil
	}

	oldPath := filepath.Join(dir, name)
	newPath := filepath.Join(dir, newName)
	if exists(newPath) {
		c.logger.LogDebug(fmt.Sprintf("keep name %s: %s already exists", oldPath, newName))
		return "", nil
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", err
	}

	c.logger.LogDebug(fmt.Sprintf("renamed %s -> %s", oldPath, newName))
	return newPath, nil
}

// renameDir renames a fully processed subdirectory. Unlike files, a taken
// target is reported as a failed result.
func (c *Converter) renameDir(parent, name string, p *pass) {
	oldPath := filepath.Join(parent, name)

	newName, err := c.convertName(name)
	if err != nil {
		p.stats.Errors++
		p.results = append(p.results, models.ConversionResult{Path: oldPath, Error: err.Error()})
		return
	}
	if newName == name {
		return
	}

	newPath := filepath.Join(parent, newName)
	if exists(newPath) {
		err = fmt.Errorf("cannot rename directory to %s: target already exists", newName)
	} else {
		err = os.Rename(oldPath, newPath)
	}
	if err != nil {
		p.stats.Errors++
		c.logger.LogWarn(fmt.Sprintf("rename %s: %v", oldPath, err))
		p.results = append(p.results, models.ConversionResult{Path: oldPath, Error: err.Error()})
		return
	}

	p.stats.DirsRenamed++
	c.logger.LogDebug(fmt.Sprintf("renamed directory %s -> %s", oldPath, newName))
	p.results = append(p.results, models.ConversionResult{Path: oldPath, NameChanged: true, NewPath: newPath})
}

func (c *Converter) convertName(name string) (string, error) {
	newName, err := c.transformer.Convert(name)
	if err != nil {
		return "", fmt.Errorf("convert name %q: %w", name, err)
	}
	if newName == "" || newName == "." || newName == ".." || strings.ContainsAny(newName, `/\`) {
		return "", fmt.Errorf("convert name %q: invalid result %q", name, newName)
	}
	return newName, nil
}
