// Package renamer renames the entries of one directory by plain text
// substitution. Renames are planned first so callers can preview them.
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/hsutools/internal/fileutil"
	"github.com/harrison/hsutools/internal/models"
)

// ErrEmptyFind is returned when the search text is empty.
var ErrEmptyFind = errors.New("find text must not be empty")

// ErrInvalidReplace is returned when the replacement would produce a path
// instead of a name.
var ErrInvalidReplace = errors.New("replacement must not contain a path separator")

// ErrTargetExists is reported by Apply for operations whose target is taken.
var ErrTargetExists = errors.New("target already exists")

// Options controls which entries are renamed.
type Options struct {
	Find          string
	Replace       string
	IncludeDirs   bool
	IgnoreNames   []string
	IncludeHidden bool
}

// Plan lists the renames for the top-level entries of dir. Files are matched
// and rewritten on their stem so the extension is kept; directories, when
// included, on their whole name. Operations are sorted by old name.
func Plan(dir string, opts Options) ([]models.RenameOp, error) {
	if opts.Find == "" {
		return nil, ErrEmptyFind
	}
	if strings.ContainsAny(opts.Replace, `/\`) {
		return nil, ErrInvalidReplace
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	ignore := fileutil.NameSet(opts.IgnoreNames)
	ops := make([]models.RenameOp, 0)
	for _, e := range entries {
		name := e.Name()
		if ignore[name] || (!opts.IncludeHidden && fileutil.IsHidden(name)) {
			continue
		}

		var newName string
		switch {
		case e.IsDir():
			if !opts.IncludeDirs || !strings.Contains(name, opts.Find) {
				continue
			}
			newName = strings.ReplaceAll(name, opts.Find, opts.Replace)
		case e.Type().IsRegular():
			ext := filepath.Ext(name)
			stem := strings.TrimSuffix(name, ext)
			if !strings.Contains(stem, opts.Find) {
				continue
			}
			newName = strings.ReplaceAll(stem, opts.Find, opts.Replace) + ext
		default:
			continue
		}

		if newName == name || newName == "" {
			continue
		}
		ops = append(ops, models.RenameOp{
			OldPath: filepath.Join(dir, name),
			NewPath: filepath.Join(dir, newName),
			IsDir:   e.IsDir(),
		})
	}

	return ops, nil
}

// Apply performs ops in order and returns the ones that succeeded. An
// operation whose target already exists is skipped and reported with
// ErrTargetExists; other failures are reported as they occur.
func Apply(ops []models.RenameOp) ([]models.RenameOp, []error) {
	done := make([]models.RenameOp, 0, len(ops))
	var errs []error

	for _, op := range ops {
		if _, err := os.Lstat(op.NewPath); err == nil {
			errs = append(errs, fmt.Errorf("rename %s: %w: %s", op.OldPath, ErrTargetExists, op.NewPath))
			continue
		}
		if err := os.Rename(op.OldPath, op.NewPath); err != nil {
			errs = append(errs, fmt.Errorf("rename %s: %w", op.OldPath, err))
			continue
		}
		done = append(done, op)
	}

	return done, errs
}
