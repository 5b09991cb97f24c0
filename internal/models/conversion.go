package models

// ConversionResult records what happened to one visited file or directory
// during a tree conversion. Results are only emitted for paths where
// something changed or an error occurred.
type ConversionResult struct {
	Path           string // Original path of the entry
	ContentChanged bool   // File content was rewritten
	NameChanged    bool   // Entry was renamed to NewPath
	BackupPath     string // Backup written before the rewrite (empty if none)
	NewPath        string // Path after rename (empty if not renamed)
	Error          string // Failure message (empty on success)
}

// Failed reports whether the entry ended in an error.
func (r ConversionResult) Failed() bool {
	return r.Error != ""
}

// Changed reports whether the content or the name of the entry changed.
func (r ConversionResult) Changed() bool {
	return r.ContentChanged || r.NameChanged
}

// ConversionStats aggregates counters over one tree conversion.
type ConversionStats struct {
	FilesContentModified int
	FilesRenamed         int
	DirsRenamed          int
	FilesBackedUp        int
	Errors               int
}

// Total returns the number of successful modifications (content + renames).
func (s ConversionStats) Total() int {
	return s.FilesContentModified + s.FilesRenamed + s.DirsRenamed
}
