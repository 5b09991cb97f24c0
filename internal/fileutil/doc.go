// Package fileutil provides the directory enumeration shared by hsutools commands.
//
// ScanDirectory walks a directory and returns the absolute, sorted paths of the
// regular files that pass its filters:
//   - Extensions: case-insensitive, with or without the leading dot
//   - IgnoreNames: exact file or directory names that are skipped entirely
//   - IncludeHidden: entries starting with "." are skipped unless set; a hidden
//     directory hides everything beneath it
//   - Recursive: descend into subdirectories
//
// Non-fatal errors (for example permission denied on a subdirectory) are
// collected in ScanResult.Errors and scanning continues. Only a missing or
// non-directory root is fatal.
//
//	result, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
//	    Extensions:  []string{".jpg", ".png"},
//	    Recursive:   true,
//	    IgnoreNames: []string{"node_modules"},
//	})
package fileutil
