package models

// RenameOp is a single planned rename inside one directory.
type RenameOp struct {
	OldPath string
	NewPath string
	IsDir   bool
}
