package s2tw

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBackupSuffix is appended to a file name to form its backup name.
const DefaultBackupSuffix = ".backup"

// backupTimeLayout matches YYYYMMDD_HHMMSS.
const backupTimeLayout = "20060102_150405"

// backupPath picks a backup location for file that does not clobber an
// existing backup: <name><suffix>, then <stem>_<timestamp><ext><suffix>,
// then the timestamped name with a counter.
func backupPath(file, backupDir, suffix string, now time.Time) string {
	dir := filepath.Dir(file)
	if backupDir != "" {
		dir = backupDir
	}
	name := filepath.Base(file)

	candidate := filepath.Join(dir, name+suffix)
	if !exists(candidate) {
		return candidate
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	stamp := now.Format(backupTimeLayout)
	candidate = filepath.Join(dir, fmt.Sprintf("%s_%s%s%s", stem, stamp, ext, suffix))
	for i := 1; exists(candidate); i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%s_%d%s%s", stem, stamp, i, ext, suffix))
	}
	return candidate
}

// createBackup copies file to a fresh backup path, keeping mode and modification time.
func createBackup(file, backupDir, suffix string, now time.Time) (string, error) {
	if backupDir != "" {
		if err := os.MkdirAll(backupDir, 0755); err != nil {
			return "", fmt.Errorf("create backup directory: %w", err)
		}
	}

	dst := backupPath(file, backupDir, suffix, now)
	if err := copyFile(file, dst); err != nil {
		return "", fmt.Errorf("backup %s: %w", file, err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
