// Package filex contains small filesystem helpers for the timecard photo
// import flow.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureSubDir creates (if needed) and returns base/name.
func EnsureSubDir(base, name string) (string, error) {
	dir := filepath.Join(base, name)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ImportFile copies the file at src into dstDir under a fresh unique name
// (uuid plus the original extension) and returns that name.
func ImportFile(src, dstDir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	name := uuid.NewString() + filepath.Ext(src)
	dst := filepath.Join(dstDir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("copy to %s: %w", dst, err)
	}

	return name, nil
}
