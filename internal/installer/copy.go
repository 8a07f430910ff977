package installer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// errDestExists reports that the destination appeared before it could be created.
var errDestExists = errors.New("destination already exists")

// sourceExists reports whether name exists in the package root. Errors other
// than not-exist are returned.
func sourceExists(src fs.FS, name string) (bool, error) {
	if _, err := fs.Stat(src, name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s in package: %w", name, err)
	}
	return true, nil
}

// destExists reports whether anything (file, dir or symlink) occupies path.
func destExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return true, nil
}

// copyFile copies name from the package root to dst verbatim. dst is created
// exclusively, so an existing file is never truncated; errDestExists is
// returned in that case.
func copyFile(src fs.FS, name, dst string) error {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("opening %s in package: %w", name, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errDestExists
		}
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst) // only ever a file this call created
		return fmt.Errorf("copying %s to %s: %w", name, dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
