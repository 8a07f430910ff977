package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ignoreContent keeps audit reports written by the agents out of version control.
const ignoreContent = AuditsDir + "/\n"

// EnsureIgnoreFile creates <claudeDir>/.gitignore containing "audits/" if no
// such file exists. An existing file is left untouched whatever its content.
// It reports whether the file was created.
func EnsureIgnoreFile(claudeDir string) (bool, error) {
	path := filepath.Join(claudeDir, IgnoreFile)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := f.WriteString(ignoreContent); err != nil {
		f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}
