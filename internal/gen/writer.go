package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteIfChanged writes content to root/rel unless an identical file is
// already there. It reports whether the filesystem was touched. Comparison
// normalizes line endings so a CRLF checkout does not force rewrites.
func WriteIfChanged(root, rel string, content []byte) (bool, error) {
	target := filepath.Join(root, rel)

	existing, err := os.ReadFile(target)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", target, err)
	}

	if err == nil && bytes.Equal(normalizeNewlines(existing), normalizeNewlines(content)) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", target, err)
	}

	if err := os.WriteFile(target, content, filePerm); err != nil {
		return false, fmt.Errorf("writing file %s: %w", target, err)
	}

	return true, nil
}

func normalizeNewlines(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
}
