// Package utils provides small file and path helpers for the
// command-line tools.
package utils

import (
	"os"
	"path"
	"strings"
)

// ResolvePath returns filePath as-is when it is absolute, and otherwise
// resolves it relative to dir.
func ResolvePath(filePath, dir string) string {
	if strings.HasPrefix(filePath, "/") {
		return filePath
	}
	return path.Join(dir, filePath)
}

// ReadLines reads the file at filename and splits it into lines,
// dropping a single trailing newline. These are the items a tree
// commits to, so the order of lines is significant.
func ReadLines(filename string) ([][]byte, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s := strings.TrimSuffix(string(raw), "\n")
	lines := strings.Split(s, "\n")
	items := make([][]byte, len(lines))
	for i, line := range lines {
		items[i] = []byte(line)
	}
	return items, nil
}
