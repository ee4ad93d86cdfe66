package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Load reads and parses the runfiles manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read runfiles manifest %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes manifest data. Each non-blank line holds a logical runfile
// path and a physical location separated by the first space; the physical
// part may itself contain spaces. Blank lines are skipped. When a logical
// path appears more than once the last occurrence wins. path is used in
// error messages only.
func Parse(data []byte, path string) (*File, error) {
	entries := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" {
			continue
		}
		logical, physical, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("manifest %s: line %d: expected \"<logical> <physical>\", got %q", path, lineno, line)
		}
		if logical == "" {
			return nil, fmt.Errorf("manifest %s: line %d: empty logical path in %q", path, lineno, line)
		}
		entries[logical] = physical
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &File{Path: path, Entries: entries}, nil
}
