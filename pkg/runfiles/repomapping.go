package runfiles

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/lisp19/runfiles/pkg/logger"
)

// repoMappingName is the runfile emitted by Bzlmod-aware builds with one
// "source,apparent,canonical" triple per line.
const repoMappingName = "_repo_mapping"

// repoMapping translates the apparent repository name leading a lookup path,
// as visible from a given source repository, into its canonical form. A nil
// *repoMapping is the identity translation.
type repoMapping struct {
	entries map[repoMappingKey]string
}

type repoMappingKey struct {
	sourceRepo   string
	apparentName string
}

// loadRepoMapping fetches the mapping through the resolver itself. Builds
// that predate repository mappings simply do not ship the runfile; that is
// not an error, lookups then run on canonical names only.
func loadRepoMapping(impl resolver) (*repoMapping, error) {
	loc, ok := impl.resolve(repoMappingName)
	if !ok {
		return nil, nil
	}
	data, err := os.ReadFile(loc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("runfiles: failed to read repo mapping %s: %w", loc, err)
	}
	return parseRepoMapping(data, loc)
}

func parseRepoMapping(data []byte, path string) (*repoMapping, error) {
	entries := make(map[repoMappingKey]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("runfiles: repo mapping %s: line %d: expected 3 comma-separated fields, got %q", path, lineno, line)
		}
		entries[repoMappingKey{sourceRepo: fields[0], apparentName: fields[1]}] = fields[2]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("runfiles: repo mapping %s: %w", path, err)
	}
	logger.Debugf("loaded repo mapping %s: %d entries", path, len(entries))
	return &repoMapping{entries: entries}, nil
}

// translate rewrites the first path segment when (sourceRepo, segment) is
// mapped; everything else passes through unchanged, including paths whose
// leading segment is already canonical.
func (rm *repoMapping) translate(path, sourceRepo string) string {
	if rm == nil || len(rm.entries) == 0 {
		return path
	}
	apparent, rest, cut := strings.Cut(path, "/")
	canonical, ok := rm.entries[repoMappingKey{sourceRepo: sourceRepo, apparentName: apparent}]
	if !ok {
		return path
	}
	if !cut {
		return canonical
	}
	return canonical + "/" + rest
}
