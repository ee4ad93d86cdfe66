package runfiles

import (
	"strings"

	"github.com/lisp19/runfiles/internal/manifest"
	"github.com/lisp19/runfiles/pkg/logger"
)

// manifestResolver answers lookups from an index loaded once at construction.
// An entry recorded with an empty location marks a runfile that is declared
// but not materialized; it resolves as unknown rather than as "".
type manifestResolver struct {
	path  string
	index map[string]string
}

func newManifestResolver(path string) (*manifestResolver, error) {
	f, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded runfiles manifest %s: %d entries", path, f.Len())
	return &manifestResolver{path: path, index: f.Entries}, nil
}

func (m *manifestResolver) name() string {
	return "manifest"
}

func (m *manifestResolver) resolve(path string) (string, bool) {
	if loc, ok := m.index[path]; ok {
		return loc, loc != ""
	}
	// No exact entry. A directory listed in the manifest covers everything
	// beneath it, so walk the query's parent prefixes longest-first and
	// graft the remaining suffix onto the first mapped one.
	prefix := path
	for {
		i := strings.LastIndexByte(prefix, '/')
		if i < 0 {
			return "", false
		}
		prefix = prefix[:i]
		if loc, ok := m.index[prefix]; ok && loc != "" {
			return loc + "/" + path[len(prefix)+1:], true
		}
	}
}

func (m *manifestResolver) env() []string {
	return []string{
		envManifestOnly + "=1",
		envManifestFile + "=" + m.path,
	}
}
