// Package runfiles resolves logical runfile paths of the form
// "workspace/relative/path" to the physical files backing them, regardless
// of how the build laid them out on the current platform.
//
// Resolution runs in one of two modes, chosen once at construction from an
// environment snapshot: manifest mode reads a build-generated index file and
// answers lookups from it, directory mode prefixes every path with a single
// runfiles root. RUNFILES_MANIFEST_ONLY=1 forces manifest mode via
// RUNFILES_MANIFEST_FILE; otherwise RUNFILES_DIR and then TEST_SRCDIR pick
// the directory root. After construction a Runfiles never touches the
// environment or the disk again (Open being the deliberate exception), so
// lookups are cheap, deterministic and safe from any goroutine.
package runfiles

import (
	"fmt"
	"os"
	"strings"

	"github.com/lisp19/runfiles/pkg/logger"
)

// Runfiles resolves logical runfile paths against one immutable resolution
// strategy. The zero value is not usable; construct with New, NewFromEnv,
// NewManifest or NewDirectory.
type Runfiles struct {
	impl resolver
	// repoMap is nil when the build ships no _repo_mapping runfile.
	repoMap    *repoMapping
	sourceRepo string
}

// New captures the current process environment once and derives a Runfiles
// from it. Most binaries want exactly this.
func New() (*Runfiles, error) {
	return NewFromEnv(environSnapshot())
}

// NewFromEnv derives a Runfiles from an explicit environment snapshot. The
// snapshot is consulted during construction only; later changes to it or to
// the process environment do not affect the returned value.
func NewFromEnv(env map[string]string) (*Runfiles, error) {
	impl, err := selectResolver(env)
	if err != nil {
		return nil, err
	}
	return finish(impl)
}

// NewManifest builds a manifest-mode Runfiles over the given manifest file,
// bypassing environment discovery.
func NewManifest(path string) (*Runfiles, error) {
	impl, err := newManifestResolver(path)
	if err != nil {
		return nil, err
	}
	return finish(impl)
}

// NewDirectory builds a directory-mode Runfiles rooted at dir, bypassing
// environment discovery.
func NewDirectory(dir string) (*Runfiles, error) {
	if dir == "" {
		return nil, fmt.Errorf("runfiles: directory must not be empty")
	}
	return finish(&directoryResolver{base: dir})
}

func finish(impl resolver) (*Runfiles, error) {
	repoMap, err := loadRepoMapping(impl)
	if err != nil {
		return nil, err
	}
	logger.Debugf("runfiles ready: mode=%s", impl.name())
	return &Runfiles{impl: impl, repoMap: repoMap}, nil
}

// Rlocation returns the physical location recorded for the logical path.
// It returns an *InvalidPathError when path is empty, absolute or contains
// an up-level segment, and an error matching ErrUnknown when the active
// resolver has no mapping. The result is whatever the mapping records;
// Rlocation never checks that it exists on disk.
func (r *Runfiles) Rlocation(path string) (string, error) {
	return r.rlocation(path, r.sourceRepo)
}

// RlocationFrom is Rlocation with the apparent repository name in the first
// path segment interpreted relative to sourceRepo instead of relative to
// this handle's source repository.
func (r *Runfiles) RlocationFrom(path, sourceRepo string) (string, error) {
	return r.rlocation(path, sourceRepo)
}

func (r *Runfiles) rlocation(path, sourceRepo string) (string, error) {
	if err := validatePath(path); err != nil {
		return "", err
	}
	loc, ok := r.impl.resolve(r.repoMap.translate(path, sourceRepo))
	if !ok {
		return "", fmt.Errorf("runfiles: %q: %w", path, ErrUnknown)
	}
	return loc, nil
}

// WithSourceRepo returns a handle that interprets apparent repository names
// relative to sourceRepo. The handle shares all resolution state with r;
// the empty name means the main repository.
func (r *Runfiles) WithSourceRepo(sourceRepo string) *Runfiles {
	if r.sourceRepo == sourceRepo {
		return r
	}
	clone := *r
	clone.sourceRepo = sourceRepo
	return &clone
}

// Env returns environment entries, in "KEY=VALUE" form, that let a
// subprocess resolve the same runfiles space. Append them to the child's
// environment, e.g. cmd.Env = append(os.Environ(), r.Env()...).
func (r *Runfiles) Env() []string {
	return r.impl.env()
}

// Mode reports the active resolution mode, "manifest" or "directory".
func (r *Runfiles) Mode() string {
	return r.impl.name()
}

// validatePath rejects lookups outside the logical namespace. Logical paths
// are relative, forward-slash separated and platform independent, so '\'
// and drive-letter leads are rejected even when the host OS would accept
// them.
func validatePath(path string) error {
	if path == "" {
		return &InvalidPathError{Path: path, Reason: "path is empty"}
	}
	for _, seg := range strings.FieldsFunc(path, isPathSep) {
		if seg == ".." {
			return &InvalidPathError{Path: path, Reason: "path contains an up-level segment"}
		}
	}
	if isPathSep(rune(path[0])) {
		return &InvalidPathError{Path: path, Reason: "path is absolute"}
	}
	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		return &InvalidPathError{Path: path, Reason: "path is absolute"}
	}
	return nil
}

func isPathSep(r rune) bool {
	return r == '/' || r == '\\'
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func environSnapshot() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
