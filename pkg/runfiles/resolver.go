package runfiles

import "fmt"

// Environment variables making up the runfiles discovery contract.
const (
	envManifestOnly = "RUNFILES_MANIFEST_ONLY"
	envManifestFile = "RUNFILES_MANIFEST_FILE"
	envDir          = "RUNFILES_DIR"
	envTestSrcdir   = "TEST_SRCDIR"
)

// resolver is one resolution strategy, fixed for the lifetime of a Runfiles.
// Implementations hold immutable state only; resolve must be safe for
// concurrent use and must not touch the filesystem.
type resolver interface {
	// name returns the identifier for the strategy.
	name() string
	// resolve maps a logical path to a physical location.
	// Returns false if the strategy has no mapping for the path.
	resolve(path string) (string, bool)
	// env returns the variables that reproduce this strategy in a subprocess.
	env() []string
}

// selectResolver initializes a resolver based on the environment snapshot.
// An explicit manifest-only request wins over everything; otherwise
// RUNFILES_DIR is preferred and TEST_SRCDIR is the fallback. There is no
// further guessing: an environment that matches no row is an error.
func selectResolver(env map[string]string) (resolver, error) {
	if env[envManifestOnly] == "1" {
		path := env[envManifestFile]
		if path == "" {
			return nil, fmt.Errorf("runfiles: cannot load manifest: %s is \"1\" but %s is unset or empty", envManifestOnly, envManifestFile)
		}
		return newManifestResolver(path)
	}
	if dir := env[envDir]; dir != "" {
		return &directoryResolver{base: dir}, nil
	}
	if dir := env[envTestSrcdir]; dir != "" {
		return &directoryResolver{base: dir}, nil
	}
	return nil, fmt.Errorf("runfiles: cannot find runfiles: %s and %s are both unset or empty", envDir, envTestSrcdir)
}
