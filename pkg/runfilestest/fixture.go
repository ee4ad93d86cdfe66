// Package runfilestest stages throwaway runfiles layouts for tests. A
// fixture is described in YAML, written under a scratch directory, and
// handed back as ready-made environment snapshots for either resolution
// mode, so a test can exercise the same layout through a manifest and
// through a directory tree.
package runfilestest

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixture describes a runfiles layout.
type Fixture struct {
	// Files maps logical runfile paths to file contents. Each one is
	// written under the staged tree and recorded in the manifest.
	Files map[string]string `yaml:"files"`
	// Absent lists logical paths recorded in the manifest with an empty
	// physical location, i.e. declared but not materialized.
	Absent []string `yaml:"absent"`
	// Mappings adds verbatim manifest entries without staging any file.
	Mappings map[string]string `yaml:"mappings"`
}

// Layout is a staged fixture on disk.
type Layout struct {
	// Dir is the root of the staged runfiles tree.
	Dir string
	// ManifestPath locates the generated MANIFEST file.
	ManifestPath string
}

// Load reads and parses the fixture description at p.
func Load(p string) (*Fixture, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("runfilestest: failed to read fixture %s: %w", p, err)
	}
	return Parse(data)
}

// Parse decodes a YAML fixture description and validates its logical paths.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("runfilestest: failed to parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	for logical := range f.Files {
		if err := checkLogical(logical); err != nil {
			return err
		}
	}
	for _, logical := range f.Absent {
		if err := checkLogical(logical); err != nil {
			return err
		}
	}
	for logical := range f.Mappings {
		if err := checkLogical(logical); err != nil {
			return err
		}
	}
	return nil
}

// checkLogical rejects logical paths the staged tree could not represent:
// absolute ones and ones that escape the root.
func checkLogical(p string) error {
	if p == "" {
		return fmt.Errorf("runfilestest: fixture: empty logical path")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("runfilestest: fixture: %s: absolute path is not allowed", p)
	}
	cleaned := path.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("runfilestest: fixture: %s: path escapes the tree", p)
	}
	return nil
}

// Stage writes the fixture under dir, typically a t.TempDir(): first the
// file tree, then a MANIFEST listing every entry. The returned layout is
// independent of the fixture; staging twice yields two disjoint layouts.
func (f *Fixture) Stage(dir string) (*Layout, error) {
	tree := filepath.Join(dir, "runfiles")
	if err := os.MkdirAll(tree, 0o755); err != nil {
		return nil, fmt.Errorf("runfilestest: failed to create tree root: %w", err)
	}
	entries := make(map[string]string, len(f.Files)+len(f.Absent)+len(f.Mappings))
	for logical, content := range f.Files {
		dst := filepath.Join(tree, filepath.FromSlash(logical))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("runfilestest: failed to stage %s: %w", logical, err)
		}
		if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("runfilestest: failed to stage %s: %w", logical, err)
		}
		entries[logical] = filepath.ToSlash(dst)
	}
	for _, logical := range f.Absent {
		entries[logical] = ""
	}
	for logical, physical := range f.Mappings {
		entries[logical] = physical
	}
	manifestPath := filepath.Join(dir, "MANIFEST")
	if err := os.WriteFile(manifestPath, []byte(renderManifest(entries)), 0o644); err != nil {
		return nil, fmt.Errorf("runfilestest: failed to write manifest: %w", err)
	}
	return &Layout{Dir: tree, ManifestPath: manifestPath}, nil
}

// renderManifest emits one "logical physical" line per entry, sorted so the
// output is stable across runs.
func renderManifest(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(' ')
		b.WriteString(entries[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// DirectoryEnv returns an environment snapshot selecting directory mode over
// the staged tree.
func (l *Layout) DirectoryEnv() map[string]string {
	return map[string]string{"RUNFILES_DIR": l.Dir}
}

// ManifestEnv returns an environment snapshot forcing manifest mode over the
// generated manifest.
func (l *Layout) ManifestEnv() map[string]string {
	return map[string]string{
		"RUNFILES_MANIFEST_ONLY": "1",
		"RUNFILES_MANIFEST_FILE": l.ManifestPath,
	}
}
