// Package manifest loads runfiles manifest files: the build-time index that
// maps logical runfile paths to the physical files backing them.
package manifest

// File is a parsed runfiles manifest. It is immutable once returned by Load
// or Parse; concurrent readers need no synchronization.
type File struct {
	// Path is where the manifest was read from, kept for diagnostics.
	Path string
	// Entries maps logical runfile paths to physical locations. An empty
	// value records a runfile that is declared but deliberately not
	// materialized.
	Entries map[string]string
}

// Len returns the number of entries.
func (f *File) Len() int {
	return len(f.Entries)
}

// Get returns the physical location recorded for a logical path.
func (f *File) Get(logical string) (string, bool) {
	v, ok := f.Entries[logical]
	return v, ok
}
