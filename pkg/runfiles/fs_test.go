package runfiles

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/lisp19/runfiles/pkg/runfilestest"
)

func stagedRunfiles(t *testing.T, env func(*runfilestest.Layout) map[string]string) *Runfiles {
	t.Helper()
	fixture, err := runfilestest.Parse([]byte("files:\n  ws/data/greeting.txt: hello\nabsent:\n  - ws/data/gone.txt\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layout, err := fixture.Stage(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := NewFromEnv(env(layout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestOpen(t *testing.T) {
	r := stagedRunfiles(t, (*runfilestest.Layout).ManifestEnv)

	f, err := r.Open("ws/data/greeting.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("read %q, want hello", content)
	}
}

func TestOpenViaFSHelpers(t *testing.T) {
	r := stagedRunfiles(t, (*runfilestest.Layout).DirectoryEnv)

	content, err := fs.ReadFile(r, "ws/data/greeting.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("read %q, want hello", content)
	}
}

func TestOpenErrors(t *testing.T) {
	r := stagedRunfiles(t, (*runfilestest.Layout).ManifestEnv)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "unknown runfile", path: "ws/data/nope.txt", wantErr: fs.ErrNotExist},
		{name: "declared but absent", path: "ws/data/gone.txt", wantErr: fs.ErrNotExist},
		{name: "invalid name", path: "../escape", wantErr: fs.ErrInvalid},
		{name: "empty name", path: "", wantErr: fs.ErrInvalid},
		{name: "rooted name", path: "/etc/passwd", wantErr: fs.ErrInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Open(tc.path)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Open(%q) error = %v, want %v", tc.path, err, tc.wantErr)
			}
			var pe *fs.PathError
			if !errors.As(err, &pe) {
				t.Errorf("Open(%q) should return *fs.PathError, got %T", tc.path, err)
			}
		})
	}
}
