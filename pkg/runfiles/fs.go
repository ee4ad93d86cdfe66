package runfiles

import (
	"errors"
	"io/fs"
	"os"
)

var _ fs.FS = (*Runfiles)(nil)

// Open implements fs.FS over the resolved runfiles space, so a *Runfiles can
// feed any API that accepts a file system. Unknown runfiles surface as
// fs.ErrNotExist. This is the one place the package touches the disk after
// construction; Rlocation itself never does.
func (r *Runfiles) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	loc, err := r.Rlocation(name)
	if err != nil {
		if errors.Is(err, ErrUnknown) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return os.Open(loc)
}
