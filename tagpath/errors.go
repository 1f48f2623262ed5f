package tagpath

import (
	"github.com/signadot/tagtree/tag/kpath"
)

// PathError records a failed path operation.
type PathError struct {
	Op   string
	Path kpath.Path
	Err  error
}

func (e *PathError) Error() string {
	if len(e.Path) == 0 {
		return "tagpath: " + e.Op + ": " + e.Err.Error()
	}
	return "tagpath: " + e.Op + " " + e.Path.String() + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
