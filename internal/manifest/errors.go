package manifest

import (
	"fmt"
	"io/fs"
)

// NotFoundError reports a manifest path that does not resolve to a file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the file %s does not exist.", e.Path)
}

func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// MalformedLineError reports a requirement line that carries the separator
// more than once.
type MalformedLineError struct {
	Path string
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: malformed requirement %q: expected exactly one %q", e.Path, e.Line, e.Text, Separator)
}
