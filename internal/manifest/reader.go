package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/varalys/pincheck/internal/types"
)

// Separator splits a package name from its pinned version.
const Separator = types.Separator

// DefaultPath is the manifest read when no other path is configured.
const DefaultPath = "requirements.txt"

// ReadFile parses the manifest at path. A missing file yields a
// *NotFoundError; nothing is returned alongside an error.
func ReadFile(path string) ([]types.Dependency, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	defer f.Close()

	deps, err := parse(f, path)
	if err != nil {
		return nil, err
	}
	return deps, nil
}

// Parse reads requirement pins from r in order.
func Parse(r io.Reader) ([]types.Dependency, error) {
	return parse(r, "<input>")
}

func parse(r io.Reader, name string) ([]types.Dependency, error) {
	deps := []types.Dependency{}
	sc := bufio.NewScanner(r)
	// no cap on line length; long comment lines must not abort the read
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	n := 0
	for sc.Scan() {
		n++
		raw := sc.Text()
		if !strings.Contains(raw, Separator) {
			continue
		}
		line := strings.TrimSpace(raw)
		parts := strings.Split(line, Separator)
		if len(parts) != 2 {
			return nil, &MalformedLineError{Path: name, Line: n, Text: line}
		}
		deps = append(deps, types.Dependency{Package: parts[0], Version: parts[1], Line: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", name, err)
	}
	return deps, nil
}
