package assets

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexisbeaulieu97/kindred/internal/ports"
)

//go:embed shapes/*.svg
var embeddedShapes embed.FS

// FSFetcher reads shape documents from an fs.FS.
type FSFetcher struct {
	fsys  fs.FS
	label string
}

var _ ports.Fetcher = (*FSFetcher)(nil)

// NewFSFetcher wraps fsys; label is used in logs and errors.
func NewFSFetcher(fsys fs.FS, label string) *FSFetcher {
	return &FSFetcher{fsys: fsys, label: label}
}

// Embedded returns a fetcher over the shapes compiled into the binary: one
// base.svg and accent-00.svg through accent-35.svg.
func Embedded() *FSFetcher {
	sub, err := fs.Sub(embeddedShapes, "shapes")
	if err != nil {
		panic(fmt.Sprintf("embedded shapes: %v", err))
	}
	return NewFSFetcher(sub, "embedded")
}

// NewDirFetcher reads shapes from a local directory.
func NewDirFetcher(dir string) *FSFetcher {
	return NewFSFetcher(os.DirFS(dir), "dir:"+dir)
}

func (f *FSFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "fetch", Path: name, Err: fs.ErrInvalid}
	}
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (f *FSFetcher) Describe() string {
	return f.label
}
