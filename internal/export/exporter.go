// Package export delivers serialized logo documents to the user: to a file
// named after the export time, or to an arbitrary writer.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/kindred/internal/ports"
)

// FileTimeLayout is the UTC timestamp layout embedded in exported file names.
const FileTimeLayout = "20060102T150405Z"

// FileName returns the export file name for the given instant.
func FileName(t time.Time) string {
	return "kindred-logo-" + t.UTC().Format(FileTimeLayout) + ".svg"
}

// FileExporter writes documents into a directory.
type FileExporter struct {
	dir    string
	now    func() time.Time
	logger ports.Logger
}

var _ ports.Exporter = (*FileExporter)(nil)

// Option customizes a FileExporter.
type Option func(*FileExporter)

// WithClock overrides the clock used to name files.
func WithClock(now func() time.Time) Option {
	return func(e *FileExporter) { e.now = now }
}

// WithLogger attaches a logger.
func WithLogger(l ports.Logger) Option {
	return func(e *FileExporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewFileExporter creates an exporter rooted at dir. An empty dir means the
// working directory.
func NewFileExporter(dir string, opts ...Option) *FileExporter {
	if dir == "" {
		dir = "."
	}
	e := &FileExporter{dir: dir, now: time.Now, logger: ports.NopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes document to <dir>/kindred-logo-<timestamp>.svg and returns
// the path written. Existing files are never replaced: a name already taken
// gets a -2, -3, ... suffix.
func (e *FileExporter) Export(ctx context.Context, document string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	tmpName, err := writeTemp(e.dir, document)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(tmpName) }()

	name := FileName(e.now())
	stem := strings.TrimSuffix(name, ".svg")
	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		if attempt > 1 {
			name = fmt.Sprintf("%s-%d.svg", stem, attempt)
		}
		path := filepath.Join(e.dir, name)
		err := os.Link(tmpName, path)
		if err == nil {
			e.logger.Info(ctx, "logo exported", "path", path, "bytes", len(document))
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("link into %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("no free export name for %s after %d attempts", stem, maxNameAttempts)
}

const maxNameAttempts = 1000

// WriteFile writes document to path through a temporary file in the same
// directory so readers never observe a partial document.
func WriteFile(path, document string) error {
	tmpName, err := writeTemp(filepath.Dir(path), document)
	if err != nil {
		return err
	}
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// writeTemp stores document, synced and mode 0644, in a fresh temporary file
// under dir and returns its name.
func writeTemp(dir, document string) (string, error) {
	tmp, err := os.CreateTemp(dir, ".kindred-*.svg.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(err error) (string, error) {
		_ = os.Remove(tmpName)
		return "", err
	}
	if _, err := io.WriteString(tmp, document); err != nil {
		tmp.Close()
		return fail(fmt.Errorf("write %s: %w", tmpName, err))
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fail(fmt.Errorf("sync %s: %w", tmpName, err))
	}
	if err := tmp.Close(); err != nil {
		return fail(fmt.Errorf("close %s: %w", tmpName, err))
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fail(fmt.Errorf("chmod %s: %w", tmpName, err))
	}
	return tmpName, nil
}

// WriterExporter streams documents to a writer, typically stdout.
type WriterExporter struct {
	w     io.Writer
	label string
}

var _ ports.Exporter = (*WriterExporter)(nil)

// NewWriterExporter wraps w; label is returned as the export location.
func NewWriterExporter(w io.Writer, label string) *WriterExporter {
	return &WriterExporter{w: w, label: label}
}

func (e *WriterExporter) Export(ctx context.Context, document string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(e.w, document); err != nil {
		return "", fmt.Errorf("write %s: %w", e.label, err)
	}
	return e.label, nil
}

// PathExporter writes documents to one fixed path.
type PathExporter struct {
	path string
}

var _ ports.Exporter = (*PathExporter)(nil)

// NewPathExporter targets path.
func NewPathExporter(path string) *PathExporter {
	return &PathExporter{path: path}
}

func (e *PathExporter) Export(ctx context.Context, document string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := WriteFile(e.path, document); err != nil {
		return "", err
	}
	return e.path, nil
}
