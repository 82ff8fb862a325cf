package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = "<svg/>\n"

func fixedClock() time.Time {
	return time.Date(2026, 10, 18, 12, 15, 0, 0, time.FixedZone("EDT", -4*60*60))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "kindred-logo-20261018T161500Z.svg", FileName(fixedClock()))
}

func TestFileExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	exporter := NewFileExporter(dir, WithClock(fixedClock))

	path, err := exporter.Export(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "kindred-logo-20261018T161500Z.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileExporter_KeepsEarlierExports(t *testing.T) {
	dir := t.TempDir()
	exporter := NewFileExporter(dir, WithClock(fixedClock))

	first, err := exporter.Export(context.Background(), "<svg>first</svg>")
	require.NoError(t, err)
	second, err := exporter.Export(context.Background(), "<svg>second</svg>")
	require.NoError(t, err)
	third, err := exporter.Export(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "kindred-logo-20261018T161500Z.svg"), first)
	assert.Equal(t, filepath.Join(dir, "kindred-logo-20261018T161500Z-2.svg"), second)
	assert.Equal(t, filepath.Join(dir, "kindred-logo-20261018T161500Z-3.svg"), third)

	for path, want := range map[string]string{first: "<svg>first</svg>", second: "<svg>second</svg>", third: doc} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "temporary files must not be left behind")
}

func TestFileExporter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := NewFileExporter(dir).Export(ctx, doc)
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriterExporter(t *testing.T) {
	var buf bytes.Buffer
	location, err := NewWriterExporter(&buf, "stdout").Export(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "stdout", location)
	assert.Equal(t, doc, buf.String())
}

func TestPathExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.svg")
	location, err := NewPathExporter(path).Export(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, path, location)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	_, err = NewPathExporter(filepath.Join(path, "nested.svg")).Export(context.Background(), doc)
	assert.Error(t, err)
}
