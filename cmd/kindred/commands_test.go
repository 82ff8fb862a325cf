package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("KINDRED_EXPORT_DIR", t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kindred.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-18"

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Kindred 1.2.3")
	require.Contains(t, stdout, "abcdef1")
	require.Contains(t, stdout, "2026-10-18")
}

func TestExportCommand_ExplicitComposition(t *testing.T) {
	stdout, _, err := executeCommand(t, "export",
		"--base-color", "#264653",
		"--accent-color", "#E9C46A",
		"--shape", "4",
		"-o", "-",
	)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(stdout, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`))
	require.Contains(t, stdout, `fill="#264653"`)
	require.Contains(t, stdout, `fill="#e9c46a"`)
	require.Equal(t, 2, strings.Count(stdout, "<path "))
	require.True(t, strings.HasSuffix(stdout, "</svg>\n"))
}

func TestExportCommand_AccentConflict(t *testing.T) {
	_, _, err := executeCommand(t, "export",
		"--base-color", "#264653",
		"--accent-color", "#264653",
		"-o", "-",
	)
	require.Error(t, err)
	require.True(t, logo.HasCode(err, logo.ErrCodeColorConflict))
}

func TestExportCommand_UnknownColorAndShape(t *testing.T) {
	_, _, err := executeCommand(t, "export", "--base-color", "#123456", "-o", "-")
	require.True(t, logo.HasCode(err, logo.ErrCodeInvalidColor))

	_, _, err = executeCommand(t, "export", "--shape", "36", "-o", "-")
	require.True(t, logo.HasCode(err, logo.ErrCodeIndexOutOfRange))

	_, _, err = executeCommand(t, "export", "--shape", "-1", "-o", "-")
	require.ErrorContains(t, err, "--shape must be >= 0")
}

func TestExportCommand_SeededRandomIsReproducible(t *testing.T) {
	first, _, err := executeCommand(t, "export", "--random", "--seed", "42", "-o", "-")
	require.NoError(t, err)
	second, _, err := executeCommand(t, "export", "--random", "--seed", "42", "-o", "-")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestExportCommand_WritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KINDRED_EXPORT_DIR", dir)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export", "--random"})
	require.NoError(t, root.Execute())

	location := strings.TrimSpace(stdout.String())
	require.Equal(t, dir, filepath.Dir(location))
	require.Regexp(t, `^kindred-logo-\d{8}T\d{6}Z\.svg$`, filepath.Base(location))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg ")
}

func TestExportCommand_OutputPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "logo.svg")
	stdout, _, err := executeCommand(t, "export", "-o", out)
	require.NoError(t, err)
	require.Equal(t, out+"\n", stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// Defaults: first two palette colors, first accent shape.
	require.Contains(t, string(data), `fill="#e63946"`)
	require.Contains(t, string(data), `fill="#1d3557"`)
}

func TestExportCommand_CustomPaletteFromConfig(t *testing.T) {
	cfgPath := writeConfig(t, `palette: ["#000000", "#FFFFFF"]
log:
  level: debug
  human: false
`)
	stdout, stderr, err := executeCommand(t, "--config", cfgPath, "export", "--base-color", "#fff", "-o", "-")
	require.NoError(t, err)
	require.Contains(t, stdout, `fill="#ffffff"`)
	require.Contains(t, stdout, `fill="#000000"`)
	require.Contains(t, stderr, `"correlation_id"`)
}

func TestExportCommand_AssetFailure(t *testing.T) {
	cfgPath := writeConfig(t, `assets:
  source: dir
  location: `+t.TempDir()+`
`)
	_, _, err := executeCommand(t, "--config", cfgPath, "export", "-o", "-")
	require.Error(t, err)
	require.True(t, logo.HasCode(err, logo.ErrCodeAssetLoad))
}

func TestPaletteCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "palette")
	require.NoError(t, err)
	require.Contains(t, stdout, "INDEX")
	require.Contains(t, stdout, "#e63946")
	require.Contains(t, stdout, "#264653")

	stdout, _, err = executeCommand(t, "palette", "--format", "yaml")
	require.NoError(t, err)
	var doc paletteDocument
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	require.Len(t, doc.Palette, len(logo.DefaultColors))
	require.Equal(t, "#e63946", doc.Palette[0])

	_, _, err = executeCommand(t, "palette", "--format", "xml")
	require.ErrorContains(t, err, "unsupported format")
}

func TestShapesCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "shapes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 37)
	require.Contains(t, lines[1], "accent-00.svg")

	stdout, _, err = executeCommand(t, "shapes", "-f", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"count": 36`)
}

func TestRootCommand_RequiresTerminal(t *testing.T) {
	if isInteractive() {
		t.Skip("running attached to a terminal")
	}
	_, _, err := executeCommand(t)
	require.ErrorIs(t, err, errNoTerminal)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	cfgPath := writeConfig(t, `palette: ["#000000", "#000"]`)
	_, _, err := executeCommand(t, "--config", cfgPath, "palette")
	require.Error(t, err)
	require.Contains(t, err.Error(), "palette[1]")
}
