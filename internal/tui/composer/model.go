// Package composer implements the interactive logo composer: two swatch
// pickers, accent shape navigation, randomize and export.
package composer

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

// Model is the composer screen
type Model struct {
	ctx    context.Context
	studio Studio

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// UI state
	picker  Picker
	cursors [2]int
	loading bool

	status      string
	statusError bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a composer bound to studio. ctx bounds background work.
func NewModel(ctx context.Context, studio Studio) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		ctx:     ctx,
		studio:  studio,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		loading: studio.Readiness().Status() == logo.NotLoaded,
		width:   80,
		height:  24,
	}
	m.syncCursors()
	return m
}

// Init starts the catalog load
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return tea.Batch(m.spinner.Tick, loadCatalogCmd(m.ctx, m.studio))
}

// Picker returns the picker receiving cursor movement.
func (m Model) Picker() Picker {
	return m.picker
}

// Cursor returns the palette index under the cursor of the active picker.
func (m Model) Cursor() int {
	return m.cursors[m.picker]
}

// Status returns the last status line and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusError
}

// Loading reports whether a catalog load is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// syncCursors places both cursors on the applied colors.
func (m *Model) syncCursors() {
	snap := m.studio.State().Snapshot()
	palette := m.studio.Palette()
	if i, ok := palette.IndexOf(snap.BaseColor); ok {
		m.cursors[PickerBase] = i
	}
	if i, ok := palette.IndexOf(snap.AccentColor); ok {
		m.cursors[PickerAccent] = i
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusError = false
}

func (m *Model) setError(err error) {
	m.status = describeError(err)
	m.statusError = true
}

// accentDisabled reports whether c is currently rejected as an accent color.
func (m Model) accentDisabled(c logo.Color) bool {
	return !m.studio.State().AccentAllowed(c)
}

func describeError(err error) string {
	switch {
	case logo.HasCode(err, logo.ErrCodeColorConflict):
		return "accent color must differ from the base color"
	case logo.HasCode(err, logo.ErrCodeNotReady):
		return "shapes are still loading"
	case logo.HasCode(err, logo.ErrCodeAssetLoad):
		var de *logo.DomainError
		if errors.As(err, &de) {
			if reason, ok := de.Context["reason"].(string); ok {
				return "shapes unavailable: " + reason
			}
		}
		return "shapes unavailable"
	default:
		return err.Error()
	}
}
