package composer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.setError(msg.Err)
			m.keys.Retry.SetEnabled(true)
			return m, nil
		}
		m.keys.Retry.SetEnabled(false)
		if catalog, err := m.studio.Catalog(); err == nil {
			m.setStatus(fmt.Sprintf("%d shapes loaded", catalog.Count()))
		}
		return m, nil

	case ExportedMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
			return m, nil
		}
		m.setStatus("saved " + msg.Location)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		if m.loading || m.studio.Readiness().Status() != logo.Failed {
			return m, nil
		}
		m.loading = true
		m.keys.Retry.SetEnabled(false)
		m.setStatus("retrying")
		return m, tea.Batch(m.spinner.Tick, loadCatalogCmd(m.ctx, m.studio))

	case key.Matches(msg, m.keys.Switch):
		if m.picker == PickerBase {
			m.picker = PickerAccent
		} else {
			m.picker = PickerBase
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		m.applyColor()
		return m, nil

	case key.Matches(msg, m.keys.PrevShape):
		m.run(m.studio.State().PreviousShape())
		return m, nil

	case key.Matches(msg, m.keys.NextShape):
		m.run(m.studio.State().NextShape())
		return m, nil

	case key.Matches(msg, m.keys.Randomize):
		if m.run(m.studio.State().Randomize()) {
			m.syncCursors()
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		if m.loading {
			m.status = "shapes are still loading"
			m.statusError = true
			return m, nil
		}
		m.setStatus("exporting")
		return m, exportCmd(m.ctx, m.studio)
	}

	return m, nil
}

// moveCursor moves the active picker's cursor, wrapping at both ends.
func (m *Model) moveCursor(delta int) {
	n := m.studio.Palette().Len()
	idx := (m.cursors[m.picker] + delta) % n
	if idx < 0 {
		idx += n
	}
	m.cursors[m.picker] = idx
}

func (m *Model) applyColor() {
	state := m.studio.State()
	color := m.studio.Palette().At(m.cursors[m.picker])

	if m.picker == PickerBase {
		if m.run(state.SetBaseColor(color)) {
			// A cascaded accent moves the accent cursor with it.
			m.syncCursors()
		}
		return
	}
	m.run(state.SetAccentColor(color))
}

// run records err in the status line and reports whether the transition
// succeeded.
func (m *Model) run(err error) bool {
	if err != nil {
		m.setError(err)
		return false
	}
	m.status = ""
	m.statusError = false
	return true
}
