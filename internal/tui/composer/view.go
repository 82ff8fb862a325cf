package composer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

const pathPreviewWidth = 36

// View renders the composer
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Kindred logo composer"))
	b.WriteString("\n")

	snap := m.studio.State().Snapshot()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPicker(PickerBase, snap),
		m.renderPicker(PickerAccent, snap),
		m.renderPreview(snap),
	))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusError {
			b.WriteString(errorStatusStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderPicker(p Picker, snap logo.Composition) string {
	active := m.picker == p
	titleS, boxS := pickerTitleStyle, pickerStyle
	if active {
		titleS, boxS = activePickerTitleStyle, activePickerStyle
	}

	lines := []string{titleS.Render(p.String())}
	palette := m.studio.Palette()
	for i := 0; i < palette.Len(); i++ {
		c := palette.At(i)

		cursor := "  "
		if active && m.cursors[p] == i {
			cursor = "› "
		}

		applied := (p == PickerBase && c == snap.BaseColor) || (p == PickerAccent && c == snap.AccentColor)
		marker := "  "
		if applied {
			marker = " ●"
		}

		var swatch string
		if p == PickerAccent && m.accentDisabled(c) {
			swatch = disabledSwatchStyle.Render(string(c))
		} else {
			swatch = swatchFill(c).Render(string(c))
		}
		lines = append(lines, cursor+swatch+marker)
	}
	return boxS.Render(strings.Join(lines, "\n"))
}

func (m Model) renderPreview(snap logo.Composition) string {
	rows := []string{
		m.previewRow("base", swatchFill(snap.BaseColor).Render(string(snap.BaseColor))),
		m.previewRow("accent", swatchFill(snap.AccentColor).Render(string(snap.AccentColor))),
	}

	catalog, err := m.studio.Catalog()
	switch {
	case m.loading:
		rows = append(rows, m.previewRow("shape", m.spinner.View()+" loading shapes"))
	case err != nil:
		rows = append(rows, m.previewRow("shape", errorStatusStyle.UnsetMarginTop().Render("unavailable")))
	default:
		rows = append(rows, m.previewRow("shape", fmt.Sprintf("%d / %d", int(snap.AccentIndex)+1, catalog.Count())))
		if path, err := catalog.AccentPath(snap.AccentIndex); err == nil {
			rows = append(rows, m.previewRow("path", pathStyle.Render(truncate(string(path), pathPreviewWidth))))
		}
	}

	return previewStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) previewRow(label, value string) string {
	return labelStyle.Render(label) + value
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
