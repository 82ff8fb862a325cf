package composer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// loadCatalogCmd fetches the shape catalog asynchronously
func loadCatalogCmd(ctx context.Context, s Studio) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadedMsg{Err: s.Load(ctx)}
	}
}

// exportCmd serializes and saves the current composition
func exportCmd(ctx context.Context, s Studio) tea.Cmd {
	return func() tea.Msg {
		location, err := s.Save(ctx)
		return ExportedMsg{Location: location, Err: err}
	}
}
