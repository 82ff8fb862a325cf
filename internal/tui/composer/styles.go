package composer

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	successColor = lipgloss.Color("42")  // Green
	mutedColor   = lipgloss.Color("245") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	pickerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginRight(1)

	activePickerStyle = pickerStyle.
				BorderForeground(primaryColor)

	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(mutedColor)

	activePickerTitleStyle = pickerTitleStyle.
				Foreground(primaryColor)

	swatchStyle = lipgloss.NewStyle().
			Width(11).
			Align(lipgloss.Center)

	disabledSwatchStyle = swatchStyle.
				Foreground(mutedColor).
				Strikethrough(true)

	previewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(8)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor).
			MarginTop(1)

	errorStatusStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)

// swatchFill returns a style painting c as the background with a readable
// label color on top.
func swatchFill(c logo.Color) lipgloss.Style {
	style := swatchStyle.Background(lipgloss.Color(string(c)))
	return style.Foreground(lipgloss.Color(labelColor(c)))
}

// labelColor picks black or white text for the given background.
func labelColor(c logo.Color) string {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := parsed.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
