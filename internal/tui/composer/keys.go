package composer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevShape key.Binding
	NextShape key.Binding
	Switch    key.Binding
	Up        key.Binding
	Down      key.Binding
	Apply     key.Binding
	Randomize key.Binding
	Export    key.Binding
	Retry     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevShape: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev shape")),
		NextShape: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next shape")),
		Switch:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "base/accent")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Apply:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply color")),
		Randomize: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
		Retry:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "retry load"), key.WithDisabled()),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevShape, k.NextShape, k.Apply, k.Randomize, k.Export, k.Retry, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevShape, k.NextShape, k.Randomize},
		{k.Switch, k.Up, k.Down, k.Apply},
		{k.Export, k.Retry, k.Help, k.Quit},
	}
}
