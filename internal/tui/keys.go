package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Pause   key.Binding
	Replay  key.Binding
	Back    key.Binding
	Forward key.Binding
	Up      key.Binding
	Down    key.Binding
	Jump    key.Binding
	Display key.Binding
	Copy    key.Binding
	Export  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "précédent")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "suivant")),
		Pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("espace", "lecture/pause")),
		Replay:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rejouer")),
		Back:    key.NewBinding(key.WithKeys(","), key.WithHelp(",", "-1 s")),
		Forward: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "+1 s")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "haut")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "bas")),
		Jump:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("entrée", "aller à")),
		Display: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "langues")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copier")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "exporter")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "aide")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quitter")),
	}
}

// ShortHelp implémente help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pause, k.Replay, k.Help, k.Quit}
}

// FullHelp implémente help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Replay, k.Pause},
		{k.Back, k.Forward, k.Up, k.Down, k.Jump},
		{k.Display, k.Copy, k.Export},
		{k.Help, k.Quit},
	}
}
