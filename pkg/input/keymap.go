package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds Bubble Tea key names to the decoder's event set. It also
// carries help text, so a footer can be rendered with bubbles/help.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Space     key.Binding
	Backspace key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the bindings matching Decoder's byte mappings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "ctrl+j"),
			key.WithHelp("enter", "open"),
		),
		Space: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "refresh"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Backspace, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Space, k.Backspace, k.Quit},
	}
}

// Event maps a Bubble Tea key message through the key map.
func (k KeyMap) Event(msg tea.KeyMsg) Event {
	switch {
	case key.Matches(msg, k.Up):
		return k.direction(msg, Up)
	case key.Matches(msg, k.Down):
		return k.direction(msg, Down)
	case key.Matches(msg, k.Left):
		return k.direction(msg, Left)
	case key.Matches(msg, k.Right):
		return k.direction(msg, Right)
	case key.Matches(msg, k.Enter):
		return Enter
	case key.Matches(msg, k.Space):
		return Space
	case key.Matches(msg, k.Backspace):
		return Backspace
	case key.Matches(msg, k.Quit):
		return Quit
	default:
		return Unknown
	}
}

// direction keeps the vim/arrow distinction: rune keys are vim keys.
func (k KeyMap) direction(msg tea.KeyMsg, d Direction) Event {
	if msg.Type == tea.KeyRunes {
		return Vim(d)
	}
	return Arrow(d)
}

// FromKeyMsg maps a Bubble Tea key message using DefaultKeyMap.
func FromKeyMsg(msg tea.KeyMsg) Event {
	return DefaultKeyMap().Event(msg)
}
