package input

import "fmt"

// Direction is a movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Kind identifies the variant of an Event.
type Kind int

const (
	KindUnknown Kind = iota
	KindVim          // h, j, k, l
	KindArrow        // ESC [ A..D
	KindEnter
	KindSpace
	KindBackspace
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindVim:
		return "vim"
	case KindArrow:
		return "arrow"
	case KindEnter:
		return "enter"
	case KindSpace:
		return "space"
	case KindBackspace:
		return "backspace"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one decoded input. Dir is only meaningful for KindVim and
// KindArrow.
type Event struct {
	Kind Kind
	Dir  Direction
}

// Vim returns a vim-key event for d.
func Vim(d Direction) Event { return Event{Kind: KindVim, Dir: d} }

// Arrow returns an arrow-key event for d.
func Arrow(d Direction) Event { return Event{Kind: KindArrow, Dir: d} }

// Simple events.
var (
	Enter     = Event{Kind: KindEnter}
	Space     = Event{Kind: KindSpace}
	Backspace = Event{Kind: KindBackspace}
	Quit      = Event{Kind: KindQuit}
	Unknown   = Event{Kind: KindUnknown}
)

// Direction returns the embedded direction of a vim or arrow event.
func (e Event) Direction() (Direction, bool) {
	if e.Kind == KindVim || e.Kind == KindArrow {
		return e.Dir, true
	}
	return 0, false
}

func (e Event) String() string {
	if d, ok := e.Direction(); ok {
		return e.Kind.String() + "(" + d.String() + ")"
	}
	return e.Kind.String()
}
