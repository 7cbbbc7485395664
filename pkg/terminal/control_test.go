package terminal

import "testing"

func TestControlSequences(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CursorUp", CursorUp, "\x1b[A"},
		{"CursorDown", CursorDown, "\x1b[B"},
		{"CursorRight", CursorRight, "\x1b[C"},
		{"CursorLeft", CursorLeft, "\x1b[D"},
		{"ClearLine", ClearLine, "\x1b[2K"},
		{"ClearScreen", ClearScreen, "\x1b[2J\x1b[H"},
		{"HideCursor", HideCursor, "\x1b[?25l"},
		{"ShowCursor", ShowCursor, "\x1b[?25h"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
