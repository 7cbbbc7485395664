package terminal

// ANSI control sequences. Each is written as-is, with no trailing newline.
const (
	// CursorUp moves the cursor up one line
	CursorUp = "\x1b[A"
	// CursorDown moves the cursor down one line
	CursorDown = "\x1b[B"
	// CursorRight moves the cursor right one column
	CursorRight = "\x1b[C"
	// CursorLeft moves the cursor left one column
	CursorLeft = "\x1b[D"

	// ClearLine erases the current line
	ClearLine = "\x1b[2K"
	// ClearScreen erases the screen and homes the cursor
	ClearScreen = "\x1b[2J\x1b[H"

	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
)
