package terminal

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Fallback dimensions when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Terminal pairs an input file with an output writer.
//
// Reads are unbuffered so that nothing typed ahead is held in user space when
// the terminal is handed back to the shell. Writes are serialised, so a
// background goroutine redrawing the screen cannot interleave with the main
// loop.
type Terminal struct {
	in  *os.File
	out io.Writer
	fd  int

	mu sync.Mutex
}

// New creates a Terminal reading from in and writing to out.
// If out is nil, os.Stdout is used.
func New(in *os.File, out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{
		in:  in,
		out: out,
		fd:  int(in.Fd()),
	}
}

// Std returns a Terminal over stdin and stdout.
func Std() *Terminal {
	return New(os.Stdin, os.Stdout)
}

// Fd returns the input file descriptor whose attributes raw mode changes.
func (t *Terminal) Fd() int {
	return t.fd
}

// IsTerminal reports whether the input is a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// ReadByte blocks until one byte of input is available.
func (t *Terminal) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Read reads directly from the input.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write writes p to the output in a single locked call.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.Write(p)
}

// WriteString writes s to the output.
func (t *Terminal) WriteString(s string) error {
	_, err := t.Write([]byte(s))
	return err
}

// Size returns the output dimensions in cells, falling back to 80x24.
func (t *Terminal) Size() (width, height int) {
	fd := t.fd
	if f, ok := t.out.(*os.File); ok {
		fd = int(f.Fd())
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
