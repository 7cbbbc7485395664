package input

import (
	"bufio"
	"io"

	"github.com/muurk/vimterm/internal/logging"
)

const (
	keyEsc       = 0x1b
	keyLF        = 0x0a
	keyCR        = 0x0d
	keySpace     = 0x20
	keyDEL       = 0x7f
	keyBS        = 0x08
	arrowUp      = 'A'
	arrowDown    = 'B'
	arrowRight   = 'C'
	arrowLeft    = 'D'
	maxSeqLength = 3
)

// Decoder reads events from a byte stream.
type Decoder struct {
	r io.ByteReader
}

// NewDecoder returns a Decoder reading from r. Readers that already
// implement io.ByteReader (such as *terminal.Terminal) are used unbuffered.
func NewDecoder(r io.Reader) *Decoder {
	if br, ok := r.(io.ByteReader); ok {
		return &Decoder{r: br}
	}
	return &Decoder{r: bufio.NewReader(r)}
}

// Next blocks until one event has been read.
//
// After an ESC byte exactly two more bytes are consumed, whatever they are.
// The only errors are read errors, including io.EOF.
func (d *Decoder) Next() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Unknown, err
	}
	if b != keyEsc {
		ev := decodeByte(b)
		if ev.Kind == KindUnknown {
			logging.LogRawBytes("Unknown input", []byte{b})
		}
		return ev, nil
	}

	seq := make([]byte, 1, maxSeqLength)
	seq[0] = b
	for len(seq) < maxSeqLength {
		next, err := d.r.ReadByte()
		if err != nil {
			return Unknown, err
		}
		seq = append(seq, next)
	}

	ev := decodeArrow(seq[2])
	if ev.Kind == KindUnknown {
		logging.LogRawBytes("Unknown escape sequence", seq)
	}
	return ev, nil
}

// Decode decodes the first event in b. Incomplete escape sequences decode to
// Unknown.
func Decode(b []byte) Event {
	if len(b) == 0 {
		return Unknown
	}
	if b[0] != keyEsc {
		return decodeByte(b[0])
	}
	if len(b) < maxSeqLength {
		return Unknown
	}
	return decodeArrow(b[2])
}

// decodeArrow maps the final byte of a CSI cursor sequence. The introducer
// byte is not checked.
func decodeArrow(final byte) Event {
	switch final {
	case arrowUp:
		return Arrow(Up)
	case arrowDown:
		return Arrow(Down)
	case arrowRight:
		return Arrow(Right)
	case arrowLeft:
		return Arrow(Left)
	default:
		return Unknown
	}
}

func decodeByte(b byte) Event {
	switch b {
	case 'k':
		return Vim(Up)
	case 'j':
		return Vim(Down)
	case 'l':
		return Vim(Right)
	case 'h':
		return Vim(Left)
	case keyLF, keyCR:
		return Enter
	case keySpace:
		return Space
	case keyDEL, keyBS:
		return Backspace
	case 'q', 'Q':
		return Quit
	default:
		return Unknown
	}
}
