package keys

import (
	"errors"
	"unicode/utf8"
)

type errKeys struct{ NotTerminal, NotAcquired error }

const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyRight = "right"
	KeyLeft  = "left"
	KeyEsc   = "esc"
	CtrlC    = "ctrl+c"
	CtrlD    = "ctrl+d"
)

var ErrKeys = errKeys{
	NotTerminal: errors.New("stdin should be a terminal"),
	NotAcquired: errors.New("listener is not acquired"),
}

// Decode splits raw terminal input into keys. Arrow sequences become their
// names, Ctrl+C and Ctrl+D are reported by name since raw mode swallows the
// signals, any other escape sequence collapses into KeyEsc.
func Decode(in []byte) []string {
	out := []string{}
	for len(in) > 0 {
		switch in[0] {
		case 3:
			out = append(out, CtrlC)
			in = in[1:]
			continue
		case 4:
			out = append(out, CtrlD)
			in = in[1:]
			continue
		case 27:
			key, n := decodeEscape(in)
			out = append(out, key)
			in = in[n:]
			continue
		}

		r, n := utf8.DecodeRune(in)
		if r == utf8.RuneError && n <= 1 {
			in = in[1:]
			continue
		}
		out = append(out, string(r))
		in = in[n:]
	}
	return out
}

func decodeEscape(in []byte) (string, int) {
	if len(in) < 2 || (in[1] != '[' && in[1] != 'O') {
		return KeyEsc, 1
	}
	if len(in) >= 3 {
		switch in[2] {
		case 'A':
			return KeyUp, 3
		case 'B':
			return KeyDown, 3
		case 'C':
			return KeyRight, 3
		case 'D':
			return KeyLeft, 3
		}
	}

	// Skip parameters up to the final byte of the sequence.
	i := 2
	for i < len(in) && (in[i] < 0x40 || in[i] > 0x7e) {
		i++
	}
	return KeyEsc, min(i+1, len(in))
}
