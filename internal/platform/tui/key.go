package tui

import (
	"unicode/utf8"
)

// Key is the logical name of a key press: a printable character ("q", "é")
// or a named key ("left", "space", "esc", "ctrl+c").
type Key string

const (
	KeyNone      Key = ""
	KeyEscape    Key = "esc"
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyRight     Key = "right"
	KeyLeft      Key = "left"
)

// arrowKeys maps CSI/SS3 final bytes to arrow keys.
var arrowKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// KeyDecoder turns a raw terminal byte stream into key presses.
// Raw terminals only report presses, so every decoded key is a press.
// Incomplete escape sequences and UTF-8 runes are kept until more bytes arrive.
type KeyDecoder struct {
	buf []byte
}

// Feed appends bytes to the stream and returns the keys completed by them.
func (d *KeyDecoder) Feed(p []byte) []Key {
	d.buf = append(d.buf, p...)

	var keys []Key
	i := 0
parse:
	for i < len(d.buf) {
		b := d.buf[i]

		switch {
		case b == 0x1b:
			consumed, k := parseEscape(d.buf[i:])
			if consumed == 0 {
				break parse // Wait for the rest of the sequence
			}
			if k != KeyNone {
				keys = append(keys, k)
			}
			i += consumed

		case b == ' ':
			keys = append(keys, KeySpace)
			i++

		case b == '\r' || b == '\n':
			keys = append(keys, KeyEnter)
			i++

		case b == '\t':
			keys = append(keys, KeyTab)
			i++

		case b == 0x7f || b == 0x08:
			keys = append(keys, KeyBackspace)
			i++

		case b >= 0x01 && b <= 0x1a:
			keys = append(keys, Key("ctrl+"+string(rune('a'+b-1))))
			i++

		case b < 0x20:
			i++ // Other control bytes carry no key

		default:
			if !utf8.FullRune(d.buf[i:]) {
				break parse
			}
			r, size := utf8.DecodeRune(d.buf[i:])
			if r != utf8.RuneError {
				keys = append(keys, Key(string(r)))
			}
			i += size
		}
	}

	// Compact buffer
	n := copy(d.buf, d.buf[i:])
	d.buf = d.buf[:n]

	return keys
}

// Flush is called when the input goes quiet. A lone pending ESC is the Esc key;
// anything else left over is an abandoned sequence and is dropped.
func (d *KeyDecoder) Flush() Key {
	if len(d.buf) == 0 {
		return KeyNone
	}
	k := KeyNone
	if d.buf[0] == 0x1b {
		k = KeyEscape
	}
	d.buf = d.buf[:0]
	return k
}

// parseEscape decodes a sequence starting with ESC.
// Returns 0 consumed bytes if the sequence is incomplete.
func parseEscape(data []byte) (int, Key) {
	if len(data) < 2 {
		return 0, KeyNone
	}

	switch data[1] {
	case '[':
		// CSI: parameters then a final byte in 0x40..0x7e
		for j := 2; j < len(data); j++ {
			if data[j] >= 0x40 && data[j] <= 0x7e {
				// Modified arrows (ESC [ 1 ; 5 A) still count as arrows
				return j + 1, arrowKeys[data[j]]
			}
		}
		return 0, KeyNone

	case 'O':
		// SS3: application cursor mode arrows
		if len(data) < 3 {
			return 0, KeyNone
		}
		return 3, arrowKeys[data[2]]

	default:
		// ESC followed by an ordinary byte: Esc, then that byte on its own
		return 1, KeyEscape
	}
}
