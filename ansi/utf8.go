package ansi

// UTF8Decoder is an incremental, restartable UTF-8 byte decoder.
//
// It is Bjoern Hoehrmann's DFA (http://bjoern.hoehrmann.de/utf-8/decoder/dfa)
// with ill-formed sequences replaced by U+FFFD instead of aborting, so a
// byte stream truncated mid-codepoint can resume on the next Write.
type UTF8Decoder struct {
	state uint8
	acc   uint32
}

const (
	utf8Accept = 0
	utf8Reject = 12
)

var utf8Table = [364]uint8{
	// Byte to character class.
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,

	// State plus character class to next state.
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, 12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// NewUTF8Decoder creates a decoder in the accepting state.
func NewUTF8Decoder() *UTF8Decoder {
	return &UTF8Decoder{state: utf8Accept}
}

// Pending returns true if the decoder is in the middle of a multi-byte
// sequence and the next byte must be routed through it.
func (d *UTF8Decoder) Pending() bool {
	return d.state != utf8Accept
}

// Reset discards any partially accumulated sequence.
func (d *UTF8Decoder) Reset() {
	d.state = utf8Accept
	d.acc = 0
}

// Next feeds one byte and reports:
//   - cp: the decoded codepoint, valid only when generated is true
//   - generated: a codepoint (possibly U+FFFD) was produced
//   - consumed: the byte was used; when false the caller must feed the
//     same byte again (an ill-formed sequence ended at a byte that starts
//     something new, e.g. an ESC interrupting a truncated codepoint)
func (d *UTF8Decoder) Next(b byte) (cp rune, generated bool, consumed bool) {
	class := utf8Table[b]
	prev := d.state

	if d.state != utf8Accept {
		d.acc = d.acc<<6 | uint32(b)&0x3F
	} else {
		d.acc = uint32(0xFF>>class) & uint32(b)
	}
	d.state = utf8Table[256+int(d.state)+int(class)]

	switch d.state {
	case utf8Accept:
		cp = rune(d.acc)
		d.acc = 0
		return cp, true, true

	case utf8Reject:
		d.acc = 0
		d.state = utf8Accept
		// The offending byte was consumed only if it began the sequence.
		return 0xFFFD, true, prev == utf8Accept

	default:
		return 0, false, true
	}
}
