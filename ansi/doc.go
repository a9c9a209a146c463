// Package ansi decodes a VT100/xterm byte stream into semantic terminal
// operations.
//
// The Decoder feeds bytes through an escape-sequence state machine modeled
// on the DEC ANSI parser (https://vt100.net/emu/dec_ansi_parser) and an
// incremental UTF-8 decoder, and delivers each completed operation to a
// Handler. Both carry their state across Write calls, so the stream may be
// fragmented at any byte boundary without changing the result. Malformed
// sequences are swallowed without any handler call.
package ansi
