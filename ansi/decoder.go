package ansi

// Decoder turns a raw byte stream into Handler calls. It owns a Parser for
// the escape-sequence machine and a UTF8Decoder for printable text, and
// carries both across Write boundaries, so any fragmentation of the input
// produces the same calls as a single Write.
type Decoder struct {
	handler Handler
	parser  *Parser
	utf8    *UTF8Decoder

	// lastChar is the most recent printed rune, repeated by CSI b.
	lastChar rune
}

// NewDecoder creates a decoder delivering to handler.
func NewDecoder(handler Handler) *Decoder {
	return &Decoder{
		handler: handler,
		parser:  NewParser(),
		utf8:    NewUTF8Decoder(),
	}
}

// Write feeds a chunk of the stream. It never fails; the signature is
// io.Writer so a pty or recording can be copied straight into it.
func (d *Decoder) Write(p []byte) (int, error) {
	for _, b := range p {
		d.next(b)
	}
	return len(p), nil
}

func (d *Decoder) next(b byte) {
	for {
		// Printable text goes through the UTF-8 decoder: any byte while a
		// codepoint is pending, or a high byte in the ground state. High
		// bytes inside OSC/DCS/control strings stay with the parser as
		// payload.
		if d.utf8.Pending() || (d.parser.State() == StateGround && b >= 0x80) {
			cp, generated, consumed := d.utf8.Next(b)
			if generated {
				d.print(cp)
			}
			if consumed {
				return
			}
			// The byte ended an ill-formed sequence and still needs
			// normal processing (e.g. ESC interrupting a codepoint).
			continue
		}

		cmd, ok := d.parser.Next(b)
		if ok {
			d.dispatch(cmd)
		}
		return
	}
}

func (d *Decoder) print(cp rune) {
	d.lastChar = cp
	d.handler.Input(cp)
}

func (d *Decoder) dispatch(cmd Command) {
	switch cmd.Kind {
	case CommandPrint:
		d.print(rune(cmd.Byte))
	case CommandExecute:
		d.execute(cmd.Byte)
	case CommandCSI:
		d.csiDispatch(&cmd)
	case CommandESC:
		d.escDispatch(&cmd)
	case CommandOSC:
		d.oscDispatch(&cmd)
	case CommandDCS:
		params := make([]int, len(cmd.Params))
		for i, v := range cmd.Params {
			params[i] = int(v)
		}
		d.handler.DeviceControlReceived(params, cmd.Intermediates, cmd.Final, cmd.Payload)
	case CommandString:
		switch cmd.StringKind {
		case StringCommandSOS:
			d.handler.StartOfStringReceived(cmd.Payload)
		case StringCommandPM:
			d.handler.PrivacyMessageReceived(cmd.Payload)
		case StringCommandAPC:
			d.handler.ApplicationCommandReceived(cmd.Payload)
		}
	}
}

func (d *Decoder) execute(b byte) {
	switch b {
	case 0x05: // ENQ
		d.handler.IdentifyTerminal(0)
	case 0x07:
		d.handler.Bell()
	case 0x08:
		d.handler.Backspace()
	case 0x09:
		d.handler.Tab(1)
	case 0x0A, 0x0B, 0x0C:
		d.handler.LineFeed()
	case 0x0D:
		d.handler.CarriageReturn()
	case 0x0E: // SO
		d.handler.SetActiveCharset(1)
	case 0x0F: // SI
		d.handler.SetActiveCharset(0)
	case 0x1A: // SUB also prints an error indicator after cancelling.
		d.handler.Substitute()
	}
}
