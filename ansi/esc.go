package ansi

func (d *Decoder) escDispatch(cmd *Command) {
	h := d.handler

	// Charset designation: ESC ( ) * + followed by the set.
	if in := cmd.Intermediate(); in >= '(' && in <= '+' {
		index := CharsetIndex(in - '(')
		switch cmd.Final {
		case 'B':
			h.ConfigureCharset(index, CharsetASCII)
		case '0':
			h.ConfigureCharset(index, CharsetLineDrawing)
		case 'A':
			h.ConfigureCharset(index, CharsetUK)
		}
		return
	}

	if cmd.Intermediate() == '#' {
		if cmd.Final == '8' {
			h.Decaln()
		}
		return
	}

	switch cmd.Final {
	case 'D': // IND
		h.LineFeed()
	case 'E': // NEL
		h.NewLine()
	case 'H': // HTS
		h.HorizontalTabSet()
	case 'M': // RI
		h.ReverseIndex()
	case 'Z': // DECID
		h.IdentifyTerminal(0)
	case '7': // DECSC
		h.SaveCursorPosition()
	case '8': // DECRC
		h.RestoreCursorPosition()
	case '=': // DECKPAM
		h.SetKeypadApplicationMode()
	case '>': // DECKPNM
		h.UnsetKeypadApplicationMode()
	case 'c': // RIS
		h.ResetState()
	case 'n': // LS2
		h.SetActiveCharset(2)
	case 'o': // LS3
		h.SetActiveCharset(3)
	case '\\': // ST terminating a string already delivered
	}
}
