package ansi

// parseSGR decodes the parameters of a select-graphic-rendition sequence
// into attribute operations. colon[i] records whether the separator after
// params[i] was ':', which distinguishes underline sub-styles (4:3) from a
// plain underline followed by another attribute (4;3).
func parseSGR(params []uint16, colon []bool) []TerminalCharAttribute {
	if len(params) == 0 {
		return []TerminalCharAttribute{{Attr: CharAttributeReset}}
	}

	attrs := make([]TerminalCharAttribute, 0, len(params))
	push := func(a CharAttribute) {
		attrs = append(attrs, TerminalCharAttribute{Attr: a})
	}
	pushColor := func(a CharAttribute, c Color) {
		attrs = append(attrs, TerminalCharAttribute{Attr: a, Color: c})
	}

	for i := 0; i < len(params); i++ {
		p := int(params[i])
		switch {
		case p == 0:
			push(CharAttributeReset)
		case p == 1:
			push(CharAttributeBold)
		case p == 2:
			push(CharAttributeDim)
		case p == 3:
			push(CharAttributeItalic)
		case p == 4:
			if i < len(colon) && colon[i] && i+1 < len(params) {
				i++
				switch params[i] {
				case 0:
					push(CharAttributeCancelUnderline)
				case 1:
					push(CharAttributeUnderline)
				case 2:
					push(CharAttributeDoubleUnderline)
				case 3:
					push(CharAttributeCurlyUnderline)
				case 4:
					push(CharAttributeDottedUnderline)
				case 5:
					push(CharAttributeDashedUnderline)
				}
			} else {
				push(CharAttributeUnderline)
			}
		case p == 5:
			push(CharAttributeBlinkSlow)
		case p == 6:
			push(CharAttributeBlinkFast)
		case p == 7:
			push(CharAttributeReverse)
		case p == 8:
			push(CharAttributeHidden)
		case p == 9:
			push(CharAttributeStrike)
		case p == 21:
			push(CharAttributeCancelBold)
		case p == 22:
			push(CharAttributeCancelBoldDim)
		case p == 23:
			push(CharAttributeCancelItalic)
		case p == 24:
			push(CharAttributeCancelUnderline)
		case p == 25:
			push(CharAttributeCancelBlink)
		case p == 27:
			push(CharAttributeCancelReverse)
		case p == 28:
			push(CharAttributeCancelHidden)
		case p == 29:
			push(CharAttributeCancelStrike)
		case p >= 30 && p <= 37:
			pushColor(CharAttributeForeground, IndexedColor(p-30))
		case p == 38:
			if c, n := parseExtendedColor(params[i+1:]); n > 0 {
				pushColor(CharAttributeForeground, c)
				i += n
			} else {
				return attrs
			}
		case p == 39:
			push(CharAttributeForegroundDefault)
		case p >= 40 && p <= 47:
			pushColor(CharAttributeBackground, IndexedColor(p-40))
		case p == 48:
			if c, n := parseExtendedColor(params[i+1:]); n > 0 {
				pushColor(CharAttributeBackground, c)
				i += n
			} else {
				return attrs
			}
		case p == 49:
			push(CharAttributeBackgroundDefault)
		case p == 58:
			if c, n := parseExtendedColor(params[i+1:]); n > 0 {
				pushColor(CharAttributeUnderlineColor, c)
				i += n
			} else {
				return attrs
			}
		case p == 59:
			push(CharAttributeUnderlineColorDefault)
		case p >= 90 && p <= 97:
			pushColor(CharAttributeForeground, IndexedColor(p-90+8))
		case p >= 100 && p <= 107:
			pushColor(CharAttributeBackground, IndexedColor(p-100+8))
		}
	}

	return attrs
}

// parseExtendedColor decodes the tail of a 38/48/58 extended color: 2 plus
// three channel values for direct color, 5 plus a palette index for
// indexed. Returns the number of parameters consumed, 0 when malformed.
func parseExtendedColor(params []uint16) (Color, int) {
	if len(params) == 0 {
		return nil, 0
	}
	switch params[0] {
	case 2:
		if len(params) < 4 {
			return nil, 0
		}
		r, g, b := params[1], params[2], params[3]
		if r > 255 || g > 255 || b > 255 {
			return nil, 0
		}
		return RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}, 4
	case 5:
		if len(params) < 2 || params[1] > 255 {
			return nil, 0
		}
		return IndexedColor(params[1]), 2
	}
	return nil, 0
}
