package ansi

func (d *Decoder) csiDispatch(cmd *Command) {
	h := d.handler
	private := cmd.Private() == '?'

	switch cmd.Final {
	case '@':
		h.InsertBlank(cmd.ParamOr(0, 1))
	case 'A':
		h.MoveUp(cmd.ParamOr(0, 1))
	case 'B', 'e':
		h.MoveDown(cmd.ParamOr(0, 1))
	case 'C', 'a':
		h.MoveForward(cmd.ParamOr(0, 1))
	case 'D':
		h.MoveBackward(cmd.ParamOr(0, 1))
	case 'E':
		h.MoveDownCr(cmd.ParamOr(0, 1))
	case 'F':
		h.MoveUpCr(cmd.ParamOr(0, 1))
	case 'G', '`':
		h.GotoCol(cmd.ParamOr(0, 1) - 1)
	case 'H', 'f':
		h.Goto(cmd.ParamOr(0, 1)-1, cmd.ParamOr(1, 1)-1)
	case 'I':
		h.MoveForwardTabs(cmd.ParamOr(0, 1))
	case 'J':
		switch cmd.Param(0, 0) {
		case 0:
			h.ClearScreen(ClearModeBelow, private)
		case 1:
			h.ClearScreen(ClearModeAbove, private)
		case 2:
			h.ClearScreen(ClearModeAll, private)
		case 3:
			h.ClearScreen(ClearModeSaved, private)
		}
	case 'K':
		switch cmd.Param(0, 0) {
		case 0:
			h.ClearLine(LineClearModeRight, private)
		case 1:
			h.ClearLine(LineClearModeLeft, private)
		case 2:
			h.ClearLine(LineClearModeAll, private)
		}
	case 'L':
		h.InsertBlankLines(cmd.ParamOr(0, 1))
	case 'M':
		h.DeleteLines(cmd.ParamOr(0, 1))
	case 'P':
		h.DeleteChars(cmd.ParamOr(0, 1))
	case 'S':
		h.ScrollUp(cmd.ParamOr(0, 1))
	case 'T':
		h.ScrollDown(cmd.ParamOr(0, 1))
	case 'X':
		h.EraseChars(cmd.ParamOr(0, 1))
	case 'Z':
		h.MoveBackwardTabs(cmd.ParamOr(0, 1))
	case 'b':
		if d.lastChar != 0 {
			for i := cmd.ParamOr(0, 1); i > 0; i-- {
				h.Input(d.lastChar)
			}
		}
	case 'c':
		if cmd.Param(0, 0) != 0 {
			return
		}
		switch p := cmd.Private(); p {
		case 0, '>':
			h.IdentifyTerminal(p)
		}
	case 'd':
		h.GotoLine(cmd.ParamOr(0, 1) - 1)
	case 'g':
		switch cmd.Param(0, 0) {
		case 0:
			h.ClearTabs(TabulationClearModeCurrent)
		case 3:
			h.ClearTabs(TabulationClearModeAll)
		}
	case 'h':
		for i := range cmd.Params {
			if m := terminalMode(cmd.Param(i, 0), private); m != TerminalModeUnknown {
				h.SetMode(m)
			}
		}
	case 'l':
		for i := range cmd.Params {
			if m := terminalMode(cmd.Param(i, 0), private); m != TerminalModeUnknown {
				h.UnsetMode(m)
			}
		}
	case 'm':
		if cmd.Private() != 0 {
			return
		}
		for _, attr := range parseSGR(cmd.Params, cmd.Colon) {
			h.SetTerminalCharAttribute(attr)
		}
	case 'n':
		switch n := cmd.Param(0, 0); n {
		case 5, 6:
			h.DeviceStatus(n)
		}
	case 'q':
		switch cmd.Intermediate() {
		case ' ':
			if s := cmd.Param(0, 0); s >= 0 && s <= 6 {
				// Style 0 and 1 are both the blinking block.
				if s > 0 {
					s--
				}
				h.SetCursorStyle(CursorStyle(s))
			}
		case '"':
			h.SetProtected(cmd.Param(0, 0) == 1)
		}
	case 'r':
		if private {
			return
		}
		h.SetScrollingRegion(cmd.ParamOr(0, 1), cmd.Param(1, 0))
	case 's':
		if cmd.Private() == 0 {
			h.SaveCursorPosition()
		}
	case 't':
		switch cmd.Param(0, 0) {
		case 14:
			h.ReportTextAreaPixels()
		case 18:
			h.ReportTextAreaChars()
		case 22:
			h.PushTitle()
		case 23:
			h.PopTitle()
		}
	case 'u':
		if cmd.Private() == 0 {
			h.RestoreCursorPosition()
		}
	}
}
