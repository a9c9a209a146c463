package ansi

// LineClearMode selects which part of the current line is erased (EL).
type LineClearMode int

const (
	// LineClearModeRight erases from the cursor to the end of the line.
	LineClearModeRight LineClearMode = iota
	// LineClearModeLeft erases from the start of the line through the cursor.
	LineClearModeLeft
	// LineClearModeAll erases the entire line.
	LineClearModeAll
)

// ClearMode selects which part of the screen is erased (ED).
type ClearMode int

const (
	// ClearModeBelow erases from the cursor to the end of the screen.
	ClearModeBelow ClearMode = iota
	// ClearModeAbove erases from the start of the screen through the cursor.
	ClearModeAbove
	// ClearModeAll erases the entire screen.
	ClearModeAll
	// ClearModeSaved erases the screen and the scrollback (xterm extension).
	ClearModeSaved
)

// TabulationClearMode selects which tab stops are removed (TBC).
type TabulationClearMode int

const (
	// TabulationClearModeCurrent removes the tab stop at the cursor column.
	TabulationClearModeCurrent TabulationClearMode = iota
	// TabulationClearModeAll removes every tab stop.
	TabulationClearModeAll
)

// CursorStyle is a DECSCUSR cursor shape (CSI Ps SP q).
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// CharsetIndex selects one of the four character set slots (G0-G3).
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)

// Charset is a character encoding variant designated into a slot.
type Charset int

const (
	// CharsetASCII passes characters through unchanged.
	CharsetASCII Charset = iota
	// CharsetLineDrawing is DEC Special Graphics (box drawing).
	CharsetLineDrawing
	// CharsetUK is the British variant ('#' maps to '£').
	CharsetUK
)

// TerminalMode is a named ANSI or DEC private mode toggled by SM/RM.
// Unknown mode numbers never reach the handler.
type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	// TerminalModeCursorKeys is DECCKM (?1), application cursor keys.
	TerminalModeCursorKeys
	// TerminalModeColumnMode is DECCOLM (?3), 132-column mode.
	TerminalModeColumnMode
	// TerminalModeInsert is IRM (4), insert instead of overwrite.
	TerminalModeInsert
	// TerminalModeOrigin is DECOM (?6), cursor addressing relative to the scroll region.
	TerminalModeOrigin
	// TerminalModeLineWrap is DECAWM (?7), auto-wrap at the right margin.
	TerminalModeLineWrap
	// TerminalModeBlinkingCursor is ?12.
	TerminalModeBlinkingCursor
	// TerminalModeLineFeedNewLine is LNM (20), LF implies CR.
	TerminalModeLineFeedNewLine
	// TerminalModeShowCursor is DECTCEM (?25).
	TerminalModeShowCursor
	// TerminalModeAlternateScreen is ?47, plain alternate screen swap.
	TerminalModeAlternateScreen
	// TerminalModeReportMouseClicks is ?1000.
	TerminalModeReportMouseClicks
	// TerminalModeReportCellMouseMotion is ?1002.
	TerminalModeReportCellMouseMotion
	// TerminalModeReportAllMouseMotion is ?1003.
	TerminalModeReportAllMouseMotion
	// TerminalModeReportFocusInOut is ?1004.
	TerminalModeReportFocusInOut
	// TerminalModeUTF8Mouse is ?1005.
	TerminalModeUTF8Mouse
	// TerminalModeSGRMouse is ?1006, SGR mouse encoding.
	TerminalModeSGRMouse
	// TerminalModeAlternateScroll is ?1007.
	TerminalModeAlternateScroll
	// TerminalModeUrgencyHints is ?1042.
	TerminalModeUrgencyHints
	// TerminalModeSwapScreenAndSetRestoreCursor is ?1049: save cursor,
	// swap to a cleared alternate screen; on reset restore both.
	TerminalModeSwapScreenAndSetRestoreCursor
	// TerminalModeBracketedPaste is ?2004.
	TerminalModeBracketedPaste
	// TerminalModeSwapScreen is ?1047: alternate screen, cleared when left.
	TerminalModeSwapScreen
	// TerminalModeSaveRestoreCursor is ?1048: DECSC on set, DECRC on reset.
	TerminalModeSaveRestoreCursor
)

// terminalMode maps a mode number to its named mode.
// Returns TerminalModeUnknown for numbers this terminal does not implement.
func terminalMode(num int, private bool) TerminalMode {
	if private {
		switch num {
		case 1:
			return TerminalModeCursorKeys
		case 3:
			return TerminalModeColumnMode
		case 6:
			return TerminalModeOrigin
		case 7:
			return TerminalModeLineWrap
		case 12:
			return TerminalModeBlinkingCursor
		case 25:
			return TerminalModeShowCursor
		case 47:
			return TerminalModeAlternateScreen
		case 1000:
			return TerminalModeReportMouseClicks
		case 1002:
			return TerminalModeReportCellMouseMotion
		case 1003:
			return TerminalModeReportAllMouseMotion
		case 1004:
			return TerminalModeReportFocusInOut
		case 1005:
			return TerminalModeUTF8Mouse
		case 1006:
			return TerminalModeSGRMouse
		case 1007:
			return TerminalModeAlternateScroll
		case 1042:
			return TerminalModeUrgencyHints
		case 1047:
			return TerminalModeSwapScreen
		case 1048:
			return TerminalModeSaveRestoreCursor
		case 1049:
			return TerminalModeSwapScreenAndSetRestoreCursor
		case 2004:
			return TerminalModeBracketedPaste
		}
		return TerminalModeUnknown
	}

	switch num {
	case 4:
		return TerminalModeInsert
	case 20:
		return TerminalModeLineFeedNewLine
	}
	return TerminalModeUnknown
}

// Hyperlink is an OSC 8 link association carried by subsequently printed cells.
type Hyperlink struct {
	ID  string
	URI string
}

// Color is a tagged color variant produced by SGR parsing.
// Exactly one of NamedColor, IndexedColor, or RGBColor implements it.
type Color interface {
	isColor()
}

// NamedColor is a semantic color resolved by the host (default fg/bg).
type NamedColor int

const (
	// NamedColorForeground is the default text color.
	NamedColorForeground NamedColor = 256
	// NamedColorBackground is the default background color.
	NamedColorBackground NamedColor = 257
)

// IndexedColor is a 256-color palette index.
type IndexedColor uint8

// RGBColor is a 24-bit direct color.
type RGBColor struct {
	R, G, B uint8
}

func (NamedColor) isColor()   {}
func (IndexedColor) isColor() {}
func (RGBColor) isColor()     {}

// CharAttribute identifies one SGR attribute operation.
type CharAttribute int

const (
	CharAttributeReset CharAttribute = iota
	CharAttributeBold
	CharAttributeDim
	CharAttributeItalic
	CharAttributeUnderline
	CharAttributeDoubleUnderline
	CharAttributeCurlyUnderline
	CharAttributeDottedUnderline
	CharAttributeDashedUnderline
	CharAttributeBlinkSlow
	CharAttributeBlinkFast
	CharAttributeReverse
	CharAttributeHidden
	CharAttributeStrike
	CharAttributeCancelBold
	CharAttributeCancelBoldDim
	CharAttributeCancelItalic
	CharAttributeCancelUnderline
	CharAttributeCancelBlink
	CharAttributeCancelReverse
	CharAttributeCancelHidden
	CharAttributeCancelStrike
	CharAttributeForeground
	CharAttributeBackground
	CharAttributeUnderlineColor
	CharAttributeForegroundDefault
	CharAttributeBackgroundDefault
	CharAttributeUnderlineColorDefault
)

// TerminalCharAttribute is one decoded SGR operation. Color is set only for
// the Foreground/Background/UnderlineColor attributes.
type TerminalCharAttribute struct {
	Attr  CharAttribute
	Color Color
}

// StringCommandKind distinguishes the three ECMA-48 control strings that
// share a parser state.
type StringCommandKind int

const (
	StringCommandSOS StringCommandKind = iota
	StringCommandPM
	StringCommandAPC
)

// Handler receives the semantic operations decoded from the byte stream.
// Decoder is the only caller; implementations own all terminal state.
type Handler interface {
	// Input writes one decoded codepoint at the cursor.
	Input(r rune)
	// Bell rings the terminal bell (BEL).
	Bell()
	// Backspace moves the cursor one column left (BS).
	Backspace()
	// CarriageReturn moves the cursor to column 0 (CR).
	CarriageReturn()
	// LineFeed moves the cursor down one row, scrolling at the region bottom (LF/VT/FF).
	LineFeed()
	// NewLine moves down one row and to column 0 (NEL).
	NewLine()
	// Substitute replaces an aborted sequence (SUB).
	Substitute()
	// Tab moves the cursor forward n tab stops (HT).
	Tab(n int)

	// Goto positions the cursor absolutely (0-based, origin-mode aware).
	Goto(row, col int)
	// GotoLine positions the cursor row (0-based).
	GotoLine(row int)
	// GotoCol positions the cursor column (0-based).
	GotoCol(col int)
	// MoveUp moves the cursor up n rows.
	MoveUp(n int)
	// MoveDown moves the cursor down n rows.
	MoveDown(n int)
	// MoveForward moves the cursor right n columns.
	MoveForward(n int)
	// MoveBackward moves the cursor left n columns.
	MoveBackward(n int)
	// MoveUpCr moves up n rows and to column 0.
	MoveUpCr(n int)
	// MoveDownCr moves down n rows and to column 0.
	MoveDownCr(n int)
	// MoveForwardTabs moves right n tab stops (CHT).
	MoveForwardTabs(n int)
	// MoveBackwardTabs moves left n tab stops (CBT).
	MoveBackwardTabs(n int)

	// ClearLine erases part of the current line. Selective erase skips
	// protected cells.
	ClearLine(mode LineClearMode, selective bool)
	// ClearScreen erases part of the screen. Selective erase skips
	// protected cells.
	ClearScreen(mode ClearMode, selective bool)
	// EraseChars resets n cells at the cursor without shifting (ECH).
	EraseChars(n int)
	// InsertBlank inserts n blank cells at the cursor (ICH).
	InsertBlank(n int)
	// DeleteChars deletes n cells at the cursor (DCH).
	DeleteChars(n int)
	// InsertBlankLines inserts n blank lines at the cursor row (IL).
	InsertBlankLines(n int)
	// DeleteLines deletes n lines at the cursor row (DL).
	DeleteLines(n int)
	// ScrollUp scrolls the region up n lines (SU).
	ScrollUp(n int)
	// ScrollDown scrolls the region down n lines (SD).
	ScrollDown(n int)
	// SetScrollingRegion sets the scroll region (1-based, bottom<=0 means last row).
	SetScrollingRegion(top, bottom int)

	// HorizontalTabSet sets a tab stop at the cursor column (HTS).
	HorizontalTabSet()
	// ClearTabs removes tab stops (TBC).
	ClearTabs(mode TabulationClearMode)

	// SaveCursorPosition saves cursor, attributes, and charset state (DECSC).
	SaveCursorPosition()
	// RestoreCursorPosition restores the saved snapshot (DECRC).
	RestoreCursorPosition()
	// ReverseIndex moves up one row, scrolling down at the region top (RI).
	ReverseIndex()
	// SetCursorStyle applies a DECSCUSR shape.
	SetCursorStyle(style CursorStyle)

	// SetMode enables a terminal mode.
	SetMode(mode TerminalMode)
	// UnsetMode disables a terminal mode.
	UnsetMode(mode TerminalMode)

	// SetTerminalCharAttribute applies one SGR operation to the pen.
	SetTerminalCharAttribute(attr TerminalCharAttribute)
	// SetProtected toggles DECSCA character protection on the pen.
	SetProtected(protect bool)
	// SetHyperlink associates subsequently printed cells with a link; nil clears.
	SetHyperlink(h *Hyperlink)

	// ConfigureCharset designates a charset into a slot.
	ConfigureCharset(index CharsetIndex, charset Charset)
	// SetActiveCharset selects the active slot (SI/SO/LS2/LS3).
	SetActiveCharset(n int)

	// Decaln fills the screen with 'E' (DECALN).
	Decaln()
	// ResetState performs a hard reset (RIS).
	ResetState()
	// SetKeypadApplicationMode enables application keypad (DECKPAM).
	SetKeypadApplicationMode()
	// UnsetKeypadApplicationMode restores numeric keypad (DECKPNM).
	UnsetKeypadApplicationMode()

	// DeviceStatus answers a DSR query (5 or 6).
	DeviceStatus(n int)
	// IdentifyTerminal answers DA; intermediate is '>' for secondary DA, 0 otherwise.
	IdentifyTerminal(intermediate byte)
	// ReportTextAreaPixels answers CSI 14 t.
	ReportTextAreaPixels()
	// ReportTextAreaChars answers CSI 18 t.
	ReportTextAreaChars()

	// SetTitle changes the window title (OSC 0/2).
	SetTitle(title string)
	// PushTitle saves the title onto the title stack (CSI 22 t).
	PushTitle()
	// PopTitle restores the most recently pushed title (CSI 23 t).
	PopTitle()
	// SetWorkingDirectory records the OSC 7 working directory.
	SetWorkingDirectory(uri string)

	// SetColor stores a palette override (OSC 4).
	SetColor(index int, r, g, b uint8)
	// ResetColor drops a palette override (OSC 104).
	ResetColor(index int)
	// SetDynamicColor answers an OSC 10/11/12 color query.
	SetDynamicColor(prefix string, index int, terminator string)

	// ClipboardStore writes data to a clipboard (OSC 52 set).
	ClipboardStore(clipboard byte, data []byte)
	// ClipboardLoad answers an OSC 52 query with the clipboard contents.
	ClipboardLoad(clipboard byte, terminator string)

	// DeviceControlReceived delivers a complete DCS string.
	DeviceControlReceived(params []int, intermediates []byte, final byte, payload []byte)
	// ApplicationCommandReceived delivers a complete APC string.
	ApplicationCommandReceived(data []byte)
	// PrivacyMessageReceived delivers a complete PM string.
	PrivacyMessageReceived(data []byte)
	// StartOfStringReceived delivers a complete SOS string.
	StartOfStringReceived(data []byte)
}
