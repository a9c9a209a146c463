package vtcore

import (
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/glyphcast/vtcore/ansi"
)

var _ ansi.Handler = (*Terminal)(nil)

// Input writes one decoded character at the cursor position.
func (t *Terminal) Input(r rune) {
	if t.middleware != nil && t.middleware.Input != nil {
		t.middleware.Input(r, t.inputInternal)
		return
	}
	t.inputInternal(r)
}

func (t *Terminal) inputInternal(r rune) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.putCharLocked(t.translateCharLocked(r))
}

// translateCharLocked applies the active character set to an input rune.
func (t *Terminal) translateCharLocked(r rune) rune {
	switch t.charsets[t.activeCharset] {
	case CharsetLineDrawing:
		return translateLineDrawing(r)
	case CharsetUK:
		if r == '#' {
			return '£'
		}
	}
	return r
}

// translateLineDrawing maps ASCII to DEC Special Graphics box-drawing runes.
func translateLineDrawing(r rune) rune {
	switch r {
	case '`':
		return '◆'
	case 'a':
		return '▒'
	case 'f':
		return '°'
	case 'g':
		return '±'
	case 'j':
		return '┘'
	case 'k':
		return '┐'
	case 'l':
		return '┌'
	case 'm':
		return '└'
	case 'n':
		return '┼'
	case 'o':
		return '⎺'
	case 'p':
		return '⎻'
	case 'q':
		return '─'
	case 'r':
		return '⎼'
	case 's':
		return '⎽'
	case 't':
		return '├'
	case 'u':
		return '┤'
	case 'v':
		return '┴'
	case 'w':
		return '┬'
	case 'x':
		return '│'
	case 'y':
		return '≤'
	case 'z':
		return '≥'
	case '{':
		return 'π'
	case '|':
		return '≠'
	case '}':
		return '£'
	case '~':
		return '·'
	}
	return r
}

// putCharLocked writes a rune at the cursor, handling wrapping, insert mode,
// and wide characters. Lock held.
func (t *Terminal) putCharLocked(r rune) {
	width := runeWidth(r)
	if width == 0 {
		// Zero-width characters (combining marks) are not stored.
		return
	}

	cols := t.active.Cols()
	if t.cursor.Col+width > cols {
		if t.mode&ModeLineWrap != 0 {
			t.cursor.Col = 0
			if t.cursor.Row == t.scrollBottom-1 {
				t.active.ScrollUp(t.scrollTop, t.scrollBottom, 1, t.blankCell())
			} else if t.cursor.Row < t.active.Rows()-1 {
				t.cursor.Row++
			}
			// The continuation line is flagged, not the line that overflowed.
			t.active.SetWrapped(t.cursor.Row, true)
		} else {
			t.cursor.Col = cols - width
			if t.cursor.Col < 0 {
				t.cursor.Col = 0
			}
		}
	}

	if t.mode&ModeInsert != 0 {
		t.active.InsertBlanks(t.cursor.Row, t.cursor.Col, width, t.blankCell())
	}

	cell := t.template.Cell
	cell.Char = r
	cell.Hyperlink = t.hyperlink
	cell.ClearFlag(CellFlagWideChar | CellFlagWideCharSpacer)
	if width == 2 {
		cell.SetFlag(CellFlagWideChar)
	}
	t.active.SetCell(t.cursor.Row, t.cursor.Col, cell)

	if width == 2 {
		spacer := t.template.Cell
		spacer.Char = ' '
		spacer.Hyperlink = t.hyperlink
		spacer.ClearFlag(CellFlagWideChar)
		spacer.SetFlag(CellFlagWideCharSpacer)
		t.active.SetCell(t.cursor.Row, t.cursor.Col+1, spacer)
	}

	t.cursor.Col += width
}

// Bell rings the terminal bell.
func (t *Terminal) Bell() {
	if t.middleware != nil && t.middleware.Bell != nil {
		t.middleware.Bell(t.bellInternal)
		return
	}
	t.bellInternal()
}

func (t *Terminal) bellInternal() {
	t.bell.Ring()
}

// Backspace moves the cursor one column left, stopping at the left margin.
func (t *Terminal) Backspace() {
	if t.middleware != nil && t.middleware.Backspace != nil {
		t.middleware.Backspace(t.backspaceInternal)
		return
	}
	t.backspaceInternal()
}

func (t *Terminal) backspaceInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Col > t.active.Cols()-1 {
		t.cursor.Col = t.active.Cols() - 1
	}
	if t.cursor.Col > 0 {
		t.cursor.Col--
	}
}

// CarriageReturn moves the cursor to column 0.
func (t *Terminal) CarriageReturn() {
	if t.middleware != nil && t.middleware.CarriageReturn != nil {
		t.middleware.CarriageReturn(t.carriageReturnInternal)
		return
	}
	t.carriageReturnInternal()
}

func (t *Terminal) carriageReturnInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = 0
}

// LineFeed moves the cursor down one row, scrolling at the region bottom.
func (t *Terminal) LineFeed() {
	if t.middleware != nil && t.middleware.LineFeed != nil {
		t.middleware.LineFeed(t.lineFeedInternal)
		return
	}
	t.lineFeedInternal()
}

func (t *Terminal) lineFeedInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode&ModeLineFeedNewLine != 0 {
		t.cursor.Col = 0
	}
	t.advanceLineLocked()
}

// advanceLineLocked moves the cursor down one row, scrolling at the region
// bottom. The row the cursor lands on stops being a wrap continuation.
func (t *Terminal) advanceLineLocked() {
	if t.cursor.Row == t.scrollBottom-1 {
		t.active.ScrollUp(t.scrollTop, t.scrollBottom, 1, t.blankCell())
	} else if t.cursor.Row < t.active.Rows()-1 {
		t.cursor.Row++
		t.active.SetWrapped(t.cursor.Row, false)
	}
}

// NewLine moves the cursor down one row and to column 0 (NEL).
func (t *Terminal) NewLine() {
	if t.middleware != nil && t.middleware.NewLine != nil {
		t.middleware.NewLine(t.newLineInternal)
		return
	}
	t.newLineInternal()
}

func (t *Terminal) newLineInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = 0
	t.advanceLineLocked()
}

// Substitute writes the replacement character for an aborted sequence (SUB).
func (t *Terminal) Substitute() {
	if t.middleware != nil && t.middleware.Substitute != nil {
		t.middleware.Substitute(t.substituteInternal)
		return
	}
	t.substituteInternal()
}

func (t *Terminal) substituteInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.putCharLocked('�')
}

// Tab moves the cursor forward n tab stops.
func (t *Terminal) Tab(n int) {
	if t.middleware != nil && t.middleware.Tab != nil {
		t.middleware.Tab(n, t.tabInternal)
		return
	}
	t.tabInternal(n)
}

func (t *Terminal) tabInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := 0; i < n; i++ {
		t.cursor.Col = t.active.NextTabStop(t.cursor.Col)
	}
}

// Goto positions the cursor absolutely (0-based). Row is relative to the
// scroll region when origin mode is set.
func (t *Terminal) Goto(row, col int) {
	if t.middleware != nil && t.middleware.Goto != nil {
		t.middleware.Goto(row, col, t.gotoInternal)
		return
	}
	t.gotoInternal(row, col)
}

func (t *Terminal) gotoInternal(row, col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(row, col)
}

func (t *Terminal) gotoLocked(row, col int) {
	t.cursor.Row = t.effectiveRowLocked(row)
	t.cursor.Col = col
	t.clampCursorLocked()
}

// GotoLine positions the cursor row, keeping the column.
func (t *Terminal) GotoLine(row int) {
	if t.middleware != nil && t.middleware.GotoLine != nil {
		t.middleware.GotoLine(row, t.gotoLineInternal)
		return
	}
	t.gotoLineInternal(row)
}

func (t *Terminal) gotoLineInternal(row int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(row, t.cursor.Col)
}

// GotoCol positions the cursor column, keeping the row.
func (t *Terminal) GotoCol(col int) {
	if t.middleware != nil && t.middleware.GotoCol != nil {
		t.middleware.GotoCol(col, t.gotoColInternal)
		return
	}
	t.gotoColInternal(col)
}

func (t *Terminal) gotoColInternal(col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = col
	t.clampCursorLocked()
}

// MoveUp moves the cursor up n rows, stopping at the region top.
func (t *Terminal) MoveUp(n int) {
	if t.middleware != nil && t.middleware.MoveUp != nil {
		t.middleware.MoveUp(n, t.moveUpInternal)
		return
	}
	t.moveUpInternal(n)
}

func (t *Terminal) moveUpInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moveUpLocked(n)
}

func (t *Terminal) moveUpLocked(n int) {
	limit := 0
	if t.cursor.Row >= t.scrollTop {
		limit = t.scrollTop
	}
	t.cursor.Row -= n
	if t.cursor.Row < limit {
		t.cursor.Row = limit
	}
}

// MoveDown moves the cursor down n rows, stopping at the region bottom.
func (t *Terminal) MoveDown(n int) {
	if t.middleware != nil && t.middleware.MoveDown != nil {
		t.middleware.MoveDown(n, t.moveDownInternal)
		return
	}
	t.moveDownInternal(n)
}

func (t *Terminal) moveDownInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moveDownLocked(n)
}

func (t *Terminal) moveDownLocked(n int) {
	limit := t.active.Rows() - 1
	if t.cursor.Row < t.scrollBottom {
		limit = t.scrollBottom - 1
	}
	t.cursor.Row += n
	if t.cursor.Row > limit {
		t.cursor.Row = limit
	}
}

// MoveForward moves the cursor right n columns, stopping at the right margin.
func (t *Terminal) MoveForward(n int) {
	if t.middleware != nil && t.middleware.MoveForward != nil {
		t.middleware.MoveForward(n, t.moveForwardInternal)
		return
	}
	t.moveForwardInternal(n)
}

func (t *Terminal) moveForwardInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col += n
	if t.cursor.Col > t.active.Cols()-1 {
		t.cursor.Col = t.active.Cols() - 1
	}
}

// MoveBackward moves the cursor left n columns, stopping at the left margin.
func (t *Terminal) MoveBackward(n int) {
	if t.middleware != nil && t.middleware.MoveBackward != nil {
		t.middleware.MoveBackward(n, t.moveBackwardInternal)
		return
	}
	t.moveBackwardInternal(n)
}

func (t *Terminal) moveBackwardInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Col > t.active.Cols()-1 {
		t.cursor.Col = t.active.Cols() - 1
	}
	t.cursor.Col -= n
	if t.cursor.Col < 0 {
		t.cursor.Col = 0
	}
}

// MoveUpCr moves the cursor up n rows and to column 0.
func (t *Terminal) MoveUpCr(n int) {
	if t.middleware != nil && t.middleware.MoveUpCr != nil {
		t.middleware.MoveUpCr(n, t.moveUpCrInternal)
		return
	}
	t.moveUpCrInternal(n)
}

func (t *Terminal) moveUpCrInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moveUpLocked(n)
	t.cursor.Col = 0
}

// MoveDownCr moves the cursor down n rows and to column 0.
func (t *Terminal) MoveDownCr(n int) {
	if t.middleware != nil && t.middleware.MoveDownCr != nil {
		t.middleware.MoveDownCr(n, t.moveDownCrInternal)
		return
	}
	t.moveDownCrInternal(n)
}

func (t *Terminal) moveDownCrInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moveDownLocked(n)
	t.cursor.Col = 0
}

// MoveForwardTabs moves the cursor right n tab stops.
func (t *Terminal) MoveForwardTabs(n int) {
	if t.middleware != nil && t.middleware.MoveForwardTabs != nil {
		t.middleware.MoveForwardTabs(n, t.moveForwardTabsInternal)
		return
	}
	t.moveForwardTabsInternal(n)
}

func (t *Terminal) moveForwardTabsInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := 0; i < n; i++ {
		t.cursor.Col = t.active.NextTabStop(t.cursor.Col)
	}
}

// MoveBackwardTabs moves the cursor left n tab stops.
func (t *Terminal) MoveBackwardTabs(n int) {
	if t.middleware != nil && t.middleware.MoveBackwardTabs != nil {
		t.middleware.MoveBackwardTabs(n, t.moveBackwardTabsInternal)
		return
	}
	t.moveBackwardTabsInternal(n)
}

func (t *Terminal) moveBackwardTabsInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := 0; i < n; i++ {
		t.cursor.Col = t.active.PrevTabStop(t.cursor.Col)
	}
}

// ClearLine erases part of the current line. Selective erase skips protected
// cells; plain erase removes everything including protected cells.
func (t *Terminal) ClearLine(mode ansi.LineClearMode, selective bool) {
	if t.middleware != nil && t.middleware.ClearLine != nil {
		t.middleware.ClearLine(mode, selective, t.clearLineInternal)
		return
	}
	t.clearLineInternal(mode, selective)
}

func (t *Terminal) clearLineInternal(mode ansi.LineClearMode, selective bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fill := t.blankCell()
	row := t.cursor.Row
	col := t.cursor.Col
	if col > t.active.Cols()-1 {
		col = t.active.Cols() - 1
	}

	switch mode {
	case ansi.LineClearModeRight:
		t.active.ClearRowRange(row, col, t.active.Cols(), fill, selective)
	case ansi.LineClearModeLeft:
		t.active.ClearRowRange(row, 0, col+1, fill, selective)
	case ansi.LineClearModeAll:
		t.active.ClearRow(row, fill, selective)
	}
}

// ClearScreen erases part of the screen. Selective erase skips protected
// cells. The saved mode clears the scrollback instead of the screen.
func (t *Terminal) ClearScreen(mode ansi.ClearMode, selective bool) {
	if t.middleware != nil && t.middleware.ClearScreen != nil {
		t.middleware.ClearScreen(mode, selective, t.clearScreenInternal)
		return
	}
	t.clearScreenInternal(mode, selective)
}

func (t *Terminal) clearScreenInternal(mode ansi.ClearMode, selective bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fill := t.blankCell()
	row := t.cursor.Row
	col := t.cursor.Col
	if col > t.active.Cols()-1 {
		col = t.active.Cols() - 1
	}

	switch mode {
	case ansi.ClearModeBelow:
		t.active.ClearRowRange(row, col, t.active.Cols(), fill, selective)
		for r := row + 1; r < t.active.Rows(); r++ {
			t.active.ClearRow(r, fill, selective)
		}
	case ansi.ClearModeAbove:
		for r := 0; r < row; r++ {
			t.active.ClearRow(r, fill, selective)
		}
		t.active.ClearRowRange(row, 0, col+1, fill, selective)
	case ansi.ClearModeAll:
		t.active.ClearAll(fill, selective)
	case ansi.ClearModeSaved:
		t.primary.ClearScrollback()
		t.viewportOffset = 0
	}
}

// EraseChars resets n cells at the cursor without shifting (ECH). Protection
// does not apply.
func (t *Terminal) EraseChars(n int) {
	if t.middleware != nil && t.middleware.EraseChars != nil {
		t.middleware.EraseChars(n, t.eraseCharsInternal)
		return
	}
	t.eraseCharsInternal(n)
}

func (t *Terminal) eraseCharsInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ClearRowRange(t.cursor.Row, t.cursor.Col, t.cursor.Col+n, t.blankCell(), false)
}

// InsertBlank inserts n blank cells at the cursor, shifting the rest of the
// line right (ICH). Inserted blanks are never protected.
func (t *Terminal) InsertBlank(n int) {
	if t.middleware != nil && t.middleware.InsertBlank != nil {
		t.middleware.InsertBlank(n, t.insertBlankInternal)
		return
	}
	t.insertBlankInternal(n)
}

func (t *Terminal) insertBlankInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.InsertBlanks(t.cursor.Row, t.cursor.Col, n, t.blankCell())
}

// DeleteChars deletes n cells at the cursor, shifting the rest of the line
// left (DCH). The vacated cells are never protected.
func (t *Terminal) DeleteChars(n int) {
	if t.middleware != nil && t.middleware.DeleteChars != nil {
		t.middleware.DeleteChars(n, t.deleteCharsInternal)
		return
	}
	t.deleteCharsInternal(n)
}

func (t *Terminal) deleteCharsInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.DeleteChars(t.cursor.Row, t.cursor.Col, n, t.blankCell())
}

// InsertBlankLines inserts n blank lines at the cursor row (IL). Ignored
// when the cursor is outside the scroll region. Inserted blanks inherit the
// pen's protection.
func (t *Terminal) InsertBlankLines(n int) {
	if t.middleware != nil && t.middleware.InsertBlankLines != nil {
		t.middleware.InsertBlankLines(n, t.insertBlankLinesInternal)
		return
	}
	t.insertBlankLinesInternal(n)
}

func (t *Terminal) insertBlankLinesInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Row < t.scrollTop || t.cursor.Row >= t.scrollBottom {
		return
	}
	t.active.InsertLines(t.cursor.Row, n, t.scrollBottom, t.protectedBlankCell())
}

// DeleteLines deletes n lines at the cursor row (DL). Ignored when the
// cursor is outside the scroll region. Vacated lines inherit the pen's
// protection and never enter scrollback.
func (t *Terminal) DeleteLines(n int) {
	if t.middleware != nil && t.middleware.DeleteLines != nil {
		t.middleware.DeleteLines(n, t.deleteLinesInternal)
		return
	}
	t.deleteLinesInternal(n)
}

func (t *Terminal) deleteLinesInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Row < t.scrollTop || t.cursor.Row >= t.scrollBottom {
		return
	}
	t.active.DeleteLines(t.cursor.Row, n, t.scrollBottom, t.protectedBlankCell())
}

// ScrollUp scrolls the region up n lines (SU).
func (t *Terminal) ScrollUp(n int) {
	if t.middleware != nil && t.middleware.ScrollUp != nil {
		t.middleware.ScrollUp(n, t.scrollUpInternal)
		return
	}
	t.scrollUpInternal(n)
}

func (t *Terminal) scrollUpInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ScrollUp(t.scrollTop, t.scrollBottom, n, t.blankCell())
}

// ScrollDown scrolls the region down n lines (SD).
func (t *Terminal) ScrollDown(n int) {
	if t.middleware != nil && t.middleware.ScrollDown != nil {
		t.middleware.ScrollDown(n, t.scrollDownInternal)
		return
	}
	t.scrollDownInternal(n)
}

func (t *Terminal) scrollDownInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ScrollDown(t.scrollTop, t.scrollBottom, n, t.blankCell())
}

// SetScrollingRegion sets the scroll region from 1-based margins (DECSTBM).
// A bottom of 0 or less selects the last row. The cursor moves to the home
// position, honoring origin mode.
func (t *Terminal) SetScrollingRegion(top, bottom int) {
	if t.middleware != nil && t.middleware.SetScrollingRegion != nil {
		t.middleware.SetScrollingRegion(top, bottom, t.setScrollingRegionInternal)
		return
	}
	t.setScrollingRegionInternal(top, bottom)
}

func (t *Terminal) setScrollingRegionInternal(top, bottom int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := t.active.Rows()
	if bottom <= 0 || bottom > rows {
		bottom = rows
	}
	if top < 1 {
		top = 1
	}
	if top >= bottom {
		// DECSTBM requires at least two rows between the margins.
		return
	}

	t.scrollTop = top - 1
	t.scrollBottom = bottom
	t.gotoLocked(0, 0)
}

// HorizontalTabSet sets a tab stop at the cursor column (HTS).
func (t *Terminal) HorizontalTabSet() {
	if t.middleware != nil && t.middleware.HorizontalTabSet != nil {
		t.middleware.HorizontalTabSet(t.horizontalTabSetInternal)
		return
	}
	t.horizontalTabSetInternal()
}

func (t *Terminal) horizontalTabSetInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.SetTabStop(t.cursor.Col)
}

// ClearTabs removes tab stops (TBC).
func (t *Terminal) ClearTabs(mode ansi.TabulationClearMode) {
	if t.middleware != nil && t.middleware.ClearTabs != nil {
		t.middleware.ClearTabs(mode, t.clearTabsInternal)
		return
	}
	t.clearTabsInternal(mode)
}

func (t *Terminal) clearTabsInternal(mode ansi.TabulationClearMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch mode {
	case ansi.TabulationClearModeCurrent:
		t.active.ClearTabStop(t.cursor.Col)
	case ansi.TabulationClearModeAll:
		t.active.ClearAllTabStops()
	}
}

// SaveCursorPosition saves cursor position, pen, and charset state (DECSC).
// Each screen keeps its own saved snapshot.
func (t *Terminal) SaveCursorPosition() {
	if t.middleware != nil && t.middleware.SaveCursorPosition != nil {
		t.middleware.SaveCursorPosition(t.saveCursorPositionInternal)
		return
	}
	t.saveCursorPositionInternal()
}

func (t *Terminal) saveCursorPositionInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saveCursorLocked()
}

func (t *Terminal) saveCursorLocked() {
	saved := &SavedCursor{
		Row:          t.cursor.Row,
		Col:          t.cursor.Col,
		Attrs:        t.template,
		OriginMode:   t.mode&ModeOrigin != 0,
		CharsetIndex: t.activeCharset,
		Charsets:     t.charsets,
	}
	if t.active == t.alternate {
		t.altSavedCursor = saved
	} else {
		t.savedCursor = saved
	}
}

// RestoreCursorPosition restores the saved snapshot (DECRC). Without a prior
// save the cursor homes and the pen resets.
func (t *Terminal) RestoreCursorPosition() {
	if t.middleware != nil && t.middleware.RestoreCursorPosition != nil {
		t.middleware.RestoreCursorPosition(t.restoreCursorPositionInternal)
		return
	}
	t.restoreCursorPositionInternal()
}

func (t *Terminal) restoreCursorPositionInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.restoreCursorLocked()
}

func (t *Terminal) restoreCursorLocked() {
	saved := t.savedCursor
	if t.active == t.alternate {
		saved = t.altSavedCursor
	}
	if saved == nil {
		t.cursor.Row, t.cursor.Col = 0, 0
		t.template = NewCellTemplate()
		return
	}

	t.cursor.Row = saved.Row
	t.cursor.Col = saved.Col
	t.template = saved.Attrs
	t.activeCharset = saved.CharsetIndex
	t.charsets = saved.Charsets
	if saved.OriginMode {
		t.mode |= ModeOrigin
	} else {
		t.mode &^= ModeOrigin
	}
	t.clampCursorLocked()
}

// ReverseIndex moves the cursor up one row, scrolling down at the region top (RI).
func (t *Terminal) ReverseIndex() {
	if t.middleware != nil && t.middleware.ReverseIndex != nil {
		t.middleware.ReverseIndex(t.reverseIndexInternal)
		return
	}
	t.reverseIndexInternal()
}

func (t *Terminal) reverseIndexInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Row == t.scrollTop {
		t.active.ScrollDown(t.scrollTop, t.scrollBottom, 1, t.blankCell())
	} else if t.cursor.Row > 0 {
		t.cursor.Row--
	}
}

// SetCursorStyle applies a DECSCUSR shape.
func (t *Terminal) SetCursorStyle(style ansi.CursorStyle) {
	if t.middleware != nil && t.middleware.SetCursorStyle != nil {
		t.middleware.SetCursorStyle(style, t.setCursorStyleInternal)
		return
	}
	t.setCursorStyleInternal(style)
}

func (t *Terminal) setCursorStyleInternal(style ansi.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Style = CursorStyle(style)
}

// modeBit maps a parsed mode to its bit in the terminal mode mask.
func modeBit(mode ansi.TerminalMode) TerminalMode {
	switch mode {
	case ansi.TerminalModeCursorKeys:
		return ModeCursorKeys
	case ansi.TerminalModeColumnMode:
		return ModeColumnMode
	case ansi.TerminalModeInsert:
		return ModeInsert
	case ansi.TerminalModeOrigin:
		return ModeOrigin
	case ansi.TerminalModeLineWrap:
		return ModeLineWrap
	case ansi.TerminalModeBlinkingCursor:
		return ModeBlinkingCursor
	case ansi.TerminalModeLineFeedNewLine:
		return ModeLineFeedNewLine
	case ansi.TerminalModeShowCursor:
		return ModeShowCursor
	case ansi.TerminalModeAlternateScreen:
		return ModeAlternateScreen
	case ansi.TerminalModeReportMouseClicks:
		return ModeReportMouseClicks
	case ansi.TerminalModeReportCellMouseMotion:
		return ModeReportCellMouseMotion
	case ansi.TerminalModeReportAllMouseMotion:
		return ModeReportAllMouseMotion
	case ansi.TerminalModeReportFocusInOut:
		return ModeReportFocusInOut
	case ansi.TerminalModeUTF8Mouse:
		return ModeUTF8Mouse
	case ansi.TerminalModeSGRMouse:
		return ModeSGRMouse
	case ansi.TerminalModeAlternateScroll:
		return ModeAlternateScroll
	case ansi.TerminalModeUrgencyHints:
		return ModeUrgencyHints
	case ansi.TerminalModeSwapScreenAndSetRestoreCursor:
		return ModeSwapScreenAndSetRestoreCursor
	case ansi.TerminalModeBracketedPaste:
		return ModeBracketedPaste
	case ansi.TerminalModeSwapScreen:
		return ModeSwapScreen
	case ansi.TerminalModeSaveRestoreCursor:
		return ModeSaveRestoreCursor
	}
	return ModeNone
}

// SetMode enables a terminal mode (SM / DECSET).
func (t *Terminal) SetMode(mode ansi.TerminalMode) {
	if t.middleware != nil && t.middleware.SetMode != nil {
		t.middleware.SetMode(mode, t.setModeInternal)
		return
	}
	t.setModeInternal(mode)
}

func (t *Terminal) setModeInternal(mode ansi.TerminalMode) {
	bit := modeBit(mode)
	if bit == ModeNone {
		return
	}

	t.mu.Lock()
	t.mode |= bit

	switch bit {
	case ModeShowCursor:
		t.cursor.Visible = true
	case ModeOrigin:
		t.gotoLocked(0, 0)
	case ModeAlternateScreen, ModeSwapScreenAndSetRestoreCursor:
		// Entry clears the alternate screen and homes the cursor. The
		// primary cursor snapshot is restored on the way back out.
		if t.active != t.alternate {
			t.saveCursorLocked()
			t.active = t.alternate
			t.alternate.ClearAll(t.blankCell(), false)
			t.cursor.Row, t.cursor.Col = 0, 0
		}
	case ModeSwapScreen:
		t.active = t.alternate
	case ModeSaveRestoreCursor:
		t.saveCursorLocked()
	}
	t.mu.Unlock()

	t.stateChange.ModeChanged(bit, true)
}

// UnsetMode disables a terminal mode (RM / DECRST).
func (t *Terminal) UnsetMode(mode ansi.TerminalMode) {
	if t.middleware != nil && t.middleware.UnsetMode != nil {
		t.middleware.UnsetMode(mode, t.unsetModeInternal)
		return
	}
	t.unsetModeInternal(mode)
}

func (t *Terminal) unsetModeInternal(mode ansi.TerminalMode) {
	bit := modeBit(mode)
	if bit == ModeNone {
		return
	}

	t.mu.Lock()
	t.mode &^= bit

	switch bit {
	case ModeShowCursor:
		t.cursor.Visible = false
	case ModeOrigin:
		t.gotoLocked(0, 0)
	case ModeAlternateScreen, ModeSwapScreenAndSetRestoreCursor:
		if t.active == t.alternate {
			t.active = t.primary
			t.restoreCursorLocked()
		}
	case ModeSwapScreen:
		if t.active == t.alternate {
			t.alternate.ClearAll(t.blankCell(), false)
			t.active = t.primary
		}
	case ModeSaveRestoreCursor:
		t.restoreCursorLocked()
	}
	t.mu.Unlock()

	t.stateChange.ModeChanged(bit, false)
}

// SetTerminalCharAttribute applies one SGR operation to the pen.
func (t *Terminal) SetTerminalCharAttribute(attr ansi.TerminalCharAttribute) {
	if t.middleware != nil && t.middleware.SetTerminalCharAttribute != nil {
		t.middleware.SetTerminalCharAttribute(attr, t.setTerminalCharAttributeInternal)
		return
	}
	t.setTerminalCharAttributeInternal(attr)
}

const underlineFlags = CellFlagUnderline | CellFlagDoubleUnderline |
	CellFlagCurlyUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline

func (t *Terminal) setTerminalCharAttributeInternal(attr ansi.TerminalCharAttribute) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch attr.Attr {
	case ansi.CharAttributeReset:
		protected := t.template.HasFlag(CellFlagProtected)
		t.template = NewCellTemplate()
		if protected {
			// SGR 0 resets rendition only; DECSCA protection survives.
			t.template.SetFlag(CellFlagProtected)
		}
	case ansi.CharAttributeBold:
		t.template.SetFlag(CellFlagBold)
	case ansi.CharAttributeDim:
		t.template.SetFlag(CellFlagDim)
	case ansi.CharAttributeItalic:
		t.template.SetFlag(CellFlagItalic)
	case ansi.CharAttributeUnderline:
		t.template.ClearFlag(underlineFlags)
		t.template.SetFlag(CellFlagUnderline)
	case ansi.CharAttributeDoubleUnderline:
		t.template.ClearFlag(underlineFlags)
		t.template.SetFlag(CellFlagDoubleUnderline)
	case ansi.CharAttributeCurlyUnderline:
		t.template.ClearFlag(underlineFlags)
		t.template.SetFlag(CellFlagCurlyUnderline)
	case ansi.CharAttributeDottedUnderline:
		t.template.ClearFlag(underlineFlags)
		t.template.SetFlag(CellFlagDottedUnderline)
	case ansi.CharAttributeDashedUnderline:
		t.template.ClearFlag(underlineFlags)
		t.template.SetFlag(CellFlagDashedUnderline)
	case ansi.CharAttributeBlinkSlow:
		t.template.SetFlag(CellFlagBlinkSlow)
	case ansi.CharAttributeBlinkFast:
		t.template.SetFlag(CellFlagBlinkFast)
	case ansi.CharAttributeReverse:
		t.template.SetFlag(CellFlagReverse)
	case ansi.CharAttributeHidden:
		t.template.SetFlag(CellFlagHidden)
	case ansi.CharAttributeStrike:
		t.template.SetFlag(CellFlagStrike)
	case ansi.CharAttributeCancelBold:
		t.template.ClearFlag(CellFlagBold)
	case ansi.CharAttributeCancelBoldDim:
		t.template.ClearFlag(CellFlagBold | CellFlagDim)
	case ansi.CharAttributeCancelItalic:
		t.template.ClearFlag(CellFlagItalic)
	case ansi.CharAttributeCancelUnderline:
		t.template.ClearFlag(underlineFlags)
	case ansi.CharAttributeCancelBlink:
		t.template.ClearFlag(CellFlagBlinkSlow | CellFlagBlinkFast)
	case ansi.CharAttributeCancelReverse:
		t.template.ClearFlag(CellFlagReverse)
	case ansi.CharAttributeCancelHidden:
		t.template.ClearFlag(CellFlagHidden)
	case ansi.CharAttributeCancelStrike:
		t.template.ClearFlag(CellFlagStrike)
	case ansi.CharAttributeForeground:
		t.template.Fg = convertColor(attr.Color, true)
	case ansi.CharAttributeBackground:
		t.template.Bg = convertColor(attr.Color, false)
	case ansi.CharAttributeUnderlineColor:
		t.template.UnderlineColor = convertColor(attr.Color, true)
	case ansi.CharAttributeForegroundDefault:
		t.template.Fg = &NamedColor{Name: NamedColorForeground}
	case ansi.CharAttributeBackgroundDefault:
		t.template.Bg = &NamedColor{Name: NamedColorBackground}
	case ansi.CharAttributeUnderlineColorDefault:
		t.template.UnderlineColor = nil
	}
}

// convertColor maps a parsed SGR color to the cell color representation.
func convertColor(c ansi.Color, fg bool) color.Color {
	switch v := c.(type) {
	case ansi.NamedColor:
		return &NamedColor{Name: int(v)}
	case ansi.IndexedColor:
		return &IndexedColor{Index: int(v)}
	case ansi.RGBColor:
		return color.RGBA{R: v.R, G: v.G, B: v.B, A: 255}
	}
	if fg {
		return &NamedColor{Name: NamedColorForeground}
	}
	return &NamedColor{Name: NamedColorBackground}
}

// SetProtected toggles DECSCA character protection on the pen.
func (t *Terminal) SetProtected(protect bool) {
	if t.middleware != nil && t.middleware.SetProtected != nil {
		t.middleware.SetProtected(protect, t.setProtectedInternal)
		return
	}
	t.setProtectedInternal(protect)
}

func (t *Terminal) setProtectedInternal(protect bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if protect {
		t.template.SetFlag(CellFlagProtected)
	} else {
		t.template.ClearFlag(CellFlagProtected)
	}
}

// SetHyperlink associates subsequently printed cells with a link; nil closes
// the association.
func (t *Terminal) SetHyperlink(h *ansi.Hyperlink) {
	if t.middleware != nil && t.middleware.SetHyperlink != nil {
		t.middleware.SetHyperlink(h, t.setHyperlinkInternal)
		return
	}
	t.setHyperlinkInternal(h)
}

func (t *Terminal) setHyperlinkInternal(h *ansi.Hyperlink) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if h == nil {
		t.hyperlink = nil
		return
	}
	t.hyperlink = &Hyperlink{ID: h.ID, URI: h.URI}
}

// ConfigureCharset designates a charset into a slot.
func (t *Terminal) ConfigureCharset(index ansi.CharsetIndex, charset ansi.Charset) {
	if t.middleware != nil && t.middleware.ConfigureCharset != nil {
		t.middleware.ConfigureCharset(index, charset, t.configureCharsetInternal)
		return
	}
	t.configureCharsetInternal(index, charset)
}

func (t *Terminal) configureCharsetInternal(index ansi.CharsetIndex, charset ansi.Charset) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || int(index) >= len(t.charsets) {
		return
	}
	t.charsets[index] = Charset(charset)
}

// SetActiveCharset selects the active charset slot (SI/SO).
func (t *Terminal) SetActiveCharset(n int) {
	if t.middleware != nil && t.middleware.SetActiveCharset != nil {
		t.middleware.SetActiveCharset(n, t.setActiveCharsetInternal)
		return
	}
	t.setActiveCharsetInternal(n)
}

func (t *Terminal) setActiveCharsetInternal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 0 || n >= len(t.charsets) {
		return
	}
	t.activeCharset = n
}

// Decaln fills the screen with 'E' (DECALN alignment pattern).
func (t *Terminal) Decaln() {
	if t.middleware != nil && t.middleware.Decaln != nil {
		t.middleware.Decaln(t.decalnInternal)
		return
	}
	t.decalnInternal()
}

func (t *Terminal) decalnInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.FillWithE()
}

// ResetState performs a hard reset (RIS): both screens are cleared, the
// cursor homes, the pen and all modes return to defaults. Scrollback history
// is kept.
func (t *Terminal) ResetState() {
	if t.middleware != nil && t.middleware.ResetState != nil {
		t.middleware.ResetState(t.resetStateInternal)
		return
	}
	t.resetStateInternal()
}

func (t *Terminal) resetStateInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := t.primary.Rows()
	cols := t.primary.Cols()
	storage := t.primary.ScrollbackProvider()

	t.primary = NewBufferWithStorage(rows, cols, storage)
	t.alternate = NewBuffer(rows, cols)
	t.active = t.primary
	t.cursor = *NewCursor()
	t.savedCursor = nil
	t.altSavedCursor = nil
	t.template = NewCellTemplate()
	t.charsets = [4]Charset{}
	t.activeCharset = 0
	t.mode = ModeShowCursor | ModeLineWrap
	t.scrollTop = 0
	t.scrollBottom = rows
	t.title = ""
	t.titleStack = nil
	t.hyperlink = nil
	t.workingDirectory = ""
	t.palette = DefaultPalette
	t.appKeypad = false
	t.viewportOffset = 0
	t.selection = nil
}

// SetKeypadApplicationMode enables application keypad mode (DECKPAM).
func (t *Terminal) SetKeypadApplicationMode() {
	if t.middleware != nil && t.middleware.SetKeypadApplicationMode != nil {
		t.middleware.SetKeypadApplicationMode(t.setKeypadApplicationModeInternal)
		return
	}
	t.setKeypadApplicationModeInternal()
}

func (t *Terminal) setKeypadApplicationModeInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.appKeypad = true
}

// UnsetKeypadApplicationMode restores numeric keypad mode (DECKPNM).
func (t *Terminal) UnsetKeypadApplicationMode() {
	if t.middleware != nil && t.middleware.UnsetKeypadApplicationMode != nil {
		t.middleware.UnsetKeypadApplicationMode(t.unsetKeypadApplicationModeInternal)
		return
	}
	t.unsetKeypadApplicationModeInternal()
}

func (t *Terminal) unsetKeypadApplicationModeInternal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.appKeypad = false
}

// DeviceStatus answers a DSR query. 5 reports operating status, 6 the cursor
// position (relative to the scroll region under origin mode).
func (t *Terminal) DeviceStatus(n int) {
	if t.middleware != nil && t.middleware.DeviceStatus != nil {
		t.middleware.DeviceStatus(n, t.deviceStatusInternal)
		return
	}
	t.deviceStatusInternal(n)
}

func (t *Terminal) deviceStatusInternal(n int) {
	switch n {
	case 5:
		t.writeResponse("\x1b[0n")
	case 6:
		t.mu.RLock()
		row := t.cursor.Row
		if t.mode&ModeOrigin != 0 {
			row -= t.scrollTop
		}
		col := t.cursorColLocked()
		t.mu.RUnlock()
		t.writeResponse(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1))
	}
}

// IdentifyTerminal answers a device attributes query. The primary answer
// declares VT220 compatibility.
func (t *Terminal) IdentifyTerminal(intermediate byte) {
	if t.middleware != nil && t.middleware.IdentifyTerminal != nil {
		t.middleware.IdentifyTerminal(intermediate, t.identifyTerminalInternal)
		return
	}
	t.identifyTerminalInternal(intermediate)
}

func (t *Terminal) identifyTerminalInternal(intermediate byte) {
	switch intermediate {
	case '>':
		t.writeResponse("\x1b[>0;276;0c")
	default:
		t.writeResponse("\x1b[?62c")
	}
}

// ReportTextAreaPixels answers a window size query (CSI 14 t) in pixels.
func (t *Terminal) ReportTextAreaPixels() {
	if t.middleware != nil && t.middleware.ReportTextAreaPixels != nil {
		t.middleware.ReportTextAreaPixels(t.reportTextAreaPixelsInternal)
		return
	}
	t.reportTextAreaPixelsInternal()
}

func (t *Terminal) reportTextAreaPixelsInternal() {
	t.mu.RLock()
	rows := t.active.Rows()
	cols := t.active.Cols()
	t.mu.RUnlock()

	cellW, cellH := t.size.CellSizePixels()
	t.writeResponse(fmt.Sprintf("\x1b[4;%d;%dt", rows*cellH, cols*cellW))
}

// ReportTextAreaChars answers a window size query (CSI 18 t) in characters.
func (t *Terminal) ReportTextAreaChars() {
	if t.middleware != nil && t.middleware.ReportTextAreaChars != nil {
		t.middleware.ReportTextAreaChars(t.reportTextAreaCharsInternal)
		return
	}
	t.reportTextAreaCharsInternal()
}

func (t *Terminal) reportTextAreaCharsInternal() {
	t.mu.RLock()
	rows := t.active.Rows()
	cols := t.active.Cols()
	t.mu.RUnlock()

	t.writeResponse(fmt.Sprintf("\x1b[8;%d;%dt", rows, cols))
}

// SetTitle changes the window title (OSC 0/2).
func (t *Terminal) SetTitle(title string) {
	if t.middleware != nil && t.middleware.SetTitle != nil {
		t.middleware.SetTitle(title, t.setTitleInternal)
		return
	}
	t.setTitleInternal(title)
}

func (t *Terminal) setTitleInternal(title string) {
	t.mu.Lock()
	t.title = title
	t.mu.Unlock()
	t.titleProv.SetTitle(title)
}

// PushTitle saves the current title onto the title stack (XTWINOPS 22).
func (t *Terminal) PushTitle() {
	if t.middleware != nil && t.middleware.PushTitle != nil {
		t.middleware.PushTitle(t.pushTitleInternal)
		return
	}
	t.pushTitleInternal()
}

func (t *Terminal) pushTitleInternal() {
	t.mu.Lock()
	t.titleStack = append(t.titleStack, t.title)
	t.mu.Unlock()
	t.titleProv.PushTitle()
}

// PopTitle restores the most recently pushed title (XTWINOPS 23).
func (t *Terminal) PopTitle() {
	if t.middleware != nil && t.middleware.PopTitle != nil {
		t.middleware.PopTitle(t.popTitleInternal)
		return
	}
	t.popTitleInternal()
}

func (t *Terminal) popTitleInternal() {
	t.mu.Lock()
	var restored string
	restore := false
	if n := len(t.titleStack); n > 0 {
		restored = t.titleStack[n-1]
		t.titleStack = t.titleStack[:n-1]
		t.title = restored
		restore = true
	}
	t.mu.Unlock()

	t.titleProv.PopTitle()
	if restore {
		t.titleProv.SetTitle(restored)
	}
}

// SetWorkingDirectory records the working directory reported via OSC 7.
func (t *Terminal) SetWorkingDirectory(uri string) {
	if t.middleware != nil && t.middleware.SetWorkingDirectory != nil {
		t.middleware.SetWorkingDirectory(uri, t.setWorkingDirectoryInternal)
		return
	}
	t.setWorkingDirectoryInternal(uri)
}

func (t *Terminal) setWorkingDirectoryInternal(uri string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.workingDirectory = uri
}

// SetColor stores a palette override (OSC 4).
func (t *Terminal) SetColor(index int, r, g, b uint8) {
	if t.middleware != nil && t.middleware.SetColor != nil {
		t.middleware.SetColor(index, r, g, b, t.setColorInternal)
		return
	}
	t.setColorInternal(index, r, g, b)
}

func (t *Terminal) setColorInternal(index int, r, g, b uint8) {
	if index < 0 || index > 255 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.palette[index] = color.RGBA{R: r, G: g, B: b, A: 255}
}

// ResetColor restores the default color for a palette index (OSC 104).
func (t *Terminal) ResetColor(index int) {
	if t.middleware != nil && t.middleware.ResetColor != nil {
		t.middleware.ResetColor(index, t.resetColorInternal)
		return
	}
	t.resetColorInternal(index)
}

func (t *Terminal) resetColorInternal(index int) {
	if index < 0 || index > 255 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.palette[index] = DefaultPalette[index]
}

// SetDynamicColor answers an OSC 10/11/12 color query with the current
// default foreground, background, or cursor color.
func (t *Terminal) SetDynamicColor(prefix string, index int, terminator string) {
	if t.middleware != nil && t.middleware.SetDynamicColor != nil {
		t.middleware.SetDynamicColor(prefix, index, terminator, t.setDynamicColorInternal)
		return
	}
	t.setDynamicColorInternal(prefix, index, terminator)
}

func (t *Terminal) setDynamicColorInternal(prefix string, index int, terminator string) {
	var c color.RGBA
	switch index {
	case NamedColorForeground:
		c = DefaultForeground
	case NamedColorBackground:
		c = DefaultBackground
	case NamedColorCursor:
		c = DefaultCursorColor
	default:
		return
	}
	t.writeResponse(fmt.Sprintf("\x1b]%s;rgb:%02x/%02x/%02x%s", prefix, c.R, c.G, c.B, terminator))
}

// ClipboardStore writes data to a clipboard via the provider (OSC 52 set).
func (t *Terminal) ClipboardStore(clipboard byte, data []byte) {
	if t.middleware != nil && t.middleware.ClipboardStore != nil {
		t.middleware.ClipboardStore(clipboard, data, t.clipboardStoreInternal)
		return
	}
	t.clipboardStoreInternal(clipboard, data)
}

func (t *Terminal) clipboardStoreInternal(clipboard byte, data []byte) {
	_ = t.clipboard.Write(clipboard, data)
}

// ClipboardLoad answers an OSC 52 query with the clipboard contents,
// base64-encoded.
func (t *Terminal) ClipboardLoad(clipboard byte, terminator string) {
	if t.middleware != nil && t.middleware.ClipboardLoad != nil {
		t.middleware.ClipboardLoad(clipboard, terminator, t.clipboardLoadInternal)
		return
	}
	t.clipboardLoadInternal(clipboard, terminator)
}

func (t *Terminal) clipboardLoadInternal(clipboard byte, terminator string) {
	data, err := t.clipboard.Read(clipboard)
	if err != nil {
		return
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	t.writeResponse(fmt.Sprintf("\x1b]52;%c;%s%s", clipboard, encoded, terminator))
}

// DeviceControlReceived delivers a complete DCS string to the provider.
func (t *Terminal) DeviceControlReceived(params []int, intermediates []byte, final byte, payload []byte) {
	if t.middleware != nil && t.middleware.DeviceControlReceived != nil {
		t.middleware.DeviceControlReceived(params, intermediates, final, payload, t.deviceControlReceivedInternal)
		return
	}
	t.deviceControlReceivedInternal(params, intermediates, final, payload)
}

func (t *Terminal) deviceControlReceivedInternal(params []int, intermediates []byte, final byte, payload []byte) {
	t.deviceControl.Receive(params, intermediates, final, payload)
}

// ApplicationCommandReceived delivers a complete APC string to the provider.
func (t *Terminal) ApplicationCommandReceived(data []byte) {
	if t.middleware != nil && t.middleware.ApplicationCommandReceived != nil {
		t.middleware.ApplicationCommandReceived(data, t.applicationCommandReceivedInternal)
		return
	}
	t.applicationCommandReceivedInternal(data)
}

func (t *Terminal) applicationCommandReceivedInternal(data []byte) {
	t.apc.Receive(data)
}

// PrivacyMessageReceived delivers a complete PM string to the provider.
func (t *Terminal) PrivacyMessageReceived(data []byte) {
	if t.middleware != nil && t.middleware.PrivacyMessageReceived != nil {
		t.middleware.PrivacyMessageReceived(data, t.privacyMessageReceivedInternal)
		return
	}
	t.privacyMessageReceivedInternal(data)
}

func (t *Terminal) privacyMessageReceivedInternal(data []byte) {
	t.pm.Receive(data)
}

// StartOfStringReceived delivers a complete SOS string to the provider.
func (t *Terminal) StartOfStringReceived(data []byte) {
	if t.middleware != nil && t.middleware.StartOfStringReceived != nil {
		t.middleware.StartOfStringReceived(data, t.startOfStringReceivedInternal)
		return
	}
	t.startOfStringReceivedInternal(data)
}

func (t *Terminal) startOfStringReceivedInternal(data []byte) {
	t.sos.Receive(data)
}
