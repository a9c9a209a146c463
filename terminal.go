package vtcore

import (
	"errors"
	"image/color"
	"net/url"
	"strings"
	"sync"

	"github.com/glyphcast/vtcore/ansi"
)

// TerminalMode is a bitmask of active terminal modes set via SM/RM and
// their DEC private counterparts.
type TerminalMode uint32

const (
	// ModeNone is the empty mode set.
	ModeNone TerminalMode = 0

	// ModeCursorKeys switches cursor keys to application mode (DECCKM, ?1).
	ModeCursorKeys TerminalMode = 1 << iota
	// ModeColumnMode selects 132-column mode (DECCOLM, ?3). Tracked only.
	ModeColumnMode
	// ModeOrigin makes cursor addressing relative to the scroll region (DECOM, ?6).
	ModeOrigin
	// ModeLineWrap enables auto-wrap at the right margin (DECAWM, ?7).
	ModeLineWrap
	// ModeBlinkingCursor enables cursor blink (?12). Tracked only.
	ModeBlinkingCursor
	// ModeShowCursor makes the cursor visible (DECTCEM, ?25).
	ModeShowCursor
	// ModeAlternateScreen is set while the alternate screen buffer is active
	// via ?47 (plain swap, no cursor save or clear).
	ModeAlternateScreen
	// ModeReportMouseClicks enables click reporting (?1000). Tracked only.
	ModeReportMouseClicks
	// ModeReportCellMouseMotion enables drag reporting (?1002). Tracked only.
	ModeReportCellMouseMotion
	// ModeReportAllMouseMotion enables motion reporting (?1003). Tracked only.
	ModeReportAllMouseMotion
	// ModeReportFocusInOut enables focus event reporting (?1004). Tracked only.
	ModeReportFocusInOut
	// ModeUTF8Mouse selects UTF-8 mouse encoding (?1005). Tracked only.
	ModeUTF8Mouse
	// ModeSGRMouse selects SGR mouse encoding (?1006). Tracked only.
	ModeSGRMouse
	// ModeAlternateScroll maps wheel events to arrows on the alternate
	// screen (?1007). Tracked only.
	ModeAlternateScroll
	// ModeUrgencyHints raises window urgency on bell (?1042). Tracked only.
	ModeUrgencyHints
	// ModeSwapScreenAndSetRestoreCursor is set while the alternate screen is
	// active via ?1049 (cursor saved and screen cleared on entry).
	ModeSwapScreenAndSetRestoreCursor
	// ModeBracketedPaste brackets pasted text with control sequences (?2004).
	// Tracked only.
	ModeBracketedPaste
	// ModeInsert shifts existing characters right on input (IRM, mode 4).
	ModeInsert
	// ModeLineFeedNewLine makes LF also perform a carriage return (LNM, mode 20).
	ModeLineFeedNewLine
	// ModeSwapScreen is set while the alternate screen is active via ?1047
	// (alternate contents are cleared when it is left).
	ModeSwapScreen
	// ModeSaveRestoreCursor mirrors ?1048: setting it saves the cursor,
	// resetting it restores the saved snapshot.
	ModeSaveRestoreCursor
)

// Default terminal dimensions used when WithSize is not given.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// ErrInvalidSize is returned by Resize when the requested dimensions are
// smaller than one row by one column.
var ErrInvalidSize = errors.New("vtcore: terminal size must be at least 1x1")

// Selection marks a region of the grid between two positions in reading
// order.
type Selection struct {
	Start Position
	End   Position
}

// Terminal is a headless terminal emulator. It consumes a raw byte stream
// via Write, interprets escape sequences, and maintains the resulting screen
// state: grids, cursor, modes, colors, scrollback, and title.
//
// All exported methods are safe for concurrent use.
type Terminal struct {
	mu sync.RWMutex

	primary   *Buffer
	alternate *Buffer
	active    *Buffer

	cursor          Cursor
	savedCursor     *SavedCursor
	altSavedCursor  *SavedCursor
	template        CellTemplate
	charsets        [4]Charset
	activeCharset   int
	mode            TerminalMode
	scrollTop       int // inclusive
	scrollBottom    int // exclusive
	title           string
	titleStack      []string
	hyperlink       *Hyperlink
	workingDirectory string
	palette          [256]color.RGBA
	appKeypad        bool
	viewportOffset   int
	selection        *Selection

	decoder *ansi.Decoder

	response      ResponseProvider
	bell          BellProvider
	titleProv     TitleProvider
	apc           APCProvider
	pm            PMProvider
	sos           SOSProvider
	deviceControl DeviceControlProvider
	clipboard     ClipboardProvider
	recording     RecordingProvider
	size          SizeProvider
	resize        ResizeProvider
	stateChange   StateChangeProvider

	middleware *Middleware
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the initial grid dimensions. Values below 1x1 are ignored.
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		if rows >= 1 && cols >= 1 {
			t.primary = NewBufferWithStorage(rows, cols, t.primary.ScrollbackProvider())
			t.alternate = NewBuffer(rows, cols)
			t.active = t.primary
			t.scrollBottom = rows
		}
	}
}

// WithResponse sets the provider that receives query responses.
func WithResponse(p ResponseProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.response = p
		}
	}
}

// WithBell sets the provider notified on BEL.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.bell = p
		}
	}
}

// WithTitle sets the provider notified on window title changes.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.titleProv = p
		}
	}
}

// WithAPC sets the provider that receives APC payloads.
func WithAPC(p APCProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.apc = p
		}
	}
}

// WithPM sets the provider that receives PM payloads.
func WithPM(p PMProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.pm = p
		}
	}
}

// WithSOS sets the provider that receives SOS payloads.
func WithSOS(p SOSProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.sos = p
		}
	}
}

// WithDeviceControl sets the provider that receives uninterpreted DCS sequences.
func WithDeviceControl(p DeviceControlProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.deviceControl = p
		}
	}
}

// WithClipboard sets the provider backing OSC 52 clipboard access.
func WithClipboard(p ClipboardProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.clipboard = p
		}
	}
}

// WithScrollback enables in-memory scrollback with the given line cap.
func WithScrollback(maxLines int) Option {
	return func(t *Terminal) {
		t.primary.SetScrollbackProvider(NewMemoryScrollback(maxLines))
	}
}

// WithScrollbackProvider sets custom scrollback storage for the primary screen.
func WithScrollbackProvider(p ScrollbackProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.primary.SetScrollbackProvider(p)
		}
	}
}

// WithRecording sets the provider that captures the raw input stream.
func WithRecording(p RecordingProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.recording = p
		}
	}
}

// WithSizeProvider sets the provider answering pixel size queries.
func WithSizeProvider(p SizeProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.size = p
		}
	}
}

// WithResizeProvider sets the provider notified after grid resizes.
func WithResizeProvider(p ResizeProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.resize = p
		}
	}
}

// WithStateChange sets the provider notified on mode changes.
func WithStateChange(p StateChangeProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.stateChange = p
		}
	}
}

// WithMiddleware installs interception hooks for handler operations.
func WithMiddleware(m *Middleware) Option {
	return func(t *Terminal) {
		t.middleware = m
	}
}

// New creates a terminal with the given options. Defaults: 24x80 grid,
// cursor visible, auto-wrap on, no scrollback, all providers no-ops.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		primary:       NewBuffer(DefaultRows, DefaultCols),
		alternate:     NewBuffer(DefaultRows, DefaultCols),
		cursor:        *NewCursor(),
		template:      NewCellTemplate(),
		mode:          ModeShowCursor | ModeLineWrap,
		scrollTop:     0,
		scrollBottom:  DefaultRows,
		response:      NoopResponse{},
		bell:          NoopBell{},
		titleProv:     NoopTitle{},
		apc:           NoopAPC{},
		pm:            NoopPM{},
		sos:           NoopSOS{},
		deviceControl: NoopDeviceControl{},
		clipboard:     NoopClipboard{},
		recording:     NoopRecording{},
		size:          NoopSizeProvider{},
		resize:        NoopResize{},
		stateChange:   NoopStateChange{},
	}
	t.active = t.primary
	t.palette = DefaultPalette

	for _, opt := range opts {
		opt(t)
	}

	t.decoder = ansi.NewDecoder(t)
	return t
}

// Write feeds raw bytes into the terminal. It always consumes the full
// slice and never fails; malformed sequences are discarded by the parser.
// Escape sequences split across Write calls are handled transparently.
func (t *Terminal) Write(p []byte) (int, error) {
	t.recording.Record(p)
	return t.decoder.Write(p)
}

// WriteString feeds a string into the terminal.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Resize changes the grid dimensions of both screens. Content is preserved
// at the top-left. If the cursor would fall below the new bottom edge,
// lines are first scrolled into scrollback to keep it on screen. Returns
// ErrInvalidSize for dimensions below 1x1.
func (t *Terminal) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidSize
	}

	t.mu.Lock()
	if t.cursor.Row >= rows {
		overflow := t.cursor.Row - rows + 1
		t.primary.ScrollUp(0, t.primary.Rows(), overflow, t.blankCell())
		t.cursor.Row -= overflow
	}

	t.primary.Resize(rows, cols)
	t.alternate.Resize(rows, cols)
	t.scrollTop = 0
	t.scrollBottom = rows
	t.clampCursorLocked()
	t.mu.Unlock()

	t.resize.Resized(rows, cols)
	return nil
}

// Rows returns the grid height.
func (t *Terminal) Rows() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.Rows()
}

// Cols returns the grid width.
func (t *Terminal) Cols() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.Cols()
}

// Cursor returns a copy of the cursor state. The column is always within
// the grid even while a wrap is pending.
func (t *Terminal) Cursor() Cursor {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := t.cursor
	c.Col = t.cursorColLocked()
	return c
}

// cursorColLocked clamps the cursor column to the grid. After a print into
// the last column the internal column sits one past the edge until the
// deferred wrap resolves, and that state never leaks to readers. Lock held.
func (t *Terminal) cursorColLocked() int {
	if c := t.active.Cols(); t.cursor.Col >= c {
		return c - 1
	}
	return t.cursor.Col
}

// Cell returns a copy of the cell at (row, col) on the active screen.
// Returns a zero cell for out-of-range coordinates.
func (t *Terminal) Cell(row, col int) Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := t.active.Cell(row, col)
	if c == nil {
		return Cell{}
	}
	return *c
}

// Mode returns the current mode bitmask.
func (t *Terminal) Mode() TerminalMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

// IsModeSet reports whether every bit of mode is set.
func (t *Terminal) IsModeSet(mode TerminalMode) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode&mode == mode
}

// Title returns the current window title.
func (t *Terminal) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

// IsAlternateScreen reports whether the alternate screen is active.
func (t *Terminal) IsAlternateScreen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active == t.alternate
}

// ScrollRegion returns the active scroll region as a half-open row range
// [top, bottom).
func (t *Terminal) ScrollRegion() (top, bottom int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrollTop, t.scrollBottom
}

// Hyperlink returns the hyperlink applied to subsequently printed text, or
// nil when none is open.
func (t *Terminal) Hyperlink() *Hyperlink {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hyperlink
}

// PaletteColor returns the current color for a palette index, taking OSC 4
// overrides into account. Out-of-range indexes return black.
func (t *Terminal) PaletteColor(index int) color.RGBA {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index < 0 || index > 255 {
		return color.RGBA{A: 0xFF}
	}
	return t.palette[index]
}

// WorkingDirectory returns the URI most recently reported via OSC 7, or the
// empty string when none was reported.
func (t *Terminal) WorkingDirectory() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.workingDirectory
}

// WorkingDirectoryPath converts the OSC 7 URI into a filesystem path.
// Returns the empty string when no directory was reported or the URI does
// not use the file scheme.
func (t *Terminal) WorkingDirectoryPath() string {
	t.mu.RLock()
	uri := t.workingDirectory
	t.mu.RUnlock()

	if uri == "" {
		return ""
	}
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return ""
	}
	return u.Path
}

// IsKeypadApplicationMode reports whether DECKPAM is active.
func (t *Terminal) IsKeypadApplicationMode() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.appKeypad
}

// LineContent returns the text of a grid row with trailing blanks trimmed.
func (t *Terminal) LineContent(row int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.LineContent(row)
}

// Line returns a copy of the cells of a grid row, or nil if out of bounds.
func (t *Terminal) Line(row int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.Line(row)
}

// IsWrapped reports whether the row continues a line that overflowed the
// right margin.
func (t *Terminal) IsWrapped(row int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.IsWrapped(row)
}

// String renders the visible screen as text, one line per row, trimming
// trailing blank lines.
func (t *Terminal) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lines := make([]string, t.active.Rows())
	last := -1
	for row := 0; row < t.active.Rows(); row++ {
		lines[row] = t.active.LineContent(row)
		if lines[row] != "" {
			last = row
		}
	}
	return strings.Join(lines[:last+1], "\n")
}

// ScrollbackLen returns the number of lines held in scrollback.
func (t *Terminal) ScrollbackLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.primary.ScrollbackLen()
}

// ScrollbackLine returns the scrollback line at index, 0 being the oldest.
func (t *Terminal) ScrollbackLine(index int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.primary.ScrollbackLine(index)
}

// ClearScrollback discards all scrollback lines and resets the viewport.
func (t *Terminal) ClearScrollback() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.primary.ClearScrollback()
	t.viewportOffset = 0
}

// SetMaxScrollback changes the scrollback retention cap.
func (t *Terminal) SetMaxScrollback(max int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.primary.SetMaxScrollback(max)
}

// SetViewportOffset scrolls the viewport back into history. An offset of 0
// shows the live screen; an offset of n shows the screen as if scrolled up
// by n history lines. The offset is clamped to [0, ScrollbackLen].
func (t *Terminal) SetViewportOffset(offset int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if offset < 0 {
		offset = 0
	}
	if max := t.primary.ScrollbackLen(); offset > max {
		offset = max
	}
	t.viewportOffset = offset
}

// ViewportOffset returns the current viewport offset into scrollback.
func (t *Terminal) ViewportOffset() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewportOffset
}

// ViewportLine returns a copy of the cells of a viewport row, taking the
// viewport offset into account. Row 0 is the top of the viewport: with a
// nonzero offset it comes from scrollback, otherwise from the grid.
// Returns nil for out-of-range rows.
func (t *Terminal) ViewportLine(row int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if row < 0 || row >= t.active.Rows() {
		return nil
	}
	if t.active != t.primary || t.viewportOffset == 0 {
		return t.active.Line(row)
	}

	sbLen := t.primary.ScrollbackLen()
	idx := sbLen - t.viewportOffset + row
	if idx < sbLen {
		src := t.primary.ScrollbackLine(idx)
		line := make([]Cell, len(src))
		copy(line, src)
		return line
	}
	return t.primary.Line(idx - sbLen)
}

// HasDirty reports whether any cell changed since the last ClearDirty.
func (t *Terminal) HasDirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.HasDirty()
}

// DirtyCells returns the positions of all cells changed since the last
// ClearDirty.
func (t *Terminal) DirtyCells() []Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.DirtyCells()
}

// ClearDirty resets dirty tracking on the active screen.
func (t *Terminal) ClearDirty() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ClearAllDirty()
}

// SetSelection marks a region of the grid. Start and end are normalized to
// reading order. Out-of-range positions are clamped to the grid.
func (t *Terminal) SetSelection(start, end Position) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start = t.clampPositionLocked(start)
	end = t.clampPositionLocked(end)
	if end.Before(start) {
		start, end = end, start
	}
	t.selection = &Selection{Start: start, End: end}
}

// ClearSelection removes the selection.
func (t *Terminal) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection = nil
}

// GetSelection returns the current selection, or nil when none is set.
func (t *Terminal) GetSelection() *Selection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.selection == nil {
		return nil
	}
	s := *t.selection
	return &s
}

// GetSelectedText extracts the selected text, joining rows with newlines.
// Wrap continuations are joined without a newline.
func (t *Terminal) GetSelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.selection == nil {
		return ""
	}

	var sb strings.Builder
	start, end := t.selection.Start, t.selection.End
	for row := start.Row; row <= end.Row; row++ {
		from, to := 0, t.active.Cols()
		if row == start.Row {
			from = start.Col
		}
		if row == end.Row {
			to = end.Col + 1
		}

		sb.WriteString(t.rowTextLocked(row, from, to))
		if row < end.Row && !t.active.IsWrapped(row+1) {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// rowTextLocked extracts trimmed text from a column range of a row.
func (t *Terminal) rowTextLocked(row, from, to int) string {
	var runes []rune
	for col := from; col < to && col < t.active.Cols(); col++ {
		cell := t.active.Cell(row, col)
		if cell == nil || cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, cell.Char)
		}
	}
	return strings.TrimRight(string(runes), " ")
}

// Search returns the starting positions of all occurrences of text on the
// visible screen.
func (t *Terminal) Search(text string) []Position {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if text == "" {
		return nil
	}

	var results []Position
	for row := 0; row < t.active.Rows(); row++ {
		content := t.active.LineContent(row)
		offset := 0
		for {
			idx := strings.Index(content[offset:], text)
			if idx < 0 {
				break
			}
			results = append(results, Position{Row: row, Col: offset + idx})
			offset += idx + 1
		}
	}
	return results
}

// SearchScrollback returns match positions in the scrollback history.
// Row values are negative: -1 is the newest history line, -ScrollbackLen
// the oldest.
func (t *Terminal) SearchScrollback(text string) []Position {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if text == "" {
		return nil
	}

	sbLen := t.primary.ScrollbackLen()
	var results []Position
	for i := 0; i < sbLen; i++ {
		content := scrollbackLineContent(t.primary.ScrollbackLine(i))
		offset := 0
		for {
			idx := strings.Index(content[offset:], text)
			if idx < 0 {
				break
			}
			results = append(results, Position{Row: i - sbLen, Col: offset + idx})
			offset += idx + 1
		}
	}
	return results
}

func scrollbackLineContent(line []Cell) string {
	runes := make([]rune, 0, len(line))
	for i := range line {
		if line[i].IsWideSpacer() {
			continue
		}
		if line[i].Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, line[i].Char)
		}
	}
	return strings.TrimRight(string(runes), " ")
}

// SetResponseProvider replaces the response provider.
func (t *Terminal) SetResponseProvider(p ResponseProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p != nil {
		t.response = p
	}
}

// SetBellProvider replaces the bell provider.
func (t *Terminal) SetBellProvider(p BellProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p != nil {
		t.bell = p
	}
}

// SetTitleProvider replaces the title provider.
func (t *Terminal) SetTitleProvider(p TitleProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p != nil {
		t.titleProv = p
	}
}

// SetClipboardProvider replaces the clipboard provider.
func (t *Terminal) SetClipboardProvider(p ClipboardProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p != nil {
		t.clipboard = p
	}
}

// SetDeviceControlProvider replaces the device control provider.
func (t *Terminal) SetDeviceControlProvider(p DeviceControlProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p != nil {
		t.deviceControl = p
	}
}

// writeResponse sends bytes to the response provider.
func (t *Terminal) writeResponse(s string) {
	_, _ = t.response.Write([]byte(s))
}

// blankCell builds the fill cell for erase operations: default character
// with the pen's colors and no attributes or protection (background color
// erase). Lock held.
func (t *Terminal) blankCell() Cell {
	cell := NewCell()
	cell.Fg = t.template.Fg
	cell.Bg = t.template.Bg
	return cell
}

// protectedBlankCell is blankCell plus the pen's protection bit. Line
// insert and delete blanks inherit protection; character insert and delete
// blanks do not.
func (t *Terminal) protectedBlankCell() Cell {
	cell := t.blankCell()
	if t.template.HasFlag(CellFlagProtected) {
		cell.SetFlag(CellFlagProtected)
	}
	return cell
}

// clampPositionLocked clamps a position into the grid. Lock held.
func (t *Terminal) clampPositionLocked(p Position) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= t.active.Rows() {
		p.Row = t.active.Rows() - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col >= t.active.Cols() {
		p.Col = t.active.Cols() - 1
	}
	return p
}

// clampCursorLocked keeps the cursor inside the grid. Lock held.
func (t *Terminal) clampCursorLocked() {
	if t.cursor.Row < 0 {
		t.cursor.Row = 0
	}
	if t.cursor.Row >= t.active.Rows() {
		t.cursor.Row = t.active.Rows() - 1
	}
	if t.cursor.Col < 0 {
		t.cursor.Col = 0
	}
	if t.cursor.Col >= t.active.Cols() {
		t.cursor.Col = t.active.Cols() - 1
	}
}

// effectiveRowLocked maps a requested 0-based row to an absolute row,
// honoring origin mode. Lock held.
func (t *Terminal) effectiveRowLocked(row int) int {
	if t.mode&ModeOrigin != 0 {
		row += t.scrollTop
		if row >= t.scrollBottom {
			row = t.scrollBottom - 1
		}
	}
	return row
}
