package vtcore

import "io"

// ResponseProvider receives bytes the terminal generates in answer to queries
// (device status reports, cursor position reports, identification). In a real
// setup this is the write side of the pty.
type ResponseProvider = io.Writer

// NoopResponse discards all response bytes.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) {
	return len(p), nil
}

// BellProvider is notified when the terminal receives BEL.
type BellProvider interface {
	Ring()
}

// NoopBell ignores bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider receives window title changes and title stack operations.
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle ignores title operations.
type NoopTitle struct{}

func (NoopTitle) SetTitle(string) {}
func (NoopTitle) PushTitle()      {}
func (NoopTitle) PopTitle()       {}

// APCProvider receives Application Program Command payloads.
type APCProvider interface {
	Receive(data []byte)
}

// NoopAPC ignores APC payloads.
type NoopAPC struct{}

func (NoopAPC) Receive([]byte) {}

// PMProvider receives Privacy Message payloads.
type PMProvider interface {
	Receive(data []byte)
}

// NoopPM ignores PM payloads.
type NoopPM struct{}

func (NoopPM) Receive([]byte) {}

// SOSProvider receives Start Of String payloads.
type SOSProvider interface {
	Receive(data []byte)
}

// NoopSOS ignores SOS payloads.
type NoopSOS struct{}

func (NoopSOS) Receive([]byte) {}

// DeviceControlProvider receives DCS sequences the terminal itself does not
// interpret, with the parsed header and the raw payload between the final
// byte and the string terminator.
type DeviceControlProvider interface {
	Receive(params []int, intermediates []byte, final byte, payload []byte)
}

// NoopDeviceControl ignores DCS sequences.
type NoopDeviceControl struct{}

func (NoopDeviceControl) Receive([]int, []byte, byte, []byte) {}

// ClipboardProvider reads and writes the system clipboard on behalf of
// OSC 52 requests. The clipboard byte selects the target ('c', 'p', 's', ...).
type ClipboardProvider interface {
	Read(clipboard byte) ([]byte, error)
	Write(clipboard byte, data []byte) error
}

// NoopClipboard reads empty and discards writes.
type NoopClipboard struct{}

func (NoopClipboard) Read(byte) ([]byte, error) {
	return nil, nil
}

func (NoopClipboard) Write(byte, []byte) error {
	return nil
}

// ScrollbackProvider stores lines scrolled off the top of the primary screen.
// Implementations own the retention policy; the terminal only pushes and reads.
type ScrollbackProvider interface {
	// Push stores a line. The provider must copy it; the caller may reuse the slice.
	Push(line []Cell)
	// Len returns the number of stored lines.
	Len() int
	// Line returns the line at index, where 0 is the oldest. Nil if out of range.
	Line(index int) []Cell
	// Clear removes all stored lines.
	Clear()
	// SetMaxLines caps retention. 0 disables scrollback entirely.
	SetMaxLines(max int)
	// MaxLines returns the current cap.
	MaxLines() int
}

// NoopScrollback disables scrollback: Push drops lines, Len is always 0.
type NoopScrollback struct{}

func (NoopScrollback) Push([]Cell)     {}
func (NoopScrollback) Len() int        { return 0 }
func (NoopScrollback) Line(int) []Cell { return nil }
func (NoopScrollback) Clear()          {}
func (NoopScrollback) SetMaxLines(int) {}
func (NoopScrollback) MaxLines() int   { return 0 }

// MemoryScrollback keeps scrollback lines in memory with FIFO eviction once
// the cap is reached.
type MemoryScrollback struct {
	lines    [][]Cell
	maxLines int
}

// NewMemoryScrollback creates in-memory scrollback storage with the given cap.
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{maxLines: maxLines}
}

func (m *MemoryScrollback) Push(line []Cell) {
	if m.maxLines <= 0 {
		return
	}
	stored := make([]Cell, len(line))
	copy(stored, line)
	m.lines = append(m.lines, stored)
	if len(m.lines) > m.maxLines {
		m.lines = m.lines[len(m.lines)-m.maxLines:]
	}
}

func (m *MemoryScrollback) Len() int {
	return len(m.lines)
}

func (m *MemoryScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(m.lines) {
		return nil
	}
	return m.lines[index]
}

func (m *MemoryScrollback) Clear() {
	m.lines = nil
}

func (m *MemoryScrollback) SetMaxLines(max int) {
	m.maxLines = max
	if max <= 0 {
		m.lines = nil
		return
	}
	if len(m.lines) > max {
		m.lines = m.lines[len(m.lines)-max:]
	}
}

func (m *MemoryScrollback) MaxLines() int {
	return m.maxLines
}

// RecordingProvider captures the raw byte stream written to the terminal,
// before any parsing. Useful for session replay and debugging.
type RecordingProvider interface {
	Record(data []byte)
}

// NoopRecording discards the stream.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}

// MemoryRecording accumulates the raw stream in memory.
type MemoryRecording struct {
	data []byte
}

// NewMemoryRecording creates an in-memory stream recorder.
func NewMemoryRecording() *MemoryRecording {
	return &MemoryRecording{}
}

func (m *MemoryRecording) Record(data []byte) {
	m.data = append(m.data, data...)
}

// Bytes returns everything recorded so far.
func (m *MemoryRecording) Bytes() []byte {
	return m.data
}

// Reset discards the recording.
func (m *MemoryRecording) Reset() {
	m.data = nil
}

// SizeProvider reports the physical dimensions used to answer window size
// queries (XTWINOPS 14) and to convert between cells and pixels.
type SizeProvider interface {
	WindowSizePixels() (width, height int)
	CellSizePixels() (width, height int)
}

// NoopSizeProvider reports a fixed 800x600 window with 10x20 cells.
type NoopSizeProvider struct{}

func (NoopSizeProvider) WindowSizePixels() (int, int) {
	return 800, 600
}

func (NoopSizeProvider) CellSizePixels() (int, int) {
	return 10, 20
}

// ResizeProvider is notified after the terminal grid changes dimensions.
type ResizeProvider interface {
	Resized(rows, cols int)
}

// NoopResize ignores resize notifications.
type NoopResize struct{}

func (NoopResize) Resized(int, int) {}

// StateChangeProvider is notified when a terminal mode is set or reset.
// The mode value carries the single bit that changed.
type StateChangeProvider interface {
	ModeChanged(mode TerminalMode, enabled bool)
}

// NoopStateChange ignores mode changes.
type NoopStateChange struct{}

func (NoopStateChange) ModeChanged(TerminalMode, bool) {}

var (
	_ ResponseProvider      = NoopResponse{}
	_ BellProvider          = NoopBell{}
	_ TitleProvider         = NoopTitle{}
	_ APCProvider           = NoopAPC{}
	_ PMProvider            = NoopPM{}
	_ SOSProvider           = NoopSOS{}
	_ DeviceControlProvider = NoopDeviceControl{}
	_ ClipboardProvider     = NoopClipboard{}
	_ ScrollbackProvider    = NoopScrollback{}
	_ ScrollbackProvider    = (*MemoryScrollback)(nil)
	_ RecordingProvider     = NoopRecording{}
	_ RecordingProvider     = (*MemoryRecording)(nil)
	_ SizeProvider          = NoopSizeProvider{}
	_ ResizeProvider        = NoopResize{}
	_ StateChangeProvider   = NoopStateChange{}
)
