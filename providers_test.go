package vtcore

import (
	"bytes"
	"testing"
)

func TestMemoryScrollbackTrimsToCap(t *testing.T) {
	sb := NewMemoryScrollback(3)

	for i := 0; i < 5; i++ {
		line := []Cell{{Char: rune('0' + i)}}
		sb.Push(line)
	}

	if sb.Len() != 3 {
		t.Fatalf("expected 3 lines retained, got %d", sb.Len())
	}
	if sb.Line(0)[0].Char != '2' {
		t.Errorf("expected oldest retained line '2', got '%c'", sb.Line(0)[0].Char)
	}
	if sb.Line(2)[0].Char != '4' {
		t.Errorf("expected newest line '4', got '%c'", sb.Line(2)[0].Char)
	}
}

func TestMemoryScrollbackCopiesLines(t *testing.T) {
	sb := NewMemoryScrollback(10)

	line := []Cell{{Char: 'A'}}
	sb.Push(line)
	line[0].Char = 'B'

	if sb.Line(0)[0].Char != 'A' {
		t.Error("expected pushed line to be copied")
	}
}

func TestMemoryScrollbackShrinkCap(t *testing.T) {
	sb := NewMemoryScrollback(10)

	for i := 0; i < 5; i++ {
		sb.Push([]Cell{{Char: rune('0' + i)}})
	}

	sb.SetMaxLines(2)
	if sb.Len() != 2 {
		t.Errorf("expected trim to 2 lines, got %d", sb.Len())
	}

	sb.SetMaxLines(0)
	if sb.Len() != 0 {
		t.Errorf("expected cap 0 to clear, got %d lines", sb.Len())
	}
}

type testBell struct {
	rings int
}

func (b *testBell) Ring() {
	b.rings++
}

func TestBellProvider(t *testing.T) {
	bell := &testBell{}
	term := New(WithSize(5, 20), WithBell(bell))

	term.WriteString("a\x07b\x07")

	if bell.rings != 2 {
		t.Errorf("expected 2 rings, got %d", bell.rings)
	}
}

type testTitle struct {
	titles []string
	pushes int
	pops   int
}

func (p *testTitle) SetTitle(title string) { p.titles = append(p.titles, title) }
func (p *testTitle) PushTitle()            { p.pushes++ }
func (p *testTitle) PopTitle()             { p.pops++ }

func TestTitleStack(t *testing.T) {
	provider := &testTitle{}
	term := New(WithSize(5, 20), WithTitle(provider))

	term.WriteString("\x1b]2;first\x07")
	term.WriteString("\x1b[22t") // push
	term.WriteString("\x1b]2;second\x07")
	term.WriteString("\x1b[23t") // pop

	if term.Title() != "first" {
		t.Errorf("expected 'first' after pop, got %q", term.Title())
	}
	if provider.pushes != 1 || provider.pops != 1 {
		t.Errorf("expected 1 push and 1 pop, got %d/%d", provider.pushes, provider.pops)
	}
}

func TestTitlePopFromEmptyStack(t *testing.T) {
	term := New(WithSize(5, 20))

	term.WriteString("\x1b]2;only\x07")
	term.WriteString("\x1b[23t") // pop with nothing pushed

	if term.Title() != "only" {
		t.Errorf("expected title unchanged, got %q", term.Title())
	}
}

type testResizeProvider struct {
	rows, cols int
	calls      int
}

func (p *testResizeProvider) Resized(rows, cols int) {
	p.rows, p.cols = rows, cols
	p.calls++
}

func TestResizeProviderNotified(t *testing.T) {
	provider := &testResizeProvider{}
	term := New(WithSize(5, 20), WithResizeProvider(provider))

	if err := term.Resize(10, 40); err != nil {
		t.Fatalf("unexpected resize error: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("expected 1 resize notification, got %d", provider.calls)
	}
	if provider.rows != 10 || provider.cols != 40 {
		t.Errorf("expected notification 10x40, got %dx%d", provider.rows, provider.cols)
	}
}

type testStateChange struct {
	modes   []TerminalMode
	enabled []bool
}

func (p *testStateChange) ModeChanged(mode TerminalMode, enabled bool) {
	p.modes = append(p.modes, mode)
	p.enabled = append(p.enabled, enabled)
}

func TestStateChangeProviderNotified(t *testing.T) {
	provider := &testStateChange{}
	term := New(WithSize(5, 20), WithStateChange(provider))

	term.WriteString("\x1b[?2004h")
	term.WriteString("\x1b[?2004l")

	if len(provider.modes) != 2 {
		t.Fatalf("expected 2 mode notifications, got %d", len(provider.modes))
	}
	if provider.modes[0] != ModeBracketedPaste || !provider.enabled[0] {
		t.Error("expected bracketed paste enable notification")
	}
	if provider.modes[1] != ModeBracketedPaste || provider.enabled[1] {
		t.Error("expected bracketed paste disable notification")
	}
}

type testDeviceControl struct {
	params        []int
	intermediates []byte
	final         byte
	payload       []byte
	calls         int
}

func (p *testDeviceControl) Receive(params []int, intermediates []byte, final byte, payload []byte) {
	p.params = append([]int(nil), params...)
	p.intermediates = append([]byte(nil), intermediates...)
	p.final = final
	p.payload = append([]byte(nil), payload...)
	p.calls++
}

func TestDeviceControlProvider(t *testing.T) {
	provider := &testDeviceControl{}
	term := New(WithSize(5, 20), WithDeviceControl(provider))

	term.WriteString("\x1bP1;2qhello\x1b\\")

	if provider.calls != 1 {
		t.Fatalf("expected 1 DCS delivery, got %d", provider.calls)
	}
	if provider.final != 'q' {
		t.Errorf("expected final 'q', got '%c'", provider.final)
	}
	if len(provider.params) != 2 || provider.params[0] != 1 || provider.params[1] != 2 {
		t.Errorf("expected params [1 2], got %v", provider.params)
	}
	if string(provider.payload) != "hello" {
		t.Errorf("expected payload 'hello', got %q", string(provider.payload))
	}
}

type testStringSink struct {
	data []byte
}

func (s *testStringSink) Receive(data []byte) {
	s.data = append(s.data, data...)
}

func TestAPCProvider(t *testing.T) {
	sink := &testStringSink{}
	term := New(WithSize(5, 20), WithAPC(sink))

	term.WriteString("\x1b_payload\x1b\\")

	if string(sink.data) != "payload" {
		t.Errorf("expected APC payload, got %q", string(sink.data))
	}
}

func TestPMProvider(t *testing.T) {
	sink := &testStringSink{}
	term := New(WithSize(5, 20), WithPM(sink))

	term.WriteString("\x1b^private\x1b\\")

	if string(sink.data) != "private" {
		t.Errorf("expected PM payload, got %q", string(sink.data))
	}
}

func TestSOSProvider(t *testing.T) {
	sink := &testStringSink{}
	term := New(WithSize(5, 20), WithSOS(sink))

	term.WriteString("\x1bXstart\x1b\\")

	if string(sink.data) != "start" {
		t.Errorf("expected SOS payload, got %q", string(sink.data))
	}
}

type testSizeProvider struct{}

func (testSizeProvider) WindowSizePixels() (int, int) { return 640, 480 }
func (testSizeProvider) CellSizePixels() (int, int)   { return 8, 16 }

func TestWindowSizeReports(t *testing.T) {
	var responses bytes.Buffer
	term := New(
		WithSize(24, 80),
		WithResponse(&responses),
		WithSizeProvider(testSizeProvider{}),
	)

	term.WriteString("\x1b[14t")
	if got := responses.String(); got != "\x1b[4;384;640t" {
		t.Errorf("expected pixel report, got %q", got)
	}

	responses.Reset()
	term.WriteString("\x1b[18t")
	if got := responses.String(); got != "\x1b[8;24;80t" {
		t.Errorf("expected character report, got %q", got)
	}
}

func TestDeviceAttributes(t *testing.T) {
	var responses bytes.Buffer
	term := New(WithSize(24, 80), WithResponse(&responses))

	term.WriteString("\x1b[c")
	if got := responses.String(); got != "\x1b[?62c" {
		t.Errorf("expected primary DA response, got %q", got)
	}

	responses.Reset()
	term.WriteString("\x1b[>c")
	if got := responses.String(); got != "\x1b[>0;276;0c" {
		t.Errorf("expected secondary DA response, got %q", got)
	}
}

func TestCursorPositionReportOriginRelative(t *testing.T) {
	var responses bytes.Buffer
	term := New(WithSize(10, 40), WithResponse(&responses))

	term.WriteString("\x1b[3;8r\x1b[?6h") // region + origin mode
	term.WriteString("\x1b[2;4H")         // region-relative (2,4)
	term.WriteString("\x1b[6n")

	if got := responses.String(); got != "\x1b[2;4R" {
		t.Errorf("expected origin-relative CPR, got %q", got)
	}
}
