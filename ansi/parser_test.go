package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect feeds input and copies out every completed command.
func collect(input string) []Command {
	p := NewParser()
	var out []Command
	for i := 0; i < len(input); i++ {
		cmd, ok := p.Next(input[i])
		if !ok {
			continue
		}
		cmd.Params = append([]uint16(nil), cmd.Params...)
		cmd.Colon = append([]bool(nil), cmd.Colon...)
		cmd.Intermediates = append([]byte(nil), cmd.Intermediates...)
		cmd.Payload = append([]byte(nil), cmd.Payload...)
		out = append(out, cmd)
	}
	return out
}

func TestParserCSIParams(t *testing.T) {
	cmds := collect("\x1b[1;22;333m")
	require.Len(t, cmds, 1)
	assert.Equal(t, CommandCSI, cmds[0].Kind)
	assert.Equal(t, byte('m'), cmds[0].Final)
	assert.Equal(t, []uint16{1, 22, 333}, cmds[0].Params)
}

func TestParserCSINoParams(t *testing.T) {
	cmds := collect("\x1b[m")
	require.Len(t, cmds, 1)
	assert.Empty(t, cmds[0].Params)
}

func TestParserCSIPrivateMarker(t *testing.T) {
	cmds := collect("\x1b[?1049h")
	require.Len(t, cmds, 1)
	assert.Equal(t, byte('?'), cmds[0].Private())
	assert.Equal(t, []uint16{1049}, cmds[0].Params)
}

func TestParserCSIColonSeparators(t *testing.T) {
	cmds := collect("\x1b[38:2:255:0:0m")
	require.Len(t, cmds, 1)
	assert.Equal(t, []uint16{38, 2, 255, 0, 0}, cmds[0].Params)
	assert.Equal(t, []bool{true, true, true, true, false}, cmds[0].Colon)
}

func TestParserCSIMixedSeparators(t *testing.T) {
	cmds := collect("\x1b[4:3;38;5;196m")
	require.Len(t, cmds, 1)
	assert.Equal(t, []uint16{4, 3, 38, 5, 196}, cmds[0].Params)
	assert.Equal(t, []bool{true, false, false, false, false}, cmds[0].Colon)
}

func TestParserParamOverflowClamps(t *testing.T) {
	cmds := collect("\x1b[99999999999999H")
	require.Len(t, cmds, 1)
	assert.Equal(t, []uint16{0xFFFF}, cmds[0].Params)
}

func TestParserExcessParamsDropped(t *testing.T) {
	input := "\x1b["
	for i := 0; i < 100; i++ {
		input += "1;"
	}
	input += "m"
	cmds := collect(input)
	require.Len(t, cmds, 1)
	assert.Len(t, cmds[0].Params, MaxParams)
}

func TestParserCSIIntermediate(t *testing.T) {
	cmds := collect("\x1b[2 q")
	require.Len(t, cmds, 1)
	assert.Equal(t, byte(' '), cmds[0].Intermediate())
	assert.Equal(t, byte('q'), cmds[0].Final)
}

func TestParserESC(t *testing.T) {
	cmds := collect("\x1bM")
	require.Len(t, cmds, 1)
	assert.Equal(t, CommandESC, cmds[0].Kind)
	assert.Equal(t, byte('M'), cmds[0].Final)
}

func TestParserESCIntermediate(t *testing.T) {
	cmds := collect("\x1b#8")
	require.Len(t, cmds, 1)
	assert.Equal(t, byte('#'), cmds[0].Intermediate())
	assert.Equal(t, byte('8'), cmds[0].Final)
}

func TestParserOSCTerminators(t *testing.T) {
	bel := collect("\x1b]0;x\x07")
	require.Len(t, bel, 1)
	assert.Equal(t, "\a", bel[0].Terminator)
	assert.Equal(t, "0;x", string(bel[0].Payload))

	st := collect("\x1b]0;x\x1b\\")
	require.Len(t, st, 2) // the OSC plus the ESC dispatch of '\'
	assert.Equal(t, CommandOSC, st[0].Kind)
	assert.Equal(t, "\x1b\\", st[0].Terminator)
	assert.Equal(t, "0;x", string(st[0].Payload))
}

func TestParserOSCAbortedByCancel(t *testing.T) {
	cmds := collect("\x1b]0;junk\x18")
	require.Len(t, cmds, 1)
	assert.Equal(t, CommandExecute, cmds[0].Kind)
	assert.Equal(t, byte(0x18), cmds[0].Byte)
}

func TestParserOSCHighBytesArePayload(t *testing.T) {
	cmds := collect("\x1b]0;t\xc3\xaftle\x07")
	require.Len(t, cmds, 1)
	assert.Equal(t, "0;t\xc3\xaftle", string(cmds[0].Payload))
}

func TestParserDCS(t *testing.T) {
	cmds := collect("\x1bP$qm\x1b\\")
	require.Len(t, cmds, 2)
	assert.Equal(t, CommandDCS, cmds[0].Kind)
	assert.Equal(t, byte('q'), cmds[0].Final)
	assert.Equal(t, []byte{'$'}, cmds[0].Intermediates)
	assert.Equal(t, "m", string(cmds[0].Payload))
}

func TestParserStringKinds(t *testing.T) {
	for _, tc := range []struct {
		input string
		kind  StringCommandKind
	}{
		{"\x1b_a\x1b\\", StringCommandAPC},
		{"\x1b^b\x1b\\", StringCommandPM},
		{"\x1bXc\x1b\\", StringCommandSOS},
	} {
		cmds := collect(tc.input)
		require.Len(t, cmds, 2, tc.input)
		assert.Equal(t, CommandString, cmds[0].Kind)
		assert.Equal(t, tc.kind, cmds[0].StringKind)
	}
}

func TestParserC0DuringCSI(t *testing.T) {
	// ECMA-48 allows C0 controls inside a control sequence; they execute
	// without disturbing it.
	cmds := collect("\x1b[1\x0a2H")
	require.Len(t, cmds, 2)
	assert.Equal(t, CommandExecute, cmds[0].Kind)
	assert.Equal(t, byte(0x0A), cmds[0].Byte)
	assert.Equal(t, CommandCSI, cmds[1].Kind)
	assert.Equal(t, []uint16{12}, cmds[1].Params)
}

func TestParserStateAfterMalformed(t *testing.T) {
	p := NewParser()
	for _, b := range []byte("\x1b[1?x") {
		p.Next(b)
	}
	assert.Equal(t, StateGround, p.State())
}
