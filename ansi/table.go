package ansi

// The state transition table for VT emulation, following the DEC ANSI
// parser described at https://vt100.net/emu/dec_ansi_parser with two
// deliberate deviations:
//
//   - ':' is accepted as a parameter separator everywhere ';' is, matching
//     the tolerance real emitters require for SGR sub-parameters.
//   - Bytes >= 0x80 are never interpreted as 8-bit C1 controls. The stream
//     is UTF-8: printable bytes are decoded before they reach the parser,
//     and high bytes inside OSC/DCS/control strings are payload.

type transition struct {
	state  State
	action action
}

var transitions = buildTable()

type transitionTable [256][stateCount]transition

func (t *transitionTable) addOne(b byte, from, to State, a action) {
	t[b][from] = transition{state: to, action: a}
}

func (t *transitionTable) addRange(lo, hi byte, from, to State, a action) {
	for b := int(lo); b <= int(hi); b++ {
		t.addOne(byte(b), from, to, a)
	}
}

// addC0 wires the interior C0 bytes (everything below 0x20 except ESC,
// CAN, and SUB, which the anywhere rules own) to a single action.
func (t *transitionTable) addC0(from, to State, a action) {
	t.addRange(0x00, 0x17, from, to, a)
	t.addOne(0x19, from, to, a)
	t.addRange(0x1C, 0x1F, from, to, a)
}

func buildTable() *transitionTable {
	t := &transitionTable{}

	// ground
	{
		s := StateGround
		t.addC0(s, s, actionExecute)
		t.addRange(0x20, 0x7E, s, s, actionPrint)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionPrint)
	}

	// escape
	{
		s := StateEscape
		t.addC0(s, s, actionExecute)
		t.addRange(0x20, 0x2F, s, StateEscapeIntermediate, actionCollect)
		t.addRange(0x30, 0x4F, s, StateGround, actionESCDispatch)
		t.addOne(0x50, s, StateDCSEntry, actionNone)
		t.addRange(0x51, 0x57, s, StateGround, actionESCDispatch)
		t.addOne(0x58, s, StateSosPmApcString, actionNone)
		t.addOne(0x59, s, StateGround, actionESCDispatch)
		t.addOne(0x5A, s, StateGround, actionESCDispatch)
		t.addOne(0x5B, s, StateCSIEntry, actionNone)
		t.addOne(0x5C, s, StateGround, actionESCDispatch)
		t.addOne(0x5D, s, StateOSCString, actionNone)
		t.addOne(0x5E, s, StateSosPmApcString, actionNone)
		t.addOne(0x5F, s, StateSosPmApcString, actionNone)
		t.addRange(0x60, 0x7E, s, StateGround, actionESCDispatch)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// escapeIntermediate
	{
		s := StateEscapeIntermediate
		t.addC0(s, s, actionExecute)
		t.addRange(0x20, 0x2F, s, s, actionCollect)
		t.addRange(0x30, 0x7E, s, StateGround, actionESCDispatch)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// csiEntry
	{
		s := StateCSIEntry
		t.addC0(s, s, actionExecute)
		t.addRange(0x20, 0x2F, s, StateCSIIntermediate, actionCollect)
		t.addRange(0x30, 0x3B, s, StateCSIParam, actionParam)
		t.addRange(0x3C, 0x3F, s, StateCSIParam, actionCollect)
		t.addRange(0x40, 0x7E, s, StateGround, actionCSIDispatch)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// csiParam
	{
		s := StateCSIParam
		t.addC0(s, s, actionExecute)
		t.addRange(0x20, 0x2F, s, StateCSIIntermediate, actionCollect)
		t.addRange(0x30, 0x3B, s, s, actionParam)
		t.addRange(0x3C, 0x3F, s, StateCSIIgnore, actionNone)
		t.addRange(0x40, 0x7E, s, StateGround, actionCSIDispatch)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// csiIntermediate
	{
		s := StateCSIIntermediate
		t.addC0(s, s, actionExecute)
		t.addRange(0x20, 0x2F, s, s, actionCollect)
		t.addRange(0x30, 0x3F, s, StateCSIIgnore, actionNone)
		t.addRange(0x40, 0x7E, s, StateGround, actionCSIDispatch)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// csiIgnore swallows a malformed sequence through its final byte.
	{
		s := StateCSIIgnore
		t.addC0(s, s, actionExecute)
		t.addRange(0x20, 0x3F, s, s, actionIgnore)
		t.addRange(0x40, 0x7E, s, StateGround, actionIgnore)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// dcsEntry
	{
		s := StateDCSEntry
		t.addC0(s, s, actionIgnore)
		t.addRange(0x20, 0x2F, s, StateDCSIntermediate, actionCollect)
		t.addRange(0x30, 0x39, s, StateDCSParam, actionParam)
		t.addOne(0x3A, s, StateDCSIgnore, actionNone)
		t.addOne(0x3B, s, StateDCSParam, actionParam)
		t.addRange(0x3C, 0x3F, s, StateDCSParam, actionCollect)
		t.addRange(0x40, 0x7E, s, StateDCSPassthrough, actionNone)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// dcsParam
	{
		s := StateDCSParam
		t.addC0(s, s, actionIgnore)
		t.addRange(0x20, 0x2F, s, StateDCSIntermediate, actionCollect)
		t.addRange(0x30, 0x39, s, s, actionParam)
		t.addOne(0x3A, s, StateDCSIgnore, actionNone)
		t.addOne(0x3B, s, s, actionParam)
		t.addRange(0x3C, 0x3F, s, StateDCSIgnore, actionNone)
		t.addRange(0x40, 0x7E, s, StateDCSPassthrough, actionNone)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// dcsIntermediate
	{
		s := StateDCSIntermediate
		t.addC0(s, s, actionIgnore)
		t.addRange(0x20, 0x2F, s, s, actionCollect)
		t.addRange(0x30, 0x3F, s, StateDCSIgnore, actionNone)
		t.addRange(0x40, 0x7E, s, StateDCSPassthrough, actionNone)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionIgnore)
	}

	// dcsPassthrough collects the payload until ST.
	{
		s := StateDCSPassthrough
		t.addC0(s, s, actionDCSPut)
		t.addRange(0x20, 0x7E, s, s, actionDCSPut)
		t.addOne(0x7F, s, s, actionIgnore)
		t.addRange(0x80, 0xFF, s, s, actionDCSPut)
	}

	// dcsIgnore
	{
		s := StateDCSIgnore
		t.addC0(s, s, actionIgnore)
		t.addRange(0x20, 0xFF, s, s, actionIgnore)
	}

	// oscString terminates on BEL as well as ST.
	{
		s := StateOSCString
		t.addC0(s, s, actionIgnore)
		t.addOne(0x07, s, StateGround, actionOSCEnd)
		t.addRange(0x20, 0x7F, s, s, actionOSCPut)
		t.addRange(0x80, 0xFF, s, s, actionOSCPut)
	}

	// sosPmApcString
	{
		s := StateSosPmApcString
		t.addC0(s, s, actionIgnore)
		t.addRange(0x20, 0x7F, s, s, actionStrPut)
		t.addRange(0x80, 0xFF, s, s, actionStrPut)
	}

	// Anywhere rules override everything above: ESC begins a new sequence
	// from any state, CAN and SUB abort to ground.
	for s := State(0); s < stateCount; s++ {
		t.addOne(0x1B, s, StateEscape, actionNone)
		t.addOne(0x18, s, StateGround, actionExecute)
		t.addOne(0x1A, s, StateGround, actionExecute)
	}

	return t
}
