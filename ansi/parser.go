package ansi

const (
	// MaxParams is the most CSI/DCS parameters kept; extras are dropped.
	MaxParams = 32
	// MaxIntermediates is the most intermediate bytes kept.
	MaxIntermediates = 2
	// maxStringBytes bounds OSC/DCS/control-string payload accumulation so a
	// stream that never terminates a string cannot grow memory unboundedly.
	maxStringBytes = 64 * 1024
)

// CommandKind tags a Command emitted by the parser.
type CommandKind int

const (
	// CommandPrint is a printable byte in the ground state.
	CommandPrint CommandKind = iota
	// CommandExecute is a C0 control byte.
	CommandExecute
	// CommandCSI is a completed control sequence.
	CommandCSI
	// CommandESC is a completed non-CSI escape sequence.
	CommandESC
	// CommandOSC is a completed operating system command string.
	CommandOSC
	// CommandDCS is a completed device control string.
	CommandDCS
	// CommandString is a completed SOS, PM, or APC string.
	CommandString
)

// Command is one completed token from the byte stream. Slice fields alias
// the parser's internal buffers and are valid only until the next byte is
// fed; callers that keep them must copy.
type Command struct {
	Kind CommandKind

	// Byte is the print or execute byte.
	Byte byte

	// CSI / ESC / DCS structure.
	Params        []uint16
	Colon         []bool // Colon[i]: the separator after Params[i] was ':'
	Intermediates []byte
	Final         byte

	// OSC / DCS / control-string payload.
	Payload []byte

	// Terminator is the byte sequence that ended an OSC ("\a" or ESC \),
	// echoed back in query responses.
	Terminator string

	// StringKind distinguishes SOS, PM, and APC payloads.
	StringKind StringCommandKind
}

// Private returns the private-marker byte of a CSI ('?', '>', '<', '='),
// or 0 when the sequence has none.
func (c *Command) Private() byte {
	for _, b := range c.Intermediates {
		if b >= 0x3C && b <= 0x3F {
			return b
		}
	}
	return 0
}

// Intermediate returns the first true intermediate byte (0x20-0x2F), or 0.
func (c *Command) Intermediate() byte {
	for _, b := range c.Intermediates {
		if b >= 0x20 && b <= 0x2F {
			return b
		}
	}
	return 0
}

// Param returns Params[i], or def when the parameter is absent.
func (c *Command) Param(i, def int) int {
	if i < 0 || i >= len(c.Params) {
		return def
	}
	return int(c.Params[i])
}

// ParamOr returns Params[i], treating both absence and 0 as def. Most CSI
// parameters default this way (ECMA-48: an empty or zero value means the
// sequence default).
func (c *Command) ParamOr(i, def int) int {
	v := c.Param(i, def)
	if v == 0 {
		return def
	}
	return v
}

// Parser is the byte-level state machine. It holds all in-progress
// accumulation internally, so feeding one byte at a time across arbitrarily
// fragmented writes is indistinguishable from feeding the whole stream at
// once. Created once per terminal and never reset except by the explicit
// cancel bytes (CAN, SUB) or a new ESC.
type Parser struct {
	state State

	params    [MaxParams]uint16
	colon     [MaxParams]bool
	numParams int
	acc       uint32
	accDigits int

	intermediates    [MaxIntermediates]byte
	numIntermediates int

	osc []byte
	str []byte

	strKind StringCommandKind

	dcsParams        []uint16
	dcsIntermediates []byte
	dcsFinal         byte
	dcsPayload       []byte
}

// NewParser creates a parser in the ground state.
func NewParser() *Parser {
	return &Parser{state: StateGround}
}

// State returns the current machine state.
func (p *Parser) State() State {
	return p.state
}

// Next feeds one byte and returns the completed Command, if this byte
// finished one. Malformed sequences complete nothing: they are swallowed
// and the machine returns to ground.
func (p *Parser) Next(b byte) (Command, bool) {
	tr := transitions[b][p.state]
	prev := p.state
	next := tr.state

	var cmd Command
	var ok bool

	// A string state left by ESC is a string terminated by ST; any other
	// exit (CAN, SUB) aborts without emitting.
	if prev != next && b == 0x1B {
		switch prev {
		case StateOSCString:
			cmd, ok = p.oscCommand("\x1b\\"), true
		case StateDCSPassthrough:
			cmd, ok = p.dcsCommand(), true
		case StateSosPmApcString:
			cmd, ok = p.strCommand(), true
		}
	}

	switch tr.action {
	case actionPrint:
		cmd, ok = Command{Kind: CommandPrint, Byte: b}, true
	case actionExecute:
		cmd, ok = Command{Kind: CommandExecute, Byte: b}, true
	case actionCollect:
		p.collect(b)
	case actionParam:
		p.param(b)
	case actionESCDispatch:
		cmd, ok = p.escCommand(b), true
	case actionCSIDispatch:
		cmd, ok = p.csiCommand(b), true
	case actionOSCPut:
		p.put(&p.osc, b)
	case actionOSCEnd:
		cmd, ok = p.oscCommand("\a"), true
	case actionDCSPut:
		p.put(&p.dcsPayload, b)
	case actionStrPut:
		p.put(&p.str, b)
	}

	if prev != next {
		switch next {
		case StateEscape, StateCSIEntry, StateDCSEntry:
			p.clear()
		case StateOSCString:
			p.osc = p.osc[:0]
		case StateSosPmApcString:
			p.str = p.str[:0]
			switch b {
			case 'X':
				p.strKind = StringCommandSOS
			case '^':
				p.strKind = StringCommandPM
			case '_':
				p.strKind = StringCommandAPC
			}
		case StateDCSPassthrough:
			p.hook(b)
		}
	}

	p.state = next
	return cmd, ok
}

// clear resets sequence accumulation when a new escape begins.
func (p *Parser) clear() {
	p.numParams = 0
	p.acc = 0
	p.accDigits = 0
	p.numIntermediates = 0
	for i := range p.colon {
		p.colon[i] = false
	}
}

func (p *Parser) collect(b byte) {
	if p.numIntermediates >= MaxIntermediates {
		return
	}
	p.intermediates[p.numIntermediates] = b
	p.numIntermediates++
}

func (p *Parser) param(b byte) {
	if b == ';' || b == ':' {
		if p.numParams >= MaxParams {
			return
		}
		p.params[p.numParams] = clampParam(p.acc)
		p.colon[p.numParams] = b == ':'
		p.numParams++
		p.acc = 0
		p.accDigits = 0
		return
	}

	p.acc = p.acc*10 + uint32(b-'0')
	if p.acc > 0xFFFF {
		p.acc = 0xFFFF
	}
	p.accDigits++
}

// finalizeParams folds the pending accumulator into the parameter list.
func (p *Parser) finalizeParams() {
	if p.accDigits > 0 && p.numParams < MaxParams {
		p.params[p.numParams] = clampParam(p.acc)
		p.numParams++
	}
	p.acc = 0
	p.accDigits = 0
}

func (p *Parser) put(buf *[]byte, b byte) {
	if len(*buf) >= maxStringBytes {
		return
	}
	*buf = append(*buf, b)
}

func (p *Parser) csiCommand(final byte) Command {
	p.finalizeParams()
	return Command{
		Kind:          CommandCSI,
		Params:        p.params[:p.numParams],
		Colon:         p.colon[:p.numParams],
		Intermediates: p.intermediates[:p.numIntermediates],
		Final:         final,
	}
}

func (p *Parser) escCommand(final byte) Command {
	return Command{
		Kind:          CommandESC,
		Intermediates: p.intermediates[:p.numIntermediates],
		Final:         final,
	}
}

func (p *Parser) oscCommand(terminator string) Command {
	return Command{
		Kind:       CommandOSC,
		Payload:    p.osc,
		Terminator: terminator,
	}
}

func (p *Parser) strCommand() Command {
	return Command{
		Kind:       CommandString,
		Payload:    p.str,
		StringKind: p.strKind,
	}
}

// hook captures the DCS header when the final byte moves the machine into
// passthrough; the payload accumulates until ST.
func (p *Parser) hook(final byte) {
	p.finalizeParams()
	p.dcsParams = append(p.dcsParams[:0], p.params[:p.numParams]...)
	p.dcsIntermediates = append(p.dcsIntermediates[:0], p.intermediates[:p.numIntermediates]...)
	p.dcsFinal = final
	p.dcsPayload = p.dcsPayload[:0]
}

func (p *Parser) dcsCommand() Command {
	return Command{
		Kind:          CommandDCS,
		Params:        p.dcsParams,
		Intermediates: p.dcsIntermediates,
		Final:         p.dcsFinal,
		Payload:       p.dcsPayload,
	}
}

func clampParam(v uint32) uint16 {
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
