package ansi

// State is the position of the escape-sequence state machine.
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassthrough
	StateDCSIgnore
	StateOSCString
	StateSosPmApcString

	stateCount
)

// action is what the parser does with a byte while in (or moving between)
// states. Dispatching actions produce a Command; the rest only accumulate.
type action int

const (
	actionNone action = iota
	actionIgnore
	actionPrint
	actionExecute
	actionCollect
	actionParam
	actionESCDispatch
	actionCSIDispatch
	actionOSCPut
	actionOSCEnd
	actionDCSPut
	actionStrPut
)
