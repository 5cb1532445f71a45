package parser

// State of the recognizer while it walks one control sequence.
type State int

const (
	// Expecting the '[' introducer.
	StateIntroducer State = iota
	// Expecting the byte that selects the command family.
	StateDispatch
	// Accumulating the first numeric parameter.
	StateFirstValue
	// Accumulating further ';'-separated parameters.
	StateValues
)

func (s State) String() string {
	switch s {
	case StateIntroducer:
		return "Introducer"
	case StateDispatch:
		return "Dispatch"
	case StateFirstValue:
		return "FirstValue"
	case StateValues:
		return "Values"
	default:
		return "Unknown"
	}
}
