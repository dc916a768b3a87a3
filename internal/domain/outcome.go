package domain

// LoopOutcome tells a prompt loop whether to request another line.
type LoopOutcome int

const (
	Continue LoopOutcome = iota
	Terminate
)

func (o LoopOutcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}
