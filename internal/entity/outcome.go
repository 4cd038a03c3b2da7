package entity

// OutcomeKind says whether a game is still running, won or drawn.
type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Win
	Draw
)

func (that OutcomeKind) String() string {
	switch that {
	case InProgress:
		return "in_progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is derived from the board after every move and never stored on its own.
type Outcome struct {
	Kind   OutcomeKind
	Winner Mark
}

func WinOutcome(piece Mark) Outcome {
	return Outcome{Kind: Win, Winner: piece}
}

func (that Outcome) IsFinished() bool {
	return that.Kind == Win || that.Kind == Draw
}

func (that Outcome) String() string {
	if that.Kind == Win {
		return "win(" + string(that.Winner) + ")"
	}

	return that.Kind.String()
}
