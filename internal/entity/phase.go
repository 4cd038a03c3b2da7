package entity

// Phase is the game-wide mode. Exactly one is active at a time.
type Phase string

const (
	PhaseIntro       Phase = "intro"
	PhasePlay        Phase = "play"
	PhaseCelebration Phase = "celebration"
)

func (that Phase) String() string {
	return string(that)
}

func (that Phase) IsIntro() bool {
	return that == PhaseIntro
}

func (that Phase) IsPlay() bool {
	return that == PhasePlay
}

func (that Phase) IsCelebration() bool {
	return that == PhaseCelebration
}
