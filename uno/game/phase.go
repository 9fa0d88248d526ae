package game

type Phase int

const (
	PhaseLobby Phase = iota
	PhaseDealing
	PhasePlaying
	PhaseColorSelection
	PhaseChallengeChance
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhaseDealing:
		return "dealing"
	case PhasePlaying:
		return "playing"
	case PhaseColorSelection:
		return "color_selection"
	case PhaseChallengeChance:
		return "challenge_chance"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// InPlay reports whether the game accepts transitions other than dealing.
func (p Phase) InPlay() bool {
	return p == PhasePlaying || p == PhaseColorSelection || p == PhaseChallengeChance
}
