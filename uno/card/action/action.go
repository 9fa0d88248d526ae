package action

type Action interface{}

// DrawCardsAction adds amount to the penalty stack the next seat must absorb.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

// OpenChallengeAction holds the turn on the player who played the card until
// the next seat has decided to challenge, accept or stack.
type OpenChallengeAction struct{}

func NewOpenChallengeAction() Action {
	return OpenChallengeAction{}
}
