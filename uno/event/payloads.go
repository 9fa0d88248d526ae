package event

import (
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
)

type FirstCardPlayedPayload struct {
	Card        card.Card
	ActiveColor color.Color
	DrawStack   int
}

type CardPlayedPayload struct {
	Seat       int
	PlayerName string
	Card       card.Card
	DrawStack  int
}

type ColorPickedPayload struct {
	Seat       int
	PlayerName string
	Color      color.Color
}

type CardsDrawnPayload struct {
	Seat       int
	PlayerName string
	Cards      []card.Card
}

type PlayerPassedPayload struct {
	Seat       int
	PlayerName string
}

type TurnSkippedPayload struct {
	Seat       int
	PlayerName string
}

type DirectionReversedPayload struct {
	Direction int
}

type ChallengeOutcome int

const (
	ChallengeAccepted ChallengeOutcome = iota
	ChallengeSucceeded
	ChallengeFailed
)

type ChallengeResolvedPayload struct {
	ChallengerSeat int
	ChallengerName string
	SenderSeat     int
	SenderName     string
	PreviousColor  color.Color
	Outcome        ChallengeOutcome
	// Penalty is the number of cards drawn by whoever lost.
	Penalty int
}

type LastCardDeclaredPayload struct {
	Seat       int
	PlayerName string
}

type MissedDeclarationCaughtPayload struct {
	AccuserSeat int
	AccuserName string
	Seat        int
	PlayerName  string
}

type FalseAccusationPayload struct {
	AccuserSeat int
	AccuserName string
}

type GameWonPayload struct {
	Seat       int
	PlayerName string
}
