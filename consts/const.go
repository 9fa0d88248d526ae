package consts

import (
	"errors"
	"time"
)

const (
	MinPlayers     = 2
	DefaultPlayers = 4
	HandSize       = 7

	// LastCardThreshold is the largest hand that may still declare last card.
	LastCardThreshold = 2

	BotDelay        = 1500 * time.Millisecond
	ReactionTimeout = 5 * time.Second
	AuthTimeout     = 3 * time.Second
)

const (
	CodeInvalidTransition = 1
	CodeInput             = 2
	CodeConnection        = 3
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// IsInvalidTransition reports whether err is a rejected game transition.
// A rejected transition never changes the game state.
func IsInvalidTransition(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Code == CodeInvalidTransition
}

var (
	ErrorsNotYourTurn       = NewErr(CodeInvalidTransition, false, "Not your turn. ")
	ErrorsWrongPhase        = NewErr(CodeInvalidTransition, false, "Not allowed in this phase. ")
	ErrorsCardNotInHand     = NewErr(CodeInvalidTransition, false, "Card is not in your hand. ")
	ErrorsCardNotPlayable   = NewErr(CodeInvalidTransition, false, "Card can not be played now. ")
	ErrorsColorRequired     = NewErr(CodeInvalidTransition, false, "A wild card needs a declared color, try play <n> <color>. ")
	ErrorsColorNotAllowed   = NewErr(CodeInvalidTransition, false, "Only wild cards take a declared color. ")
	ErrorsInvalidColor      = NewErr(CodeInvalidTransition, false, "Declared color must be red, blue, green or yellow. ")
	ErrorsTooEarlyToDeclare = NewErr(CodeInvalidTransition, false, "Too early to declare last card. ")
	ErrorsNotDecider        = NewErr(CodeInvalidTransition, false, "Only the next seat may answer the wild draw four. ")
	ErrorsSeatInvalid       = NewErr(CodeInvalidTransition, false, "Seat invalid. ")
	ErrorsGameNotStarted    = NewErr(CodeInvalidTransition, false, "Game not started. ")
	ErrorsGameOver          = NewErr(CodeInvalidTransition, false, "Game is over. ")
	ErrorsGameNotOver       = NewErr(CodeInvalidTransition, false, "Finish this game first. ")
	ErrorsNotWild           = NewErr(CodeInvalidTransition, false, "Card is not a wild card. ")
	ErrorsDrawCount         = NewErr(CodeInvalidTransition, false, "Draw count must be positive. ")

	ErrorsNotEnoughPlayers = NewErr(CodeInput, true, "Not enough players. ")
	ErrorsInputInvalid     = NewErr(CodeInput, false, "Input invalid. ")
	ErrorsUnknownCommand   = NewErr(CodeInput, false, "Unknown command. ")

	ErrorsAuthFail   = NewErr(CodeConnection, true, "Auth fail. ")
	ErrorsChanClosed = NewErr(CodeConnection, true, "Chan closed. ")
)
