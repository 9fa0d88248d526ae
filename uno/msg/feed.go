package msg

import (
	"github.com/ratel-online/unoparty/uno/event"
)

// Attach writes a log line for every event of bus. human is the seat whose
// draws are shown card by card.
func Attach(bus *event.Bus, human int, write func(line string)) {
	bus.FirstCardPlayed.AddListener(func(p event.FirstCardPlayedPayload) {
		write(Message.FirstCardPlayed(p.Card, p.ActiveColor))
	})
	bus.CardPlayed.AddListener(func(p event.CardPlayedPayload) {
		write(Message.PlayerPlayedCard(p.PlayerName, p.Card, p.DrawStack))
	})
	bus.ColorPicked.AddListener(func(p event.ColorPickedPayload) {
		write(Message.PlayerPickedColor(p.PlayerName, p.Color))
	})
	bus.CardsDrawn.AddListener(func(p event.CardsDrawnPayload) {
		if p.Seat == human {
			write(Message.HumanPlayerDrewCards(p.Cards))
			return
		}
		write(Message.PlayerDrewCards(p.PlayerName, p.Cards))
	})
	bus.PlayerPassed.AddListener(func(p event.PlayerPassedPayload) {
		write(Message.PlayerPassed(p.PlayerName))
	})
	bus.TurnSkipped.AddListener(func(p event.TurnSkippedPayload) {
		write(Message.PlayerTurnSkipped(p.PlayerName))
	})
	bus.DirectionReversed.AddListener(func(event.DirectionReversedPayload) {
		write(Message.TurnOrderReversed())
	})
	bus.ChallengeResolved.AddListener(func(p event.ChallengeResolvedPayload) {
		write(Message.ChallengeResolved(p))
	})
	bus.LastCardDeclared.AddListener(func(p event.LastCardDeclaredPayload) {
		write(Message.LastCardDeclared(p.PlayerName))
	})
	bus.MissedDeclarationCaught.AddListener(func(p event.MissedDeclarationCaughtPayload) {
		write(Message.MissedDeclarationCaught(p.AccuserName, p.PlayerName))
	})
	bus.FalseAccusation.AddListener(func(p event.FalseAccusationPayload) {
		write(Message.FalseAccusation(p.AccuserName))
	})
	bus.GameWon.AddListener(func(p event.GameWonPayload) {
		write(Message.WinnerFound(p.PlayerName))
	})
}
