package msg

import (
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card, activeColor color.Color) string {
	return Sprintfln("First card is %s, active color %s", card, activeColor.Paint(activeColor.Name()))
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color.Paint(color.Name()))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, playedCard card.Card, drawStack int) string {
	if drawStack > 0 && (playedCard.Value == card.DrawTwo || playedCard.Value == card.WildDrawFour) {
		return Sprintfln("%s played %s! (penalty stack: %d)", playerName, playedCard, drawStack)
	}
	return Sprintfln("%s played %s!", playerName, playedCard)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) ChallengeResolved(payload event.ChallengeResolvedPayload) string {
	switch payload.Outcome {
	case event.ChallengeSucceeded:
		return Sprintlns([]string{
			Sprintf("%s challenged the wild draw four!", payload.ChallengerName),
			Sprintf("Challenge succeeded! %s still held %s, draws %d.", payload.SenderName, payload.PreviousColor.Paint(payload.PreviousColor.Name()), payload.Penalty),
		})
	case event.ChallengeFailed:
		return Sprintlns([]string{
			Sprintf("%s challenged the wild draw four!", payload.ChallengerName),
			Sprintf("Challenge failed! %s draws %d.", payload.ChallengerName, payload.Penalty),
		})
	default:
		return Sprintfln("%s accepted the wild draw four and draws %d.", payload.ChallengerName, payload.Penalty)
	}
}

func (m MessageWriter) LastCardDeclared(playerName string) string {
	return Sprintfln("%s shouted %s!", playerName, unoWord())
}

func (m MessageWriter) MissedDeclarationCaught(accuserName string, playerName string) string {
	return Sprintfln("%s caught %s without declaring! %s draws 2.", accuserName, playerName, playerName)
}

func (m MessageWriter) FalseAccusation(accuserName string) string {
	return Sprintfln("%s accused nobody in particular and draws 2.", accuserName)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln("WELCOME TO %s", unoWord())
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func unoWord() string {
	return color.Red.Paint("U") + color.Yellow.Paint("N") + color.Blue.Paint("O")
}
