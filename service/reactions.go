package service

import (
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/event"
	"github.com/ratel-online/unoparty/uno/reaction"
)

func (t *Table) attachReactions(events *event.Bus) {
	if t.reactions == nil {
		return
	}

	events.CardPlayed.AddListener(func(p event.CardPlayedPayload) {
		if p.Seat == HumanSeat && p.Card.Value == card.WildDrawFour {
			played := p.Card
			t.react(t.firstBot(), reaction.WildDrawFourPlayed, "The human played Wild Draw 4 against you.", &played)
		}
	})

	events.ChallengeResolved.AddListener(func(p event.ChallengeResolvedPayload) {
		if p.Outcome == event.ChallengeAccepted {
			return
		}
		challengerWon := p.Outcome == event.ChallengeSucceeded
		if _, ok := t.bots[p.ChallengerSeat]; ok {
			if challengerWon {
				t.react(p.ChallengerSeat, reaction.ChallengeWon, "Your challenge of a Wild Draw 4 succeeded.", nil)
			} else {
				t.react(p.ChallengerSeat, reaction.ChallengeLost, "Your challenge of a Wild Draw 4 failed, you draw extra cards.", nil)
			}
			return
		}
		if challengerWon {
			t.react(p.SenderSeat, reaction.ChallengeLost, "You were caught playing an illegal Wild Draw 4.", nil)
		} else {
			t.react(p.SenderSeat, reaction.ChallengeWon, "Someone wrongly challenged your Wild Draw 4.", nil)
		}
	})

	events.MissedDeclarationCaught.AddListener(func(p event.MissedDeclarationCaughtPayload) {
		t.react(p.AccuserSeat, reaction.CaughtMissingDeclaration, "You caught "+p.PlayerName+" with one card and no UNO call.", nil)
	})

	events.GameWon.AddListener(func(p event.GameWonPayload) {
		if p.Seat == HumanSeat {
			t.react(t.firstBot(), reaction.GameLost, "The human won the game.", nil)
			return
		}
		t.react(p.Seat, reaction.GameWon, "You won the game.", nil)
	})
}

func (t *Table) firstBot() int {
	return (HumanSeat + 1) % len(t.identities)
}

// react is a no-op for the human seat.
func (t *Table) react(seat int, trigger reaction.Trigger, description string, involved *card.Card) {
	if _, ok := t.bots[seat]; !ok {
		return
	}
	identity := t.identities[seat]
	t.reactions.Request(reaction.Request{
		Actor:   identity.Name,
		Persona: identity.Persona,
		Trigger: trigger,
		Event:   description,
		Card:    involved,
	}, t.say)
}
