package game

import (
	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/uno/event"
)

const (
	challengeSuccessPenalty = 4
	falseChallengePenalty   = 2
)

// ResolveChallenge answers a pending wild draw four. Only the seat after
// the sender may answer.
//
// A challenge succeeds when the sender still holds a card of the color that
// was active before the wild draw four: the sender draws 4 and the
// challenger takes the turn. A failed challenge costs the challenger the
// stack plus 2, accepting costs the stack; either way the challenger's turn
// is forfeited.
func (g *Game) ResolveChallenge(challenging bool, seat int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	challenger, err := g.player(seat)
	if err != nil {
		return err
	}
	if g.phase != PhaseChallengeChance {
		if err := g.inPlay(); err != nil {
			return err
		}
		return consts.ErrorsWrongPhase
	}
	if seat != g.decider() {
		return consts.ErrorsNotDecider
	}
	sender := g.players[g.pendingSender]

	outcome := event.ChallengeAccepted
	if challenging {
		outcome = event.ChallengeFailed
		if sender.hand.HasColor(g.previousColor) {
			outcome = event.ChallengeSucceeded
		}
	}

	loser, penalty := challenger, g.drawStack
	switch outcome {
	case event.ChallengeSucceeded:
		loser, penalty = sender, challengeSuccessPenalty
	case event.ChallengeFailed:
		penalty = g.drawStack + falseChallengePenalty
	}

	g.events.ChallengeResolved.Emit(event.ChallengeResolvedPayload{
		ChallengerSeat: challenger.seat,
		ChallengerName: challenger.Name(),
		SenderSeat:     sender.seat,
		SenderName:     sender.Name(),
		PreviousColor:  g.previousColor,
		Outcome:        outcome,
		Penalty:        penalty,
	})

	g.draw(loser, penalty)
	g.drawStack = 0
	g.pendingSender = NoSeat
	g.phase = PhasePlaying
	g.advance(outcome != event.ChallengeSucceeded)
	return nil
}
