package game

import (
	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/uno/event"
)

const missedDeclarationPenalty = 2

// DeclareLastCard may be called by any seat holding at most two cards, at
// any time during play. Declaring is optional until someone accuses.
// Declaring again in the same turn is a no-op.
func (g *Game) DeclareLastCard(seat int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, err := g.player(seat)
	if err != nil {
		return err
	}
	if err := g.inPlay(); err != nil {
		return err
	}
	if player.hand.Size() > consts.LastCardThreshold {
		return consts.ErrorsTooEarlyToDeclare
	}

	if player.hasDeclared && player.declaredThisTurn {
		return nil
	}

	player.hasDeclared = true
	player.declaredThisTurn = true
	g.events.LastCardDeclared.Emit(event.LastCardDeclaredPayload{
		Seat:       player.seat,
		PlayerName: player.Name(),
	})
	return nil
}

// AccuseMissedDeclaration makes every other seat holding a single undeclared
// card draw 2. When nobody is caught the accuser draws 2 instead. It returns
// the caught seats. The turn does not move.
func (g *Game) AccuseMissedDeclaration(accuserSeat int) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	accuser, err := g.player(accuserSeat)
	if err != nil {
		return nil, err
	}
	if err := g.inPlay(); err != nil {
		return nil, err
	}

	var caught []*playerController
	for _, player := range g.players {
		if player.seat != accuser.seat && player.hand.Size() == 1 && !player.hasDeclared {
			caught = append(caught, player)
		}
	}

	if len(caught) == 0 {
		g.events.FalseAccusation.Emit(event.FalseAccusationPayload{
			AccuserSeat: accuser.seat,
			AccuserName: accuser.Name(),
		})
		g.draw(accuser, missedDeclarationPenalty)
		return nil, nil
	}

	seats := make([]int, 0, len(caught))
	for _, player := range caught {
		g.events.MissedDeclarationCaught.Emit(event.MissedDeclarationCaughtPayload{
			AccuserSeat: accuser.seat,
			AccuserName: accuser.Name(),
			Seat:        player.seat,
			PlayerName:  player.Name(),
		})
		g.draw(player, missedDeclarationPenalty)
		seats = append(seats, player.seat)
	}
	return seats, nil
}
