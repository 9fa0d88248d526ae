package game

import (
	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/action"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/event"
)

// PlayCard plays cardID from seat's hand. Wild cards need declared set to a
// real color; other cards need color.None.
//
// While a wild draw four waits for an answer the seat after its sender may
// stack another wild draw four, which takes the turn over.
func (g *Game) PlayCard(seat int, cardID string, declared color.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, err := g.player(seat)
	if err != nil {
		return err
	}
	switch g.phase {
	case PhasePlaying:
		if seat != g.cycler.Current() {
			return consts.ErrorsNotYourTurn
		}
	case PhaseChallengeChance:
		if seat != g.decider() {
			return consts.ErrorsNotDecider
		}
	case PhaseColorSelection:
		return consts.ErrorsWrongPhase
	default:
		return g.inPlay()
	}

	playedCard, ok := player.hand.Find(cardID)
	if !ok {
		return consts.ErrorsCardNotInHand
	}
	if err := g.checkPlay(playedCard, declared); err != nil {
		return err
	}

	if g.phase == PhaseChallengeChance {
		g.pendingSender = NoSeat
		g.phase = PhasePlaying
		g.advance(false)
	}
	g.play(player, playedCard, declared)
	return nil
}

// SelectWild starts a two step wild play: the card is held while seat
// chooses a color with DeclareColor.
func (g *Game) SelectWild(seat int, cardID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, err := g.player(seat)
	if err != nil {
		return err
	}
	if g.phase != PhasePlaying {
		if err := g.inPlay(); err != nil {
			return err
		}
		return consts.ErrorsWrongPhase
	}
	if seat != g.cycler.Current() {
		return consts.ErrorsNotYourTurn
	}
	wild, ok := player.hand.Find(cardID)
	if !ok {
		return consts.ErrorsCardNotInHand
	}
	if !wild.IsWild() {
		return consts.ErrorsNotWild
	}
	top, _ := g.pile.Top()
	if !Playable(wild, top, g.activeColor, g.drawStack) {
		return consts.ErrorsCardNotPlayable
	}

	g.pendingWild = wild.ID
	g.phase = PhaseColorSelection
	return nil
}

func (g *Game) DeclareColor(seat int, declared color.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, err := g.player(seat)
	if err != nil {
		return err
	}
	if err := g.colorSelectionBy(seat); err != nil {
		return err
	}
	if !declared.Real() {
		return consts.ErrorsInvalidColor
	}
	wild, ok := player.hand.Find(g.pendingWild)
	if !ok {
		return consts.ErrorsCardNotInHand
	}

	g.pendingWild = ""
	g.phase = PhasePlaying
	g.play(player, wild, declared)
	return nil
}

func (g *Game) CancelColorSelection(seat int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.player(seat); err != nil {
		return err
	}
	if err := g.colorSelectionBy(seat); err != nil {
		return err
	}
	g.pendingWild = ""
	g.phase = PhasePlaying
	return nil
}

func (g *Game) colorSelectionBy(seat int) error {
	if g.phase != PhaseColorSelection {
		if err := g.inPlay(); err != nil {
			return err
		}
		return consts.ErrorsWrongPhase
	}
	if seat != g.cycler.Current() {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (g *Game) checkPlay(playedCard card.Card, declared color.Color) error {
	if playedCard.IsWild() {
		if declared == color.None {
			return consts.ErrorsColorRequired
		}
		if !declared.Real() {
			return consts.ErrorsInvalidColor
		}
	} else if declared != color.None {
		return consts.ErrorsColorNotAllowed
	}
	top, _ := g.pile.Top()
	if !Playable(playedCard, top, g.activeColor, g.drawStack) {
		return consts.ErrorsCardNotPlayable
	}
	return nil
}

// play applies a validated play. Emptying the hand wins at once and the
// card's effect is not applied.
func (g *Game) play(player *playerController, playedCard card.Card, declared color.Color) {
	player.hand.RemoveCard(playedCard.ID)
	if playedCard.IsWild() {
		playedCard.Declared = declared
	}
	g.pile.Add(playedCard)

	if player.hand.Empty() {
		g.events.CardPlayed.Emit(event.CardPlayedPayload{
			Seat:       player.seat,
			PlayerName: player.Name(),
			Card:       playedCard,
			DrawStack:  g.drawStack,
		})
		g.phase = PhaseGameOver
		g.winner = player.seat
		g.events.GameWon.Emit(event.GameWonPayload{
			Seat:       player.seat,
			PlayerName: player.Name(),
		})
		return
	}

	colorBefore := g.activeColor
	g.activeColor = playedCard.Effective()

	var (
		skip          bool
		reversed      bool
		pickedColor   bool
		openChallenge bool
	)
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			g.drawStack += cardAction.Amount()
		case action.ReverseTurnsAction:
			g.cycler.Reverse()
			reversed = true
			if len(g.players) == 2 {
				skip = true
			}
		case action.SkipTurnAction:
			skip = true
		case action.PickColorAction:
			pickedColor = true
		case action.OpenChallengeAction:
			openChallenge = true
		}
	}

	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		Seat:       player.seat,
		PlayerName: player.Name(),
		Card:       playedCard,
		DrawStack:  g.drawStack,
	})
	if pickedColor {
		g.events.ColorPicked.Emit(event.ColorPickedPayload{
			Seat:       player.seat,
			PlayerName: player.Name(),
			Color:      declared,
		})
	}
	if reversed {
		g.events.DirectionReversed.Emit(event.DirectionReversedPayload{
			Direction: g.cycler.Direction(),
		})
	}

	if openChallenge {
		g.previousColor = colorBefore
		g.pendingSender = player.seat
		g.phase = PhaseChallengeChance
		return
	}
	g.advance(skip)
}

// DrawCards gives seat count cards from the draw pile and clears its last
// card declaration. When the seat facing the penalty stack draws at least
// the whole stack, the stack is satisfied. The turn never moves.
func (g *Game) DrawCards(seat int, count int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, err := g.player(seat)
	if err != nil {
		return err
	}
	if err := g.inPlay(); err != nil {
		return err
	}
	if count <= 0 {
		return consts.ErrorsDrawCount
	}

	target := g.cycler.Current()
	if g.phase == PhaseChallengeChance {
		target = g.decider()
	}
	satisfiesStack := g.drawStack > 0 && count >= g.drawStack && seat == target

	g.draw(player, count)
	if satisfiesStack {
		g.drawStack = 0
	}
	return nil
}

// Draw is the current seat giving up its turn: it draws the outstanding
// penalty stack, or one card when there is none, and play moves on.
func (g *Game) Draw(seat int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, err := g.player(seat)
	if err != nil {
		return err
	}
	if g.phase != PhasePlaying {
		if err := g.inPlay(); err != nil {
			return err
		}
		return consts.ErrorsWrongPhase
	}
	if seat != g.cycler.Current() {
		return consts.ErrorsNotYourTurn
	}

	count := 1
	if g.drawStack > 0 {
		count = g.drawStack
	}
	g.draw(player, count)
	g.drawStack = 0
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
		Seat:       player.seat,
		PlayerName: player.Name(),
	})
	g.advance(false)
	return nil
}

func (g *Game) AdvanceTurn(skip bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		if err := g.inPlay(); err != nil {
			return err
		}
		return consts.ErrorsWrongPhase
	}
	g.advance(skip)
	return nil
}
