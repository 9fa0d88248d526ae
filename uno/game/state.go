package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
)

// NoSeat marks an absent pending sender or winner.
const NoSeat = -1

type PlayerState struct {
	Seat             int
	Name             string
	Persona          string
	Human            bool
	Hand             []card.Card
	HandSize         int
	HasDeclared      bool
	DeclaredThisTurn bool
}

// State is a read-only copy of the game. Nothing in it aliases the live game.
type State struct {
	Phase         Phase
	DrawPileSize  int
	Discard       []card.Card // most recent first
	Players       []PlayerState
	Current       int
	Direction     int
	ActiveColor   color.Color
	DrawStack     int
	PreviousColor color.Color
	PendingSender int
	PendingWild   string
	Winner        int
}

func (s State) Top() card.Card {
	if len(s.Discard) == 0 {
		return card.Card{}
	}
	return s.Discard[0]
}

// Actor is the seat expected to act: the current seat while playing, the
// seat after the pending sender while a wild draw four may be challenged.
func (s State) Actor() int {
	switch s.Phase {
	case PhasePlaying, PhaseColorSelection:
		return s.Current
	case PhaseChallengeChance:
		return NextSeat(s.PendingSender, s.Direction, len(s.Players))
	default:
		return NoSeat
	}
}

// Playable lists the cards seat could legally play right now, in hand order.
func (s State) Playable(seat int) []card.Card {
	if seat < 0 || seat >= len(s.Players) {
		return nil
	}
	return PlayableCards(s.Players[seat].Hand, s.Top(), s.ActiveColor, s.DrawStack)
}

// View hides every hand except seat's.
func (s State) View(seat int) State {
	view := s
	view.Players = make([]PlayerState, len(s.Players))
	for i, player := range s.Players {
		if i != seat {
			player.Hand = nil
		}
		view.Players[i] = player
	}
	return view
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.Top()))
	lines = append(lines, fmt.Sprintf("Active color: %s", s.ActiveColor.Paint(s.ActiveColor.Name())))
	if s.DrawStack > 0 {
		lines = append(lines, fmt.Sprintf("Penalty stack: +%d", s.DrawStack))
	}

	var playerStatuses []string
	for _, player := range s.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", player.Name, player.HandSize)
		if player.Seat == s.Current {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	return strings.Join(lines, "\n")
}
