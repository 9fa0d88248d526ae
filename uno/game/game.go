package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/event"
)

// Game owns the one authoritative state of a table. Every exported method
// is a transition applied under the game lock: it either fails with an
// invalid transition error and leaves the state untouched, or runs to
// completion.
type Game struct {
	mu sync.Mutex

	rng      *rand.Rand
	events   *event.Bus
	handSize int
	stacked  []card.Card

	deck    *Deck
	pile    *Pile
	players []*playerController
	cycler  *Cycler

	phase         Phase
	activeColor   color.Color
	drawStack     int
	previousColor color.Color
	pendingSender int
	pendingWild   string
	winner        int
}

type Option func(*Game)

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithEvents(bus *event.Bus) Option {
	return func(g *Game) {
		g.events = bus
	}
}

func WithHandSize(handSize int) Option {
	return func(g *Game) {
		g.handSize = handSize
	}
}

// WithStackedDeck deals from cards in order instead of a shuffled deck.
func WithStackedDeck(cards []card.Card) Option {
	return func(g *Game) {
		g.stacked = cards
	}
}

func New(identities []Identity, options ...Option) (*Game, error) {
	if len(identities) < consts.MinPlayers {
		return nil, consts.ErrorsNotEnoughPlayers
	}
	g := &Game{
		handSize:      consts.HandSize,
		phase:         PhaseLobby,
		pendingSender: NoSeat,
		winner:        NoSeat,
		pile:          NewPile(),
		cycler:        NewCycler(len(identities)),
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.events == nil {
		g.events = event.NewBus()
	}
	for seat, identity := range identities {
		g.players = append(g.players, newPlayerController(seat, identity))
	}
	return g, nil
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Seats() int {
	return len(g.players)
}

func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// Deal moves the game from the lobby to play: every seat gets a hand, the
// first card is flipped and seat 0 starts.
func (g *Game) Deal() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseLobby {
		return consts.ErrorsWrongPhase
	}
	g.phase = PhaseDealing

	if g.stacked != nil {
		g.deck = NewStackedDeck(g.rng, g.stacked)
	} else {
		g.deck = NewDeck(g.rng)
	}
	for _, player := range g.players {
		player.hand.AddCards(g.drawFromDeck(g.handSize))
	}

	firstCard := g.drawFromDeck(1)[0]
	for firstCard.Value == card.WildDrawFour {
		g.deck.PutBack(firstCard)
		if g.deck.Only(card.WildDrawFour) {
			g.deck.Refill(BuildDeck(g.rng))
		}
		firstCard = g.drawFromDeck(1)[0]
	}

	g.activeColor = firstCard.Color
	if firstCard.IsWild() {
		g.activeColor = color.Red
		firstCard.Declared = color.Red
	}
	if firstCard.Value == card.DrawTwo {
		g.drawStack = 2
	}
	g.pile.Add(firstCard)
	g.phase = PhasePlaying

	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card:        firstCard,
		ActiveColor: g.activeColor,
		DrawStack:   g.drawStack,
	})
	return nil
}

func (g *Game) snapshot() State {
	players := make([]PlayerState, 0, len(g.players))
	for _, player := range g.players {
		players = append(players, player.state())
	}
	drawPileSize := 0
	if g.deck != nil {
		drawPileSize = g.deck.Size()
	}
	return State{
		Phase:         g.phase,
		DrawPileSize:  drawPileSize,
		Discard:       g.pile.Cards(),
		Players:       players,
		Current:       g.cycler.Current(),
		Direction:     g.cycler.Direction(),
		ActiveColor:   g.activeColor,
		DrawStack:     g.drawStack,
		PreviousColor: g.previousColor,
		PendingSender: g.pendingSender,
		PendingWild:   g.pendingWild,
		Winner:        g.winner,
	}
}

func (g *Game) player(seat int) (*playerController, error) {
	if seat < 0 || seat >= len(g.players) {
		return nil, consts.ErrorsSeatInvalid
	}
	return g.players[seat], nil
}

// inPlay rejects transitions before the deal and after a win.
func (g *Game) inPlay() error {
	switch {
	case g.phase.InPlay():
		return nil
	case g.phase == PhaseGameOver:
		return consts.ErrorsGameOver
	default:
		return consts.ErrorsGameNotStarted
	}
}

func (g *Game) decider() int {
	return NextSeat(g.pendingSender, g.cycler.Direction(), len(g.players))
}

// drawFromDeck always delivers amount cards. A short deck is refilled with
// the discard pile minus its top card, then with fresh decks.
func (g *Game) drawFromDeck(amount int) []card.Card {
	if g.deck.Size() < amount {
		g.deck.Refill(g.pile.Recycle())
	}
	for g.deck.Size() < amount {
		g.deck.Refill(BuildDeck(g.rng))
	}
	return g.deck.Draw(amount)
}

func (g *Game) draw(player *playerController, amount int) {
	cards := g.drawFromDeck(amount)
	player.hand.AddCards(cards)
	player.hasDeclared = false
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		Seat:       player.seat,
		PlayerName: player.Name(),
		Cards:      cards,
	})
}

// advance hands the turn to the next seat, jumping one seat when skip is set.
func (g *Game) advance(skip bool) {
	next := g.cycler.Next()
	if skip {
		skipped := g.players[next]
		g.events.TurnSkipped.Emit(event.TurnSkippedPayload{
			Seat:       skipped.seat,
			PlayerName: skipped.Name(),
		})
		next = g.cycler.Next()
	}
	g.players[next].declaredThisTurn = false
}
