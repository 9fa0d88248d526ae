package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/game"
	"github.com/ratel-online/unoparty/uno/msg"
	"github.com/ratel-online/unoparty/uno/player"
	"github.com/ratel-online/unoparty/uno/reaction"
)

// HumanSeat is where the human sits. Every other seat is a bot.
const HumanSeat = 0

type Options struct {
	HumanName string
	Seats     int
	HandSize  int
	Rand      *rand.Rand
	Tuning    player.Tuning
	BotDelay  time.Duration
	Reactions *reaction.Port
	// Deck, when set, is dealt in order instead of a shuffled deck.
	Deck []card.Card
}

// Update is pushed to subscribers after every applied intent.
type Update struct {
	State game.State
	Lines []string
}

// Table is the single entry point to a game. Human intents and bot
// decisions both go through it and the game validates each of them.
type Table struct {
	options Options

	gameMu sync.RWMutex
	game   *game.Game

	identities []game.Identity
	bots       map[int]*player.Bot
	reactions  *reaction.Port
	botDelay   time.Duration

	mu      sync.Mutex
	lines   []string
	pending []string

	wake chan struct{}
}

var (
	subscriberIds int64
	subscribers   = hashmap.New()
)

type subscription struct {
	table *Table
	fn    func(Update)
}

func NewTable(options Options) (*Table, error) {
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if options.Seats == 0 {
		options.Seats = consts.DefaultPlayers
	}
	if options.HandSize == 0 {
		options.HandSize = consts.HandSize
	}

	t := &Table{
		options:    options,
		identities: player.CreatePlayers(options.Seats, options.HumanName, options.Rand),
		bots:       map[int]*player.Bot{},
		reactions:  options.Reactions,
		botDelay:   options.BotDelay,
		wake:       make(chan struct{}, 1),
	}
	g, err := t.newGame(options.Deck)
	if err != nil {
		return nil, err
	}
	t.game = g
	for seat := range t.identities {
		if seat != HumanSeat {
			botRand := rand.New(rand.NewSource(options.Rand.Int63()))
			t.bots[seat] = player.NewBot(seat, botRand, options.Tuning)
		}
	}
	return t, nil
}

// newGame builds a game for the table's seats and wires the log and the
// reactions to its events. A nil deck is shuffled.
func (t *Table) newGame(deck []card.Card) (*game.Game, error) {
	gameOptions := []game.Option{
		game.WithRand(t.options.Rand),
		game.WithHandSize(t.options.HandSize),
	}
	if deck != nil {
		gameOptions = append(gameOptions, game.WithStackedDeck(deck))
	}
	g, err := game.New(t.identities, gameOptions...)
	if err != nil {
		return nil, err
	}
	msg.Attach(g.Events(), HumanSeat, t.record)
	t.attachReactions(g.Events())
	return g, nil
}

func (t *Table) current() *game.Game {
	t.gameMu.RLock()
	defer t.gameMu.RUnlock()
	return t.game
}

// Start deals the cards.
func (t *Table) Start() error {
	t.record(msg.Message.Welcome())
	return t.apply(t.current().Deal)
}

// Restart replaces a finished game with a freshly shuffled one and deals it.
// The seats, bots and subscribers stay.
func (t *Table) Restart() error {
	t.gameMu.Lock()
	if t.game.State().Phase != game.PhaseGameOver {
		t.gameMu.Unlock()
		return consts.ErrorsGameNotOver
	}
	g, err := t.newGame(nil)
	if err != nil {
		t.gameMu.Unlock()
		return err
	}
	t.game = g
	t.gameMu.Unlock()
	return t.Start()
}

func (t *Table) Seats() int {
	return t.current().Seats()
}

func (t *Table) Identity(seat int) game.Identity {
	return t.identities[seat]
}

// Snapshot is the game as seat may see it.
func (t *Table) Snapshot(seat int) game.State {
	return t.current().State().View(seat)
}

func (t *Table) Log() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	lines := make([]string, len(t.lines))
	copy(lines, t.lines)
	return lines
}

func (t *Table) RequestPlay(seat int, cardID string, declared color.Color) error {
	return t.apply(func() error {
		return t.current().PlayCard(seat, cardID, declared)
	})
}

func (t *Table) RequestSelectWild(seat int, cardID string) error {
	return t.apply(func() error {
		return t.current().SelectWild(seat, cardID)
	})
}

func (t *Table) RequestColor(seat int, declared color.Color) error {
	return t.apply(func() error {
		return t.current().DeclareColor(seat, declared)
	})
}

func (t *Table) CancelColor(seat int) error {
	return t.apply(func() error {
		return t.current().CancelColorSelection(seat)
	})
}

func (t *Table) RequestDraw(seat int) error {
	return t.apply(func() error {
		return t.current().Draw(seat)
	})
}

func (t *Table) RequestDeclare(seat int) error {
	return t.apply(func() error {
		return t.current().DeclareLastCard(seat)
	})
}

func (t *Table) RequestAccuse(seat int) ([]int, error) {
	var caught []int
	err := t.apply(func() (err error) {
		caught, err = t.current().AccuseMissedDeclaration(seat)
		return err
	})
	return caught, err
}

func (t *Table) RequestChallengeDecision(seat int, challenging bool) error {
	return t.apply(func() error {
		return t.current().ResolveChallenge(challenging, seat)
	})
}

// StepBot lets the bot expected to act decide from a snapshot and applies
// its decision. It reports false when no bot is expected to act.
func (t *Table) StepBot() (bool, error) {
	state := t.current().State()
	bot, ok := t.bots[state.Actor()]
	if !ok {
		return false, nil
	}
	decision := bot.Decide(state.View(bot.Seat()))
	if decision.Kind == player.Wait {
		return false, nil
	}
	if err := t.applyDecision(decision); err != nil {
		log.Errorf("bot %s rejected: %s %+v: %v\n", t.identities[decision.Seat].Name, decision.Kind, decision, err)
		return true, err
	}
	return true, nil
}

func (t *Table) applyDecision(decision player.Decision) error {
	if decision.Declare {
		if err := t.RequestDeclare(decision.Seat); err != nil {
			return err
		}
	}
	if decision.Accuse {
		if _, err := t.RequestAccuse(decision.Seat); err != nil {
			return err
		}
	}
	switch decision.Kind {
	case player.Play:
		return t.RequestPlay(decision.Seat, decision.CardID, decision.Color)
	case player.Draw:
		return t.RequestDraw(decision.Seat)
	case player.Challenge, player.Accept:
		return t.RequestChallengeDecision(decision.Seat, decision.Kind == player.Challenge)
	}
	return nil
}

// Run paces the bots until ctx is done. While the human is expected to act,
// or the game is over, it waits for the next human intent.
func (t *Table) Run(ctx context.Context) error {
	for {
		state := t.current().State()
		if _, ok := t.bots[state.Actor()]; !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.wake:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.botDelay):
		}
		if _, err := t.StepBot(); err != nil {
			return err
		}
	}
}

// Subscribe registers fn for the table's updates. The returned id is
// unique across tables.
func (t *Table) Subscribe(fn func(Update)) int64 {
	id := atomic.AddInt64(&subscriberIds, 1)
	subscribers.Set(id, subscription{table: t, fn: fn})
	return id
}

func (t *Table) Unsubscribe(id int64) {
	subscribers.Del(id)
}

// apply runs one game transition, then publishes what it produced.
func (t *Table) apply(transition func() error) error {
	err := transition()
	if err == nil {
		select {
		case t.wake <- struct{}{}:
		default:
		}
	}
	t.publish()
	return err
}

func (t *Table) record(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	t.pending = append(t.pending, line)
}

func (t *Table) say(actor, text string) {
	t.record(msg.Sprintfln("%s: %s", actor, strings.TrimSpace(text)))
	t.publish()
}

func (t *Table) publish() {
	t.mu.Lock()
	lines := t.pending
	t.pending = nil
	t.mu.Unlock()
	if len(lines) == 0 {
		return
	}

	update := Update{
		State: t.Snapshot(HumanSeat),
		Lines: lines,
	}
	subscribers.Foreach(func(e *hashmap.Entry) {
		if s := e.Value().(subscription); s.table == t {
			s.fn(update)
		}
	})
}
