package service_test

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/service"
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/game"
	"github.com/ratel-online/unoparty/uno/player"
	"github.com/ratel-online/unoparty/uno/reaction"
	"github.com/stretchr/testify/require"
)

type fixedGenerator string

func (g fixedGenerator) Generate(context.Context, reaction.Request) (string, error) {
	return string(g), nil
}

func newTable(t *testing.T, seed int64) *service.Table {
	t.Helper()
	table, err := service.NewTable(service.Options{
		HumanName: "You",
		Seats:     4,
		Rand:      rand.New(rand.NewSource(seed)),
		Tuning:    player.DefaultTuning(),
	})
	require.NoError(t, err)
	require.NoError(t, table.Start())
	return table
}

// actAsHuman applies the human's move with the bot policy.
func actAsHuman(t *testing.T, table *service.Table, human *player.Bot) {
	t.Helper()
	decision := human.Decide(table.Snapshot(service.HumanSeat))
	switch decision.Kind {
	case player.Play:
		require.NoError(t, table.RequestPlay(decision.Seat, decision.CardID, decision.Color))
	case player.Draw:
		require.NoError(t, table.RequestDraw(decision.Seat))
	case player.Challenge, player.Accept:
		require.NoError(t, table.RequestChallengeDecision(decision.Seat, decision.Kind == player.Challenge))
	}
}

func TestStart(t *testing.T) {
	table := newTable(t, 1)
	state := table.Snapshot(service.HumanSeat)
	require.Equal(t, game.PhasePlaying, state.Phase)
	require.Len(t, state.Players, 4)
	require.Len(t, state.Players[0].Hand, 7)
	require.Nil(t, state.Players[1].Hand)
	require.Equal(t, "Flash", table.Identity(1).Name)

	lines := table.Log()
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "First card is")
}

func TestBotsWaitForTheHuman(t *testing.T) {
	table := newTable(t, 1)
	acted, err := table.StepBot()
	require.NoError(t, err)
	require.False(t, acted)

	err = table.RequestDraw(2)
	require.ErrorIs(t, err, consts.ErrorsNotYourTurn)
}

// playToTheEnd drives the human with human and the bots with their policy.
func playToTheEnd(t *testing.T, table *service.Table, human *player.Bot) {
	t.Helper()
	for step := 0; step < 3000; step++ {
		state := table.Snapshot(service.HumanSeat)
		if state.Phase == game.PhaseGameOver {
			return
		}
		if state.Actor() == service.HumanSeat {
			actAsHuman(t, table, human)
			continue
		}
		acted, err := table.StepBot()
		require.NoError(t, err)
		require.True(t, acted)
	}
	t.Fatal("game did not finish")
}

func totalCards(state game.State) int {
	total := state.DrawPileSize + len(state.Discard)
	for _, p := range state.Players {
		total += p.HandSize
	}
	return total
}

func TestTablePlaysToTheEnd(t *testing.T) {
	table := newTable(t, 5)
	human := player.NewBot(service.HumanSeat, rand.New(rand.NewSource(5)), player.Tuning{})

	var (
		mu      sync.Mutex
		updates int
	)
	id := table.Subscribe(func(update service.Update) {
		mu.Lock()
		defer mu.Unlock()
		updates++
		require.NotEmpty(t, update.Lines)
		require.Nil(t, update.State.Players[1].Hand)
	})
	defer table.Unsubscribe(id)

	playToTheEnd(t, table, human)

	mu.Lock()
	defer mu.Unlock()
	require.Positive(t, updates)
	require.Greater(t, len(table.Log()), 2)
}

func TestRestart(t *testing.T) {
	table := newTable(t, 6)
	human := player.NewBot(service.HumanSeat, rand.New(rand.NewSource(6)), player.Tuning{})
	require.ErrorIs(t, table.Restart(), consts.ErrorsGameNotOver)

	var (
		mu     sync.Mutex
		phases []game.Phase
	)
	id := table.Subscribe(func(update service.Update) {
		mu.Lock()
		defer mu.Unlock()
		phases = append(phases, update.State.Phase)
	})
	defer table.Unsubscribe(id)

	playToTheEnd(t, table, human)
	require.Equal(t, game.PhaseGameOver, table.Snapshot(service.HumanSeat).Phase)

	require.NoError(t, table.Execute(service.Command{Kind: service.CommandRestart}))
	state := table.Snapshot(service.HumanSeat)
	require.Equal(t, game.PhasePlaying, state.Phase)
	require.Equal(t, 108, totalCards(state))
	require.Len(t, state.Discard, 1)
	require.Equal(t, game.NoSeat, state.Winner)
	for _, p := range state.Players {
		require.Equal(t, 7, p.HandSize)
	}

	mu.Lock()
	require.Equal(t, game.PhasePlaying, phases[len(phases)-1])
	mu.Unlock()

	playToTheEnd(t, table, human)
	require.Equal(t, game.PhaseGameOver, table.Snapshot(service.HumanSeat).Phase)
}

func TestRun(t *testing.T) {
	table, err := service.NewTable(service.Options{
		HumanName: "You",
		Seats:     4,
		Rand:      rand.New(rand.NewSource(8)),
		Tuning:    player.DefaultTuning(),
		BotDelay:  time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, table.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- table.Run(ctx)
	}()

	human := player.NewBot(service.HumanSeat, rand.New(rand.NewSource(8)), player.Tuning{})
	games := 0
	for games < 2 {
		select {
		case err := <-done:
			t.Fatalf("run stopped early: %v", err)
		case <-time.After(time.Millisecond):
		}
		state := table.Snapshot(service.HumanSeat)
		switch {
		case state.Phase == game.PhaseGameOver:
			games++
			if games < 2 {
				require.NoError(t, table.Restart())
			}
		case state.Actor() == service.HumanSeat:
			actAsHuman(t, table, human)
		}
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRunStopsWithContext(t *testing.T) {
	table := newTable(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, table.Run(ctx), context.Canceled)
}

func TestReactionOnHumanWin(t *testing.T) {
	winning := card.NewNumberCard(color.Red, 5)
	table, err := service.NewTable(service.Options{
		HumanName: "You",
		Seats:     2,
		HandSize:  1,
		Rand:      rand.New(rand.NewSource(1)),
		Reactions: reaction.NewPort(fixedGenerator("well played"), time.Second),
		Deck: []card.Card{
			winning,
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Red, 7),
		},
	})
	require.NoError(t, err)
	require.NoError(t, table.Start())

	require.NoError(t, table.RequestPlay(service.HumanSeat, winning.ID, color.None))
	require.Equal(t, 0, table.Snapshot(service.HumanSeat).Winner)

	require.Eventually(t, func() bool {
		for _, line := range table.Log() {
			if strings.Contains(line, "Flash: well played") {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
