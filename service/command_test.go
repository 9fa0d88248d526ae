package service_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/service"
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/game"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	scenarios := []struct {
		description string
		line        string
		expected    service.Command
		err         error
	}{
		{description: "play_by_index", line: "play 3", expected: service.Command{Kind: service.CommandPlay, Index: 3}},
		{description: "bare_number_plays", line: " 2 ", expected: service.Command{Kind: service.CommandPlay, Index: 2}},
		{description: "play_wild_with_color", line: "p 1 Blue", expected: service.Command{Kind: service.CommandPlay, Index: 1, Color: color.Blue}},
		{description: "color_initial", line: "color g", expected: service.Command{Kind: service.CommandColor, Color: color.Green}},
		{description: "draw", line: "DRAW", expected: service.Command{Kind: service.CommandDraw}},
		{description: "uno", line: "uno", expected: service.Command{Kind: service.CommandDeclare}},
		{description: "accuse", line: "a", expected: service.Command{Kind: service.CommandAccuse}},
		{description: "challenge", line: "challenge", expected: service.Command{Kind: service.CommandChallenge}},
		{description: "accept", line: "accept", expected: service.Command{Kind: service.CommandAccept}},
		{description: "cancel", line: "cancel", expected: service.Command{Kind: service.CommandCancel}},
		{description: "new_game", line: "new", expected: service.Command{Kind: service.CommandRestart}},
		{description: "play_again", line: "again", expected: service.Command{Kind: service.CommandRestart}},
		{description: "empty_line", line: "   ", err: consts.ErrorsInputInvalid},
		{description: "unknown_command", line: "fold", err: consts.ErrorsUnknownCommand},
		{description: "play_without_index", line: "play", err: consts.ErrorsInputInvalid},
		{description: "play_zero", line: "play 0", err: consts.ErrorsInputInvalid},
		{description: "wild_color_is_not_a_choice", line: "color wild", err: consts.ErrorsInputInvalid},
		{description: "draw_takes_no_arguments", line: "draw 2", err: consts.ErrorsInputInvalid},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			command, err := service.ParseCommand(scenario.line)
			if scenario.err != nil {
				require.ErrorIs(t, err, scenario.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expected, command)
		})
	}
}

func TestExecuteWildSelection(t *testing.T) {
	wild := card.NewWildCard()
	table, err := service.NewTable(service.Options{
		HumanName: "You",
		Seats:     2,
		HandSize:  2,
		Rand:      rand.New(rand.NewSource(1)),
		Deck: []card.Card{
			wild, card.NewNumberCard(color.Blue, 1),
			card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Green, 2),
			card.NewNumberCard(color.Red, 7),
		},
	})
	require.NoError(t, err)
	require.NoError(t, table.Start())

	require.ErrorIs(t, table.Execute(service.Command{Kind: service.CommandPlay, Index: 3}), consts.ErrorsInputInvalid)
	require.ErrorIs(t, table.Execute(service.Command{Kind: service.CommandPlay, Index: 2}), consts.ErrorsCardNotPlayable)

	require.NoError(t, table.Execute(service.Command{Kind: service.CommandPlay, Index: 1}))
	require.Equal(t, game.PhaseColorSelection, table.Snapshot(service.HumanSeat).Phase)

	require.NoError(t, table.Execute(service.Command{Kind: service.CommandColor, Color: color.Blue}))
	state := table.Snapshot(service.HumanSeat)
	require.Equal(t, game.PhasePlaying, state.Phase)
	require.Equal(t, color.Blue, state.ActiveColor)
	require.Equal(t, 1, state.Current)
}

func TestExecuteStackNeedsColor(t *testing.T) {
	humanWild := card.NewWildDrawFourCard()
	table, err := service.NewTable(service.Options{
		HumanName: "You",
		Seats:     2,
		HandSize:  3,
		Rand:      rand.New(rand.NewSource(1)),
		Deck: []card.Card{
			humanWild, card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Blue, 2),
			card.NewWildDrawFourCard(), card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Green, 2),
			card.NewNumberCard(color.Red, 7),
			card.NewNumberCard(color.Yellow, 3),
		},
	})
	require.NoError(t, err)
	require.NoError(t, table.Start())

	require.NoError(t, table.Execute(service.Command{Kind: service.CommandDraw}))
	acted, err := table.StepBot()
	require.NoError(t, err)
	require.True(t, acted)

	state := table.Snapshot(service.HumanSeat)
	require.Equal(t, game.PhaseChallengeChance, state.Phase)
	require.Equal(t, service.HumanSeat, state.Actor())

	require.ErrorIs(t, table.Execute(service.Command{Kind: service.CommandPlay, Index: 1}), consts.ErrorsColorRequired)
	require.Equal(t, game.PhaseChallengeChance, table.Snapshot(service.HumanSeat).Phase)

	require.NoError(t, table.Execute(service.Command{Kind: service.CommandPlay, Index: 1, Color: color.Blue}))
	state = table.Snapshot(service.HumanSeat)
	require.Equal(t, game.PhaseChallengeChance, state.Phase)
	require.Equal(t, service.HumanSeat, state.PendingSender)
	require.Equal(t, 8, state.DrawStack)
	require.Equal(t, 1, state.Actor())
}
