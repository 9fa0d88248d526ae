package render

import (
	"bytes"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ratel-online/unoparty/uno/game"
)

// Players renders the seats as a table. The seat expected to act is marked.
func Players(state game.State) string {
	t := table.NewWriter()
	t.SetTitle("Table")
	t.AppendHeader(table.Row{"Seat", "Player", "Cards", "UNO"})
	actor := state.Actor()
	for _, player := range state.Players {
		name := player.Name
		if player.Seat == actor {
			name = "> " + name
		}
		uno := ""
		if player.HasDeclared {
			uno = "UNO!"
		}
		t.AppendRow(table.Row{player.Seat + 1, name, player.HandSize, uno})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return t.Render()
}

// Hand renders seat's cards with the index a play command takes.
func Hand(state game.State, seat int) string {
	if seat < 0 || seat >= len(state.Players) {
		return ""
	}
	playable := map[string]bool{}
	for _, c := range state.Playable(seat) {
		playable[c.ID] = true
	}

	t := table.NewWriter()
	t.SetTitle("Your hand")
	t.AppendHeader(table.Row{"#", "Card", "Playable"})
	for i, c := range state.Players[seat].Hand {
		mark := ""
		if playable[c.ID] {
			mark = "*"
		}
		t.AppendRow(table.Row{i + 1, c.String(), mark})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignCenter},
	})
	return t.Render()
}

// Status is the pile and phase summary shown above the tables.
func Status(state game.State) string {
	buf := bytes.Buffer{}
	top := state.Top()
	if top.ID != "" {
		buf.WriteString(fmt.Sprintf("Top card: %s\n", top))
	}
	buf.WriteString(fmt.Sprintf("Active color: %s\n", state.ActiveColor.Paint(state.ActiveColor.Name())))
	if state.DrawStack > 0 {
		buf.WriteString(fmt.Sprintf("Penalty stack: +%d\n", state.DrawStack))
	}
	buf.WriteString(fmt.Sprintf("Draw pile: %d\n", state.DrawPileSize))
	switch state.Phase {
	case game.PhaseColorSelection:
		buf.WriteString("Choose a color: color <red|blue|green|yellow>, or cancel\n")
	case game.PhaseChallengeChance:
		buf.WriteString(fmt.Sprintf("%s played Wild Draw 4. %s may challenge, accept or stack with play <n> <color>.\n",
			state.Players[state.PendingSender].Name, state.Players[state.Actor()].Name))
	case game.PhaseGameOver:
		if state.Winner != game.NoSeat {
			buf.WriteString(fmt.Sprintf("Game over, %s won.\n", state.Players[state.Winner].Name))
		}
		buf.WriteString("Type new to play again.\n")
	}
	return buf.String()
}

// Screen is the whole view of the game for seat.
func Screen(state game.State, seat int) string {
	buf := bytes.Buffer{}
	buf.WriteString(Status(state))
	buf.WriteString(Players(state))
	buf.WriteString("\n")
	if hand := Hand(state, seat); hand != "" {
		buf.WriteString(hand)
		buf.WriteString("\n")
	}
	return buf.String()
}

func Help() string {
	t := table.NewWriter()
	t.SetTitle("Commands")
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendRows([]table.Row{
		{"play <n> [color]", "p, <n>", "Play the n-th card of your hand."},
		{"draw", "d", "Draw a card, or take the penalty stack, and pass."},
		{"uno", "u", "Declare your last card."},
		{"accuse", "a", "Accuse players holding one card without UNO."},
		{"challenge", "c", "Challenge a Wild Draw 4 played on you."},
		{"accept", "ok", "Accept a Wild Draw 4 played on you."},
		{"color <c>", "", "Declare the color of the selected wild."},
		{"cancel", "", "Put the selected wild back."},
		{"new", "again", "Start a new game once this one is over."},
		{"help", "h", "Show this table."},
	})
	t.SetStyle(table.StyleLight)
	return t.Render()
}
