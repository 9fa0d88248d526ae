package service

import (
	"strconv"
	"strings"

	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/game"
)

type CommandKind int

const (
	CommandPlay CommandKind = iota + 1
	CommandDraw
	CommandDeclare
	CommandAccuse
	CommandChallenge
	CommandAccept
	CommandColor
	CommandCancel
	CommandHelp
	CommandRestart
)

// Command is a parsed line of human input. Index is 1-based into the hand.
type Command struct {
	Kind  CommandKind
	Index int
	Color color.Color
}

var commandAliases = map[string]CommandKind{
	"play":      CommandPlay,
	"p":         CommandPlay,
	"draw":      CommandDraw,
	"d":         CommandDraw,
	"uno":       CommandDeclare,
	"u":         CommandDeclare,
	"accuse":    CommandAccuse,
	"a":         CommandAccuse,
	"challenge": CommandChallenge,
	"c":         CommandChallenge,
	"accept":    CommandAccept,
	"ok":        CommandAccept,
	"color":     CommandColor,
	"cancel":    CommandCancel,
	"help":      CommandHelp,
	"h":         CommandHelp,
	"new":       CommandRestart,
	"again":     CommandRestart,
}

// ParseCommand understands "play 3", "play 3 red", "draw", "uno",
// "accuse", "challenge", "accept", "color blue", "cancel", "new" and "help".
// A bare number is short for play.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, consts.ErrorsInputInvalid
	}
	if _, err := strconv.Atoi(fields[0]); err == nil {
		fields = append([]string{"play"}, fields...)
	}

	kind, ok := commandAliases[fields[0]]
	if !ok {
		return Command{}, consts.ErrorsUnknownCommand
	}
	command := Command{Kind: kind}
	args := fields[1:]

	switch kind {
	case CommandPlay:
		if len(args) == 0 || len(args) > 2 {
			return Command{}, consts.ErrorsInputInvalid
		}
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 1 {
			return Command{}, consts.ErrorsInputInvalid
		}
		command.Index = index
		if len(args) == 2 {
			if command.Color, err = color.ByName(args[1]); err != nil {
				return Command{}, consts.ErrorsInputInvalid
			}
		}
	case CommandColor:
		if len(args) != 1 {
			return Command{}, consts.ErrorsInputInvalid
		}
		declared, err := color.ByName(args[0])
		if err != nil {
			return Command{}, consts.ErrorsInputInvalid
		}
		command.Color = declared
	default:
		if len(args) != 0 {
			return Command{}, consts.ErrorsInputInvalid
		}
	}
	return command, nil
}

// Execute applies command for the human seat. A wild played without a
// color opens the color selection, which only a turn in play allows: a wild
// draw four stacked on a pending one needs its color in the command.
func (t *Table) Execute(command Command) error {
	switch command.Kind {
	case CommandPlay:
		state := t.Snapshot(HumanSeat)
		hand := state.Players[HumanSeat].Hand
		if command.Index > len(hand) {
			return consts.ErrorsInputInvalid
		}
		selected := hand[command.Index-1]
		if selected.IsWild() && command.Color == color.None {
			if state.Phase == game.PhaseChallengeChance && state.Actor() == HumanSeat {
				return consts.ErrorsColorRequired
			}
			return t.RequestSelectWild(HumanSeat, selected.ID)
		}
		return t.RequestPlay(HumanSeat, selected.ID, command.Color)
	case CommandDraw:
		return t.RequestDraw(HumanSeat)
	case CommandDeclare:
		return t.RequestDeclare(HumanSeat)
	case CommandAccuse:
		_, err := t.RequestAccuse(HumanSeat)
		return err
	case CommandChallenge, CommandAccept:
		return t.RequestChallengeDecision(HumanSeat, command.Kind == CommandChallenge)
	case CommandColor:
		return t.RequestColor(HumanSeat, command.Color)
	case CommandCancel:
		return t.CancelColor(HumanSeat)
	case CommandRestart:
		return t.Restart()
	case CommandHelp:
		return nil
	default:
		return consts.ErrorsUnknownCommand
	}
}
