package player

import (
	"math/rand"

	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/game"
)

type Kind int

const (
	// Wait means the seat has nothing to do right now.
	Wait Kind = iota
	Play
	Draw
	Challenge
	Accept
)

func (k Kind) String() string {
	switch k {
	case Play:
		return "play"
	case Draw:
		return "draw"
	case Challenge:
		return "challenge"
	case Accept:
		return "accept"
	default:
		return "wait"
	}
}

// Decision is what a bot wants to do. It is applied, and validated, by
// whoever owns the game; Declare and Accuse come before the main action.
type Decision struct {
	Seat    int
	Kind    Kind
	CardID  string
	Color   color.Color
	Declare bool
	Accuse  bool
}

// Tuning holds the probabilities that make bots imperfect.
type Tuning struct {
	DeclareProbability   float64 `json:"declare_probability"`
	AccuseProbability    float64 `json:"accuse_probability"`
	ChallengeProbability float64 `json:"challenge_probability"`
}

func DefaultTuning() Tuning {
	return Tuning{
		DeclareProbability:   0.9,
		AccuseProbability:    0.5,
		ChallengeProbability: 0.25,
	}
}

type Bot struct {
	seat   int
	rng    *rand.Rand
	tuning Tuning
}

func NewBot(seat int, rng *rand.Rand, tuning Tuning) *Bot {
	return &Bot{seat: seat, rng: rng, tuning: tuning}
}

func (b *Bot) Seat() int {
	return b.seat
}

// Decide looks at a snapshot and picks the bot's next move. It never
// touches the game itself.
func (b *Bot) Decide(state game.State) Decision {
	decision := Decision{Seat: b.seat, Kind: Wait}
	if state.Actor() != b.seat {
		return decision
	}
	hand := state.Players[b.seat].Hand

	if state.Phase == game.PhaseChallengeChance {
		for _, c := range hand {
			if c.Value == card.WildDrawFour {
				decision.Kind = Play
				decision.CardID = c.ID
				decision.Color = PickColor(hand)
				return decision
			}
		}
		decision.Kind = Accept
		if b.rng.Float64() < b.tuning.ChallengeProbability {
			decision.Kind = Challenge
		}
		return decision
	}
	if state.Phase != game.PhasePlaying {
		return decision
	}

	if len(hand) == 2 && b.rng.Float64() < b.tuning.DeclareProbability {
		decision.Declare = true
	}
	if hasMissedDeclaration(state, b.seat) && b.rng.Float64() < b.tuning.AccuseProbability {
		decision.Accuse = true
	}

	playable := state.Playable(b.seat)
	if len(playable) == 0 {
		decision.Kind = Draw
		return decision
	}

	chosen := choose(playable)
	decision.Kind = Play
	decision.CardID = chosen.ID
	if chosen.IsWild() {
		decision.Color = PickColor(hand)
	}
	return decision
}

// choose prefers wild draw four, then draw two, then skip or reverse, then
// the first legal card.
func choose(playable []card.Card) card.Card {
	preferences := []func(card.Card) bool{
		func(c card.Card) bool { return c.Value == card.WildDrawFour },
		func(c card.Card) bool { return c.Value == card.DrawTwo },
		func(c card.Card) bool { return c.Value == card.Skip || c.Value == card.Reverse },
	}
	for _, preferred := range preferences {
		for _, c := range playable {
			if preferred(c) {
				return c
			}
		}
	}
	return playable[0]
}

// PickColor returns the color held most among the non-wild cards. Ties go
// to the earlier color in Red, Blue, Green, Yellow order.
func PickColor(hand []card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, c := range hand {
		if !c.IsWild() {
			colorCounts[c.Color]++
		}
	}

	mostFrequentColor := color.All[0]
	for _, availableColor := range color.All[1:] {
		if colorCounts[availableColor] > colorCounts[mostFrequentColor] {
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}

func hasMissedDeclaration(state game.State, accuser int) bool {
	for _, player := range state.Players {
		if player.Seat != accuser && player.HandSize == 1 && !player.HasDeclared {
			return true
		}
	}
	return false
}
