package card

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/unoparty/uno/card/action"
	"github.com/ratel-online/unoparty/uno/card/color"
)

type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

func (v Value) IsNumber() bool {
	return v >= Zero && v <= Nine
}

func (v Value) IsWild() bool {
	return v == Wild || v == WildDrawFour
}

func (v Value) String() string {
	if v.IsNumber() {
		return fmt.Sprintf("%d", int(v))
	}
	switch v {
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case DrawTwo:
		return "draw2"
	case Wild:
		return "wild"
	case WildDrawFour:
		return "wild_draw4"
	default:
		return fmt.Sprintf("invalid(%d)", int(v))
	}
}

// Card is a single physical card. Declared is color.None until a wild card
// is played, then it records the color the player chose.
type Card struct {
	ID       string      `json:"id"`
	Color    color.Color `json:"color"`
	Value    Value       `json:"value"`
	Declared color.Color `json:"declared,omitempty"`
}

func New(cardColor color.Color, value Value) Card {
	return Card{
		ID:    uuid.NewString(),
		Color: cardColor,
		Value: value,
	}
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return New(cardColor, Value(number))
}

func NewSkipCard(cardColor color.Color) Card {
	return New(cardColor, Skip)
}

func NewReverseCard(cardColor color.Color) Card {
	return New(cardColor, Reverse)
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return New(cardColor, DrawTwo)
}

func NewWildCard() Card {
	return New(color.Wild, Wild)
}

func NewWildDrawFourCard() Card {
	return New(color.Wild, WildDrawFour)
}

func (c Card) IsWild() bool {
	return c.Color == color.Wild
}

// Effective is the color the card counts as on the discard pile.
func (c Card) Effective() color.Color {
	if c.IsWild() {
		return c.Declared
	}
	return c.Color
}

func (c Card) Actions() []action.Action {
	switch c.Value {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
			action.NewOpenChallengeAction(),
		}
	default:
		return []action.Action{}
	}
}

// Equal compares faces, ignoring identity and declared color.
func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Value == other.Value
}

// Face is the color/value pair used when comparing deck compositions.
func (c Card) Face() string {
	return fmt.Sprintf("%s %s", c.Color.Name(), c.Value)
}

func (c Card) String() string {
	var label string
	switch c.Value {
	case Skip:
		label = "(/)"
	case Reverse:
		label = "<=>"
	case DrawTwo:
		label = "+2!"
	case Wild:
		label = "(*)"
	case WildDrawFour:
		label = "+4!"
	default:
		label = fmt.Sprintf("[%d]", int(c.Value))
	}
	if c.IsWild() && c.Declared.Real() {
		return c.Declared.Paint(label) + fmt.Sprintf("(%s)", c.Declared.Name())
	}
	return c.Color.Paint(label)
}
