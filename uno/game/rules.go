package game

import (
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
)

// Playable decides whether candidateCard may be played on topCard.
//
// While a penalty stack is outstanding only cards extending the chain are
// legal: a DrawTwo chain takes a DrawTwo or a WildDrawFour, a WildDrawFour
// chain only takes another WildDrawFour.
//
// Otherwise wild cards are always legal and colored cards must match the
// active color, the top card's value or a played wild's declared color.
// The wild marker itself is never matched as a color.
func Playable(candidateCard card.Card, topCard card.Card, activeColor color.Color, drawStack int) bool {
	if drawStack > 0 {
		switch topCard.Value {
		case card.DrawTwo:
			return candidateCard.Value == card.DrawTwo || candidateCard.Value == card.WildDrawFour
		case card.WildDrawFour:
			return candidateCard.Value == card.WildDrawFour
		default:
			return false
		}
	}

	if candidateCard.IsWild() {
		return true
	}
	if activeColor.Real() && candidateCard.Color == activeColor {
		return true
	}
	if candidateCard.Value == topCard.Value {
		return true
	}
	return topCard.IsWild() && topCard.Declared.Real() && topCard.Declared == candidateCard.Color
}
