package game

import (
	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Find(id string) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.ID == id {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) HasColor(c color.Color) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Color == c {
			return true
		}
	}
	return false
}

func (h *Hand) PlayableCards(topCard card.Card, activeColor color.Color, drawStack int) []card.Card {
	return PlayableCards(h.cards, topCard, activeColor, drawStack)
}

// RemoveCard removes the card with the given id, keeping the order of the
// remaining cards.
func (h *Hand) RemoveCard(id string) (card.Card, bool) {
	for index, cardInHand := range h.cards {
		if cardInHand.ID == id {
			h.cards = append(h.cards[:index:index], h.cards[index+1:]...)
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// PlayableCards filters cards, in order, down to the legal plays.
func PlayableCards(cards []card.Card, topCard card.Card, activeColor color.Color, drawStack int) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range cards {
		if Playable(candidateCard, topCard, activeColor, drawStack) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
