package game

import (
	"github.com/ratel-online/unoparty/uno/card"
)

// Pile is the discard pile. The last element is the top card.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

// Cards returns the pile most recent first.
func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, 0, len(p.cards))
	for i := len(p.cards) - 1; i >= 0; i-- {
		cards = append(cards, p.cards[i])
	}
	return cards
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// Recycle takes every card except the top one out of the pile.
func (p *Pile) Recycle() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	recycled := make([]card.Card, len(p.cards)-1)
	copy(recycled, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return recycled
}
