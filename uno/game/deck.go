package game

import (
	"math/rand"

	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
)

const standardDeckSize = 108

// Deck is the draw pile. Cards are drawn from the front.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{cards: BuildDeck(rng), rng: rng}
}

// NewStackedDeck uses cards in the given order, without shuffling.
func NewStackedDeck(rng *rand.Rand, cards []card.Card) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: rng}
}

// BuildDeck returns the 108 standard cards, shuffled.
func BuildDeck(rng *rand.Rand) []card.Card {
	cards := make([]card.Card, 0, standardDeckSize)

	cards = append(cards, createBlackCards()...)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}

	shuffleCards(rng, cards)
	return cards
}

// Draw removes the first amount cards of pile. It never returns more cards
// than the pile holds.
func Draw(pile []card.Card, amount int) (drawn []card.Card, remaining []card.Card) {
	if amount > len(pile) {
		amount = len(pile)
	}
	if amount < 0 {
		amount = 0
	}
	drawn = make([]card.Card, amount)
	copy(drawn, pile[:amount])
	return drawn, pile[amount:]
}

func (d *Deck) Draw(amount int) []card.Card {
	drawn, remaining := Draw(d.cards, amount)
	d.cards = remaining
	return drawn
}

// Refill shuffles cards back into the deck. Declared colors are cleared,
// the cards are undealt again.
func (d *Deck) Refill(cards []card.Card) {
	recycled := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		c.Declared = color.None
		recycled = append(recycled, c)
	}
	shuffleCards(d.rng, recycled)
	d.cards = append(d.cards, recycled...)
}

// PutBack returns a card to the deck and reshuffles the whole deck.
func (d *Deck) PutBack(c card.Card) {
	d.cards = append(d.cards, c)
	shuffleCards(d.rng, d.cards)
}

// Only reports whether every card left in the deck has value.
func (d *Deck) Only(value card.Value) bool {
	for _, c := range d.cards {
		if c.Value != value {
			return false
		}
	}
	return true
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for copies := 0; copies < 2; copies++ {
		for number := 1; number <= 9; number++ {
			cards = append(cards, card.NewNumberCard(cardColor, number))
		}
		cards = append(cards,
			card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
	}

	return cards
}

func createBlackCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}

// shuffleCards is a Fisher-Yates shuffle.
func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
