package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/game"
	"github.com/stretchr/testify/require"
)

func faces(cards []card.Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[c.Face()]++
	}
	return counts
}

func standardFaces() map[string]int {
	counts := map[string]int{
		card.NewWildCard().Face():         4,
		card.NewWildDrawFourCard().Face(): 4,
	}
	for _, c := range color.All {
		counts[card.NewNumberCard(c, 0).Face()] = 1
		for number := 1; number <= 9; number++ {
			counts[card.NewNumberCard(c, number).Face()] = 2
		}
		counts[card.NewSkipCard(c).Face()] = 2
		counts[card.NewReverseCard(c).Face()] = 2
		counts[card.NewDrawTwoCard(c).Face()] = 2
	}
	return counts
}

func TestBuildDeck(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cards := game.BuildDeck(rand.New(rand.NewSource(seed)))
		require.Len(t, cards, 108)
		require.Equal(t, standardFaces(), faces(cards))

		ids := make(map[string]bool)
		for _, c := range cards {
			require.Equal(t, color.None, c.Declared)
			ids[c.ID] = true
		}
		require.Len(t, ids, 108)
	}
}

func TestDraw(t *testing.T) {
	pile := []card.Card{
		card.NewNumberCard(color.Red, 1),
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Red, 3),
	}

	t.Run("returns_the_first_cards", func(t *testing.T) {
		drawn, remaining := game.Draw(pile, 2)
		require.Equal(t, pile[:2], drawn)
		require.Equal(t, pile[2:], remaining)
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		drawn, remaining := game.Draw(pile, 0)
		require.Empty(t, drawn)
		require.Len(t, remaining, 3)
	})

	t.Run("never_returns_more_than_the_pile_holds", func(t *testing.T) {
		drawn, remaining := game.Draw(pile, 5)
		require.Len(t, drawn, 3)
		require.Empty(t, remaining)
	})
}

func TestDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("draws_from_the_front_of_a_stacked_deck", func(t *testing.T) {
		first := card.NewSkipCard(color.Blue)
		second := card.NewWildCard()
		deck := game.NewStackedDeck(rng, []card.Card{first, second})

		require.Equal(t, []card.Card{first}, deck.Draw(1))
		require.Equal(t, 1, deck.Size())
	})

	t.Run("refill_clears_declared_colors", func(t *testing.T) {
		wild := card.NewWildCard()
		wild.Declared = color.Green
		deck := game.NewStackedDeck(rng, nil)

		deck.Refill([]card.Card{wild})
		require.Equal(t, 1, deck.Size())
		require.Equal(t, color.None, deck.Cards()[0].Declared)
		require.Equal(t, wild.ID, deck.Cards()[0].ID)
	})

	t.Run("put_back_keeps_every_card", func(t *testing.T) {
		deck := game.NewDeck(rng)
		drawn := deck.Draw(1)
		deck.PutBack(drawn[0])
		require.Equal(t, standardFaces(), faces(deck.Cards()))
	})
}
