package game_test

import (
	"testing"

	"github.com/ratel-online/unoparty/uno/card"
	"github.com/ratel-online/unoparty/uno/card/color"
	"github.com/ratel-online/unoparty/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	cards := []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	}
	hand.AddCards(cards)
	require.Equal(t, cards, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{card.NewWildCard()})
	require.False(t, hand.Empty())
}

func TestPlayableCards(t *testing.T) {
	blueFive := card.NewNumberCard(color.Blue, 5)
	greenEight := card.NewNumberCard(color.Green, 8)
	greenSeven := card.NewNumberCard(color.Green, 7)
	wild := card.NewWildCard()
	yellowReverse := card.NewReverseCard(color.Yellow)
	blueDrawTwo := card.NewDrawTwoCard(color.Blue)

	hand := game.NewHand()
	hand.AddCards([]card.Card{blueFive, greenEight, greenSeven, wild, yellowReverse, blueDrawTwo})

	t.Run("normal_regime", func(t *testing.T) {
		playableCards := hand.PlayableCards(card.NewNumberCard(color.Blue, 7), color.Blue, 0)
		require.Equal(t, []card.Card{blueFive, greenSeven, wild, blueDrawTwo}, playableCards)
	})

	t.Run("stacking_regime", func(t *testing.T) {
		playableCards := hand.PlayableCards(card.NewDrawTwoCard(color.Red), color.Red, 2)
		require.Equal(t, []card.Card{blueDrawTwo}, playableCards)
	})
}

func TestRemoveCard(t *testing.T) {
	wild := card.NewWildCard()
	yellowReverse := card.NewReverseCard(color.Yellow)
	blueDrawTwo := card.NewDrawTwoCard(color.Blue)

	t.Run("removes_an_existing_card", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{wild, yellowReverse, blueDrawTwo})

		removed, ok := hand.RemoveCard(yellowReverse.ID)
		require.True(t, ok)
		require.Equal(t, yellowReverse, removed)
		require.Equal(t, []card.Card{wild, blueDrawTwo}, hand.Cards())
	})

	t.Run("does_nothing_if_card_is_not_in_hand", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{wild, yellowReverse})

		_, ok := hand.RemoveCard(blueDrawTwo.ID)
		require.False(t, ok)
		require.Equal(t, []card.Card{wild, yellowReverse}, hand.Cards())
	})

	t.Run("removes_a_single_copy_of_equal_faces", func(t *testing.T) {
		first := card.NewNumberCard(color.Red, 6)
		second := card.NewNumberCard(color.Red, 6)
		hand := game.NewHand()
		hand.AddCards([]card.Card{wild, first, second})

		hand.RemoveCard(first.ID)
		require.Equal(t, []card.Card{wild, second}, hand.Cards())
	})
}

func TestHasColor(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{card.NewWildCard(), card.NewSkipCard(color.Green)})
	require.True(t, hand.HasColor(color.Green))
	require.False(t, hand.HasColor(color.Red))
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	})
	require.Equal(t, 3, hand.Size())
}
