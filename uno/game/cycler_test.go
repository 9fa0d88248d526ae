package game_test

import (
	"testing"

	"github.com/ratel-online/unoparty/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	assert.Equal(t, 1, cycler.Direction())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, -1, cycler.Direction())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Peek())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 0, cycler.Next())
}

func TestNextSeatIsAPermutation(t *testing.T) {
	for seats := 2; seats <= 8; seats++ {
		for _, direction := range []int{1, -1} {
			visited := make(map[int]bool)
			for current := 0; current < seats; current++ {
				next := game.NextSeat(current, direction, seats)
				require.GreaterOrEqual(t, next, 0)
				require.Less(t, next, seats)
				visited[next] = true
			}
			require.Len(t, visited, seats)

			seat := 0
			for step := 0; step < seats; step++ {
				seat = game.NextSeat(seat, direction, seats)
			}
			require.Equal(t, 0, seat, "a full cycle returns to the start")
		}
	}
}
