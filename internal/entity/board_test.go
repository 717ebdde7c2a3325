package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Winner(t *testing.T) {
	t.Run("Returns PlayerX for a completed row", func(t *testing.T) {
		// Given: X owns the top row
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: evaluating the board
		winner := board.Winner()

		// Then: X should be the winner
		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Returns PlayerX for the main diagonal", func(t *testing.T) {
		// Given: X owns the 0-4-8 diagonal
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			PlayerO, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerX,
		}

		// When: evaluating the board
		winner := board.Winner()

		// Then: X should be the winner
		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Returns PlayerO for a completed column", func(t *testing.T) {
		// Given: O owns the middle column
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerO, PlayerX,
		}

		// When: evaluating the board
		winner := board.Winner()

		// Then: O should be the winner
		assert.Equal(t, PlayerO, winner)
	})

	t.Run("Returns EmptyCell for a full board without a line", func(t *testing.T) {
		// Given: a drawn board
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// When: evaluating the board
		winner := board.Winner()

		// Then: there is no winner and the board is full
		assert.Equal(t, EmptyCell, winner)
		assert.True(t, board.IsFull())
	})

	t.Run("Returns EmptyCell for an empty board", func(t *testing.T) {
		assert.Equal(t, EmptyCell, Board{}.Winner())
		assert.False(t, Board{}.IsFull())
	})

	t.Run("Every combo is detected for both players", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Mark{PlayerX, PlayerO} {
				var board Board
				for _, cell := range combo {
					board[cell] = mark
				}

				assert.Equal(t, mark, board.Winner(), "combo %v", combo)
			}
		}
	})
}

func TestBoard_Place(t *testing.T) {
	// Given: an empty board
	var board Board

	// When: placing X in the center
	next := board.Place(4, PlayerX)

	// Then: the new snapshot has X at 4 and the original is untouched
	assert.Equal(t, PlayerX, next[4])
	assert.Equal(t, Board{}, board)
	assert.Equal(t, []int{4}, board.Diff(next))
}

func TestBoard_IsEmptyCell(t *testing.T) {
	board := Board{}.Place(0, PlayerX)

	assert.False(t, board.IsEmptyCell(0))
	assert.True(t, board.IsEmptyCell(1))
	assert.False(t, board.IsEmptyCell(-1))
	assert.False(t, board.IsEmptyCell(BoardSize))
}

func TestMarkForStep(t *testing.T) {
	assert.Equal(t, PlayerX, MarkForStep(0))
	assert.Equal(t, PlayerO, MarkForStep(1))
	assert.Equal(t, PlayerX, MarkForStep(8))
}

func TestBoard_Strings(t *testing.T) {
	board := Board{}.Place(2, PlayerO)

	strs := board.Strings()

	require.Len(t, strs, BoardSize)
	assert.Equal(t, "O", strs[2])
	assert.Equal(t, "", strs[0])
}
