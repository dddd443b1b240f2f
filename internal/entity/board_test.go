package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill builds a board from a row-major list of marks.
func fill(t *testing.T, marks [Size]Mark) *Board {
	t.Helper()

	board := NewBoard()
	for position, mark := range marks {
		if mark == Empty {
			continue
		}
		place(t, board, position, mark)
	}

	return board
}

// place puts mark on an empty cell and fails the test if nothing was placed.
func place(t *testing.T, board *Board, position int, mark Mark) {
	t.Helper()

	placed, err := board.PlaceMark(position, mark)
	require.NoError(t, err)
	require.True(t, placed, "position %d", position)
}

func TestBoard_PlaceMark(t *testing.T) {
	t.Run("Sets exactly the target cell for every position", func(t *testing.T) {
		for position := 0; position < Size; position++ {
			// Given: an empty board
			board := NewBoard()

			// When: a mark is placed at the position
			placed, err := board.PlaceMark(position, PlayerOne)
			require.NoError(t, err)
			require.True(t, placed)

			// Then: only that cell holds the mark
			cells := board.Cells()
			for row := 0; row < Rows; row++ {
				for col := 0; col < Columns; col++ {
					expected := Empty
					if row == position/3 && col == position%3 {
						expected = PlayerOne
					}
					assert.Equal(t, expected, cells[row][col], "position %d, cell %d:%d", position, row, col)
				}
			}
		}
	})

	t.Run("Occupied cell is left unchanged", func(t *testing.T) {
		// Given: a board with Player One at position 4
		board := NewBoard()
		place(t, board, 4, PlayerOne)
		before := board.Cells()

		// When: Player Two tries the same cell repeatedly
		for i := 0; i < 3; i++ {
			placed, err := board.PlaceMark(4, PlayerTwo)

			// Then: nothing is reported as placed
			require.NoError(t, err)
			assert.False(t, placed)
		}

		// Then: the board is unchanged
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Error on position out of range", func(t *testing.T) {
		for _, position := range []int{-1, 9, 20} {
			// Given: an empty board
			board := NewBoard()

			// When: an invalid position is passed
			placed, err := board.PlaceMark(position, PlayerOne)

			// Then: ErrInvalidPosition is returned and nothing changes
			require.ErrorIs(t, err, apperror.ErrInvalidPosition)
			assert.False(t, placed)
			assert.Equal(t, [Rows][Columns]Mark{}, board.Cells())
		}
	})

	t.Run("Error on empty or unknown mark", func(t *testing.T) {
		for _, mark := range []Mark{Empty, Mark(7), Mark(-1)} {
			// Given: an empty board
			board := NewBoard()

			// When: placing a mark no player owns
			placed, err := board.PlaceMark(0, mark)

			// Then: ErrInvalidMark is returned and the board is untouched
			require.ErrorIs(t, err, apperror.ErrInvalidMark)
			assert.False(t, placed)
			assert.Equal(t, [Rows][Columns]Mark{}, board.Cells())
		}
	})
}

func TestToRowColumn(t *testing.T) {
	for position := 0; position < Size; position++ {
		row, col, err := ToRowColumn(position)
		require.NoError(t, err)
		assert.Equal(t, position/3, row)
		assert.Equal(t, position%3, col)
	}

	_, _, err := ToRowColumn(Size)
	require.ErrorIs(t, err, apperror.ErrInvalidPosition)
}

func TestBoard_CheckWinner(t *testing.T) {
	t.Run("Every line wins when filled uniformly", func(t *testing.T) {
		for _, mark := range []Mark{PlayerOne, PlayerTwo} {
			for _, combo := range WinCombos {
				// Given: a board with one line filled by a single mark
				board := NewBoard()
				for _, position := range combo {
					place(t, board, position, mark)
				}

				// When: checking for a winner
				won := board.CheckWinner()

				// Then: the line is detected
				assert.True(t, won, "combo %v", combo)
				assert.Equal(t, mark, board.Winner())
			}
		}
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.CheckWinner())
		assert.Equal(t, Empty, board.Winner())
	})

	t.Run("Mixed line does not win", func(t *testing.T) {
		// Given: a top row of o x o
		board := fill(t, [Size]Mark{
			PlayerOne, PlayerTwo, PlayerOne,
			Empty, Empty, Empty,
			Empty, Empty, Empty,
		})

		// Then: no winner
		assert.False(t, board.CheckWinner())
	})

	t.Run("Full board without a line has no winner", func(t *testing.T) {
		// Given: o x o / o x x / x o o
		board := fill(t, [Size]Mark{
			PlayerOne, PlayerTwo, PlayerOne,
			PlayerOne, PlayerTwo, PlayerTwo,
			PlayerTwo, PlayerOne, PlayerOne,
		})

		// Then: no winner and the board is full
		assert.False(t, board.CheckWinner())
		assert.True(t, board.BoardFull())
	})
}

func TestBoard_BoardFull(t *testing.T) {
	marks := [Size]Mark{
		PlayerOne, PlayerTwo, PlayerOne,
		PlayerOne, PlayerTwo, PlayerTwo,
		PlayerTwo, PlayerOne, PlayerOne,
	}

	board := NewBoard()
	for position := 0; position < Size; position++ {
		assert.False(t, board.BoardFull(), "%d cells filled", position)
		place(t, board, position, marks[position])
	}

	assert.True(t, board.BoardFull())
}

func TestBoard_Reset(t *testing.T) {
	// Given: a full board
	board := fill(t, [Size]Mark{
		PlayerOne, PlayerTwo, PlayerOne,
		PlayerOne, PlayerTwo, PlayerTwo,
		PlayerTwo, PlayerOne, PlayerOne,
	})

	// When: the board is reset
	board.Reset()

	// Then: every cell is empty again
	assert.Equal(t, [Rows][Columns]Mark{}, board.Cells())
	assert.False(t, board.BoardFull())
}

func TestBoard_CellsIsACopy(t *testing.T) {
	// Given: a board and its rendered view
	board := NewBoard()
	view := board.Cells()

	// When: the view is modified
	view[0][0] = PlayerTwo

	// Then: the board is untouched
	assert.Equal(t, Empty, board.Cells()[0][0])
}

func TestMark_Symbol(t *testing.T) {
	assert.Equal(t, "-", Empty.Symbol())
	assert.Equal(t, "o", PlayerOne.Symbol())
	assert.Equal(t, "x", PlayerTwo.Symbol())
	assert.True(t, Empty.IsValid())
	assert.False(t, Mark(7).IsValid())
}
