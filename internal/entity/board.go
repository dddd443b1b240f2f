package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const (
	Rows    = 3
	Columns = 3
	Size    = Rows * Columns
)

// WinCombos lists every line of three linear positions that wins the game.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a fixed 3x3 grid. Row 0 is the top row, column 0 the left-most column.
type Board struct {
	cells [Rows][Columns]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// ToRowColumn maps a linear position 0..8 to its row and column.
func ToRowColumn(position int) (int, int, error) {
	if position < 0 || position >= Size {
		return 0, 0, fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	return position / Columns, position % Columns, nil
}

// PlaceMark puts mark on the cell at position and reports whether it did.
// Placing on an occupied cell is a no-op: false with a nil error.
func (that *Board) PlaceMark(position int, mark Mark) (bool, error) {
	row, col, err := ToRowColumn(position)
	if err != nil {
		return false, err
	}

	if !mark.IsValid() || mark == Empty {
		return false, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	cell := &that.cells[row][col]
	if !cell.IsEmpty() {
		return false, nil
	}

	cell.SetMark(mark)

	return true, nil
}

// Winner returns the mark that completed a line, or Empty.
func (that *Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that.at(combo[0]), that.at(combo[1]), that.at(combo[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

func (that *Board) CheckWinner() bool {
	return that.Winner() != Empty
}

func (that *Board) BoardFull() bool {
	for row := range that.cells {
		for col := range that.cells[row] {
			if that.cells[row][col].IsEmpty() {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	for row := range that.cells {
		for col := range that.cells[row] {
			that.cells[row][col].SetMark(Empty)
		}
	}
}

// Cells returns a copy of the grid for rendering.
func (that *Board) Cells() [Rows][Columns]Mark {
	var view [Rows][Columns]Mark
	for row := range that.cells {
		for col := range that.cells[row] {
			view[row][col] = that.cells[row][col].Mark()
		}
	}

	return view
}

func (that *Board) at(position int) Mark {
	return that.cells[position/Columns][position%Columns].Mark()
}
