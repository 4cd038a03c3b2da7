package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tabletop/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Mark is the content of a cell. A non-empty Mark is also a player's piece.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// WinCombos lists every winning line as board indexes.
var WinCombos = [...][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) IsPiece() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's piece. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// CellIndex converts a row and column into a board index (row*3+col).
func CellIndex(row, col int) (int, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0, fmt.Errorf("%w: row %d col %d", apperror.ErrCellOutOfRange, row, col)
	}

	return row*BoardSize + col, nil
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board struct {
	cells [CellCount]Mark
}

func validateIndex(index int) error {
	if index < 0 || index >= CellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOutOfRange, index)
	}

	return nil
}

func (that *Board) CellState(index int) (Mark, error) {
	if err := validateIndex(index); err != nil {
		return EmptyCell, err
	}

	return that.cells[index], nil
}

// IsEmpty reports whether the cell holds no piece. Out of range cells are never empty.
func (that *Board) IsEmpty(index int) bool {
	mark, err := that.CellState(index)
	return err == nil && mark == EmptyCell
}

// PlacePiece claims an empty cell for piece. The board is left untouched on error.
func (that *Board) PlacePiece(index int, piece Mark) error {
	if err := validateIndex(index); err != nil {
		return err
	}

	if !piece.IsPiece() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPiece, piece)
	}

	if that.cells[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that.cells[index] = piece

	return nil
}

func (that *Board) EvaluateOutcome() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return WinOutcome(a)
		}
	}

	// the game goes on while any cell is free
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return Outcome{Kind: InProgress}
		}
	}

	return Outcome{Kind: Draw}
}

func (that *Board) Reset() {
	that.cells = [CellCount]Mark{}
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [CellCount]Mark {
	return that.cells
}

// Occupied returns how many cells hold a piece.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}
