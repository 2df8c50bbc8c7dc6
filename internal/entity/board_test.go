package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transpose mirrors a board across its main diagonal, so winning columns
// become winning rows.
func transpose(board Board) Board {
	var result Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			result[col][row] = board[row][col]
		}
	}
	return result
}

func TestBoard_IsValidMove(t *testing.T) {
	t.Run("Valid on an empty in-range cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// Then: every in-range cell is a valid target
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				assert.True(t, board.IsValidMove(row, col))
			}
		}
	})

	t.Run("Invalid on an occupied cell", func(t *testing.T) {
		// Given: a board with one cell taken
		board := Board{}
		board.ApplyMove(1, 1, SymbolX)

		// Then: that cell is no longer a valid target
		assert.False(t, board.IsValidMove(1, 1))
	})

	t.Run("Invalid out of range", func(t *testing.T) {
		board := Board{}

		assert.False(t, board.IsValidMove(-1, 0))
		assert.False(t, board.IsValidMove(0, -1))
		assert.False(t, board.IsValidMove(BoardSize, 0))
		assert.False(t, board.IsValidMove(0, BoardSize))
	})
}

func TestBoard_Evaluate(t *testing.T) {
	t.Run("Detects a winning row", func(t *testing.T) {
		// Given: X holds the top row
		board := Board{
			{SymbolX, SymbolX, SymbolX},
			{SymbolO, SymbolO, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// Then: X wins
		assert.Equal(t, SymbolX, board.Evaluate())
	})

	t.Run("Detects a winning column", func(t *testing.T) {
		// Given: O holds the middle column
		board := Board{
			{SymbolX, SymbolO, EmptyCell},
			{SymbolX, SymbolO, EmptyCell},
			{EmptyCell, SymbolO, SymbolX},
		}

		// Then: O wins
		assert.Equal(t, SymbolO, board.Evaluate())
	})

	t.Run("Detects both diagonals", func(t *testing.T) {
		// Given: X holds the main diagonal
		main := Board{
			{SymbolX, SymbolO, EmptyCell},
			{SymbolO, SymbolX, EmptyCell},
			{EmptyCell, EmptyCell, SymbolX},
		}
		assert.Equal(t, SymbolX, main.Evaluate())

		// And: O holds the anti-diagonal
		anti := Board{
			{SymbolX, EmptyCell, SymbolO},
			{SymbolX, SymbolO, EmptyCell},
			{SymbolO, EmptyCell, EmptyCell},
		}
		assert.Equal(t, SymbolO, anti.Evaluate())
	})

	t.Run("Win detection is symmetric under transposition", func(t *testing.T) {
		// Given: boards with a winning row, column or diagonal
		boards := []Board{
			{
				{SymbolX, SymbolX, SymbolX},
				{SymbolO, SymbolO, EmptyCell},
				{EmptyCell, EmptyCell, EmptyCell},
			},
			{
				{SymbolO, SymbolX, EmptyCell},
				{SymbolO, SymbolX, EmptyCell},
				{SymbolO, EmptyCell, SymbolX},
			},
			{
				{SymbolX, SymbolO, EmptyCell},
				{SymbolO, SymbolX, EmptyCell},
				{EmptyCell, EmptyCell, SymbolX},
			},
		}

		// Then: the transposed board reports the same winner
		for _, board := range boards {
			transposed := transpose(board)
			assert.Equal(t, board.Evaluate(), transposed.Evaluate())
		}
	})

	t.Run("Win takes priority over draw on a full board", func(t *testing.T) {
		// Given: a full board that also completes a line for O
		board := Board{
			{SymbolO, SymbolX, SymbolX},
			{SymbolX, SymbolO, SymbolX},
			{SymbolX, SymbolO, SymbolO},
		}

		// Then: the result is a win, not a draw
		assert.Equal(t, SymbolO, board.Evaluate())
	})

	t.Run("Full board with no line is a draw", func(t *testing.T) {
		// Given: a full board where no symbol completes a line
		board := Board{
			{SymbolX, SymbolO, SymbolX},
			{SymbolO, SymbolX, SymbolO},
			{SymbolO, SymbolX, SymbolO},
		}

		// Then: the result is a draw and nothing else
		assert.Equal(t, WinnerDraw, board.Evaluate())
	})

	t.Run("Open board is ongoing", func(t *testing.T) {
		// Given: a board with moves left and no winner
		board := Board{
			{SymbolX, SymbolO, EmptyCell},
			{EmptyCell, SymbolX, EmptyCell},
			{EmptyCell, EmptyCell, SymbolO},
		}

		// Then: the game is still open
		assert.Equal(t, EmptyCell, board.Evaluate())
	})
}

func TestBoard_Rows(t *testing.T) {
	// Given: a board with one move applied
	board := Board{}
	board.ApplyMove(0, 2, SymbolO)

	// When: converting to the wire shape
	rows := board.Rows()

	// Then: the copy matches and mutating it does not touch the board
	require.Len(t, rows, BoardSize)
	assert.Equal(t, SymbolO, rows[0][2])

	rows[0][0] = SymbolX
	assert.Equal(t, EmptyCell, board[0][0])
}

func TestSymbols(t *testing.T) {
	assert.True(t, IsValidSymbol(SymbolX))
	assert.True(t, IsValidSymbol(SymbolO))
	assert.False(t, IsValidSymbol(""))
	assert.False(t, IsValidSymbol("Z"))

	assert.Equal(t, SymbolO, OppositeSymbol(SymbolX))
	assert.Equal(t, SymbolX, OppositeSymbol(SymbolO))
}
