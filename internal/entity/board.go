package entity

const (
	// BoardSize is the side length of the grid. The engine below only assumes
	// a square board, but the rules are validated for 3x3.
	BoardSize = 3

	SymbolX = "X"
	SymbolO = "O"

	WinnerDraw = "draw"

	EmptyCell = ""
)

// Board is a square grid of cells, each empty or holding a player symbol.
type Board [BoardSize][BoardSize]string

// IsValidMove - reports whether row,col is in range and the cell is empty.
func (that *Board) IsValidMove(row, col int) bool {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return false
	}

	return that[row][col] == EmptyCell
}

// ApplyMove - sets the cell to the given symbol. The caller must have checked
// IsValidMove and turn ownership; this method knows nothing about turns.
func (that *Board) ApplyMove(row, col int, symbol string) {
	that[row][col] = symbol
}

// Evaluate - returns the winning symbol if any line of the board holds three
// of it, WinnerDraw if the board is full with no winner, or EmptyCell while
// the game is still open. A full board with a completed line is a win, not a
// draw.
func (that *Board) Evaluate() string {
	for i := 0; i < BoardSize; i++ {
		if symbol := that.lineWinner(i, 0, 0, 1); symbol != EmptyCell {
			return symbol
		}
		if symbol := that.lineWinner(0, i, 1, 0); symbol != EmptyCell {
			return symbol
		}
	}

	if symbol := that.lineWinner(0, 0, 1, 1); symbol != EmptyCell {
		return symbol
	}
	if symbol := that.lineWinner(0, BoardSize-1, 1, -1); symbol != EmptyCell {
		return symbol
	}

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == EmptyCell {
				return EmptyCell
			}
		}
	}

	return WinnerDraw
}

// lineWinner - walks one line from row,col with the given step and returns
// the symbol occupying it completely, or EmptyCell.
func (that *Board) lineWinner(row, col, dRow, dCol int) string {
	first := that[row][col]
	if first == EmptyCell {
		return EmptyCell
	}

	for i := 1; i < BoardSize; i++ {
		if that[row+i*dRow][col+i*dCol] != first {
			return EmptyCell
		}
	}

	return first
}

// Rows - copies the grid into the slice-of-slices shape the wire format uses.
func (that *Board) Rows() [][]string {
	rows := make([][]string, BoardSize)
	for i := 0; i < BoardSize; i++ {
		rows[i] = make([]string, BoardSize)
		copy(rows[i], that[i][:])
	}

	return rows
}

// IsValidSymbol - reports whether s is one of the two playable symbols.
func IsValidSymbol(s string) bool {
	return s == SymbolX || s == SymbolO
}

// OppositeSymbol - returns the complement of a playable symbol.
func OppositeSymbol(symbol string) string {
	if symbol == SymbolX {
		return SymbolO
	}

	return SymbolX
}
