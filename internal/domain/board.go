package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// Board is the grid of cells, row 0 is the top and 5 is the bottom.
// It is a value type so assigning it copies every cell.
type Board [Rows][Columns]PlayerID

func NewBoard() Board {
	return Board{}
}

func IsValidMove(board Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// a column is playable as long as its top cell is free
	return board[0][column] == Empty
}

// LandingRow returns the row a token dropped in column would land on,
// or -1 when the column is full.
func LandingRow(board Board, column int) int {
	if column < 0 || column >= Columns {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row
		}
	}
	return -1
}

// DropToken returns a copy of board with player's token in the lowest empty
// cell of column. A full column leaves the copy untouched.
func DropToken(board Board, column int, player PlayerID) Board {
	if row := LandingRow(board, column); row >= 0 {
		board[row][column] = player
	}
	return board
}

// ValidMoves lists the landing cell of every playable column, left to right.
func ValidMoves(board Board) []Move {
	moves := make([]Move, 0, Columns)
	for col := 0; col < Columns; col++ {
		if !IsValidMove(board, col) {
			continue
		}
		moves = append(moves, Move{Row: LandingRow(board, col), Column: col})
	}
	return moves
}

func AvailableColumns(board Board) []int {
	columns := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if board[0][col] == Empty {
			columns = append(columns, col)
		}
	}
	return columns
}

func IsEmpty(board Board) bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] != Empty {
				return false
			}
		}
	}
	return true
}

func IsBoardFull(board Board) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// this counts the number of disks in a specific direction, not including
// the starting cell
func CountDiskInDirection(board Board, row, column int, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for inBounds(r, c) && board[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// String renders the board as six lines of seven cells, top row first.
// Empty cells are '.', tokens are their player number.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns + 1))
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			switch b[row][col] {
			case Player1:
				sb.WriteByte('1')
			case Player2:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the format produced by Board.String. Blank lines and
// surrounding spaces are ignored. Floating tokens are rejected.
func ParseBoard(s string) (Board, error) {
	var board Board

	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != Rows {
		return board, errors.Errorf("board needs %d rows, got %d", Rows, len(lines))
	}

	for row, line := range lines {
		if len(line) != Columns {
			return board, errors.Errorf("row %d needs %d cells, got %d", row, Columns, len(line))
		}
		for col, ch := range line {
			switch ch {
			case '.', '0':
				board[row][col] = Empty
			case '1':
				board[row][col] = Player1
			case '2':
				board[row][col] = Player2
			default:
				return board, errors.Errorf("row %d col %d: unexpected cell %q", row, col, ch)
			}
		}
	}

	for col := 0; col < Columns; col++ {
		for row := 1; row < Rows; row++ {
			if board[row][col] == Empty && board[row-1][col] != Empty {
				return board, errors.Wrapf(ErrInvalidBoard, "floating token above row %d in column %d", row, col)
			}
		}
	}

	return board, nil
}
