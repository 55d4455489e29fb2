package domain

var axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CheckWin reports whether player's topmost token in column is part of a
// line of ToWin or more.
//
// The placed token is found by scanning the column from the top, so callers
// must check right after dropping. Any deeper token of the same player in
// that column is never looked at.
func CheckWin(board Board, column int, player PlayerID) bool {
	if column < 0 || column >= Columns {
		return false
	}

	row := -1
	for r := 0; r < Rows; r++ {
		if board[r][column] == player {
			row = r
			break
		}
	}
	if row == -1 {
		return false
	}

	// Only lines through (row, column) matter
	for _, axis := range axes {
		count := 1 +
			CountDiskInDirection(board, row, column, axis[0], axis[1], player) +
			CountDiskInDirection(board, row, column, -axis[0], -axis[1], player)
		if count >= ToWin {
			return true
		}
	}

	return false
}
