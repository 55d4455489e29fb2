package bot

import (
	"testing"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

func mustBoard(t *testing.T, s string) domain.Board {
	t.Helper()
	board, err := domain.ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return board
}

// player 1 to move, column 3 wins at once
const oneToWin = `
.......
.......
.......
.......
222....
111....
`

// player 2 to move, must block column 3
const twoToBlock = `
.......
.......
.......
.......
22.....
111....
`

// column 3 is full, columns 2 and 4 evaluate the same for player 1
const symmetricCenter = `
...2...
...1...
...2...
...1...
...2...
...1...
`
