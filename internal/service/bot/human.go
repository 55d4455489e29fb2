package bot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

// HumanPlayer asks a person for a column on a text console.
type HumanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: bufio.NewScanner(in), out: out}
}

// CalculateBestMove shows the board and keeps asking until the answer is a
// playable column. It returns -1 when the input ends or nothing is playable.
func (h *HumanPlayer) CalculateBestMove(board domain.Board, player domain.PlayerID) int {
	if len(domain.AvailableColumns(board)) == 0 {
		return -1
	}

	fmt.Fprintf(h.out, "\n%s0123456\n", board)
	for {
		fmt.Fprintf(h.out, "Player %d, enter column number (0-%d): ", player, domain.Columns-1)
		if !h.in.Scan() {
			fmt.Fprintln(h.out)
			return -1
		}

		column, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil {
			fmt.Fprintln(h.out, "Please enter a valid number.")
			continue
		}
		if column < 0 || column >= domain.Columns {
			fmt.Fprintf(h.out, "Column must be between 0 and %d.\n", domain.Columns-1)
			continue
		}
		if !domain.IsValidMove(board, column) {
			fmt.Fprintln(h.out, "This column is full! Choose another.")
			continue
		}
		return column
	}
}
