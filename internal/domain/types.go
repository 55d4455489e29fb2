package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Only meaningful for Player1 and Player2.
func (p PlayerID) Opponent() PlayerID {
	return 3 - p
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Move is the cell a token lands on. Column is what the player picks,
// Row follows from gravity.
type Move struct {
	Row    int
	Column int
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrGameOver     Error = "game is already finished"
	ErrInvalidBoard Error = "invalid board"
)
