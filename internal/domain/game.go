package domain

type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	History       []Move
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
		History:       make([]Move, 0, Rows*Columns),
	}
}

// MakeMove drops the current player's token in column and advances the game.
func (g *Game) MakeMove(column int) (Move, error) {
	if g.Status != StatusActive {
		return Move{}, ErrGameOver
	}

	if column < 0 || column >= Columns {
		return Move{}, ErrInvalidMove
	}

	row := LandingRow(g.Board, column)
	if row < 0 {
		return Move{}, ErrColumnFull
	}

	g.Board[row][column] = g.CurrentPlayer
	move := Move{Row: row, Column: column}
	g.History = append(g.History, move)
	g.MoveCount++

	if CheckWin(g.Board, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return move, nil
	}

	if IsBoardFull(g.Board) {
		g.Status = StatusDraw
		return move, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()

	return move, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
