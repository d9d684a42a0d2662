package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// the human always moves first, the engine answers as Player2
const (
	Human = Player1
	Bot   = Player2
)

func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

const (
	Rows      = 6
	Columns   = 7
	ToWin     = 4
	CenterCol = Columns / 2
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove     Error = "invalid move"
	ErrColumnFull      Error = "column is full"
	ErrGameOver        Error = "game has ended"
	ErrNoGame          Error = "no game in progress"
	ErrInvalidSnapshot Error = "invalid position snapshot"
	ErrInvalidLevel    Error = "unknown difficulty"
)
