package domain

// Position is the unit the search operates on: a board plus whose turn it is
// and whether the game is over. Once Ended is set it stays set; start a new
// Position for a new game.
type Position struct {
	Board         *Board
	CurrentPlayer PlayerID
	Winner        PlayerID
	Ended         bool
}

func NewPosition() *Position {
	return &Position{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Winner:        Empty,
	}
}

func (p *Position) IsValidMove(column int) bool {
	return !p.Ended && p.Board.IsValidMove(column)
}

// ApplyMove drops a disk for player and updates the turn and terminal state.
// It reports false, without touching the board, for an invalid column or a
// finished game.
func (p *Position) ApplyMove(column int, player PlayerID) bool {
	if p.Ended {
		return false
	}

	row := p.Board.DropRow(column)
	if row < 0 || !p.Board.MakeMove(column, player) {
		return false
	}

	if p.Board.CheckWinAt(row, column) {
		p.Ended = true
		p.Winner = player
		return true
	}

	if p.Board.IsFull() {
		p.Ended = true
		return true
	}

	p.CurrentPlayer = player.Opponent()
	return true
}

func (p *Position) CheckWinner() PlayerID {
	return p.Board.CheckWinner()
}

func (p *Position) IsFull() bool {
	return p.Board.IsFull()
}

func (p *Position) MoveCount() int {
	return p.Board.MoveCount()
}

func (p *Position) IsDraw() bool {
	return p.Ended && p.Winner == Empty
}

// Snapshot is everything needed to resume a paused game.
type Snapshot struct {
	Board         [][]int `json:"board"`
	CurrentPlayer int     `json:"current_player"`
	MoveCount     int     `json:"move_count"`
	GameEnded     bool    `json:"game_ended"`
}

func (p *Position) Snapshot() Snapshot {
	return Snapshot{
		Board:         p.Board.Grid(),
		CurrentPlayer: int(p.CurrentPlayer),
		MoveCount:     p.Board.MoveCount(),
		GameEnded:     p.Ended,
	}
}

// RestorePosition rebuilds a Position from a Snapshot. The move counter must
// agree with the number of disks on the grid.
func RestorePosition(s Snapshot) (*Position, error) {
	board, err := BoardFromGrid(s.Board)
	if err != nil {
		return nil, err
	}
	if board.MoveCount() != s.MoveCount {
		return nil, ErrInvalidSnapshot
	}

	current := PlayerID(s.CurrentPlayer)
	if current != Player1 && current != Player2 {
		return nil, ErrInvalidSnapshot
	}

	pos := &Position{
		Board:         board,
		CurrentPlayer: current,
		Ended:         s.GameEnded,
	}
	if s.GameEnded {
		pos.Winner = board.CheckWinner()
	}
	return pos, nil
}
