package game

import (
	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/position"
)

// State is a board together with the side to move. It is a value; Apply returns a new
// State rather than modifying the receiver.
type State struct {
	Board board.Board
	Turn  board.Side
}

// NewState builds a State from board options, defaulting to the standard starting position.
func NewState(opts ...board.BoardOption) (State, error) {
	b, turn, err := board.NewBoard(opts...)
	if err != nil {
		return State{}, err
	}
	return State{Board: *b, Turn: turn}, nil
}

// IsLegal reports whether the side to move may play from to to.
func (s State) IsLegal(from, to position.Pos) bool {
	return s.Board.IsLegal(s.Turn, from, to)
}

// Apply plays from to to. Illegal moves return s unchanged and false.
func (s State) Apply(from, to position.Pos) (State, bool) {
	if !s.Board.IsLegal(s.Turn, from, to) {
		return s, false
	}
	side, piece, _ := s.Board.Get(from)
	_ = s.Board.Place(to, side, piece)
	_ = s.Board.Place(from, board.SideUnknown, board.PieceUnknown)
	s.Turn = s.Turn.Opposite()
	return s, true
}

func (s State) FEN() string {
	return s.Board.FEN(s.Turn)
}
