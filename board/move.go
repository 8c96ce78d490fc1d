package board

import "github.com/daystram/chessrules/position"

type Move struct {
	From, To position.Pos
	Piece    Piece

	IsTurn    Side
	IsCapture bool
}

// String formats the move as origin and destination squares, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
