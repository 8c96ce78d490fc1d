package board

import (
	"github.com/daystram/chessrules/position"
)

// IsAttacked reports whether any piece of the side opposing defender could capture on pos
// with its next move. King safety of the attacker is not considered.
func (b *Board) IsAttacked(pos position.Pos, defender Side) bool {
	if !pos.Valid() {
		return false
	}
	attacker := defender.Opposite()
	for i, c := range b.cells {
		if c.piece == PieceUnknown || c.side != attacker {
			continue
		}
		from := position.NewPosFromIndex(i)
		if from == pos {
			continue
		}
		if b.reach(c.side, c.piece, from, pos) {
			return true
		}
	}
	return false
}
