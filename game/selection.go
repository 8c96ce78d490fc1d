package game

import (
	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/position"
)

type ChangeKind uint8

const (
	// ChangeNone is when the input was ignored.
	ChangeNone ChangeKind = iota

	// ChangeSelected is when a piece of the side to move got selected.
	ChangeSelected

	// ChangeMoved is when the selected piece was moved and the turn passed.
	ChangeMoved

	// ChangeRejected is when the move attempt was illegal. The selection is cleared anyway.
	ChangeRejected
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeNone:
		return "ChangeNone"
	case ChangeSelected:
		return "ChangeSelected"
	case ChangeMoved:
		return "ChangeMoved"
	case ChangeRejected:
		return "ChangeRejected"
	default:
		return ""
	}
}

// Change describes the outcome of a single Select input. From is the selected square for
// ChangeSelected and the move origin otherwise; To is only set for move attempts.
type Change struct {
	Kind     ChangeKind
	From, To position.Pos
}

// Selection is the pick-then-place input state. The zero value has nothing selected.
type Selection struct {
	selected bool
	origin   position.Pos
}

// Selected returns the selected square, if any.
func (sel Selection) Selected() (position.Pos, bool) {
	return sel.origin, sel.selected
}

// Select feeds one square into the selection machine. With nothing selected, a square
// holding a piece of the side to move becomes selected and anything else is ignored. With
// a piece selected, the move to pos is attempted and the selection is always cleared.
func (sel Selection) Select(s State, pos position.Pos) (Selection, State, Change) {
	if !sel.selected {
		side, piece, err := s.Board.Get(pos)
		if err != nil || piece == board.PieceUnknown || side != s.Turn {
			return sel, s, Change{Kind: ChangeNone}
		}
		return Selection{selected: true, origin: pos}, s, Change{Kind: ChangeSelected, From: pos}
	}

	next, ok := s.Apply(sel.origin, pos)
	change := Change{Kind: ChangeRejected, From: sel.origin, To: pos}
	if ok {
		change.Kind = ChangeMoved
	}
	return Selection{}, next, change
}
