package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the row delta of a pawn advance. White moves towards row 0.
func (s Side) Forward() int {
	switch s {
	case SideWhite:
		return -1
	case SideBlack:
		return 1
	default:
		return 0
	}
}

// PawnRow is the row a side's pawns start on, the only row a double step is allowed from.
func (s Side) PawnRow() int {
	switch s {
	case SideWhite:
		return 6
	case SideBlack:
		return 1
	default:
		return -1
	}
}

func (s Side) SymbolFEN() string {
	switch s {
	case SideWhite:
		return "w"
	case SideBlack:
		return "b"
	default:
		return ""
	}
}
