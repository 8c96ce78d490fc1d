package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/chessrules/position"
)

// unmarshalFEN reads the piece placement and side to move of fen into b. Castling,
// en passant and clock segments are accepted for compatibility but carry no meaning here.
func unmarshalFEN(fen string, b *Board) (Side, error) {
	if b == nil {
		return SideUnknown, errors.New("invalid board")
	}
	segments := strings.Fields(fen)
	if len(segments) != 2 && len(segments) != 6 {
		return SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != Height {
		return SideUnknown, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	*b = Board{}
	for y := 0; y < Height; y++ {
		x := 0
		for _, sym := range rows[y] {
			if x >= Width {
				return SideUnknown, fmt.Errorf("%w: row %d too long", ErrInvalidFEN, y)
			}
			if '0' <= sym && sym <= '9' {
				skip := int(sym - '0')
				if skip == 0 || x+skip > Width {
					return SideUnknown, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				x += skip
				continue
			}
			s, p := pieceFromSymbolFEN(sym)
			if p == PieceUnknown {
				return SideUnknown, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			b.set(position.NewPos(y, x), s, p)
			x++
		}
		if x != Width {
			return SideUnknown, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}

	switch segments[1] {
	case "w":
		return SideWhite, nil
	case "b":
		return SideBlack, nil
	default:
		return SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}
}

// FEN writes the placement of b with turn as the side to move. Castling and en passant
// are always empty and the clocks fixed, since neither is tracked.
func (b *Board) FEN(turn Side) string {
	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		skip := 0
		for x := 0; x < Width; x++ {
			s, p := b.at(position.NewPos(y, x))
			if p == PieceUnknown {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(s))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	_, _ = builder.WriteString(" " + turn.SymbolFEN() + " - - 0 1")
	return builder.String()
}
