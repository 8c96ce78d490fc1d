package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8

	// TotalCells is the number of squares on the grid.
	TotalCells = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a (row, column) square. Row 0 is the top of the board (Black's back rank),
// column 0 is file a. Components outside [0, MaxComponentScalar) are representable so
// callers can bounds check them.
type Pos struct {
	Row, Col int
}

func NewPos(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// NewPosFromIndex is the inverse of Pos.Index.
func NewPosFromIndex(i int) Pos {
	return Pos{Row: i / MaxComponentScalar, Col: i % MaxComponentScalar}
}

func NewPosFromNotation(n string) (Pos, error) {
	col, row, err := notationToColRow(n)
	if err != nil {
		return Pos{}, err
	}
	return Pos{Row: row, Col: col}, nil
}

func (p Pos) String() string {
	if !p.Valid() {
		return "-"
	}
	return p.Notation()
}

func (p Pos) Valid() bool {
	return 0 <= p.Row && p.Row < MaxComponentScalar && 0 <= p.Col && p.Col < MaxComponentScalar
}

// Index maps a valid position into [0, TotalCells).
func (p Pos) Index() int {
	return p.Row*MaxComponentScalar + p.Col
}

func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.NotationComponentCol() + p.NotationComponentRow()
}

func (p Pos) NotationComponentCol() string {
	if p.Col < 0 || MaxComponentScalar <= p.Col {
		return ""
	}
	return string(rune('a' + p.Col))
}

func (p Pos) NotationComponentRow() string {
	if p.Row < 0 || MaxComponentScalar <= p.Row {
		return ""
	}
	return string(rune('0' + MaxComponentScalar - p.Row))
}

func notationToColRow(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, err
	}
	return col, row, nil
}

func notationToCol(x byte) (int, error) {
	col := int(x) - 'a'
	if col < 0 || MaxComponentScalar <= col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(y byte) (int, error) {
	rank := int(y) - '0'
	if rank < 1 || MaxComponentScalar < rank {
		return 0, ErrInvalidNotation
	}
	return MaxComponentScalar - rank, nil
}
