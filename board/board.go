package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessrules/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSide = errors.New("invalid side")

	colorCellLight     = color.New(color.FgBlack, color.BgHiGreen)
	colorCellDark      = color.New(color.FgBlack, color.BgGreen)
	colorCellHighlight = color.New(color.FgBlack, color.BgHiYellow)
	colorLabel         = color.New(color.Bold)
)

type cell struct {
	side  Side
	piece Piece
}

// Board is a row-major grid of cells, row 0 on top. The zero value is an empty board.
// Boards are plain values: assigning one copies every cell.
type Board struct {
	cells [TotalCells]cell
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard returns the board described by the configured FEN together with the side to
// move. Without options the standard starting position is used.
func NewBoard(opts ...BoardOption) (*Board, Side, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	turn, err := unmarshalFEN(cfg.fen, b)
	if err != nil {
		return nil, SideUnknown, err
	}
	return b, turn, nil
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// Get returns the piece on pos. Empty squares yield SideUnknown and PieceUnknown.
func (b *Board) Get(pos position.Pos) (Side, Piece, error) {
	if !pos.Valid() {
		return SideUnknown, PieceUnknown, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.Row, pos.Col)
	}
	s, p := b.at(pos)
	return s, p, nil
}

// Place puts a piece on pos, replacing any occupant. PieceUnknown clears the square.
func (b *Board) Place(pos position.Pos, s Side, p Piece) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.Row, pos.Col)
	}
	if p == PieceUnknown {
		b.clear(pos)
		return nil
	}
	if s != SideWhite && s != SideBlack {
		return fmt.Errorf("%w: %d", ErrInvalidSide, s)
	}
	b.set(pos, s, p)
	return nil
}

// at expects a valid pos.
func (b *Board) at(pos position.Pos) (Side, Piece) {
	c := b.cells[pos.Index()]
	return c.side, c.piece
}

func (b *Board) occupied(pos position.Pos) bool {
	return b.cells[pos.Index()].piece != PieceUnknown
}

func (b *Board) set(pos position.Pos, s Side, p Piece) {
	b.cells[pos.Index()] = cell{side: s, piece: p}
}

func (b *Board) clear(pos position.Pos) {
	b.cells[pos.Index()] = cell{}
}

// move relocates the occupant of from onto to without any rule checks.
func (b *Board) move(from, to position.Pos) {
	b.cells[to.Index()] = b.cells[from.Index()]
	b.clear(from)
}

func (b *Board) findKing(s Side) (position.Pos, bool) {
	for i, c := range b.cells {
		if c.piece == PieceKing && c.side == s {
			return position.NewPosFromIndex(i), true
		}
	}
	return position.Pos{}, false
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NewPos(y, 0).NotationComponentRow()))
		for x := 0; x < Width; x++ {
			s, p := b.at(position.NewPos(y, x))
			sym := p.SymbolFEN(s)
			if p == PieceUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NewPos(0, x).NotationComponentCol()))
	}
	return builder.String()
}

// Draw renders the board for a terminal. Cells in highlight get a distinct background.
// Colour output follows color.NoColor.
func (b *Board) Draw(highlight ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NewPos(y, 0).NotationComponentRow()))
		for x := 0; x < Width; x++ {
			pos := position.NewPos(y, x)
			s, p := b.at(pos)
			sym := p.SymbolUnicode(s, false)
			if p == PieceUnknown {
				sym = " "
			}
			c := colorCellLight
			switch {
			case marked[pos]:
				c = colorCellHighlight
			case x%2^y%2 != 0:
				c = colorCellDark
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NewPos(0, x).NotationComponentCol()))
	}
	return builder.String()
}
