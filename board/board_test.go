package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/daystram/chessrules/position"
)

func TestGetOutOfBounds(t *testing.T) {
	t.Parallel()
	b, _ := mustNewBoard(t, DefaultStartingPositionFEN)
	for _, pos := range []position.Pos{
		position.NewPos(-1, 0),
		position.NewPos(0, 8),
		position.NewPos(8, 8),
	} {
		if _, _, err := b.Get(pos); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("unexpected error for (%d,%d): got=%v want=%v", pos.Row, pos.Col, err, ErrOutOfBounds)
		}
	}
}

func TestPlace(t *testing.T) {
	t.Parallel()
	b := &Board{}
	pos := position.NewPos(3, 3)
	if err := b.Place(pos, SideBlack, PieceQueen); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if s, p, _ := b.Get(pos); s != SideBlack || p != PieceQueen {
		t.Errorf("unexpected piece: got=%s %s want=%s %s", s, p, SideBlack, PieceQueen)
	}
	if err := b.Place(pos, SideUnknown, PieceUnknown); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if s, p, _ := b.Get(pos); s != SideUnknown || p != PieceUnknown {
		t.Errorf("unexpected piece after clear: got=%s %s", s, p)
	}
	if err := b.Place(pos, SideUnknown, PieceRook); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidSide)
	}
	if err := b.Place(position.NewPos(0, -1), SideWhite, PieceRook); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfBounds)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b, turn := mustNewBoard(t, DefaultStartingPositionFEN)
	bb := b.Clone()
	if err := bb.Place(position.NewPos(6, 4), SideUnknown, PieceUnknown); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, p, _ := b.Get(position.NewPos(6, 4)); p != PiecePawn {
		t.Errorf("unexpected piece on original: got=%s want=%s", p, PiecePawn)
	}
	if got := b.FEN(turn); got != DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", got, DefaultStartingPositionFEN)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	b, _ := mustNewBoard(t, DefaultStartingPositionFEN)
	lines := strings.Split(b.Dump(), "\n")
	if got, want := len(lines), 2*Height+2; got != want {
		t.Fatalf("unexpected line count: got=%d want=%d", got, want)
	}
	if got, want := lines[1], " 8 | r | n | b | q | k | b | n | r |"; got != want {
		t.Errorf("unexpected top rank: got=%q want=%q", got, want)
	}
	if got, want := lines[15], " 1 | R | N | B | Q | K | B | N | R |"; got != want {
		t.Errorf("unexpected bottom rank: got=%q want=%q", got, want)
	}
}

func TestDraw(t *testing.T) {
	color.NoColor = true
	b, _ := mustNewBoard(t, DefaultStartingPositionFEN)
	lines := strings.Split(b.Draw(position.NewPos(6, 4)), "\n")
	if got, want := len(lines), Height+1; got != want {
		t.Fatalf("unexpected line count: got=%d want=%d", got, want)
	}
	if got, want := lines[0], " 8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜ "; got != want {
		t.Errorf("unexpected top rank: got=%q want=%q", got, want)
	}
	if got, want := lines[Height], "    a  b  c  d  e  f  g  h "; got != want {
		t.Errorf("unexpected file labels: got=%q want=%q", got, want)
	}
}

func TestSide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		side         Side
		wantOpposite Side
		wantForward  int
		wantPawnRow  int
		wantFEN      string
	}{
		{side: SideWhite, wantOpposite: SideBlack, wantForward: -1, wantPawnRow: 6, wantFEN: "w"},
		{side: SideBlack, wantOpposite: SideWhite, wantForward: 1, wantPawnRow: 1, wantFEN: "b"},
		{side: SideUnknown, wantOpposite: SideUnknown, wantForward: 0, wantPawnRow: -1, wantFEN: ""},
	}
	for _, tt := range tests {
		if got := tt.side.Opposite(); got != tt.wantOpposite {
			t.Errorf("unexpected opposite of %s: got=%s want=%s", tt.side, got, tt.wantOpposite)
		}
		if got := tt.side.Forward(); got != tt.wantForward {
			t.Errorf("unexpected forward of %s: got=%d want=%d", tt.side, got, tt.wantForward)
		}
		if got := tt.side.PawnRow(); got != tt.wantPawnRow {
			t.Errorf("unexpected pawn row of %s: got=%d want=%d", tt.side, got, tt.wantPawnRow)
		}
		if got := tt.side.SymbolFEN(); got != tt.wantFEN {
			t.Errorf("unexpected FEN symbol of %s: got=%q want=%q", tt.side, got, tt.wantFEN)
		}
	}
}

func TestPieceSymbolFEN(t *testing.T) {
	t.Parallel()
	for _, p := range []Piece{PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing} {
		for _, s := range []Side{SideWhite, SideBlack} {
			sym := []rune(p.SymbolFEN(s))
			if len(sym) != 1 {
				t.Fatalf("unexpected symbol length for %s %s: got=%d", s, p, len(sym))
			}
			gotSide, gotPiece := pieceFromSymbolFEN(sym[0])
			if gotSide != s || gotPiece != p {
				t.Errorf("unexpected round trip for %s %s: got=%s %s", s, p, gotSide, gotPiece)
			}
		}
	}
}
