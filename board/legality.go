package board

import (
	"github.com/daystram/chessrules/position"
)

// IsLegal reports whether the piece of side turn on from may move to to. A move is legal
// when it stays on the board, does not capture a piece of the mover's side, follows the
// movement rules of the piece and does not leave the mover's King attacked.
//
// IsLegal never modifies b.
func (b *Board) IsLegal(turn Side, from, to position.Pos) bool {
	if !from.Valid() {
		return false
	}
	s, p := b.at(from)
	if p == PieceUnknown || s != turn {
		return false
	}
	if !to.Valid() {
		return false
	}
	if ts, tp := b.at(to); tp != PieceUnknown && ts == s {
		return false
	}
	if !b.canMove(s, p, from, to) {
		return false
	}
	return !b.leavesKingAttacked(s, p, from, to)
}

// LegalMoves returns every square the piece on from may legally move to.
func (b *Board) LegalMoves(turn Side, from position.Pos) []position.Pos {
	var tos []position.Pos
	for i := 0; i < TotalCells; i++ {
		to := position.NewPosFromIndex(i)
		if b.IsLegal(turn, from, to) {
			tos = append(tos, to)
		}
	}
	return tos
}

// GenerateMoves returns every legal move of side s.
func (b *Board) GenerateMoves(s Side) []Move {
	var mvs []Move
	for i := 0; i < TotalCells; i++ {
		from := position.NewPosFromIndex(i)
		fs, fp := b.at(from)
		if fs != s || fp == PieceUnknown {
			continue
		}
		for _, to := range b.LegalMoves(s, from) {
			_, tp := b.at(to)
			mvs = append(mvs, Move{
				From:      from,
				To:        to,
				Piece:     fp,
				IsTurn:    s,
				IsCapture: tp != PieceUnknown,
			})
		}
	}
	return mvs
}

// canMove checks the movement geometry of p without considering King safety.
// from and to must be valid and distinct.
func (b *Board) canMove(s Side, p Piece, from, to position.Pos) bool {
	switch p {
	case PiecePawn:
		return b.canPawnMove(s, from, to)
	case PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing:
		return b.reach(s, p, from, to)
	default:
		return false
	}
}

func (b *Board) canPawnMove(s Side, from, to position.Pos) bool {
	dir := s.Forward()
	if from.Col == to.Col {
		if b.occupied(to) {
			return false
		}
		switch to.Row - from.Row {
		case dir:
			return true
		case 2 * dir:
			return from.Row == s.PawnRow() && !b.occupied(from.Add(dir, 0))
		default:
			return false
		}
	}
	// diagonal steps only capture
	if abs(to.Col-from.Col) != 1 || to.Row-from.Row != dir {
		return false
	}
	ts, tp := b.at(to)
	return tp != PieceUnknown && ts == s.Opposite()
}

// reach reports whether p of side s standing on from attacks to. Pawns only attack
// diagonally forward; sliding pieces need a clear path. Occupancy of to is not checked.
func (b *Board) reach(s Side, p Piece, from, to position.Pos) bool {
	rowDiff, colDiff := abs(to.Row-from.Row), abs(to.Col-from.Col)
	if rowDiff == 0 && colDiff == 0 {
		return false
	}
	switch p {
	case PiecePawn:
		return colDiff == 1 && to.Row-from.Row == s.Forward()
	case PieceKnight:
		return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
	case PieceBishop:
		return rowDiff == colDiff && b.pathClear(from, to)
	case PieceRook:
		return (rowDiff == 0 || colDiff == 0) && b.pathClear(from, to)
	case PieceQueen:
		return (rowDiff == colDiff || rowDiff == 0 || colDiff == 0) && b.pathClear(from, to)
	case PieceKing:
		return rowDiff <= 1 && colDiff <= 1
	default:
		return false
	}
}

// pathClear walks from towards to, excluding both ends. from and to must share a row,
// column or diagonal.
func (b *Board) pathClear(from, to position.Pos) bool {
	dRow, dCol := sign(to.Row-from.Row), sign(to.Col-from.Col)
	for pos := from.Add(dRow, dCol); pos != to; pos = pos.Add(dRow, dCol) {
		if b.occupied(pos) {
			return false
		}
	}
	return true
}

// leavesKingAttacked plays the move on a copy of b and checks the mover's King.
func (b *Board) leavesKingAttacked(s Side, p Piece, from, to position.Pos) bool {
	bb := *b
	bb.move(from, to)

	king := to
	if p != PieceKing {
		var ok bool
		king, ok = bb.findKing(s)
		if !ok {
			// FIXME: a side without a King is never considered in check. Positions
			// are not validated for exactly one King per side.
			return false
		}
	}
	return bb.IsAttacked(king, s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
