package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/game"
)

func movegen(w io.Writer, fen string, draw bool) error {
	s, err := game.NewState(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "to move:", s.Turn)
	fmt.Fprintln(w, s.Board.Dump())
	fmt.Fprintln(w, s.Board.Draw())
	mvs := dumpMoves(w, s)

	if draw {
		for _, mv := range mvs {
			next, ok := s.Apply(mv.From, mv.To)
			if !ok {
				return fmt.Errorf("generated move rejected: %s", mv)
			}
			fmt.Fprintln(w, mv)
			fmt.Fprintln(w, next.Board.Draw(mv.From, mv.To))
			fmt.Fprintln(w, next.FEN())
		}
	}
	return nil
}

func dumpMoves(w io.Writer, s game.State) []board.Move {
	mvs := s.Board.GenerateMoves(s.Turn)
	for i, mv := range mvs {
		fmt.Fprintf(w, "option %*d: [%s] %s %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, mv.IsTurn, mv.Piece, mv.From, mv.To, mv.IsCapture)
	}
	return mvs
}
