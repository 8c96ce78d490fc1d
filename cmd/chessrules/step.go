package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/daystram/chessrules/game"
)

// step plays random legal moves through a session the way a view would, by clicking the
// origin and then the destination square.
func step(w io.Writer, fen string, count int, seed int64) error {
	s, err := game.NewSession(game.WithFEN(fen))
	if err != nil {
		return err
	}
	r := rand.New(rand.NewSource(seed))

	for n := 0; n < count; n++ {
		st := s.State()
		mvs := st.Board.GenerateMoves(st.Turn)
		if len(mvs) == 0 {
			fmt.Fprintf(w, "\n%s has no legal moves\n", st.Turn)
			break
		}
		mv := mvs[r.Intn(len(mvs))]

		if change := s.SelectOrMove(mv.From); change.Kind != game.ChangeSelected {
			return fmt.Errorf("unexpected selection of %s: %s", mv.From, change.Kind)
		}
		if change := s.SelectOrMove(mv.To); change.Kind != game.ChangeMoved {
			return fmt.Errorf("unexpected result of %s: %s", mv, change.Kind)
		}

		fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", n/2+1, mv.IsTurn, mv)
		next := s.State()
		fmt.Fprintln(w, next.Board.Draw(mv.From, mv.To))
		fmt.Fprintln(w, next.FEN())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "final:", s.State().FEN())
	return nil
}
