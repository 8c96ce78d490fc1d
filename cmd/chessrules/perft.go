package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/daystram/chessrules/bench"
	"github.com/daystram/chessrules/obslog"
)

func perft(w io.Writer, depth int, fen string, parallel, verbose bool) error {
	fmt.Fprintf(w, "============ perft(%d)\n", depth)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Fprintln(w, s)
		}
	}()
	counts, err := bench.Perft(depth, fen, parallel, verbose, out)
	close(out)
	<-done
	if err != nil {
		return err
	}
	obslog.L().Info("perft_done",
		zap.Int("depth", depth),
		zap.Uint64("nodes", counts.Nodes),
		zap.Uint64("captures", counts.Captures),
		zap.Bool("parallel", parallel),
	)
	return nil
}
