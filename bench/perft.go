package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/game"
)

// Counts holds the leaf totals of a perft run.
type Counts struct {
	Nodes    uint64
	Captures uint64
}

// Perft counts the move paths of length depth from fen. Per root move subtotals are sent to
// out when verbose is set, followed by a summary line. out may be nil.
func Perft(depth int, fen string, parallel, verbose bool, out chan<- string) (Counts, error) {
	s, err := game.NewState(board.WithFEN(fen))
	if err != nil {
		return Counts{}, err
	}

	var run perftFunc = runPerft
	if parallel {
		run = runPerftParallel
	}
	var nodes, cap uint64
	start := time.Now()
	run(s, depth, true, verbose && out != nil, out, &nodes, &cap)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d (%.3fs elapsed)",
				depth, nodes, int(float64(nodes)/elapsed.Seconds()), cap, elapsed.Seconds())
	}
	return Counts{Nodes: nodes, Captures: cap}, nil
}

type perftFunc func(s game.State, d int, root, verbose bool, out chan<- string, nodes, cap *uint64) uint64

func runPerft(s game.State, d int, root, verbose bool, out chan<- string, nodes, cap *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	for _, mv := range s.Board.GenerateMoves(s.Turn) {
		var child uint64
		if d == 1 {
			child = 1
			*nodes++
			if mv.IsCapture {
				*cap++
			}
		} else {
			next, _ := s.Apply(mv.From, mv.To)
			child = runPerft(next, d-1, false, verbose, out, nodes, cap)
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv, child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(s game.State, d int, root, verbose bool, out chan<- string, nodes, cap *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}
	if d == 1 {
		mvs := s.Board.GenerateMoves(s.Turn)
		var c uint64
		for _, mv := range mvs {
			if mv.IsCapture {
				c++
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv, 1)
			}
		}
		atomic.AddUint64(nodes, uint64(len(mvs)))
		atomic.AddUint64(cap, c)
		return uint64(len(mvs))
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range s.Board.GenerateMoves(s.Turn) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			next, _ := s.Apply(mv.From, mv.To)
			child := runPerftParallel(next, d-1, false, verbose, out, nodes, cap)
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
