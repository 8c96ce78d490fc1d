package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/daystram/chessrules/bench"
	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/game"
	"github.com/daystram/chessrules/obslog"
	"github.com/daystram/chessrules/position"
)

var defaultOptions = options{
	fen:           board.DefaultStartingPositionFEN,
	parallelPerft: true,
}

type options struct {
	fen           string
	parallelPerft bool
	logger        *zap.Logger
}

type Option func(*options)

func WithFEN(fen string) Option {
	return func(o *options) {
		o.fen = fen
	}
}

func WithParallelPerft(parallel bool) Option {
	return func(o *options) {
		o.parallelPerft = parallel
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Interface is a line based front end over a game.Session. Squares typed on their own act
// as clicks on the board.
type Interface struct {
	in      io.Reader
	out     io.Writer
	session *game.Session
	options options
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) (*Interface, error) {
	o := defaultOptions
	for _, f := range opts {
		f(&o)
	}
	if o.logger == nil {
		o.logger = obslog.L()
	}
	i := &Interface{
		in:      in,
		out:     out,
		options: o,
	}
	if err := i.reset(o.fen); err != nil {
		return nil, err
	}
	return i, nil
}

// Run reads commands until quit, end of input or ctx is done.
func (i *Interface) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch args := strings.Fields(cmd); args[0] {
		case "select":
			i.commandSelect(ctx, args[1:])
		case "moves":
			i.commandMoves(ctx, args[1:])
		case "d", "draw":
			i.commandDraw(ctx)
		case "position":
			i.commandPosition(ctx, args[1:])
		case "new":
			i.session.Reset()
			i.println("new game")
		case "turn":
			i.println(i.session.Turn())
		case "fen":
			i.println(i.session.State().FEN())
		case "go":
			i.commandGo(ctx, args[1:])
		case "help":
			i.commandHelp(ctx)
		case "quit":
			return nil
		default:
			if len(args) == 1 {
				if _, err := position.NewPosFromNotation(args[0]); err == nil {
					i.commandSelect(ctx, args)
					continue
				}
			}
			i.println(fmt.Sprintf("unknown command: %s", args[0]))
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (i *Interface) commandSelect(_ context.Context, args []string) {
	if len(args) != 1 {
		i.println("usage: select <square>")
		return
	}
	pos, err := position.NewPosFromNotation(args[0])
	if err != nil {
		i.println(fmt.Sprintf("invalid square: %s", args[0]))
		return
	}

	switch change := i.session.SelectOrMove(pos); change.Kind {
	case game.ChangeSelected:
		side, piece, _ := i.session.Piece(change.From)
		i.println(fmt.Sprintf("selected %s %s %s", change.From, side, piece))
	case game.ChangeMoved:
		i.println(fmt.Sprintf("moved %s%s", change.From, change.To))
		i.println(fmt.Sprintf("turn %s", i.session.Turn()))
	case game.ChangeRejected:
		i.println(fmt.Sprintf("illegal %s%s", change.From, change.To))
	default:
		i.println(fmt.Sprintf("nothing to select on %s", pos))
	}
}

func (i *Interface) commandMoves(_ context.Context, args []string) {
	var pos position.Pos
	switch len(args) {
	case 0:
		selected, ok := i.session.Selected()
		if !ok {
			i.println("usage: moves <square>")
			return
		}
		pos = selected
	case 1:
		var err error
		if pos, err = position.NewPosFromNotation(args[0]); err != nil {
			i.println(fmt.Sprintf("invalid square: %s", args[0]))
			return
		}
	default:
		i.println("usage: moves <square>")
		return
	}

	tos := i.session.LegalMoves(pos)
	names := make([]string, 0, len(tos))
	for _, to := range tos {
		names = append(names, to.String())
	}
	i.println(fmt.Sprintf("moves %s: %s", pos, strings.Join(names, " ")))
}

func (i *Interface) commandDraw(_ context.Context) {
	var highlight []position.Pos
	if pos, ok := i.session.Selected(); ok {
		highlight = append(highlight, pos)
		highlight = append(highlight, i.session.LegalMoves(pos)...)
	}
	b := i.session.State().Board
	i.println(b.Draw(highlight...))
	i.println(fmt.Sprintf("turn %s", i.session.Turn()))
}

func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		i.println("usage: position startpos | position fen <fen>")
		return
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		i.println("usage: position startpos | position fen <fen>")
		return
	}

	if err := i.reset(fen); err != nil {
		i.println(err)
		return
	}
	i.println(fmt.Sprintf("position %s", i.session.State().FEN()))
}

func (i *Interface) commandGo(_ context.Context, args []string) {
	if len(args) != 2 || args[0] != "perft" {
		i.println("usage: go perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 0 {
		i.println(fmt.Sprintf("invalid depth: %s", args[1]))
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()
	_, err = bench.Perft(depth, i.session.State().FEN(), i.options.parallelPerft, true, out)
	close(out)
	<-done
	if err != nil {
		i.println(err)
	}
}

func (i *Interface) commandHelp(_ context.Context) {
	i.println("<square>              select a piece or move the selected piece, e.g. e2")
	i.println("select <square>       same as above")
	i.println("moves [square]        list legal destinations")
	i.println("d, draw               draw the board")
	i.println("position startpos     load the starting position")
	i.println("position fen <fen>    load a position")
	i.println("new                   restart from the loaded position")
	i.println("turn, fen             print the side to move or the position")
	i.println("go perft <depth>      count move paths")
	i.println("quit                  exit")
}

func (i *Interface) reset(fen string) error {
	s, err := game.NewSession(game.WithFEN(fen), game.WithLogger(i.options.logger))
	if err != nil {
		return err
	}
	i.session = s
	return nil
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
