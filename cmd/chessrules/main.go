package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/daystram/chessrules/config"
	"github.com/daystram/chessrules/obslog"
	"github.com/daystram/chessrules/shell"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 3, "perft depth in perft mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 100, "max moves to play in step mode")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		obslog.L().Error("exit", zap.Error(err))
		_ = obslog.L().Sync()
		os.Exit(exitErr)
	}
	_ = obslog.L().Sync()
	os.Exit(exitOK)
}

func realMain(args []string) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := obslog.Init(cfg.LogOptions()); err != nil {
		return err
	}
	if !cfg.Color {
		color.NoColor = true
	}

	fen := cfg.FEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	switch {
	case *movegenRun:
		return movegen(os.Stdout, fen, *movegenDraw)
	case *perftRun:
		return perft(os.Stdout, *perftDepth, fen, cfg.Perft.Parallel, cfg.Perft.Verbose)
	case *stepRun:
		return step(os.Stdout, fen, *stepCount, *stepSeed)
	}
	return runShell(fen, cfg.Perft.Parallel)
}

func runShell(fen string, parallelPerft bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	i, err := shell.NewInterface(os.Stdin, os.Stdout,
		shell.WithFEN(fen),
		shell.WithParallelPerft(parallelPerft),
	)
	if err != nil {
		return err
	}
	obslog.L().Info("shell_start", zap.String("fen", fen))
	return i.Run(ctx)
}
