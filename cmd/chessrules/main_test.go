package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/daystram/chessrules/board"
)

func TestMovegen(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	if err := movegen(&out, board.DefaultStartingPositionFEN, false); err != nil {
		t.Fatal("unexpected error:", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "to move: White\n") {
		t.Errorf("unexpected header: %q", strings.SplitN(got, "\n", 2)[0])
	}
	if n := strings.Count(got, "option "); n != 20 {
		t.Errorf("unexpected option count: got=%d want=20", n)
	}
	if !strings.Contains(got, "[g1f3] White Knight g1 => f3 (cap=false)") {
		t.Errorf("unexpected options:\n%s", got)
	}
}

func TestMovegenDraw(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	if err := movegen(&out, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !strings.Contains(out.String(), "4k3/8/8/8/8/8/4K3/8 b - - 0 1") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestMovegenInvalidFEN(t *testing.T) {
	t.Parallel()
	if err := movegen(&bytes.Buffer{}, "x", false); err == nil {
		t.Error("expected error")
	}
}

func TestStep(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	if err := step(&out, board.DefaultStartingPositionFEN, 8, 1); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if n := strings.Count(out.String(), "===== [#"); n != 8 {
		t.Errorf("unexpected move count: got=%d want=8", n)
	}
	if !strings.Contains(out.String(), "final: ") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestStepNoMoves(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	// smothered mate
	if err := step(&out, "6rk/5Npp/8/8/8/8/8/K7 b - - 0 1", 5, 1); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !strings.Contains(out.String(), "Black has no legal moves") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestPerftMode(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	if err := perft(&out, 2, board.DefaultStartingPositionFEN, true, false); err != nil {
		t.Fatal("unexpected error:", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[0] != "============ perft(2)" || !strings.HasPrefix(lines[1], "d=2 nodes=400 ") {
		t.Errorf("unexpected output: %q", lines)
	}
}
