package main

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"blackjack/internal/app"
	"blackjack/internal/app/table"
	"blackjack/internal/ports/console"
	"blackjack/internal/ports/memory"
)

func newConsoleTable(out *bytes.Buffer) (*table.Service, *memory.Store) {
	store := memory.NewStore()
	games := app.NewService(rand.New(rand.NewSource(7)))
	return table.NewService(games, store, console.NewPresenter(out, 256), nil), store
}

func TestRunPlaysUntilQuit(t *testing.T) {
	var out bytes.Buffer
	tbl, store := newConsoleTable(&out)

	input := strings.NewReader("dealer hit\nnonsense\nd play\nstatus\nquit\ndealer play\n")
	if err := run(context.Background(), tbl, input); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if !strings.Contains(out.String(), app.MessageNoGameHit) {
		t.Fatalf("expected guidance for hit without a game:\n%s", out.String())
	}
	rec, err := store.Load(context.Background(), localUser)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	// One game was started before quit; it is either in progress or already won.
	if !rec.IsPlaying && rec.Stats.Wins != 1 {
		t.Fatalf("unexpected record after play: %+v", rec)
	}
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	tbl, _ := newConsoleTable(&out)

	if err := run(context.Background(), tbl, strings.NewReader("stand\n")); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out.String(), app.MessageNoGameStand) {
		t.Fatalf("expected guidance for stand without a game:\n%s", out.String())
	}
}
