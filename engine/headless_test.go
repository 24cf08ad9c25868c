package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/status"
	"github.com/lixenwraith/arena-brawl/system"
)

func TestRunHeadlessOutcomes(t *testing.T) {
	stats := status.NewRegistry()
	for players := parameter.MinPlayers; players <= parameter.MaxPlayers; players++ {
		for seed := uint64(1); seed <= 5; seed++ {
			out, err := RunHeadless(context.Background(), HeadlessConfig{
				Players:  players,
				Seed:     seed,
				AutoFire: true,
				Motion:   system.MotionFrame,
				Stats:    stats,
			})
			if err != nil {
				t.Fatalf("players=%d seed=%d: %v", players, seed, err)
			}

			decided := 0
			if out.Winner >= 0 {
				decided++
				if out.Glyph == "" {
					t.Errorf("players=%d seed=%d: winner without glyph", players, seed)
				}
			}
			if out.Draw {
				decided++
			}
			if out.Timeout {
				decided++
				if out.Duration < parameter.MaxRoundDuration {
					t.Errorf("timeout at %v", out.Duration)
				}
			}
			if decided != 1 {
				t.Errorf("players=%d seed=%d: outcome %+v is not exactly one of win/draw/timeout", players, seed, out)
			}
		}
	}
	if got := stats.Ints.Get(status.KeyRounds).Load(); got != 25 {
		t.Errorf("rounds counter = %d, want 25", got)
	}
}

func TestRunHeadlessClockOnFrameGrid(t *testing.T) {
	for _, fps := range []int{30, 60, 144} {
		out, err := RunHeadless(context.Background(), HeadlessConfig{
			Players:     3,
			FPS:         fps,
			Seed:        9,
			MaxDuration: 10 * time.Second,
		})
		if err != nil {
			t.Fatal(err)
		}
		want := time.Second * time.Duration(out.Frames) / time.Duration(fps)
		if out.Duration != want {
			t.Errorf("fps=%d: %d frames took %v, want %v", fps, out.Frames, out.Duration, want)
		}
	}
}

func TestRunHeadlessDeterministicForSeed(t *testing.T) {
	cfg := HeadlessConfig{Players: 4, Seed: 42, AutoFire: true}
	a, err := RunHeadless(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RunHeadless(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Winner != b.Winner || a.Frames != b.Frames || a.Draw != b.Draw {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}

func TestRunHeadlessRejectsBadPlayerCount(t *testing.T) {
	if _, err := RunHeadless(context.Background(), HeadlessConfig{Players: 1}); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Errorf("1 player: err = %v, want ErrNotEnoughPlayers", err)
	}
	if _, err := RunHeadless(context.Background(), HeadlessConfig{Players: parameter.MaxPlayers + 1}); err == nil {
		t.Error("7 players accepted")
	}
}

func TestRunHeadlessHonorsContextAndTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunHeadless(ctx, HeadlessConfig{Players: 2, Seed: 3}); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled context: err = %v", err)
	}

	out, err := RunHeadless(context.Background(), HeadlessConfig{Players: 6, Seed: 3, MaxDuration: 100 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Timeout || out.Winner != -1 {
		t.Errorf("outcome = %+v, want timeout", out)
	}
}
