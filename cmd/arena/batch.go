package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/arena-brawl/config"
	"github.com/lixenwraith/arena-brawl/engine"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/status"
)

// batchConfig drives headless mode
type batchConfig struct {
	Players int
	Rounds  int
}

// batchSummary aggregates headless outcomes
type batchSummary struct {
	Rounds   int
	Wins     [parameter.MaxPlayers]int
	Draws    int
	Timeouts int
	SimTime  time.Duration
}

func summarize(outcomes []engine.Outcome) batchSummary {
	s := batchSummary{Rounds: len(outcomes)}
	for _, o := range outcomes {
		s.SimTime += o.Duration
		switch {
		case o.Timeout:
			s.Timeouts++
		case o.Draw:
			s.Draws++
		case o.Winner >= 0:
			s.Wins[o.Winner]++
		}
	}
	return s
}

func (s batchSummary) write(w io.Writer, stats *status.Registry) {
	fmt.Fprintf(w, "rounds: %d  simulated: %v\n", s.Rounds, s.SimTime.Round(time.Millisecond))
	for slot, n := range s.Wins {
		fmt.Fprintf(w, "slot %d wins: %d\n", slot+1, n)
	}
	fmt.Fprintf(w, "draws: %d\n", s.Draws)
	fmt.Fprintf(w, "timeouts: %d\n", s.Timeouts)
	if stats != nil {
		fmt.Fprintf(w, "stats: %s\n", stats.Format())
	}
}

// runBatch plays independent rounds in parallel and prints the tally
// Round i uses seed base+i so a batch is reproducible from its base seed
func runBatch(ctx context.Context, w io.Writer, cfg config.Config, bc batchConfig) error {
	if bc.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", bc.Rounds)
	}
	base := cfg.Seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}
	log.Printf("headless batch: %d rounds, %d players, base seed %d", bc.Rounds, bc.Players, base)

	stats := status.NewRegistry()
	outcomes := make([]engine.Outcome, bc.Rounds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range bc.Rounds {
		seed := base + uint64(i)
		g.Go(func() error {
			out, err := engine.RunHeadless(ctx, engine.HeadlessConfig{
				Players:  bc.Players,
				FPS:      cfg.FPS,
				Motion:   cfg.MotionMode(),
				Seed:     seed,
				AutoFire: true,
				Stats:    stats,
			})
			if err != nil {
				return fmt.Errorf("round %d: %w", i+1, err)
			}
			outcomes[i] = out
			log.Printf("headless round %d (%s): winner=%d draw=%v timeout=%v after %v",
				i+1, out.RoundID, out.Winner, out.Draw, out.Timeout, out.Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	summarize(outcomes).write(w, stats)
	return nil
}
