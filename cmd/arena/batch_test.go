package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/arena-brawl/config"
	"github.com/lixenwraith/arena-brawl/engine"
)

func TestSummarize(t *testing.T) {
	outcomes := []engine.Outcome{
		{Winner: 2, Duration: time.Second},
		{Winner: 2, Duration: time.Second},
		{Winner: 0, Duration: time.Second},
		{Winner: -1, Draw: true},
		{Winner: -1, Timeout: true, Duration: 2 * time.Minute},
	}
	s := summarize(outcomes)
	if s.Rounds != 5 || s.Wins[2] != 2 || s.Wins[0] != 1 || s.Draws != 1 || s.Timeouts != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.SimTime != 2*time.Minute+3*time.Second {
		t.Errorf("sim time = %v", s.SimTime)
	}
}

func TestRunBatch(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11

	var out bytes.Buffer
	if err := runBatch(context.Background(), &out, cfg, batchConfig{Players: 3, Rounds: 4}); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{"rounds: 4", "slot 6 wins:", "draws:", "timeouts:", "rounds=4"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunBatchPropagatesRoundError(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	err := runBatch(context.Background(), &bytes.Buffer{}, cfg, batchConfig{Players: 1, Rounds: 3})
	if !errors.Is(err, engine.ErrNotEnoughPlayers) {
		t.Errorf("err = %v, want ErrNotEnoughPlayers", err)
	}
	if err := runBatch(context.Background(), &bytes.Buffer{}, cfg, batchConfig{Players: 2}); err == nil {
		t.Error("zero rounds accepted")
	}
}
