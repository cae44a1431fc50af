package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/subhunt/internal/advisor"
	"github.com/freeeve/subhunt/internal/config"
	"github.com/freeeve/subhunt/internal/logger"
)

func main() {
	logger.Init()
	cfg := config.Load()

	var (
		stratA   string
		stratB   string
		numGames int
		workers  int
		maxTurns int
		seed     int64
		jsonOut  bool
	)

	flag.StringVar(&stratA, "a", cfg.Strategy, "Strategy for side a ("+joinNames()+")")
	flag.StringVar(&stratB, "b", "random", "Strategy for side b ("+joinNames()+")")
	flag.IntVar(&numGames, "n", 1, "Number of games to run")
	flag.IntVar(&workers, "workers", 1, "Concurrency (parallel games)")
	flag.IntVar(&maxTurns, "max-turns", advisor.DefaultMaxTurns, "Max turns before draw")
	flag.Int64Var(&seed, "seed", cfg.Seed, "Base seed (0 = random)")
	flag.IntVar(&cfg.SubmarineCount, "submarines", cfg.SubmarineCount, "Submarines per side")
	flag.IntVar(&cfg.MaxHP, "max-hp", cfg.MaxHP, "Hit points per submarine")
	flag.StringVar(&cfg.LayoutsPath, "layouts", cfg.LayoutsPath, "YAML file with extra placement layouts")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")

	flag.Parse()

	if workers < 1 {
		workers = 1
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	layouts, err := cfg.Layouts()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load layouts")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	label := fmt.Sprintf("%s-vs-%s", stratA, stratB)

	results := make([]*advisor.ArenaResult, numGames)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0

	for i := 0; i < numGames; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			gameSeed := seed
			if seed != 0 {
				gameSeed = seed + int64(idx)
			}

			result, err := advisor.RunGame(ctx, advisor.ArenaConfig{
				GameName:  fmt.Sprintf("%s-%d", label, idx+1),
				StrategyA: stratA,
				StrategyB: stratB,
				Rules:     cfg.Rules(),
				Layouts:   layouts,
				MaxTurns:  maxTurns,
				Seed:      gameSeed,
			})
			if err != nil {
				log.Error().Err(err).Int("game", idx+1).Msg("Game failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().Int("game", idx+1).Str("gameId", result.GameID).Str("winner", result.Winner).Int("turns", result.Turns).Msg("Game completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		if err := writeJSON(os.Stdout, results, numGames, errCount); err != nil {
			log.Fatal().Err(err).Msg("Failed to write results")
		}
	} else {
		printSummary(summarize(results), stratA, stratB, maxTurns, errCount)
	}
}

func joinNames() string {
	return strings.Join(advisor.StrategyNames, "|")
}

// summary aggregates completed games.
type summary struct {
	games      int
	winsA      int
	winsB      int
	draws      int
	firstWins  int
	totalTurns int
}

func summarize(results []*advisor.ArenaResult) summary {
	var s summary
	for _, r := range results {
		if r == nil {
			continue
		}
		s.games++
		s.totalTurns += r.Turns
		switch r.Winner {
		case "a":
			s.winsA++
		case "b":
			s.winsB++
		default:
			s.draws++
		}
		if r.Winner != "" && r.Winner == r.FirstSide {
			s.firstWins++
		}
	}
	return s
}

func (s summary) rate(n int) float64 {
	if s.games == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.games)
}

func (s summary) avgTurns() float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.totalTurns) / float64(s.games)
}

func printSummary(s summary, stratA, stratB string, maxTurns, errCount int) {
	fmt.Printf("\nResults (%d games, max turns %d):\n", s.games, maxTurns)
	if errCount > 0 {
		fmt.Printf("  (%d games failed)\n", errCount)
	}
	fmt.Printf("  a (%s):  %d wins (%.1f%%)\n", stratA, s.winsA, s.rate(s.winsA))
	fmt.Printf("  b (%s):  %d wins (%.1f%%)\n", stratB, s.winsB, s.rate(s.winsB))
	fmt.Printf("  draws:  %d (%.1f%%)\n", s.draws, s.rate(s.draws))
	fmt.Printf("  first mover won %d times -- avg turns: %.1f\n", s.firstWins, s.avgTurns())
}

func writeJSON(w io.Writer, results []*advisor.ArenaResult, total, errCount int) error {
	out := struct {
		Total   int                    `json:"total"`
		Errors  int                    `json:"errors"`
		Results []*advisor.ArenaResult `json:"results"`
	}{
		Total:   total,
		Errors:  errCount,
		Results: results,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
