package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/subhunt/internal/advisor"
	"github.com/freeeve/subhunt/internal/config"
	"github.com/freeeve/subhunt/internal/logger"
	"github.com/freeeve/subhunt/internal/terminal"
	"github.com/freeeve/subhunt/pkg/submarine"
)

func main() {
	logger.Init()
	cfg := config.Load()

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = random)")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Decision strategy (heuristic|random)")
	flag.BoolVar(&cfg.ShowPositions, "show-positions", cfg.ShowPositions, "Show own fleet after every turn")
	flag.IntVar(&cfg.SubmarineCount, "submarines", cfg.SubmarineCount, "Submarines per side")
	flag.IntVar(&cfg.MaxHP, "max-hp", cfg.MaxHP, "Hit points per submarine")
	flag.StringVar(&cfg.LayoutsPath, "layouts", cfg.LayoutsPath, "YAML file with extra placement layouts")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	layouts, err := cfg.Layouts()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load layouts")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logger.WithGameID(ctx, logger.NewGameID())

	rng := advisor.NewRand(cfg.Seed)
	con := terminal.New(os.Stdin, os.Stdout)
	g := &game{
		con:           con,
		state:         submarine.NewBattleState(cfg.Rules()),
		strategy:      advisor.StrategyForName(cfg.Strategy, rng),
		layouts:       layouts,
		rng:           rng,
		showPositions: cfg.ShowPositions,
		pause:         true,
	}

	won, err := g.play(ctx)
	gameLog := logger.ForGame(ctx)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		gameLog.Info().Msg("Game abandoned")
		return
	case err != nil:
		gameLog.Fatal().Err(err).Msg("Game aborted")
	}

	con.Newline()
	if won {
		con.Println("We win!!")
	} else {
		con.Println("We lose...")
	}
	con.Newline()
}
