package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"blackjack/internal/app"
	"blackjack/internal/app/table"
	"blackjack/internal/config"
	"blackjack/internal/logger"
	"blackjack/internal/ports/console"
	"blackjack/internal/ports/memory"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

const localUser = "local"

func main() {
	if err := godotenv.Load(); err != nil {
		pterm.Debug.Println("No .env file found, reading environment variables")
	}

	configPath := flag.String("config", os.Getenv("BLACKJACK_CONFIG"), "path to the table config JSON")
	seed := flag.Int64("seed", envInt64("BLACKJACK_SEED"), "fixed RNG seed, 0 for time-seeded")
	logLevel := flag.String("log-level", envOr("BLACKJACK_LOG_LEVEL", "warn"), "debug, info, warn or error")
	flag.Parse()

	log, err := logger.New(*logLevel, "console")
	if err != nil {
		pterm.Error.Printfln("Invalid log level: %v", err)
		os.Exit(2)
	}
	defer log.Sync()

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.ReadFile(*configPath); err != nil {
			log.Error("load config: %v", err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.RNGSeed = *seed
	}
	if cfg.RNGSeed == 0 {
		cfg.RNGSeed = time.Now().UnixNano()
	}
	log.Info("starting console table with seed %d", cfg.RNGSeed)

	games := app.NewService(rand.New(rand.NewSource(cfg.RNGSeed)))
	tbl := table.NewService(games, memory.NewStore(), console.NewPresenter(os.Stdout, cfg.MaxMessageLength), log.With("user_id", localUser))

	pterm.DefaultHeader.WithFullWidth().Println("Blackjack")
	pterm.Info.Println("Commands: dealer play | dealer hit | dealer stand | dealer status | quit")

	if err := run(context.Background(), tbl, os.Stdin); err != nil {
		log.Error("console table stopped: %v", err)
		os.Exit(1)
	}
}

// run reads commands until quit or end of input.
func run(ctx context.Context, tbl *table.Service, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		cmd, ok := console.ParseCommand(scanner.Text())
		if !ok {
			pterm.Warning.Println("Unknown command. Try 'dealer play', 'dealer hit' or 'dealer stand'.")
			continue
		}
		if cmd == console.CommandQuit {
			return nil
		}
		if err := dispatch(ctx, tbl, cmd); err != nil {
			return err
		}
	}
}

// dispatch runs one command. Guidance for commands without a game has
// already been shown, so ErrNoActiveGame is not fatal.
func dispatch(ctx context.Context, tbl *table.Service, cmd console.Command) error {
	var err error
	switch cmd {
	case console.CommandPlay:
		_, err = tbl.Play(ctx, localUser)
	case console.CommandHit:
		_, err = tbl.Hit(ctx, localUser)
	case console.CommandStand:
		_, err = tbl.Stand(ctx, localUser)
	case console.CommandStatus:
		session, statusErr := tbl.Status(ctx, localUser)
		err = statusErr
		if err == nil {
			pterm.Info.Printfln("Wins %d, losses %d, ties %d", session.Stats.Wins, session.Stats.Losses, session.Stats.Ties)
		}
	}
	if errors.Is(err, app.ErrNoActiveGame) {
		return nil
	}
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
