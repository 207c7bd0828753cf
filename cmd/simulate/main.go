package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ludo/internal/config"
	"ludo/internal/game"
	"ludo/internal/game/events"
	"ludo/internal/game/events/subscribers"
	"ludo/internal/gamelog"
)

var opts struct {
	Output  flags.Filename `short:"o" long:"output" description:"Game log output path (default stdout)"`
	Seed    int64          `short:"s" long:"seed" description:"RNG seed (0 picks one from the clock)"`
	Config  flags.Filename `short:"c" long:"config" description:"Config file path"`
	Verbose bool           `short:"v" long:"verbose" description:"Log every event at debug level"`

	Args struct {
		Names []string `positional-arg-name:"NAME" required:"2" description:"Player names, in seat order"`
	} `positional-args:"true"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	if err := config.Init(string(opts.Config)); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	level := cfg.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	setupLogging(level, cfg.Logging.Format)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameID := uuid.New().String()
	names := opts.Args.Names

	log.Info().
		Str("game_id", gameID).
		Int64("seed", seed).
		Strs("players", names).
		Msg("Starting game")

	meta := gamelog.Metadata{GameID: gameID, Seed: seed}
	for i, name := range names {
		meta.Players = append(meta.Players, gamelog.PlayerInfo{ID: i, Name: name})
	}

	bus := events.NewEventBus()
	recorder := gamelog.NewRecorder(meta)
	bus.Subscribe(recorder)
	if opts.Verbose {
		bus.Subscribe(subscribers.NewLoggerSubscriber("event_log", log.Logger))
	}

	rules := game.RulesFromConfig()
	engine, err := game.NewEngine(gameID, names, rules, rand.New(rand.NewSource(seed)), bus)
	if err != nil {
		var cfgErr *game.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "simulate: %s\n", cfgErr.Reason)
		} else {
			fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		}
		os.Exit(1)
	}

	result, err := engine.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}

	if result.Draw {
		log.Info().Int("turns", result.Turns).Msg("Game ended in a draw")
	} else {
		log.Info().
			Int("winner", result.Winner).
			Str("name", names[result.Winner]).
			Int("turns", result.Turns).
			Msg("Game over")
	}

	text := recorder.Text()
	if opts.Output == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(string(opts.Output), []byte(text), 0644); err != nil {
		log.Fatal().Err(err).Msg("Failed to write game log")
	}
	log.Info().Str("path", string(opts.Output)).Int("lines", recorder.Len()).Msg("Game log written")
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
