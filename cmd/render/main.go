package main

import (
	"errors"
	"fmt"
	"image/gif"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ludo/internal/config"
	"ludo/internal/gamelog"
	"ludo/internal/render"
)

var opts struct {
	Output  flags.Filename `short:"o" long:"output" default:"game.gif" description:"Animated GIF output path"`
	FrameMS int            `short:"d" long:"frame-ms" description:"Frame duration in milliseconds (0 uses config default)"`
	Config  flags.Filename `short:"c" long:"config" description:"Config file path"`

	Args struct {
		Log flags.Filename `positional-arg-name:"GAME.LOG" required:"true" description:"Game log to render"`
	} `positional-args:"true"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	if err := config.Init(string(opts.Config)); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()
	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	text, err := os.ReadFile(string(opts.Args.Log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	meta, evs, err := gamelog.ParseGame(string(text))
	if err != nil {
		var malformed *gamelog.MalformedLogError
		if errors.As(err, &malformed) {
			fmt.Fprintf(os.Stderr, "render: %v\n", malformed)
		} else {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
		}
		os.Exit(1)
	}

	log.Info().
		Str("game_id", meta.GameID).
		Int("players", len(meta.Players)).
		Int("events", len(evs)).
		Msg("Parsed game log")

	renderOpts := render.OptionsFromConfig()
	if opts.FrameMS > 0 {
		renderOpts.FrameMillis = opts.FrameMS
	}

	img, err := render.GIF(meta, evs, renderOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(string(opts.Output))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create output file")
	}
	defer out.Close()

	if err := gif.EncodeAll(out, img); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode GIF")
	}
	log.Info().
		Str("path", string(opts.Output)).
		Int("frames", len(img.Image)).
		Msg("GIF written")
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
