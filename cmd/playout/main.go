// Command playout compiles a sample game and plays random games on it.
//
//	playout [--playout-threads 8] [--rng-seed 1] <game> [n]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/ludeme/cache"
	"github.com/domino14/ludeme/config"
	"github.com/domino14/ludeme/playout"
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	cfg := &config.Config{}
	err := cfg.Load(os.Args[1:])
	if err == pflag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg)

	rest := positional(os.Args[1:])
	name := cfg.GetString(config.ConfigDefaultGame)
	n := 1000
	if len(rest) > 0 {
		name = rest[0]
	}
	if len(rest) > 1 {
		if n, err = strconv.Atoi(rest[1]); err != nil {
			log.Fatal().Err(err).Msg("bad playout count")
		}
	}

	cg, err := cache.LoadGame(cfg, name)
	if err != nil {
		log.Fatal().Err(err).Str("game", name).Msg("load-failed")
	}
	for _, m := range cg.Summary.MissingRequirements {
		log.Warn().Str("diagnostic", m).Msg("missing-requirement")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := playout.NewRunner(cfg, cg.Game)
	log.Info().Str("game", name).Int("n", n).Uint64("seed", r.Seed()).Msg("starting playouts")
	start := time.Now()
	s, err := r.Run(ctx, n)
	if err != nil {
		log.Fatal().Err(err).Msg("playouts-failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
	fmt.Print(s.String())
	if err := s.Histogram(os.Stdout, 15); err != nil {
		log.Error().Err(err).Msg("histogram")
	}
}

// positional drops --flag value pairs from args.
func positional(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "--") {
			out = append(out, a)
			continue
		}
		if !strings.Contains(a, "=") && a != "--"+config.ConfigDebug {
			i++
		}
	}
	return out
}
