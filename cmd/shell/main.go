package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/ludeme/config"
	"github.com/domino14/ludeme/shell"
)

var (
	GitVersion string
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i any) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i any) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func main() {
	fmt.Println("ludeme", GitVersion)

	cfg := &config.Config{}
	// Flags come first; anything left over is a one-shot command.
	args := os.Args[1:]
	if err := cfg.Load(flagArgs(args)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg)
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	cmdLine := strings.TrimSpace(strings.Join(commandArgs(args), " "))

	sc := shell.NewShellController(cfg)
	if cmdLine == "" {
		go sc.Loop(sig)
	} else {
		sc.Execute(sig, cmdLine)
		sig <- syscall.SIGINT
	}

	log.Info().Msg("started loop")
	<-idleConnsClosed

	sc.Cleanup()
	log.Info().Msg("shell shutting down")
}

// flagArgs returns the leading --flags (with their values); commandArgs
// returns the rest.
func flagArgs(args []string) []string {
	return args[:splitAt(args)]
}

func commandArgs(args []string) []string {
	return args[splitAt(args):]
}

func splitAt(args []string) int {
	i := 0
	for i < len(args) && strings.HasPrefix(args[i], "--") {
		if !strings.Contains(args[i], "=") && args[i] != "--"+config.ConfigDebug && i+1 < len(args) {
			i++
		}
		i++
	}
	return i
}
