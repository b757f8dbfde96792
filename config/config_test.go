package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigPlayoutThreads), 4)
	is.Equal(cfg.GetInt(ConfigPlayoutMaxMoves), 500)
	is.Equal(cfg.GetBool(ConfigDebug), false)
	is.Equal(cfg.GetString(ConfigDefaultGame), "tictactoe")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--debug", "--playout-threads", "8", "--rng-seed", "42"})
	is.NoErr(err)
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.GetInt(ConfigPlayoutThreads), 8)
	is.Equal(cfg.GetUint64(ConfigRngSeed), uint64(42))
	is.Equal(cfg.GetString(ConfigReportFormat), "yaml")
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("LUDEME_PLAYOUT_MAX_MOVES", "77")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigPlayoutMaxMoves), 77)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}
