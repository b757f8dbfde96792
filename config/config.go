package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug            = "debug"
	ConfigRngSeed          = "rng-seed"
	ConfigPlayoutThreads   = "playout-threads"
	ConfigPlayoutMaxMoves  = "playout-max-moves"
	ConfigShellHistoryFile = "shell-history-file"
	ConfigReportFormat     = "report-format"
	ConfigDefaultGame      = "default-game"
)

// Config wraps a viper instance. Settings can come from flags, environment
// variables (LUDEME_ prefix, dashes become underscores) or defaults.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config holding only default values. It is
// mostly useful for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigRngSeed, 0)
	c.SetDefault(ConfigPlayoutThreads, 4)
	c.SetDefault(ConfigPlayoutMaxMoves, 500)
	c.SetDefault(ConfigShellHistoryFile, "/tmp/ludeme_readline.tmp")
	c.SetDefault(ConfigReportFormat, "yaml")
	c.SetDefault(ConfigDefaultGame, "tictactoe")
}

// Load parses the given command-line arguments and binds them, together
// with the environment, on top of the defaults.
func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	c.setDefaults()

	fs := pflag.NewFlagSet("ludeme", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Uint64(ConfigRngSeed, 0, "seed for the trial random source; 0 picks a random seed")
	fs.Int(ConfigPlayoutThreads, 4, "number of parallel playout workers")
	fs.Int(ConfigPlayoutMaxMoves, 500, "maximum number of moves in a single playout")
	fs.String(ConfigShellHistoryFile, "/tmp/ludeme_readline.tmp", "readline history file for the shell")
	fs.String(ConfigReportFormat, "yaml", "format for compile reports: yaml or text")
	fs.String(ConfigDefaultGame, "tictactoe", "game loaded when the shell starts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("ludeme")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// SanitizedSettings returns all settings as a map, suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
