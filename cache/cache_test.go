package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/ludeme/config"
)

func TestLoadCachesObjects(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return key + "!", nil
	}
	a, err := Load(cfg, "thing", loader)
	is.NoErr(err)
	b, err := Load(cfg, "thing", loader)
	is.NoErr(err)
	is.Equal(a, "thing!")
	is.Equal(b, "thing!")
	is.Equal(calls, 1)

	Forget("thing")
	_, err = Load(cfg, "thing", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	boom := errors.New("boom")
	_, err := Load(cfg, "broken", func(*config.Config, string) (any, error) { return nil, boom })
	is.True(errors.Is(err, boom))
	v, err := Load(cfg, "broken", func(*config.Config, string) (any, error) { return 1, nil })
	is.NoErr(err)
	is.Equal(v, 1)
}

func TestLoadGameSharesCompiledGame(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	a, err := LoadGame(cfg, "tictactoe")
	is.NoErr(err)
	b, err := LoadGame(cfg, "tictactoe")
	is.NoErr(err)
	is.True(a.Game == b.Game)
	is.Equal(a.Summary.Game, "tictactoe")

	_, err = LoadGame(cfg, "no-such-game")
	is.True(err != nil)
}
