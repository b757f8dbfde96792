package cache

import (
	"fmt"

	"github.com/domino14/ludeme/config"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/rules"
	"github.com/domino14/ludeme/testhelpers"
)

// CompiledGame is a game with its rules installed, plus the compile
// summary.
type CompiledGame struct {
	Game    *game.Game
	Summary *rules.Summary
}

func gameKey(name string) string {
	return "game:" + name
}

func loadSampleGame(cfg *config.Config, key string) (any, error) {
	name := key[len("game:"):]
	g, s, err := testhelpers.Load(name)
	if err != nil {
		return nil, err
	}
	return &CompiledGame{Game: g, Summary: s}, nil
}

// LoadGame returns the named sample game, compiling it on first use.
func LoadGame(cfg *config.Config, name string) (*CompiledGame, error) {
	obj, err := Load(cfg, gameKey(name), loadSampleGame)
	if err != nil {
		return nil, err
	}
	cg, ok := obj.(*CompiledGame)
	if !ok {
		return nil, fmt.Errorf("cached object for %s is a %T", name, obj)
	}
	return cg, nil
}
