package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/ludeme/cache"
	"github.com/domino14/ludeme/config"
	"github.com/domino14/ludeme/playout"
	"github.com/domino14/ludeme/testhelpers"
)

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <game>")
	}
	cg, err := cache.LoadGame(sc.cfg, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.gameName = cmd.args[0]
	sc.game = cg.Game
	sc.summary = cg.Summary
	sc.ctx = cg.Game.NewTrial(sc.cfg.GetUint64(config.ConfigRngSeed))
	sc.curMoves = nil
	log.Debug().Str("game", sc.gameName).Msg("loaded")
	return msg(renderState(sc.ctx)), nil
}

func (sc *ShellController) games(cmd *shellcmd) (*Response, error) {
	return msg(strings.Join(testhelpers.Names(), "\n")), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.ctx == nil {
		return nil, errNoGame
	}
	sc.curMoves = sc.ctx.Moves()
	if len(sc.curMoves) == 0 {
		return msg("no legal moves"), nil
	}
	var sb strings.Builder
	for i, m := range sc.curMoves {
		fmt.Fprintf(&sb, "%3d: %s\n", i+1, m.ShortDescription())
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// play applies one of the generated moves, numbered from 1 as gen shows
// them. "play #3" and "play 3" are the same.
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.ctx == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play #n")
	}
	if sc.curMoves == nil {
		sc.curMoves = sc.ctx.Moves()
	}
	n, err := strconv.Atoi(strings.TrimPrefix(cmd.args[0], "#"))
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(sc.curMoves) {
		return nil, fmt.Errorf("move %d out of range (1-%d)", n, len(sc.curMoves))
	}
	sc.ctx.Apply(sc.curMoves[n-1])
	sc.curMoves = nil
	return msg(renderState(sc.ctx)), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if sc.ctx == nil {
		return nil, errNoGame
	}
	if sc.ctx.Undo() == nil {
		return nil, errors.New("nothing to undo")
	}
	sc.curMoves = nil
	return msg(renderState(sc.ctx)), nil
}

func (sc *ShellController) showState(cmd *shellcmd) (*Response, error) {
	if sc.ctx == nil {
		return nil, errNoGame
	}
	return msg(renderState(sc.ctx)), nil
}

func (sc *ShellController) report(cmd *shellcmd) (*Response, error) {
	if sc.summary == nil {
		return nil, errNoGame
	}
	format := cmd.options["format"]
	if format == "" {
		format = sc.cfg.GetString(config.ConfigReportFormat)
	}
	if format == "yaml" {
		out, err := sc.summary.YAML()
		if err != nil {
			return nil, err
		}
		return msg(out), nil
	}
	return msg(sc.summary.String()), nil
}

func (sc *ShellController) playout(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	n := 100
	if len(cmd.args) > 0 {
		var err error
		if n, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	r := playout.NewRunner(sc.cfg, sc.game)
	s, err := r.Run(context.Background(), n)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(s.String())
	if err := s.Histogram(&sb, 10); err != nil {
		return nil, err
	}
	return msg(sb.String()), nil
}
