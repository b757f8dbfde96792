// Package rules ties a game's rule trees together: the start effects, the
// play move generator and the end rules. Compile runs the static analysis
// and installs the result in the game.
package rules

import (
	"github.com/domino14/ludeme/concept"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

// EndRule ends the game when cond holds, giving outcome to the player who
// evaluates to (the mover when who is nil). A draw ignores who.
type EndRule struct {
	ludeme.Base
	cond    ludeme.BooleanFunction
	who     ludeme.IntFunction
	outcome game.Outcome
}

func newEndRule(cond ludeme.BooleanFunction, who ludeme.IntFunction, o game.Outcome) *EndRule {
	var c concept.Concept
	switch o {
	case game.OutcomeWin:
		c = concept.WinEnd
	case game.OutcomeLoss:
		c = concept.LossEnd
	default:
		c = concept.DrawEnd
	}
	return &EndRule{
		Base:    ludeme.NewBase(ludeme.Traits{Dynamic: true, Concepts: concept.Of(c)}, cond, who),
		cond:    cond,
		who:     who,
		outcome: o,
	}
}

func Win(cond ludeme.BooleanFunction, who ludeme.IntFunction) *EndRule {
	return newEndRule(cond, who, game.OutcomeWin)
}

func Loss(cond ludeme.BooleanFunction, who ludeme.IntFunction) *EndRule {
	return newEndRule(cond, who, game.OutcomeLoss)
}

func Draw(cond ludeme.BooleanFunction) *EndRule {
	return newEndRule(cond, nil, game.OutcomeDraw)
}

func (e *EndRule) Outcome() game.Outcome { return e.outcome }

// Eval reports the result if the rule fires.
func (e *EndRule) Eval(c *game.Context) (game.Result, bool) {
	if !e.cond.Eval(c) {
		return game.Result{}, false
	}
	n := c.Game().NumPlayers()
	if e.outcome == game.OutcomeDraw {
		return game.NewResult(n, 0, game.OutcomeDraw), true
	}
	who := c.Mover()
	if e.who != nil {
		who = e.who.Eval(c)
	}
	return game.NewResult(n, who, e.outcome), true
}

// Rules implements game.Rules.
type Rules struct {
	start []ludeme.Effect
	play  ludeme.Moves
	end   []*EndRule
}

func New(start []ludeme.Effect, play ludeme.Moves, end ...*EndRule) *Rules {
	return &Rules{start: start, play: play, end: end}
}

// Start applies the start effects to a fresh context. They are not part
// of any move and cannot be undone.
func (r *Rules) Start(c *game.Context) {
	for _, e := range r.start {
		e.Eval(c)
	}
}

func (r *Rules) Moves(c *game.Context) []*game.Move {
	if r.play == nil {
		return nil
	}
	return r.play.Eval(c)
}

// End checks the end rules in order; the first that fires decides.
func (r *Rules) End(c *game.Context) (game.Result, bool) {
	for _, e := range r.end {
		if res, ok := e.Eval(c); ok {
			return res, true
		}
	}
	return game.Result{}, false
}

// Roots lists every rule tree, start effects first.
func (r *Rules) Roots() []ludeme.Ludeme {
	roots := ludeme.Of(r.start...)
	if r.play != nil {
		roots = append(roots, r.play)
	}
	return append(roots, ludeme.Of(r.end...)...)
}
