package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/ludeme"
)

var (
	ErrNoPlay     = errors.New("rules have no play generator")
	ErrNoEndRules = errors.New("rules have no end rules")
)

// Summary is what Compile learned about a game.
type Summary struct {
	Game                string   `yaml:"game"`
	Players             int      `yaml:"players"`
	Sites               int      `yaml:"sites"`
	Nodes               int      `yaml:"nodes"`
	Fingerprint         string   `yaml:"fingerprint"`
	Flags               []string `yaml:"flags"`
	Concepts            []string `yaml:"concepts"`
	MissingRequirements []string `yaml:"missing_requirements,omitempty"`
	WillCrash           []string `yaml:"will_crash,omitempty"`
}

// YAML renders the summary.
func (s *Summary) YAML() (string, error) {
	bts, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(bts), nil
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d players, %d sites, %d nodes (%s)\n", s.Game, s.Players, s.Sites, s.Nodes, s.Fingerprint)
	fmt.Fprintf(&sb, "flags: %s\n", strings.Join(s.Flags, " "))
	fmt.Fprintf(&sb, "concepts: %s\n", strings.Join(s.Concepts, " "))
	for _, m := range s.MissingRequirements {
		fmt.Fprintf(&sb, "missing requirement: %s\n", m)
	}
	for _, m := range s.WillCrash {
		fmt.Fprintf(&sb, "will crash: %s\n", m)
	}
	return sb.String()
}

// equipmentFlags are the flags implied by the game's options rather than
// by any rule.
func equipmentFlags(g *game.Game) game.Flags {
	var f game.Flags
	if g.IsStacking() {
		f |= game.FlagStacking
	}
	if g.IsCountMode() {
		f |= game.FlagCount
	}
	if g.Board().Kind() == board.KindGraph {
		f |= game.FlagGraph
	}
	if g.HasTeams() {
		f |= game.FlagTeam
	}
	return f
}

// Fingerprint hashes the shape of the rule trees: node types and depths,
// in pre-order.
func Fingerprint(roots ...ludeme.Ludeme) uint64 {
	h := xxhash.New()
	for i, r := range roots {
		fmt.Fprintf(h, "root%d;", i)
		ludeme.Walk(r, func(n ludeme.Ludeme, depth int) bool {
			fmt.Fprintf(h, "%d:%s;", depth, ludeme.Name(n))
			return true
		})
	}
	return h.Sum64()
}

// Compile preprocesses r, computes the game's flags and concepts, runs
// the diagnostics and installs r in g. Diagnostics do not fail the
// compile; they are logged and listed in the summary.
func Compile(g *game.Game, r *Rules) (*Summary, error) {
	if r.play == nil {
		return nil, ErrNoPlay
	}
	if len(r.end) == 0 {
		return nil, ErrNoEndRules
	}
	roots := r.Roots()
	a := ludeme.Analyze(g, roots...)
	flags := a.Flags | equipmentFlags(g)
	g.Compiled(r, flags, a.Concepts)

	nodes := 0
	for _, root := range roots {
		nodes += ludeme.NumNodes(root)
	}
	rep := g.Report()
	s := &Summary{
		Game:                g.Name(),
		Players:             g.NumPlayers(),
		Sites:               g.Board().NumSites(),
		Nodes:               nodes,
		Fingerprint:         fmt.Sprintf("%016x", Fingerprint(roots...)),
		Flags:               flags.Names(),
		Concepts:            a.Concepts.Names(),
		MissingRequirements: rep.MissingRequirements(),
		WillCrash:           rep.WillCrashes(),
	}
	for _, m := range s.MissingRequirements {
		log.Warn().Str("game", g.Name()).Str("diagnostic", m).Msg("missing-requirement")
	}
	for _, m := range s.WillCrash {
		log.Warn().Str("game", g.Name()).Str("diagnostic", m).Msg("will-crash")
	}
	log.Debug().Str("game", g.Name()).Strs("flags", s.Flags).Int("concepts", a.Concepts.Len()).
		Int("nodes", nodes).Msg("compiled")
	return s, nil
}
