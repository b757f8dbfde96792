// Package playout runs uniformly random self-play on a compiled game.
// Workers share the Game and each plays on its own Context.
package playout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"lukechampine.com/frand"

	"github.com/domino14/ludeme/config"
	"github.com/domino14/ludeme/game"
)

var ErrNegativeCount = errors.New("playout count must not be negative")

// Record is the outcome of one playout.
type Record struct {
	Moves    int
	Result   game.Result
	Finished bool
}

// Play plays random moves on c until the game ends, the mover has no
// legal move or maxMoves moves have been played. A maxMoves of zero or
// less means no limit.
func Play(c *game.Context, maxMoves int) Record {
	for maxMoves <= 0 || c.Trial().NumMoves() < maxMoves {
		if c.Trial().Over() {
			break
		}
		ms := c.Moves()
		if len(ms) == 0 {
			break
		}
		c.Apply(ms[c.RNG().Intn(len(ms))])
	}
	res, over := c.Trial().Result()
	return Record{Moves: c.Trial().NumMoves(), Result: res, Finished: over}
}

// Runner plays batches of playouts in parallel.
type Runner struct {
	g        *game.Game
	threads  int
	maxMoves int
	seed     uint64
}

func NewRunner(cfg *config.Config, g *game.Game) *Runner {
	seed := cfg.GetUint64(config.ConfigRngSeed)
	if seed == 0 {
		seed = frand.Uint64n(1 << 62)
	}
	return &Runner{
		g:        g,
		threads:  max(1, cfg.GetInt(config.ConfigPlayoutThreads)),
		maxMoves: cfg.GetInt(config.ConfigPlayoutMaxMoves),
		seed:     seed,
	}
}

func (r *Runner) Seed() uint64 { return r.seed }

// Run plays n playouts. Playout i always uses seed Seed()+i, so a run is
// reproducible whatever the number of threads. Cancelling ctx stops the
// run and returns the context's error. Zero playouts give an empty
// summary.
func (r *Runner) Run(ctx context.Context, n int) (*Summary, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	runID := uuid.New().String()
	records := make([]Record, n)
	var next atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	for t := 0; t < r.threads; t++ {
		t := t
		eg.Go(func() error {
			played := 0
			defer func() {
				log.Debug().Str("run", runID).Int("thread", t).Int("played", played).Msg("playout-worker-exiting")
			}()
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				i := int(next.Add(1)) - 1
				if i >= n {
					return nil
				}
				c := r.g.NewTrial(r.seed + uint64(i))
				records[i] = Play(c, r.maxMoves)
				played++
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	s := Summarize(r.g, records)
	s.RunID = runID
	log.Info().Str("run", runID).Str("game", r.g.Name()).Int("playouts", n).Float64("mean-length", s.MeanLength).
		Int("draws", s.Draws).Int("unfinished", s.Unfinished).Msg("playouts-done")
	return s, nil
}

// Summary aggregates a batch of playouts.
type Summary struct {
	RunID        string
	Game         string
	Playouts     int
	Wins         []int // indexed by player
	Draws        int
	Unfinished   int
	MeanLength   float64
	StdDevLength float64
	Lengths      []float64
}

func Summarize(g *game.Game, records []Record) *Summary {
	s := &Summary{
		Game:     g.Name(),
		Playouts: len(records),
		Wins:     make([]int, g.NumPlayers()+1),
	}
	for _, rec := range records {
		switch {
		case !rec.Finished:
			s.Unfinished++
		case rec.Result.IsDraw():
			s.Draws++
		default:
			s.Wins[rec.Result.Winner]++
		}
	}
	s.Lengths = lo.Map(records, func(rec Record, _ int) float64 { return float64(rec.Moves) })
	if len(s.Lengths) > 0 {
		s.MeanLength, s.StdDevLength = stat.MeanStdDev(s.Lengths, nil)
	}
	return s
}

// WinRate is the share of playouts player p won.
func (s *Summary) WinRate(p int) float64 {
	if s.Playouts == 0 || p < 1 || p >= len(s.Wins) {
		return 0
	}
	return float64(s.Wins[p]) / float64(s.Playouts)
}

func (s *Summary) String() string {
	var ss strings.Builder
	fmt.Fprintf(&ss, "%s: %d playouts\n", s.Game, s.Playouts)
	fmt.Fprintf(&ss, "%-10s%-9s%-9s\n", "Player", "Wins", "Win%")
	for p := 1; p < len(s.Wins); p++ {
		fmt.Fprintf(&ss, "%-10d%-9d%-9.2f\n", p, s.Wins[p], 100*s.WinRate(p))
	}
	fmt.Fprintf(&ss, "Draws: %d  Unfinished: %d\n", s.Draws, s.Unfinished)
	fmt.Fprintf(&ss, "Length: mean %.2f, stddev %.2f\n", s.MeanLength, s.StdDevLength)
	return ss.String()
}

// Histogram writes a histogram of game lengths.
func (s *Summary) Histogram(w io.Writer, bins int) error {
	if len(s.Lengths) == 0 {
		return nil
	}
	h := histogram.Hist(bins, s.Lengths)
	return histogram.Fprint(w, h, histogram.Linear(40))
}
