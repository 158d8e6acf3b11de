// Package sim runs batches of matches and aggregates their outcomes.
// Matches are independent: each gets its own RNG, state and engine, so
// batches parallelize without any shared mutable game state.
package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lanebound/lanebound/internal/agent"
	"github.com/lanebound/lanebound/internal/catalog"
	"github.com/lanebound/lanebound/internal/game"
	"github.com/lanebound/lanebound/internal/game/core"
	"github.com/lanebound/lanebound/internal/game/events"
)

// Options configures one batch run.
type Options struct {
	Games       int
	Seed        int64
	AgentA      string
	AgentB      string
	Parallelism int

	VictoryScore   int
	MaxTurns       int
	MaxEnergy      int
	ChannelRate    int
	StartingEnergy int
	OpeningHand    int
	Runes          map[core.Domain]int

	// Bus receives every match's events; nil disables publication.
	Bus events.Publisher
	// OnResult is called as each match finishes, in completion order.
	// It must be safe for concurrent use when Parallelism > 1.
	OnResult func(MatchResult)
}

// MatchResult is one finished match within a batch.
type MatchResult struct {
	Index int
	Seed  int64
	game.Result
}

// Summary aggregates a whole batch.
type Summary struct {
	Games       int
	WinsA       int
	WinsB       int
	Draws       int
	AvgTurns    float64
	TotalUnits  int
	TotalSpells int
}

// Runner executes batches against a fixed card catalog.
type Runner struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewRunner creates a batch runner.
func NewRunner(cat *catalog.Catalog, logger zerolog.Logger) *Runner {
	return &Runner{
		catalog: cat,
		logger:  logger.With().Str("component", "sim").Logger(),
	}
}

// Run plays opts.Games matches and returns the batch summary. Per-match
// seeds are all derived from opts.Seed before any match starts, so the
// batch is reproducible at any parallelism level.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Games <= 0 {
		return Summary{}, fmt.Errorf("games must be positive")
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 1
	}

	// Validate agent names before spending any simulation time.
	probe := rand.New(rand.NewSource(0))
	if _, err := agent.New(opts.AgentA, probe); err != nil {
		return Summary{}, fmt.Errorf("agent A: %w", err)
	}
	if _, err := agent.New(opts.AgentB, probe); err != nil {
		return Summary{}, fmt.Errorf("agent B: %w", err)
	}

	seedRng := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]int64, opts.Games)
	for i := range seeds {
		seeds[i] = seedRng.Int63()
	}

	results := make([]game.Result, opts.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i := 0; i < opts.Games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.playMatch(seeds[i], opts)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			results[i] = result
			if opts.OnResult != nil {
				opts.OnResult(MatchResult{Index: i, Seed: seeds[i], Result: result})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return summarize(results), nil
}

func (r *Runner) playMatch(seed int64, opts Options) (game.Result, error) {
	rng := rand.New(rand.NewSource(seed))

	a, err := r.buildPlayer(core.SideA, opts.AgentA, rng, opts)
	if err != nil {
		return game.Result{}, err
	}
	b, err := r.buildPlayer(core.SideB, opts.AgentB, rng, opts)
	if err != nil {
		return game.Result{}, err
	}

	gs := game.NewGameState(rng, a, b, opts.MaxTurns, opts.VictoryScore)
	cfg := game.EngineConfig{
		ChannelRate: opts.ChannelRate,
		MaxEnergy:   opts.MaxEnergy,
		OpeningHand: opts.OpeningHand,
	}
	engine := game.NewEngine(gs, seed, cfg, opts.Bus, r.logger)
	return engine.Run(), nil
}

func (r *Runner) buildPlayer(side core.Side, agentName string, rng *rand.Rand, opts Options) (*game.Player, error) {
	cards, err := r.catalog.ToyDeck()
	if err != nil {
		return nil, err
	}
	deck := &game.Deck{Cards: cards}
	deck.Shuffle(rng)

	p := game.NewPlayer(side, deck, opts.StartingEnergy)
	// Fixed domain order keeps rune setup deterministic.
	for _, domain := range core.AllDomains {
		for i := 0; i < opts.Runes[domain]; i++ {
			p.AddRune(domain, false)
		}
	}

	ag, err := agent.New(agentName, rng)
	if err != nil {
		return nil, err
	}
	p.Agent = ag
	return p, nil
}

func summarize(results []game.Result) Summary {
	sum := Summary{Games: len(results)}
	turns := 0
	for _, res := range results {
		switch res.Winner {
		case "A":
			sum.WinsA++
		case "B":
			sum.WinsB++
		default:
			sum.Draws++
		}
		turns += res.Turns
		sum.TotalUnits += res.UnitsPlayed
		sum.TotalSpells += res.SpellsCast
	}
	if sum.Games > 0 {
		sum.AvgTurns = float64(turns) / float64(sum.Games)
	}
	return sum
}
