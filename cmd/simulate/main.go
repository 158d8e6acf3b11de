package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lanebound/lanebound/internal/agent"
	"github.com/lanebound/lanebound/internal/catalog"
	"github.com/lanebound/lanebound/internal/config"
	"github.com/lanebound/lanebound/internal/game/core"
	"github.com/lanebound/lanebound/internal/game/events"
	"github.com/lanebound/lanebound/internal/game/events/subscribers"
	"github.com/lanebound/lanebound/internal/record"
	"github.com/lanebound/lanebound/internal/sim"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	games := flag.Int("games", -1, "Number of matches to simulate (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Base RNG seed (-1 to use config default)")
	agentA := flag.String("agent-a", "", "Agent for side A (empty to use config default)")
	agentB := flag.String("agent-b", "", "Agent for side B (empty to use config default)")
	parallelism := flag.Int("parallelism", -1, "Concurrent matches (-1 to use config default)")
	victoryScore := flag.Int("victory-score", -1, "Points needed to win (-1 to use config default)")
	maxTurns := flag.Int("max-turns", -1, "Turn cap before a match is decided on points (-1 to use config default)")
	channelRate := flag.Int("channel-rate", -1, "Energy gained per channel phase (-1 to use config default)")
	maxEnergy := flag.Int("max-energy", -1, "Energy pool cap (-1 to use config default)")
	startingEnergy := flag.Int("starting-energy", -1, "Energy each player starts with (-1 to use config default)")
	storagePath := flag.String("db", "", "SQLite path for match recording (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	listAgents := flag.Bool("list-agents", false, "List available agents and exit")
	flag.Parse()

	if *listAgents {
		for _, name := range agent.Names() {
			fmt.Println(name)
		}
		return
	}

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *games == -1 {
		*games = cfg.Sim.Games
	}
	if *seed == -1 {
		*seed = cfg.Sim.Seed
	}
	if *agentA == "" {
		*agentA = cfg.Sim.AgentA
	}
	if *agentB == "" {
		*agentB = cfg.Sim.AgentB
	}
	if *parallelism == -1 {
		*parallelism = cfg.Sim.Parallelism
	}
	if *victoryScore == -1 {
		*victoryScore = cfg.Match.VictoryScore
	}
	if *maxTurns == -1 {
		*maxTurns = cfg.Match.MaxTurns
	}
	if *channelRate == -1 {
		*channelRate = cfg.Match.ChannelRate
	}
	if *maxEnergy == -1 {
		*maxEnergy = cfg.Match.MaxEnergy
	}
	if *startingEnergy == -1 {
		*startingEnergy = cfg.Match.StartingEnergy
	}
	if *storagePath == "" {
		*storagePath = cfg.Storage.Path
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}

	setupLogging(*logLevel, cfg.Log.Format)

	log.Info().
		Int("games", *games).
		Int64("seed", *seed).
		Str("agent_a", *agentA).
		Str("agent_b", *agentB).
		Int("parallelism", *parallelism).
		Int("victory_score", *victoryScore).
		Int("max_turns", *maxTurns).
		Msg("Starting simulation batch")

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load card catalog")
	}

	// Wire the recorder when a storage path is configured, and an event
	// logger when running at debug level.
	var bus events.Publisher
	eventBus := events.NewEventBus()
	if *storagePath != "" {
		store, err := record.Open(*storagePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *storagePath).Msg("Failed to open match store")
		}
		defer store.Close()

		eventBus.Subscribe(record.NewRecorder(store, log.Logger))
		bus = eventBus
		defer printAnalytics(store)
	}
	if *logLevel == "debug" {
		eventBus.Subscribe(subscribers.NewLoggerSubscriber("event-logger", log.Logger))
		bus = eventBus
	}

	runes := make(map[core.Domain]int, len(cfg.Match.Runes))
	for name, count := range cfg.Match.Runes {
		domain, err := core.ParseDomain(name)
		if err != nil {
			log.Fatal().Err(err).Str("domain", name).Msg("Invalid rune domain in config")
		}
		runes[domain] = count
	}

	var mu sync.Mutex
	opts := sim.Options{
		Games:          *games,
		Seed:           *seed,
		AgentA:         *agentA,
		AgentB:         *agentB,
		Parallelism:    *parallelism,
		VictoryScore:   *victoryScore,
		MaxTurns:       *maxTurns,
		MaxEnergy:      *maxEnergy,
		ChannelRate:    *channelRate,
		StartingEnergy: *startingEnergy,
		OpeningHand:    cfg.Match.OpeningHand,
		Runes:          runes,
		Bus:            bus,
	}
	if cfg.Sim.Verbose {
		opts.OnResult = func(res sim.MatchResult) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Printf("game %4d  seed=%-20d winner=%-4s turns=%-3d points=%d-%d\n",
				res.Index, res.Seed, res.Winner, res.Turns, res.PointsA, res.PointsB)
		}
	}

	runner := sim.NewRunner(cat, log.Logger)
	start := time.Now()
	summary, err := runner.Run(context.Background(), opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Simulation batch failed")
	}
	elapsed := time.Since(start)

	fmt.Println()
	fmt.Printf("games:      %d (%.1fs)\n", summary.Games, elapsed.Seconds())
	fmt.Printf("%s wins A:  %d (%.1f%%)\n", *agentA, summary.WinsA, pct(summary.WinsA, summary.Games))
	fmt.Printf("%s wins B:  %d (%.1f%%)\n", *agentB, summary.WinsB, pct(summary.WinsB, summary.Games))
	fmt.Printf("draws:      %d (%.1f%%)\n", summary.Draws, pct(summary.Draws, summary.Games))
	fmt.Printf("avg turns:  %.1f\n", summary.AvgTurns)
	fmt.Printf("units:      %d, spells: %d\n", summary.TotalUnits, summary.TotalSpells)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func printAnalytics(store *record.Store) {
	agents, err := store.AgentSummaries()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute agent summaries")
		return
	}
	cards, err := store.TopCards(5)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute card usage")
		return
	}

	fmt.Println()
	fmt.Println("recorded agent win rates:")
	for _, a := range agents {
		fmt.Printf("  %-10s %d/%d (%.1f%%)\n", a.Agent, a.Wins, a.Matches, 100*a.WinRate)
	}
	fmt.Println("most played cards:")
	for _, c := range cards {
		fmt.Printf("  %-24s %d\n", c.CardName, c.Plays)
	}
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
