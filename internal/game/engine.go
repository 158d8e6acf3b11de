package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lanebound/lanebound/internal/game/core"
	"github.com/lanebound/lanebound/internal/game/effects"
	"github.com/lanebound/lanebound/internal/game/events"
	"github.com/lanebound/lanebound/internal/game/rules"
)

// EngineConfig fixes the per-match tunables for the duration of one
// match.
type EngineConfig struct {
	// ChannelRate is the energy yielded by each rune activation.
	ChannelRate int
	// MaxEnergy caps energy after channeling. The core player model
	// does not cap; the clamp lives here, at the orchestration
	// boundary.
	MaxEnergy int
	// OpeningHand is the number of cards each player draws before the
	// first turn.
	OpeningHand int
}

// DefaultEngineConfig mirrors the standard match setup.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{ChannelRate: 1, MaxEnergy: 10, OpeningHand: 5}
}

// Result summarizes a finished match.
type Result struct {
	Winner      rules.Winner
	Turns       int
	UnitsPlayed int
	SpellsCast  int
	PointsA     int
	PointsB     int
}

// Engine is the turn/phase sequencer for one match. It exclusively owns
// its GameState; there is no intra-match concurrency. Everything the
// outside world learns about the match flows through the event
// publisher, which has no back-influence on rules.
type Engine struct {
	gs      *GameState
	cfg     EngineConfig
	seed    int64
	matchID string

	logger  zerolog.Logger
	bus     events.Publisher
	victory *rules.VictoryChecker

	unitsPlayed int
	spellsCast  int
}

// nopPublisher drops every event; the engine runs identically with or
// without a recorder attached.
type nopPublisher struct{}

func (nopPublisher) Publish(events.Event) {}

// NewEngine creates the sequencer for one match. bus may be nil.
func NewEngine(gs *GameState, seed int64, cfg EngineConfig, bus events.Publisher, logger zerolog.Logger) *Engine {
	if bus == nil {
		bus = nopPublisher{}
	}
	matchID := uuid.NewString()
	engineLogger := logger.With().Str("component", "engine").Str("match_id", matchID).Logger()
	return &Engine{
		gs:      gs,
		cfg:     cfg,
		seed:    seed,
		matchID: matchID,
		logger:  engineLogger,
		bus:     bus,
		victory: rules.NewVictoryChecker(engineLogger, gs.VictoryScore),
	}
}

// MatchID returns the identifier events for this match carry.
func (e *Engine) MatchID() string {
	return e.matchID
}

// GameState exposes the match state for inspection after Run.
func (e *Engine) GameState() *GameState {
	return e.gs
}

// Run plays the match to a terminal state and returns the result. The
// loop never exceeds MaxTurns.
func (e *Engine) Run() Result {
	gs := e.gs

	e.bus.Publish(events.NewMatchStartedEvent(
		e.matchID, e.seed, e.agentName(gs.A), e.agentName(gs.B),
		append([]*core.Card(nil), gs.A.Deck.Cards...),
		append([]*core.Card(nil), gs.B.Deck.Cards...),
		gs.VictoryScore, gs.MaxTurns,
	))

	for i := 0; i < e.cfg.OpeningHand; i++ {
		e.drawFor(gs.A, 0)
		e.drawFor(gs.B, 0)
	}

	for gs.Turn <= gs.MaxTurns {
		active := gs.Active

		e.enterPhase(PhaseBeginning)
		gained := e.phaseBeginning(active)
		if gained > 0 {
			gs.AddPoints(active, gained)
			if over, winner := e.victory.CheckThreshold(gs.PointsA, gs.PointsB); over {
				return e.finish(winner, gs.Turn)
			}
		}

		e.enterPhase(PhaseDraw)
		ap := gs.PlayerFor(active)
		e.phaseDraw(ap)

		e.enterPhase(PhaseAction)
		action := Pass()
		if ap.Agent != nil {
			action = ap.Agent.Decide(gs.viewFor(active))
		}
		e.applyAction(ap, action)

		e.phaseShowdown()

		e.enterPhase(PhaseCombat)
		e.phaseCombatConquer(active)
		if over, winner := e.victory.CheckThreshold(gs.PointsA, gs.PointsB); over {
			return e.finish(winner, gs.Turn)
		}

		e.enterPhase(PhaseEnd)
		e.phaseEnd(active)
	}

	return e.finish(e.victory.DecideAtTurnCap(gs.PointsA, gs.PointsB), gs.Turn-1)
}

func (e *Engine) enterPhase(p Phase) {
	e.logger.Trace().Str("phase", p.String()).Int("turn", e.gs.Turn).Msg("Phase entered")
}

func (e *Engine) agentName(p *Player) string {
	if p.Agent == nil {
		return "none"
	}
	return p.Agent.Name()
}

func (e *Engine) finish(winner rules.Winner, turns int) Result {
	result := Result{
		Winner:      winner,
		Turns:       turns,
		UnitsPlayed: e.unitsPlayed,
		SpellsCast:  e.spellsCast,
		PointsA:     e.gs.PointsA,
		PointsB:     e.gs.PointsB,
	}
	e.logger.Info().
		Str("winner", string(winner)).
		Int("turns", turns).
		Int("points_a", result.PointsA).
		Int("points_b", result.PointsB).
		Msg("Match finished")
	e.bus.Publish(events.NewMatchEndedEvent(
		e.matchID, string(winner), turns, e.unitsPlayed, e.spellsCast,
		result.PointsA, result.PointsB,
	))
	return result
}

// phaseBeginning resets per-turn lane flags, snapshots controllers,
// readies the active side, channels both players (active first) and
// awards Hold points. Returns the points gained.
func (e *Engine) phaseBeginning(active core.Side) int {
	gs := e.gs

	for _, bf := range gs.Battlefields {
		bf.BeginTurnReset()
	}
	for _, bf := range gs.Battlefields {
		bf.LastController = bf.Controller()
	}
	// A lane that was already contested carries the contest into the
	// new turn.
	for _, bf := range gs.Battlefields {
		bf.MarkContestedIfNeeded()
	}

	activePlayer := gs.PlayerFor(active)
	activePlayer.ReadyBaseUnits()
	for _, bf := range gs.Battlefields {
		bf.ReadySide(active)
	}

	e.channel(activePlayer)
	e.channel(gs.PlayerFor(active.Other()))

	vps := 0
	for i, bf := range gs.Battlefields {
		if bf.CanScoreHold(active) {
			vps++
			bf.MarkScored(active)
			e.logger.Debug().Int("lane", i).Str("side", string(active)).Msg("Hold point awarded")
		}
	}
	return vps
}

func (e *Engine) channel(p *Player) {
	p.Channel(e.cfg.ChannelRate)
	if e.cfg.MaxEnergy > 0 && p.Energy > e.cfg.MaxEnergy {
		p.Energy = e.cfg.MaxEnergy
	}
}

func (e *Engine) phaseDraw(p *Player) {
	e.drawFor(p, e.gs.Turn)
}

func (e *Engine) drawFor(p *Player, turn int) {
	if card := p.DrawCard(); card != nil {
		e.bus.Publish(events.NewCardDrawnEvent(e.matchID, p.Side, turn, card))
	}
}

// applyAction resolves the agent's action. Invalid or unaffordable
// actions are no-ops, never errors: the sequencer must not crash or
// skip a turn because of agent misbehavior.
func (e *Engine) applyAction(ap *Player, action Action) {
	switch action.Kind {
	case ActionPass:
		// nothing to do
	case ActionPlayUnit:
		e.playUnit(ap, action)
	case ActionPlaySpell, ActionPlayGear:
		e.playEffectCard(ap, action)
	case ActionMove:
		e.moveUnit(ap, action)
	default:
		e.logger.Warn().Str("action", action.Kind.String()).Msg("Unhandled action kind, treating as pass")
	}
}

// clampLane resolves an out-of-range lane index to the safe default.
func (e *Engine) clampLane(lane int) int {
	if lane < 0 || lane >= len(e.gs.Battlefields) {
		return 0
	}
	return lane
}

func (e *Engine) handCard(ap *Player, idx int, category core.Category) *core.Card {
	if idx < 0 || idx >= len(ap.Hand) {
		return nil
	}
	card := ap.Hand[idx]
	if card.Category != category {
		return nil
	}
	return card
}

func (e *Engine) playUnit(ap *Player, action Action) {
	card := e.handCard(ap, action.HandIndex, core.CategoryUnit)
	if card == nil {
		return
	}
	if !ap.PayCost(card.CostEnergy, card.CostPower) {
		return
	}
	lane := e.clampLane(action.Lane)
	bf := e.gs.Battlefields[lane]

	unit := core.NewUnit(card)
	bf.AddUnit(ap.Side, unit)
	ap.RemoveFromHand(action.HandIndex)
	e.unitsPlayed++

	e.logger.Debug().Str("side", string(ap.Side)).Str("card", card.Name).Int("lane", lane).Msg("Unit played")
	e.bus.Publish(events.NewCardPlayedEvent(e.matchID, ap.Side, e.gs.Turn, card, ActionPlayUnit.String(), lane, ""))
}

func (e *Engine) playEffectCard(ap *Player, action Action) {
	category := core.CategorySpell
	if action.Kind == ActionPlayGear {
		category = core.CategoryGear
	}
	card := e.handCard(ap, action.HandIndex, category)
	if card == nil {
		return
	}
	if !ap.PayCost(card.CostEnergy, card.CostPower) {
		return
	}
	lane := e.clampLane(action.Lane)
	bf := e.gs.Battlefields[lane]
	opponent := e.gs.PlayerFor(ap.Side.Other())

	// Identity tokens from before resolution surface unit deaths as a
	// set difference afterward.
	before := unitIDs(bf.units(ap.Side.Other()))

	ctx := &effects.Context{
		ActorSide: ap.Side,
		Actor:     ap,
		Opponent:  opponent,
		Lane:      bf,
	}
	if len(card.Effects) == 0 {
		// Pre-effect-system cards carry a flat damage value instead.
		if card.Category == core.CategorySpell {
			bf.ApplyDirectDamage(ap.Side.Other(), card.Damage)
		}
	} else {
		for _, spec := range card.Effects {
			if err := effects.Apply(ctx, spec); err != nil {
				e.logger.Warn().Err(err).Str("card", card.Name).Str("effect", spec.Name).Msg("Effect skipped")
			}
		}
	}

	result := deathTag(before, bf.units(ap.Side.Other()))

	ap.RemoveFromHand(action.HandIndex)
	e.spellsCast++

	e.logger.Debug().Str("side", string(ap.Side)).Str("card", card.Name).Int("lane", lane).Str("result", result).Msg("Card cast")
	e.bus.Publish(events.NewCardPlayedEvent(e.matchID, ap.Side, e.gs.Turn, card, action.Kind.String(), lane, result))
}

func unitIDs(units []*core.Unit) map[string]string {
	ids := make(map[string]string, len(units))
	for _, u := range units {
		ids[u.Card.ID] = u.Card.Name
	}
	return ids
}

// deathTag names the units present before resolution and gone after.
func deathTag(before map[string]string, after []*core.Unit) string {
	for _, u := range after {
		delete(before, u.Card.ID)
	}
	if len(before) == 0 {
		return ""
	}
	names := make([]string, 0, len(before))
	for _, name := range before {
		names = append(names, name)
	}
	// Deterministic tag order regardless of map iteration.
	sort.Strings(names)
	return "killed:" + strings.Join(names, ",")
}

// moveUnit transfers one ready unit between a lane and the reserve or
// between two lanes. Lane-to-lane movement requires the Ganking
// keyword; without it the unit stays put.
func (e *Engine) moveUnit(ap *Player, action Action) {
	gs := e.gs
	baseIndex := len(gs.Battlefields)

	src, dst := action.From, action.To
	if src == dst {
		return
	}
	if src < 0 || src > baseIndex || dst < 0 || dst > baseIndex {
		return
	}

	switch {
	case src == baseIndex:
		unit := ap.PopBaseUnit()
		if unit == nil {
			return
		}
		unit.Ready = false
		gs.Battlefields[dst].AddUnit(ap.Side, unit)
		e.publishMove(ap, unit, dst)

	case dst == baseIndex:
		unit := gs.Battlefields[src].PopUnitForMovement(ap.Side)
		if unit == nil {
			return
		}
		unit.Ready = true
		ap.BaseUnits = append(ap.BaseUnits, unit)
		e.publishMove(ap, unit, dst)

	default:
		srcBf := gs.Battlefields[src]
		unit := srcBf.PopUnitForMovement(ap.Side)
		if unit == nil {
			return
		}
		if !unit.HasKeyword(core.KeywordGanking) {
			unit.Ready = true
			srcBf.AddUnit(ap.Side, unit)
			return
		}
		unit.Ready = false
		gs.Battlefields[dst].AddUnit(ap.Side, unit)
		e.publishMove(ap, unit, dst)
	}
}

func (e *Engine) publishMove(ap *Player, unit *core.Unit, dst int) {
	e.bus.Publish(events.NewCardPlayedEvent(e.matchID, ap.Side, e.gs.Turn, unit.Card, ActionMove.String(), dst, ""))
}

// phaseShowdown acknowledges pending showdowns without resolving them.
// This is a deliberate extension point, not missing logic.
func (e *Engine) phaseShowdown() {
	for _, bf := range e.gs.Battlefields {
		if bf.ShowdownPending && bf.Controller() == "" {
			bf.ShowdownPending = false
		}
	}
}

// phaseCombatConquer resolves combat on every contested lane in index
// order, evaluating Conquer immediately after each lane resolves.
func (e *Engine) phaseCombatConquer(active core.Side) {
	for i, bf := range e.gs.Battlefields {
		if !bf.ContestedThisTurn {
			continue
		}
		stats := bf.ResolveCombat()
		e.logger.Debug().
			Int("lane", i).
			Int("deaths_a", stats.DeathsA).
			Int("deaths_b", stats.DeathsB).
			Msg("Combat resolved")
		if bf.CanScoreConquer(active) {
			e.gs.AddPoints(active, 1)
			bf.MarkScored(active)
			e.logger.Debug().Int("lane", i).Str("side", string(active)).Msg("Conquer point awarded")
		}
	}
}

// phaseEnd publishes the turn's snapshots, switches the active side and
// advances the turn counter.
func (e *Engine) phaseEnd(active core.Side) {
	gs := e.gs

	for i, bf := range gs.Battlefields {
		e.bus.Publish(events.NewBoardSnapshotEvent(
			e.matchID, gs.Turn, i,
			events.SnapshotUnits(bf.UnitsA), events.SnapshotUnits(bf.UnitsB),
			bf.Controller(), bf.ContestedThisTurn,
			gs.PointsA, gs.PointsB,
		))
	}
	ap := gs.PlayerFor(active)
	e.bus.Publish(events.NewHandSnapshotEvent(
		e.matchID, active, gs.Turn, append([]*core.Card(nil), ap.Hand...),
	))

	gs.Active = active.Other()
	gs.Turn++
}

// String renders a compact board summary for logs and the CLI.
func (gs *GameState) String() string {
	var sb strings.Builder
	for i, bf := range gs.Battlefields {
		ctl := bf.Controller()
		if ctl == "" {
			ctl = "-"
		}
		fmt.Fprintf(&sb, "lane %d: A=%d B=%d ctl=%s ", i, len(bf.UnitsA), len(bf.UnitsB), ctl)
	}
	fmt.Fprintf(&sb, "| points A=%d B=%d", gs.PointsA, gs.PointsB)
	return sb.String()
}
