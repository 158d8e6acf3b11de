package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanebound/lanebound/internal/game/core"
)

type fakePlayer struct {
	deck   int
	drawn  int
	energy int
	runes  []core.Domain
}

func (f *fakePlayer) DrawCard() *core.Card {
	if f.deck == 0 {
		return nil
	}
	f.deck--
	f.drawn++
	return core.NewCard("drawn", core.CategoryUnit)
}

func (f *fakePlayer) GainEnergy(amount int) { f.energy += amount }

func (f *fakePlayer) AddRune(domain core.Domain, ready bool) {
	f.runes = append(f.runes, domain)
}

type fakeLane struct {
	damage  map[core.Side]int
	granted map[core.Side]int
	readied map[core.Side]bool
	scoped  bool
}

func newFakeLane() *fakeLane {
	return &fakeLane{
		damage:  map[core.Side]int{},
		granted: map[core.Side]int{},
		readied: map[core.Side]bool{},
	}
}

func (f *fakeLane) ApplyDirectDamage(target core.Side, damage int) int {
	f.damage[target] += damage
	return 0
}

func (f *fakeLane) GrantMight(target core.Side, amount int, all bool) {
	f.granted[target] += amount
	f.scoped = all
}

func (f *fakeLane) ReadyUnits(target core.Side, all bool) {
	f.readied[target] = true
	f.scoped = all
}

func testContext() (*Context, *fakePlayer, *fakePlayer, *fakeLane) {
	actor := &fakePlayer{deck: 10}
	opponent := &fakePlayer{deck: 10}
	lane := newFakeLane()
	ctx := &Context{ActorSide: core.SideA, Actor: actor, Opponent: opponent, Lane: lane}
	return ctx, actor, opponent, lane
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindDealDamage, ParseKind("deal_damage"))
	assert.Equal(t, KindDealDamage, ParseKind(" Deal_Damage "))
	assert.Equal(t, KindUnknown, ParseKind("summon_dragon"))
}

func TestApplyUnknownEffectIsNoOp(t *testing.T) {
	ctx, actor, opponent, lane := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "summon_dragon", Params: map[string]any{"size": "huge"}})

	require.NoError(t, err)
	assert.Zero(t, actor.drawn)
	assert.Zero(t, opponent.drawn)
	assert.Empty(t, lane.damage)
}

func TestDealDamageDefaultsToOpponent(t *testing.T) {
	ctx, _, _, lane := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "deal_damage", Params: map[string]any{"amount": 3}})

	require.NoError(t, err)
	assert.Equal(t, 3, lane.damage[core.SideB])
	assert.Zero(t, lane.damage[core.SideA])
}

func TestDealDamageTargetActor(t *testing.T) {
	ctx, _, _, lane := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "deal_damage", Params: map[string]any{"amount": 2, "target": "actor"}})

	require.NoError(t, err)
	assert.Equal(t, 2, lane.damage[core.SideA])
}

func TestGrantMightDefaults(t *testing.T) {
	ctx, _, _, lane := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "grant_might", Params: map[string]any{"amount": 1}})

	require.NoError(t, err)
	assert.Equal(t, 1, lane.granted[core.SideA])
	assert.True(t, lane.scoped, "default scope is all units")
}

func TestGrantMightSingleScope(t *testing.T) {
	ctx, _, _, lane := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "grant_might", Params: map[string]any{"amount": 1, "scope": "single"}})

	require.NoError(t, err)
	assert.False(t, lane.scoped)
}

func TestDrawCardsStopsOnEmptyDeck(t *testing.T) {
	ctx, actor, _, _ := testContext()
	actor.deck = 2

	err := Apply(ctx, core.EffectSpec{Name: "draw_cards", Params: map[string]any{"count": 5}})

	require.NoError(t, err)
	assert.Equal(t, 2, actor.drawn)
}

func TestGainEnergy(t *testing.T) {
	ctx, actor, opponent, _ := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "gain_energy", Params: map[string]any{"amount": 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, actor.energy)

	err = Apply(ctx, core.EffectSpec{Name: "gain_energy", Params: map[string]any{"amount": 1, "target": "opponent"}})
	require.NoError(t, err)
	assert.Equal(t, 1, opponent.energy)
}

func TestReadyUnits(t *testing.T) {
	ctx, _, _, lane := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "ready_units", Params: nil})

	require.NoError(t, err)
	assert.True(t, lane.readied[core.SideA])
	assert.False(t, lane.readied[core.SideB])
}

func TestAddRune(t *testing.T) {
	ctx, actor, _, _ := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "add_rune", Params: map[string]any{"domain": "calm"}})

	require.NoError(t, err)
	require.Len(t, actor.runes, 1)
	assert.Equal(t, core.DomainCalm, actor.runes[0])
}

func TestAddRuneUnknownDomain(t *testing.T) {
	ctx, actor, _, _ := testContext()

	err := Apply(ctx, core.EffectSpec{Name: "add_rune", Params: map[string]any{"domain": "void"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownDomain)
	assert.Empty(t, actor.runes)
}

func TestIntParamCoercion(t *testing.T) {
	// YAML and JSON decoders disagree on numeric types; all of them
	// must land on the same int.
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 4, 4},
		{"int64", int64(4), 4},
		{"float64", float64(4), 4},
		{"uint64", uint64(4), 4},
		{"string falls back", "4", 0},
	}

	ctx, _, _, lane := testContext()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lane.damage = map[core.Side]int{}
			err := Apply(ctx, core.EffectSpec{Name: "deal_damage", Params: map[string]any{"amount": tt.value}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, lane.damage[core.SideB])
		})
	}
}
