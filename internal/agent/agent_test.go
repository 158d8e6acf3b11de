package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanebound/lanebound/internal/game"
	"github.com/lanebound/lanebound/internal/game/core"
)

func costedCard(name string, category core.Category, cost int) *core.Card {
	card := core.NewCard(name, category)
	card.CostEnergy = cost
	return card
}

func twoLaneView(mineA, theirsA, mineB, theirsB int) *game.View {
	return &game.View{
		Side:   core.SideA,
		Energy: 10,
		Power:  map[core.Domain]int{},
		Lanes: []game.LaneView{
			{Index: 0, Mine: mineA, Theirs: theirsA},
			{Index: 1, Mine: mineB, Theirs: theirsB},
		},
		ReserveIndex: 2,
	}
}

func TestNewKnownAgents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range Names() {
		ag, err := New(name, rng)
		require.NoError(t, err)
		assert.Equal(t, name, ag.Name())
	}
}

func TestNewUnknownAgent(t *testing.T) {
	_, err := New("grandmaster", rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grandmaster")
}

func TestNewAgentNameNormalized(t *testing.T) {
	ag, err := New("  AGGRO ", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, "aggro", ag.Name())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"aggro", "control", "random"}, Names())
}

func TestAggroPrefersEnemyFreeLane(t *testing.T) {
	v := twoLaneView(0, 3, 0, 0)
	v.Hand = []*core.Card{costedCard("unit", core.CategoryUnit, 2)}

	action := (&Aggro{}).Decide(v)

	assert.Equal(t, game.ActionPlayUnit, action.Kind)
	assert.Equal(t, 1, action.Lane, "lane 1 has no enemies")
}

func TestAggroPlaysMostExpensive(t *testing.T) {
	v := twoLaneView(0, 0, 0, 0)
	v.Energy = 5
	v.Hand = []*core.Card{
		costedCard("cheap", core.CategoryUnit, 1),
		costedCard("pricey", core.CategoryUnit, 4),
		costedCard("unaffordable", core.CategoryUnit, 9),
	}

	action := (&Aggro{}).Decide(v)

	assert.Equal(t, game.ActionPlayUnit, action.Kind)
	assert.Equal(t, 1, action.HandIndex)
}

func TestAggroFallsBackToSpellThenPass(t *testing.T) {
	v := twoLaneView(0, 0, 0, 0)
	v.Hand = []*core.Card{costedCard("zap", core.CategorySpell, 1)}
	assert.Equal(t, game.ActionPlaySpell, (&Aggro{}).Decide(v).Kind)

	v.Hand = nil
	assert.Equal(t, game.ActionPass, (&Aggro{}).Decide(v).Kind)
}

func TestControlReinforcesWorstLane(t *testing.T) {
	// Lane 0 is even, lane 1 is two units behind.
	v := twoLaneView(1, 1, 0, 2)
	v.Hand = []*core.Card{costedCard("unit", core.CategoryUnit, 1)}

	action := (&Control{}).Decide(v)

	assert.Equal(t, game.ActionPlayUnit, action.Kind)
	assert.Equal(t, 1, action.Lane)
}

func TestControlPlaysCheapest(t *testing.T) {
	v := twoLaneView(0, 0, 0, 0)
	v.Hand = []*core.Card{
		costedCard("pricey", core.CategoryUnit, 4),
		costedCard("cheap", core.CategoryUnit, 1),
	}

	action := (&Control{}).Decide(v)

	assert.Equal(t, 1, action.HandIndex)
}

func TestControlTieGoesToLaterLane(t *testing.T) {
	v := twoLaneView(0, 0, 0, 0)
	v.Hand = []*core.Card{costedCard("unit", core.CategoryUnit, 1)}

	assert.Equal(t, 1, (&Control{}).Decide(v).Lane)
}

func TestRandomAlwaysStructurallyValid(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	r := &Random{rng: rng}

	v := twoLaneView(1, 0, 0, 0)
	v.Hand = []*core.Card{
		costedCard("unit", core.CategoryUnit, 1),
		costedCard("spell", core.CategorySpell, 1),
		costedCard("gear", core.CategoryGear, 1),
	}
	v.ReserveReady = 1

	for i := 0; i < 200; i++ {
		action := r.Decide(v)
		switch action.Kind {
		case game.ActionPass:
		case game.ActionPlayUnit, game.ActionPlaySpell, game.ActionPlayGear:
			assert.GreaterOrEqual(t, action.HandIndex, 0)
			assert.Less(t, action.HandIndex, len(v.Hand))
			assert.Less(t, action.Lane, len(v.Lanes))
		case game.ActionMove:
			assert.LessOrEqual(t, action.From, v.ReserveIndex)
			assert.LessOrEqual(t, action.To, v.ReserveIndex)
		default:
			t.Fatalf("unexpected action kind %v", action.Kind)
		}
	}
}

func TestRandomPassesOnEmptyOptionsOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := &Random{rng: rng}

	v := twoLaneView(0, 0, 0, 0)
	assert.Equal(t, game.ActionPass, r.Decide(v).Kind, "no cards, no reserve, nothing to move")
}
