package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUnit(name string, might int, keywords ...string) *Unit {
	card := NewCard(name, CategoryUnit)
	card.Might = might
	card.Keywords = keywords
	return NewUnit(card)
}

func TestResolveMightCombatSimultaneous(t *testing.T) {
	// Equal might on both sides: both die, neither survives to strike
	// "first".
	a := []*Unit{testUnit("a1", 3)}
	b := []*Unit{testUnit("b1", 3)}

	survA, survB, stats := ResolveMightCombat(a, b)

	assert.Empty(t, survA)
	assert.Empty(t, survB)
	assert.Equal(t, 1, stats.DeathsA)
	assert.Equal(t, 1, stats.DeathsB)
	assert.Equal(t, 1, stats.KillsA)
	assert.Equal(t, 1, stats.KillsB)
}

func TestResolveMightCombatGuardAbsorbsFirst(t *testing.T) {
	// B fields a 3-might bruiser then a 2-might guard. A deals 4 total:
	// the guard soaks its 2 and dies, the bruiser takes the 2 overflow
	// and survives.
	attacker := testUnit("attacker", 4)
	bruiser := testUnit("bruiser", 3)
	guard := testUnit("guard", 2, KeywordGuard)

	survA, survB, stats := ResolveMightCombat([]*Unit{attacker}, []*Unit{bruiser, guard})

	require.Len(t, survB, 1)
	assert.Equal(t, "bruiser", survB[0].Card.Name)
	assert.Equal(t, 1, stats.DeathsB)
	assert.Equal(t, 1, stats.KillsA)

	// A took 5 back and died.
	assert.Empty(t, survA)
}

func TestResolveMightCombatInsertionOrderTies(t *testing.T) {
	// Two identical non-guard units: the one added first absorbs first.
	first := testUnit("first", 2)
	second := testUnit("second", 2)

	_, survB, _ := ResolveMightCombat([]*Unit{testUnit("attacker", 2)}, []*Unit{first, second})

	require.Len(t, survB, 1)
	assert.Equal(t, "second", survB[0].Card.Name)
}

func TestResolveMightCombatOverflowCapped(t *testing.T) {
	// Damage assignment is capped at remaining health; a 10-might
	// attacker only assigns 3 into a lone 3-might defender.
	_, survB, stats := ResolveMightCombat([]*Unit{testUnit("big", 10)}, []*Unit{testUnit("small", 3)})

	assert.Empty(t, survB)
	assert.Equal(t, 3, stats.DamageToB)
	assert.Equal(t, 10, stats.DamageToA)
}

func TestResolveMightCombatMightZeroImmune(t *testing.T) {
	token := testUnit("token", 0)

	survA, survB, stats := ResolveMightCombat([]*Unit{testUnit("attacker", 5)}, []*Unit{token})

	require.Len(t, survB, 1)
	assert.Same(t, token, survB[0])
	assert.Equal(t, 0, stats.DamageToB)
	// The token deals nothing back.
	require.Len(t, survA, 1)
}

func TestResolveMightCombatSurvivorDamageReset(t *testing.T) {
	tough := testUnit("tough", 5)

	_, survB, _ := ResolveMightCombat([]*Unit{testUnit("attacker", 3)}, []*Unit{tough})

	require.Len(t, survB, 1)
	assert.Equal(t, 0, survB[0].Damage, "damage must not carry across resolution steps")
}

func TestDealDirectDamage(t *testing.T) {
	tests := []struct {
		name      string
		units     []*Unit
		damage    int
		wantAlive int
		wantKills int
	}{
		{
			name:      "kills weakest guard first",
			units:     []*Unit{testUnit("u1", 3), testUnit("g1", 1, KeywordGuard)},
			damage:    1,
			wantAlive: 1,
			wantKills: 1,
		},
		{
			name:      "spills across units",
			units:     []*Unit{testUnit("u1", 2), testUnit("u2", 2)},
			damage:    4,
			wantAlive: 0,
			wantKills: 2,
		},
		{
			name:      "zero damage is a no-op",
			units:     []*Unit{testUnit("u1", 2)},
			damage:    0,
			wantAlive: 1,
			wantKills: 0,
		},
		{
			name:      "might zero ignored",
			units:     []*Unit{testUnit("token", 0)},
			damage:    5,
			wantAlive: 1,
			wantKills: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			survivors, kills := DealDirectDamage(tt.units, tt.damage)
			assert.Len(t, survivors, tt.wantAlive)
			assert.Equal(t, tt.wantKills, kills)
		})
	}
}
