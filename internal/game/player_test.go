package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanebound/lanebound/internal/game/core"
)

func namedCards(names ...string) []*core.Card {
	cards := make([]*core.Card, len(names))
	for i, n := range names {
		cards[i] = core.NewCard(n, core.CategoryUnit)
	}
	return cards
}

func TestDeckDrawOrder(t *testing.T) {
	deck := &Deck{Cards: namedCards("bottom", "middle", "top")}

	assert.Equal(t, "top", deck.Draw().Name)
	assert.Equal(t, "middle", deck.Draw().Name)
	assert.Equal(t, "bottom", deck.Draw().Name)
	assert.Nil(t, deck.Draw(), "empty deck draws nil")
}

func TestDeckShuffleDeterministic(t *testing.T) {
	mk := func() *Deck {
		return &Deck{Cards: namedCards("a", "b", "c", "d", "e", "f")}
	}

	d1, d2 := mk(), mk()
	d1.Shuffle(rand.New(rand.NewSource(7)))
	d2.Shuffle(rand.New(rand.NewSource(7)))

	for i := range d1.Cards {
		assert.Equal(t, d1.Cards[i].Name, d2.Cards[i].Name)
	}
}

func TestPlayerChannelActivatesAtMostTwo(t *testing.T) {
	p := NewPlayer(core.SideA, &Deck{}, 0)
	p.AddRune(core.DomainCalm, false)
	p.AddRune(core.DomainFury, false)
	p.AddRune(core.DomainFury, false)

	p.Channel(1)

	assert.Equal(t, 2, p.Energy)
	// Fixed domain order: the calm rune and the first fury rune spend,
	// the second fury rune stays ready.
	assert.Equal(t, 1, p.PowerPool[core.DomainCalm])
	assert.Equal(t, 1, p.PowerPool[core.DomainFury])

	ready := 0
	for _, runes := range p.RunePool {
		for _, r := range runes {
			if r.Ready {
				ready++
			}
		}
	}
	assert.Equal(t, 1, ready, "third rune refreshed but unspent")
}

func TestPlayerChannelRefreshesSpentRunes(t *testing.T) {
	p := NewPlayer(core.SideA, &Deck{}, 0)
	p.AddRune(core.DomainCalm, false)

	p.Channel(1)
	p.Channel(1)

	// One rune, channeled twice: it refreshes each turn and spends
	// again.
	assert.Equal(t, 2, p.Energy)
	assert.Equal(t, 2, p.PowerPool[core.DomainCalm])
}

func TestPlayerChannelRate(t *testing.T) {
	p := NewPlayer(core.SideA, &Deck{}, 0)
	p.AddRune(core.DomainMind, false)

	p.Channel(3)
	assert.Equal(t, 3, p.Energy)
	assert.Equal(t, 1, p.PowerPool[core.DomainMind])
}

func TestPlayerPayCostAtomic(t *testing.T) {
	fury := core.DomainFury

	p := NewPlayer(core.SideA, &Deck{}, 5)
	// Enough energy, missing the power token: nothing is deducted.
	require.False(t, p.PayCost(3, &fury))
	assert.Equal(t, 5, p.Energy)

	p.PowerPool[fury] = 1
	require.True(t, p.PayCost(3, &fury))
	assert.Equal(t, 2, p.Energy)
	_, ok := p.PowerPool[fury]
	assert.False(t, ok, "exhausted power entries are removed")

	// Not enough energy: the remaining token is untouched.
	p.PowerPool[fury] = 1
	require.False(t, p.PayCost(3, nil))
	assert.Equal(t, 1, p.PowerPool[fury])
}

func TestPlayerDrawCard(t *testing.T) {
	p := NewPlayer(core.SideA, &Deck{Cards: namedCards("only")}, 0)

	card := p.DrawCard()
	require.NotNil(t, card)
	assert.Len(t, p.Hand, 1)

	assert.Nil(t, p.DrawCard())
	assert.Len(t, p.Hand, 1, "empty-deck draw is a no-op")
}

func TestPlayerPopBaseUnit(t *testing.T) {
	p := NewPlayer(core.SideA, &Deck{}, 0)
	spent := laneUnit("spent", 1)
	ready := laneUnit("ready", 1)
	ready.Ready = true
	p.BaseUnits = []*core.Unit{spent, ready}

	got := p.PopBaseUnit()
	require.Same(t, ready, got)
	assert.Len(t, p.BaseUnits, 1)

	assert.Nil(t, p.PopBaseUnit())

	p.ReadyBaseUnits()
	assert.Same(t, spent, p.PopBaseUnit())
}
