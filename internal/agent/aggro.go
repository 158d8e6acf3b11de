package agent

import (
	"github.com/lanebound/lanebound/internal/game"
	"github.com/lanebound/lanebound/internal/game/core"
)

// Aggro is the aggressive baseline: it floods the most favorable lane,
// preferring lanes empty of enemies, and plays its most expensive
// affordable card, units before spells.
type Aggro struct{}

// Name implements game.Agent.
func (a *Aggro) Name() string { return "aggro" }

// Decide implements game.Agent.
func (a *Aggro) Decide(v *game.View) game.Action {
	lane := a.pickLane(v)

	if idx := mostExpensive(v, core.CategoryUnit); idx >= 0 {
		return game.PlayUnit(idx, lane)
	}
	if idx := mostExpensive(v, core.CategorySpell); idx >= 0 {
		return game.PlaySpell(idx, lane)
	}
	return game.Pass()
}

// pickLane favors lanes the enemy has abandoned, then the lane where
// our presence is thinnest, so pressure spreads.
func (a *Aggro) pickLane(v *game.View) int {
	best := 0
	bestEmpty := false
	bestSpread := 0
	first := true
	for _, lv := range v.Lanes {
		empty := lv.Theirs == 0
		spread := lv.Theirs - lv.Mine
		better := false
		switch {
		case first:
			better = true
		case empty != bestEmpty:
			better = empty
		case spread > bestSpread:
			better = true
		}
		if better {
			best, bestEmpty, bestSpread, first = lv.Index, empty, spread, false
		}
	}
	return best
}

// mostExpensive returns the hand index of the priciest affordable card
// of the category, or -1. Ties keep the earliest card.
func mostExpensive(v *game.View, category core.Category) int {
	best := -1
	bestCost := -1
	for i, c := range v.Hand {
		if c.Category != category || !v.CanAfford(c) {
			continue
		}
		if c.CostEnergy > bestCost {
			best, bestCost = i, c.CostEnergy
		}
	}
	return best
}
