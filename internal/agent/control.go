package agent

import (
	"github.com/lanebound/lanebound/internal/game"
	"github.com/lanebound/lanebound/internal/game/core"
)

// Control is the defensive baseline: it reinforces the lane where it is
// furthest behind and plays its cheapest affordable card to keep
// resources in reserve.
type Control struct{}

// Name implements game.Agent.
func (c *Control) Name() string { return "control" }

// Decide implements game.Agent.
func (c *Control) Decide(v *game.View) game.Action {
	lane := c.pickLane(v)

	if idx := cheapest(v, core.CategoryUnit); idx >= 0 {
		return game.PlayUnit(idx, lane)
	}
	if idx := cheapest(v, core.CategorySpell); idx >= 0 {
		return game.PlaySpell(idx, lane)
	}
	return game.Pass()
}

// pickLane finds the lane with the worst unit deficit; ties go to the
// later lane.
func (c *Control) pickLane(v *game.View) int {
	best := 0
	bestDiff := 0
	first := true
	for _, lv := range v.Lanes {
		diff := lv.Mine - lv.Theirs
		if first || diff <= bestDiff {
			best, bestDiff, first = lv.Index, diff, false
		}
	}
	return best
}

// cheapest returns the hand index of the least expensive affordable
// card of the category, or -1. Ties keep the earliest card.
func cheapest(v *game.View, category core.Category) int {
	best := -1
	bestCost := 0
	for i, c := range v.Hand {
		if c.Category != category || !v.CanAfford(c) {
			continue
		}
		if best < 0 || c.CostEnergy < bestCost {
			best, bestCost = i, c.CostEnergy
		}
	}
	return best
}
