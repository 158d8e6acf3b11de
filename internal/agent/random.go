package agent

import (
	"math/rand"

	"github.com/lanebound/lanebound/internal/game"
	"github.com/lanebound/lanebound/internal/game/core"
)

// Random plays a uniformly random legal-looking action: any affordable
// card to a random lane, a movement when a ready reserve unit exists,
// or a pass. Useful as a baseline and for exercising every action kind
// in batch runs.
type Random struct {
	rng *rand.Rand
}

// Name implements game.Agent.
func (r *Random) Name() string { return "random" }

// Decide implements game.Agent.
func (r *Random) Decide(v *game.View) game.Action {
	var choices []game.Action

	for i, c := range v.Hand {
		if !v.CanAfford(c) {
			continue
		}
		lane := r.rng.Intn(len(v.Lanes))
		switch c.Category {
		case core.CategoryUnit:
			choices = append(choices, game.PlayUnit(i, lane))
		case core.CategorySpell:
			choices = append(choices, game.PlaySpell(i, lane))
		case core.CategoryGear:
			choices = append(choices, game.PlayGear(i, lane))
		}
	}

	if v.ReserveReady > 0 {
		choices = append(choices, game.Move(v.ReserveIndex, r.rng.Intn(len(v.Lanes))))
	}
	for _, lv := range v.Lanes {
		if lv.Mine > 0 {
			choices = append(choices, game.Move(lv.Index, v.ReserveIndex))
		}
	}

	// Pass stays on the menu so the agent does not always act.
	choices = append(choices, game.Pass())
	return choices[r.rng.Intn(len(choices))]
}
