package game

import (
	"github.com/lanebound/lanebound/internal/game/core"
)

// Battlefield is one contested lane. Controller state is never stored:
// it is always recomputed from unit-list occupancy, which is the single
// source of truth. The per-turn flags latch scoring eligibility.
type Battlefield struct {
	UnitsA []*core.Unit
	UnitsB []*core.Unit

	// ContestedThisTurn latches the first moment both sides hold units
	// simultaneously; it stays set for the rest of the turn even if one
	// side later vacates the lane.
	ContestedThisTurn bool
	ScoredThisTurnA   bool
	ScoredThisTurnB   bool

	// LastController is snapshotted at the start of each turn, before
	// any action, and anchors the Conquer controller-change test.
	LastController core.Side

	// ShowdownPending is an inert placeholder: it is set when both
	// sides are present with no controller and cleared without further
	// resolution. Tie-break rules are an extension point, not a rule.
	ShowdownPending bool

	KillsA  int
	KillsB  int
	DeathsA int
	DeathsB int
}

// NewBattlefield returns an empty lane. Exactly two exist per match;
// they are never created or destroyed mid-game.
func NewBattlefield() *Battlefield {
	return &Battlefield{}
}

func (bf *Battlefield) units(side core.Side) []*core.Unit {
	if side == core.SideA {
		return bf.UnitsA
	}
	return bf.UnitsB
}

func (bf *Battlefield) setUnits(side core.Side, units []*core.Unit) {
	if side == core.SideA {
		bf.UnitsA = units
	} else {
		bf.UnitsB = units
	}
}

// Count returns the number of units the side holds on this lane.
func (bf *Battlefield) Count(side core.Side) int {
	return len(bf.units(side))
}

// Controller returns the side holding the lane alone, or "" when the
// lane is empty or both sides are present.
func (bf *Battlefield) Controller() core.Side {
	switch {
	case len(bf.UnitsA) > 0 && len(bf.UnitsB) == 0:
		return core.SideA
	case len(bf.UnitsB) > 0 && len(bf.UnitsA) == 0:
		return core.SideB
	default:
		return ""
	}
}

// BeginTurnReset clears the per-turn flags at the top of the Beginning
// phase.
func (bf *Battlefield) BeginTurnReset() {
	bf.ContestedThisTurn = false
	bf.ScoredThisTurnA = false
	bf.ScoredThisTurnB = false
	bf.ShowdownPending = false
}

// ReadySide readies every unit the side holds on this lane.
func (bf *Battlefield) ReadySide(side core.Side) {
	for _, u := range bf.units(side) {
		u.Ready = true
	}
}

// refreshContest re-evaluates contest status after any mutation: unit
// added, unit removed and combat resolved all route through here.
func (bf *Battlefield) refreshContest() {
	if len(bf.UnitsA) > 0 && len(bf.UnitsB) > 0 {
		bf.ContestedThisTurn = true
		if bf.Controller() == "" {
			bf.ShowdownPending = true
		}
	} else {
		bf.ShowdownPending = false
	}
}

// MarkContestedIfNeeded re-marks a lane that already holds both sides,
// guarding against a contest carried over from the previous turn being
// lost by the flag reset.
func (bf *Battlefield) MarkContestedIfNeeded() {
	bf.refreshContest()
}

// AddUnit appends the unit to the side's list, preserving insertion
// order for damage-assignment ties.
func (bf *Battlefield) AddUnit(side core.Side, unit *core.Unit) {
	bf.setUnits(side, append(bf.units(side), unit))
	bf.refreshContest()
}

// RemoveUnit takes the unit out of the side's list if present.
func (bf *Battlefield) RemoveUnit(side core.Side, unit *core.Unit) {
	units := bf.units(side)
	for i, u := range units {
		if u == unit {
			bf.setUnits(side, append(units[:i], units[i+1:]...))
			break
		}
	}
	bf.refreshContest()
}

// PopUnitForMovement removes and returns the side's first ready unit,
// or nil when none is ready.
func (bf *Battlefield) PopUnitForMovement(side core.Side) *core.Unit {
	units := bf.units(side)
	for i, u := range units {
		if u.Ready {
			bf.setUnits(side, append(units[:i], units[i+1:]...))
			bf.refreshContest()
			return u
		}
	}
	return nil
}

// ResolveCombat runs one simultaneous might exchange and folds the
// step into the lane's cumulative counters.
func (bf *Battlefield) ResolveCombat() core.CombatStats {
	survA, survB, stats := core.ResolveMightCombat(bf.UnitsA, bf.UnitsB)
	bf.UnitsA = survA
	bf.UnitsB = survB
	bf.KillsA += stats.KillsA
	bf.KillsB += stats.KillsB
	bf.DeathsA += stats.DeathsA
	bf.DeathsB += stats.DeathsB
	bf.refreshContest()
	return stats
}

// ApplyDirectDamage deals spell or ability damage to the target side's
// units and returns the kill count.
func (bf *Battlefield) ApplyDirectDamage(target core.Side, damage int) int {
	survivors, kills := core.DealDirectDamage(bf.units(target), damage)
	bf.setUnits(target, survivors)
	if target == core.SideA {
		bf.DeathsA += kills
		bf.KillsB += kills
	} else {
		bf.DeathsB += kills
		bf.KillsA += kills
	}
	bf.refreshContest()
	return kills
}

// GrantMight adds amount to the might of the target side's units, all
// of them or only the first. The grant mutates the underlying card so
// it persists on the unit across damage and combat steps.
func (bf *Battlefield) GrantMight(target core.Side, amount int, all bool) {
	for _, u := range bf.units(target) {
		u.Card.Might += amount
		if !all {
			return
		}
	}
}

// ReadyUnits readies the target side's units, all or only the first.
func (bf *Battlefield) ReadyUnits(target core.Side, all bool) {
	for _, u := range bf.units(target) {
		u.Ready = true
		if !all {
			return
		}
	}
}

// CanScoreHold reports Hold eligibility for the active side: current
// control plus the shared once-per-lane-per-turn scored guard.
func (bf *Battlefield) CanScoreHold(active core.Side) bool {
	if bf.Controller() != active {
		return false
	}
	return !bf.scored(active)
}

// CanScoreConquer reports Conquer eligibility after combat: current
// control, a controller change from the turn-start snapshot, a contest
// at some point this turn, and the shared scored guard.
func (bf *Battlefield) CanScoreConquer(active core.Side) bool {
	ctl := bf.Controller()
	if ctl != active {
		return false
	}
	if bf.LastController == ctl {
		return false
	}
	if !bf.ContestedThisTurn {
		return false
	}
	return !bf.scored(active)
}

// MarkScored consumes the side's scoring eligibility on this lane for
// the rest of the turn. Hold and Conquer share the guard, so a lane
// awards at most one point per turn.
func (bf *Battlefield) MarkScored(side core.Side) {
	if side == core.SideA {
		bf.ScoredThisTurnA = true
	} else {
		bf.ScoredThisTurnB = true
	}
}

func (bf *Battlefield) scored(side core.Side) bool {
	if side == core.SideA {
		return bf.ScoredThisTurnA
	}
	return bf.ScoredThisTurnB
}
