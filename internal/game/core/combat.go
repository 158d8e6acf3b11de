package core

// CombatStats summarizes a single combat or direct-damage step for
// recorders and scoring bookkeeping.
type CombatStats struct {
	KillsA    int // units of side B killed by side A
	KillsB    int
	DeathsA   int // units of side A removed
	DeathsB   int
	DamageToA int // damage actually assigned, after capping
	DamageToB int
}

func totalMight(units []*Unit) int {
	sum := 0
	for _, u := range units {
		sum += u.Might()
	}
	return sum
}

// orderedTargets returns units in damage-assignment order: Guard units
// absorb first, insertion order breaks ties within each group.
func orderedTargets(units []*Unit) []*Unit {
	ordered := make([]*Unit, 0, len(units))
	for _, u := range units {
		if u.HasKeyword(KeywordGuard) {
			ordered = append(ordered, u)
		}
	}
	for _, u := range units {
		if !u.HasKeyword(KeywordGuard) {
			ordered = append(ordered, u)
		}
	}
	return ordered
}

// applyDamage assigns damage across units in target order, capping each
// assignment at the unit's remaining effective health and spilling the
// overflow to the next unit. Returns kills and the damage actually
// assigned. Might-0 units are damage-immune and are skipped.
func applyDamage(units []*Unit, damage int) (kills, assigned int) {
	for _, u := range orderedTargets(units) {
		if damage <= 0 {
			break
		}
		remaining := u.Might() - u.Damage
		if remaining <= 0 {
			continue
		}
		assign := remaining
		if damage < assign {
			assign = damage
		}
		u.Damage += assign
		damage -= assign
		assigned += assign
		if u.Damage >= u.Might() && u.Might() > 0 {
			kills++
		}
	}
	return kills, assigned
}

// removeDead filters out killed units and clears damage on survivors.
// Damage never carries across resolution steps.
func removeDead(units []*Unit) []*Unit {
	survivors := units[:0]
	for _, u := range units {
		if u.Damage < u.Might() || u.Might() == 0 {
			survivors = append(survivors, u)
		}
	}
	for _, u := range survivors {
		u.ResetDamage()
	}
	return survivors
}

// ResolveMightCombat resolves one simultaneous exchange between the two
// unit lists of a battlefield. Both totals are computed before any
// damage is assigned, so a side about to die still deals its full
// pre-combat might. Returns both survivor lists and the step summary.
func ResolveMightCombat(sideA, sideB []*Unit) (survA, survB []*Unit, stats CombatStats) {
	damageToA := totalMight(sideB)
	damageToB := totalMight(sideA)

	deathsA, assignedA := applyDamage(sideA, damageToA)
	deathsB, assignedB := applyDamage(sideB, damageToB)

	stats = CombatStats{
		KillsA:    deathsB,
		KillsB:    deathsA,
		DeathsA:   deathsA,
		DeathsB:   deathsB,
		DamageToA: assignedA,
		DamageToB: assignedB,
	}

	survA = removeDead(sideA)
	survB = removeDead(sideB)
	return survA, survB, stats
}

// DealDirectDamage applies spell or ability damage to one side's units
// with the same targeting-and-kill logic as combat. Returns the
// survivors and the kill count for external bookkeeping.
func DealDirectDamage(units []*Unit, damage int) (survivors []*Unit, kills int) {
	kills, _ = applyDamage(units, damage)
	return removeDead(units), kills
}
