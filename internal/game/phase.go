package game

import "fmt"

// Phase represents the strictly ordered per-turn phases.
type Phase int

const (
	PhaseBeginning Phase = iota
	PhaseDraw
	PhaseAction
	PhaseCombat
	PhaseEnd
)

var phaseNames = map[Phase]string{
	PhaseBeginning: "BEGINNING",
	PhaseDraw:      "DRAW",
	PhaseAction:    "ACTION",
	PhaseCombat:    "COMBAT",
	PhaseEnd:       "END",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}
