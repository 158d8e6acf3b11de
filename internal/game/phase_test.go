package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "BEGINNING", PhaseBeginning.String())
	assert.Equal(t, "DRAW", PhaseDraw.String())
	assert.Equal(t, "ACTION", PhaseAction.String())
	assert.Equal(t, "COMBAT", PhaseCombat.String())
	assert.Equal(t, "END", PhaseEnd.String())
	assert.Equal(t, "PHASE_9", Phase(9).String())
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "PASS", ActionPass.String())
	assert.Equal(t, "UNIT", ActionPlayUnit.String())
	assert.Equal(t, "MOVE", ActionMove.String())
	assert.Equal(t, "ACTION_42", ActionKind(42).String())
}
