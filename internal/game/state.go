package game

import (
	"math/rand"

	"github.com/lanebound/lanebound/internal/game/core"
)

// NumBattlefields is fixed for a match: two lanes, never created or
// destroyed mid-game. The reserve index in Move actions equals this.
const NumBattlefields = 2

// GameState is the full mutable state of one match. It is exclusively
// owned by that match's engine; the RNG is consulted only for deck
// shuffling and agent randomness.
type GameState struct {
	Rng *rand.Rand

	A *Player
	B *Player

	Battlefields []*Battlefield

	Turn         int
	MaxTurns     int
	Active       core.Side
	PointsA      int
	PointsB      int
	VictoryScore int
}

// NewGameState wires both players to two fresh battlefields.
func NewGameState(rng *rand.Rand, a, b *Player, maxTurns, victoryScore int) *GameState {
	bfs := make([]*Battlefield, NumBattlefields)
	for i := range bfs {
		bfs[i] = NewBattlefield()
	}
	return &GameState{
		Rng:          rng,
		A:            a,
		B:            b,
		Battlefields: bfs,
		Turn:         1,
		MaxTurns:     maxTurns,
		Active:       core.SideA,
		VictoryScore: victoryScore,
	}
}

// PlayerFor returns the player on the given side.
func (gs *GameState) PlayerFor(side core.Side) *Player {
	if side == core.SideA {
		return gs.A
	}
	return gs.B
}

// Points returns the side's victory points.
func (gs *GameState) Points(side core.Side) int {
	if side == core.SideA {
		return gs.PointsA
	}
	return gs.PointsB
}

// AddPoints credits victory points to the side.
func (gs *GameState) AddPoints(side core.Side, points int) {
	if side == core.SideA {
		gs.PointsA += points
	} else {
		gs.PointsB += points
	}
}
