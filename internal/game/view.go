package game

import "github.com/lanebound/lanebound/internal/game/core"

// LaneView is a read-only snapshot of one battlefield from the acting
// player's perspective.
type LaneView struct {
	Index      int
	Mine       int
	Theirs     int
	Controller core.Side
	Contested  bool
}

// View is the read-only query object handed to an agent's Decide call.
// It replaces any mutable back-reference into engine state: agents see
// a copy, decide, and return an Action.
type View struct {
	Side core.Side
	Turn int

	Hand   []*core.Card
	Energy int
	Power  map[core.Domain]int

	Lanes        []LaneView
	ReserveReady int
	ReserveIndex int

	MyPoints    int
	TheirPoints int
}

// CanAfford reports whether the acting player can currently pay for
// the card.
func (v *View) CanAfford(card *core.Card) bool {
	if v.Energy < card.CostEnergy {
		return false
	}
	if card.CostPower == nil {
		return true
	}
	return v.Power[*card.CostPower] > 0
}

// viewFor builds the snapshot for the side about to act.
func (gs *GameState) viewFor(side core.Side) *View {
	p := gs.PlayerFor(side)

	hand := make([]*core.Card, len(p.Hand))
	copy(hand, p.Hand)

	power := make(map[core.Domain]int, len(p.PowerPool))
	for d, n := range p.PowerPool {
		power[d] = n
	}

	lanes := make([]LaneView, len(gs.Battlefields))
	for i, bf := range gs.Battlefields {
		lanes[i] = LaneView{
			Index:      i,
			Mine:       bf.Count(side),
			Theirs:     bf.Count(side.Other()),
			Controller: bf.Controller(),
			Contested:  bf.ContestedThisTurn,
		}
	}

	reserveReady := 0
	for _, u := range p.BaseUnits {
		if u.Ready {
			reserveReady++
		}
	}

	return &View{
		Side:         side,
		Turn:         gs.Turn,
		Hand:         hand,
		Energy:       p.Energy,
		Power:        power,
		Lanes:        lanes,
		ReserveReady: reserveReady,
		ReserveIndex: len(gs.Battlefields),
		MyPoints:     gs.Points(side),
		TheirPoints:  gs.Points(side.Other()),
	}
}

// Agent is the decision collaborator bound to a player. Implementations
// must always return a structurally valid Action; semantically illegal
// actions are resolved by the engine as a pass.
type Agent interface {
	Name() string
	Decide(view *View) Action
}
