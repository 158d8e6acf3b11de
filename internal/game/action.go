package game

import "fmt"

// ActionKind enumerates the closed set of things an agent may do in its
// Action phase.
type ActionKind int

const (
	ActionPass ActionKind = iota
	ActionPlayUnit
	ActionPlaySpell
	ActionPlayGear
	ActionMove
)

var actionNames = map[ActionKind]string{
	ActionPass:      "PASS",
	ActionPlayUnit:  "UNIT",
	ActionPlaySpell: "SPELL",
	ActionPlayGear:  "GEAR",
	ActionMove:      "MOVE",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ACTION_%d", int(k))
}

// Action is the closed tagged variant an agent returns each turn.
// Payload fields are read per kind: play kinds use HandIndex and Lane;
// Move uses From and To, where the index equal to the lane count means
// the player's reserve. Structurally any Action is acceptable; the
// engine resolves semantically illegal ones as a pass.
type Action struct {
	Kind      ActionKind
	HandIndex int
	Lane      int
	From      int
	To        int
}

// Pass is the canonical no-op action.
func Pass() Action {
	return Action{Kind: ActionPass}
}

// PlayUnit plays the hand card at idx as a unit onto the lane.
func PlayUnit(idx, lane int) Action {
	return Action{Kind: ActionPlayUnit, HandIndex: idx, Lane: lane}
}

// PlaySpell casts the hand card at idx targeting the lane.
func PlaySpell(idx, lane int) Action {
	return Action{Kind: ActionPlaySpell, HandIndex: idx, Lane: lane}
}

// PlayGear plays the hand card at idx targeting the lane.
func PlayGear(idx, lane int) Action {
	return Action{Kind: ActionPlayGear, HandIndex: idx, Lane: lane}
}

// Move transfers one ready unit between containers; from and to are
// lane indices or the reserve index.
func Move(from, to int) Action {
	return Action{Kind: ActionMove, From: from, To: to}
}
