package core

// Unit is the runtime wrapper around a unit card while it is in play,
// either on a battlefield or in a player's reserve. A Unit is owned by
// exactly one container at any time; movement transfers ownership, it
// never copies.
type Unit struct {
	Card   *Card
	Damage int  // accumulated this resolution step, cleared on survival
	Ready  bool // whether the unit may be moved this turn
}

// NewUnit wraps a freshly played card. Newly played units arrive
// unready unless the card accelerates.
func NewUnit(card *Card) *Unit {
	return &Unit{
		Card:  card,
		Ready: card.HasKeyword(KeywordAccelerate),
	}
}

// Might is the unit's combat strength: damage output and effective
// health both.
func (u *Unit) Might() int {
	return u.Card.Might
}

// HasKeyword reports whether the underlying card carries the keyword.
func (u *Unit) HasKeyword(keyword string) bool {
	return u.Card.HasKeyword(keyword)
}

// ResetDamage clears carried damage after a resolution step the unit
// survived.
func (u *Unit) ResetDamage() {
	u.Damage = 0
}
