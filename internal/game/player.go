package game

import (
	"math/rand"

	"github.com/lanebound/lanebound/internal/game/core"
)

// Rune is one channelable resource token. It belongs to exactly one
// domain and is refreshed to ready once per channel step.
type Rune struct {
	Domain core.Domain
	Ready  bool
}

// Activate spends the rune, returning false if it was already spent.
func (r *Rune) Activate() bool {
	if !r.Ready {
		return false
	}
	r.Ready = false
	return true
}

// Deck is an ordered, shufflable pile of cards. Draws come from the
// back so shuffling fully determines draw order.
type Deck struct {
	Cards []*core.Card
}

// Shuffle permutes the deck with the match-owned RNG.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the top card, or nil when the deck is
// exhausted. An empty-deck draw is a no-op, not an error.
func (d *Deck) Draw() *core.Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card
}

// Player holds one side's hand, deck, resource pools and off-lane
// reserve. Energy and power pools persist across turns; only readiness
// fields reset.
type Player struct {
	Side core.Side
	Hand []*core.Card
	Deck *Deck

	Energy    int
	PowerPool map[core.Domain]int
	RunePool  map[core.Domain][]*Rune

	// BaseUnits are units held in reserve, off-lane.
	BaseUnits []*core.Unit

	// Agent supplies one action per Action phase. Nil means pass.
	Agent Agent
}

// NewPlayer creates a player with the given starting energy.
func NewPlayer(side core.Side, deck *Deck, startingEnergy int) *Player {
	return &Player{
		Side:      side,
		Deck:      deck,
		Energy:    startingEnergy,
		PowerPool: make(map[core.Domain]int),
		RunePool:  make(map[core.Domain][]*Rune),
	}
}

// AddRune appends a rune of the domain to the pool.
func (p *Player) AddRune(domain core.Domain, ready bool) {
	p.RunePool[domain] = append(p.RunePool[domain], &Rune{Domain: domain, Ready: ready})
}

// Channel refreshes every rune, then activates up to two of them in
// fixed domain order. Each activation yields rate energy and one power
// token of the rune's domain; a third ready rune stays unspent.
func (p *Player) Channel(rate int) {
	for _, runes := range p.RunePool {
		for _, r := range runes {
			r.Ready = true
		}
	}

	remaining := 2
	for _, domain := range core.AllDomains {
		for _, r := range p.RunePool[domain] {
			if remaining <= 0 {
				return
			}
			if r.Activate() {
				p.Energy += rate
				p.PowerPool[domain]++
				remaining--
			}
		}
	}
}

// CanPayCost reports whether the full cost is payable: enough energy
// and, when a power domain is required, at least one token of it.
func (p *Player) CanPayCost(costEnergy int, costPower *core.Domain) bool {
	if p.Energy < costEnergy {
		return false
	}
	if costPower == nil {
		return true
	}
	return p.PowerPool[*costPower] > 0
}

// PayCost deducts the cost atomically. Nothing is deducted unless the
// whole cost is payable.
func (p *Player) PayCost(costEnergy int, costPower *core.Domain) bool {
	if !p.CanPayCost(costEnergy, costPower) {
		return false
	}
	p.Energy -= costEnergy
	if costPower != nil {
		p.PowerPool[*costPower]--
		if p.PowerPool[*costPower] <= 0 {
			delete(p.PowerPool, *costPower)
		}
	}
	return true
}

// DrawCard moves the top deck card into hand, returning it for
// recording. Returns nil on an exhausted deck.
func (p *Player) DrawCard() *core.Card {
	card := p.Deck.Draw()
	if card != nil {
		p.Hand = append(p.Hand, card)
	}
	return card
}

// GainEnergy credits energy directly, outside channeling.
func (p *Player) GainEnergy(amount int) {
	p.Energy += amount
}

// RemoveFromHand drops the card at the index.
func (p *Player) RemoveFromHand(idx int) {
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
}

// ReadyBaseUnits readies every unit in reserve.
func (p *Player) ReadyBaseUnits() {
	for _, u := range p.BaseUnits {
		u.Ready = true
	}
}

// PopBaseUnit removes and returns the first ready reserve unit, or nil.
func (p *Player) PopBaseUnit() *core.Unit {
	for i, u := range p.BaseUnits {
		if u.Ready {
			p.BaseUnits = append(p.BaseUnits[:i], p.BaseUnits[i+1:]...)
			return u
		}
	}
	return nil
}
