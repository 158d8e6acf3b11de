package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category classifies a card definition.
type Category int

const (
	CategoryUnit Category = iota
	CategoryGear
	CategorySpell
	CategoryRune
	CategoryLegend
	CategoryBattlefield
)

var categoryNames = map[Category]string{
	CategoryUnit:        "UNIT",
	CategoryGear:        "GEAR",
	CategorySpell:       "SPELL",
	CategoryRune:        "RUNE",
	CategoryLegend:      "LEGEND",
	CategoryBattlefield: "BATTLEFIELD",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY_%d", int(c))
}

// ParseCategory resolves a category literal from card data.
func ParseCategory(s string) (Category, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for cat, name := range categoryNames {
		if name == key {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Keywords recognized by the engine. Anything else on a card is carried
// but has no rules meaning.
const (
	KeywordGuard      = "GUARD"
	KeywordAccelerate = "ACCELERATE"
	KeywordGanking    = "GANKING"
)

// EffectSpec is one named, parameterized effect carried by a spell or
// gear card. Specs resolve in list order.
type EffectSpec struct {
	Name   string
	Params map[string]any
}

// Card is an immutable card definition. Instances are created once per
// deck build and persist until removed from play. Might is the single
// intentional exception to immutability: grant-might effects mutate it
// in place so the buff survives damage and combat steps on the unit
// that carries the card.
type Card struct {
	ID         string // identity token, unique per instance
	Name       string
	Category   Category
	CostEnergy int
	CostPower  *Domain
	Domain     *Domain
	Might      int
	Damage     int // legacy fallback for spells with no effect list
	Keywords   []string
	Tags       []string
	Effects    []EffectSpec
}

// NewCard assigns the identity token used to correlate before/after
// unit-death diffs and analytics rows.
func NewCard(name string, category Category) *Card {
	return &Card{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
	}
}

// HasKeyword reports whether the card carries the keyword,
// case-insensitively.
func (c *Card) HasKeyword(keyword string) bool {
	for _, k := range c.Keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}
