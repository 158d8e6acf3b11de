// Package catalog loads card definitions from YAML data. The catalog
// is consumed at deck-construction time only; the live engine never
// re-reads it mid-match. Malformed card data is fatal to the load, per
// the configuration-error contract, so a match never starts from an
// inconsistent card set.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lanebound/lanebound/internal/game/core"
)

//go:embed cards.yaml
var embeddedCards []byte

type cardFile struct {
	Cards []cardSpec `yaml:"cards"`
}

type cardSpec struct {
	Name       string           `yaml:"name"`
	Category   string           `yaml:"category"`
	Domain     string           `yaml:"domain"`
	CostEnergy int              `yaml:"cost_energy"`
	CostPower  string           `yaml:"cost_power"`
	Might      int              `yaml:"might"`
	Damage     int              `yaml:"damage"`
	Keywords   []string         `yaml:"keywords"`
	Tags       []string         `yaml:"tags"`
	Effects    []map[string]any `yaml:"effects"`
}

// Spec is one validated card definition, ready to instantiate.
type Spec struct {
	Name       string
	Category   core.Category
	Domain     *core.Domain
	CostEnergy int
	CostPower  *core.Domain
	Might      int
	Damage     int
	Keywords   []string
	Tags       []string
	Effects    []core.EffectSpec
}

// Instantiate creates a fresh card with its own identity token.
// Instances share nothing mutable, so a might grant on one copy never
// leaks to another.
func (s *Spec) Instantiate() *core.Card {
	return &core.Card{
		ID:         uuid.NewString(),
		Name:       s.Name,
		Category:   s.Category,
		CostEnergy: s.CostEnergy,
		CostPower:  s.CostPower,
		Domain:     s.Domain,
		Might:      s.Might,
		Damage:     s.Damage,
		Keywords:   append([]string(nil), s.Keywords...),
		Tags:       append([]string(nil), s.Tags...),
		Effects:    append([]core.EffectSpec(nil), s.Effects...),
	}
}

// Catalog is a validated, name-keyed card set.
type Catalog struct {
	specs map[string]*Spec
}

// Load parses the embedded card set.
func Load() (*Catalog, error) {
	return parse(embeddedCards)
}

// LoadFile parses a user-supplied card set instead of the embedded one.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var file cardFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse card data: %w", err)
	}

	specs := make(map[string]*Spec, len(file.Cards))
	for i, raw := range file.Cards {
		spec, err := buildSpec(raw)
		if err != nil {
			return nil, fmt.Errorf("card %d (%q): %w", i, raw.Name, err)
		}
		if _, dup := specs[spec.Name]; dup {
			return nil, fmt.Errorf("card %d: duplicate name %q", i, spec.Name)
		}
		specs[spec.Name] = spec
	}
	return &Catalog{specs: specs}, nil
}

func buildSpec(raw cardSpec) (*Spec, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, core.ErrMissingName
	}

	category, err := core.ParseCategory(raw.Category)
	if err != nil {
		return nil, err
	}

	var domain *core.Domain
	if strings.TrimSpace(raw.Domain) != "" {
		d, err := core.ParseDomain(raw.Domain)
		if err != nil {
			return nil, fmt.Errorf("domain: %w: %q", err, raw.Domain)
		}
		domain = &d
	}

	var costPower *core.Domain
	if strings.TrimSpace(raw.CostPower) != "" {
		d, err := core.ParseDomain(raw.CostPower)
		if err != nil {
			return nil, fmt.Errorf("cost_power: %w: %q", err, raw.CostPower)
		}
		costPower = &d
	}

	if category == core.CategoryRune && domain == nil {
		return nil, core.ErrMissingDomain
	}

	effects := make([]core.EffectSpec, 0, len(raw.Effects))
	for j, entry := range raw.Effects {
		effectName, ok := entry["effect"].(string)
		if !ok || strings.TrimSpace(effectName) == "" {
			return nil, fmt.Errorf("effect %d: missing 'effect' field", j)
		}
		params := make(map[string]any, len(entry))
		for k, v := range entry {
			if k != "effect" {
				params[k] = v
			}
		}
		effects = append(effects, core.EffectSpec{Name: strings.TrimSpace(effectName), Params: params})
	}

	return &Spec{
		Name:       name,
		Category:   category,
		Domain:     domain,
		CostEnergy: raw.CostEnergy,
		CostPower:  costPower,
		Might:      raw.Might,
		Damage:     raw.Damage,
		Keywords:   raw.Keywords,
		Tags:       raw.Tags,
		Effects:    effects,
	}, nil
}

// Get returns the spec for the named card.
func (c *Catalog) Get(name string) (*Spec, bool) {
	spec, ok := c.specs[name]
	return spec, ok
}

// Instantiate builds a fresh card for the named spec.
func (c *Catalog) Instantiate(name string) (*core.Card, error) {
	spec, ok := c.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownCard, name)
	}
	return spec.Instantiate(), nil
}

// Names lists all card names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.specs))
	for name := range c.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToyDeck builds the standard 20-card test deck: ten Stalwart Recruits
// and ten Bolts.
func (c *Catalog) ToyDeck() ([]*core.Card, error) {
	cards := make([]*core.Card, 0, 20)
	for i := 0; i < 10; i++ {
		card, err := c.Instantiate("Stalwart Recruit")
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	for i := 0; i < 10; i++ {
		card, err := c.Instantiate("Bolt")
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
