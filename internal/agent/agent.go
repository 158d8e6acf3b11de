// Package agent holds the pluggable decision policies that drive
// players. Agents see only the read-only View the engine hands them and
// answer with exactly one Action per turn; the engine resolves anything
// illegal as a pass, so agents never need to be perfect, only
// structurally valid.
package agent

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/lanebound/lanebound/internal/game"
)

type constructor func(rng *rand.Rand) game.Agent

var registry = map[string]constructor{
	"aggro":   func(*rand.Rand) game.Agent { return &Aggro{} },
	"control": func(*rand.Rand) game.Agent { return &Control{} },
	"random":  func(rng *rand.Rand) game.Agent { return &Random{rng: rng} },
}

// New builds the named agent. The rng is the caller's match-owned
// source; deterministic agents ignore it.
func New(name string, rng *rand.Rand) (game.Agent, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if ctor, ok := registry[key]; ok {
		return ctor(rng), nil
	}
	return nil, fmt.Errorf("unknown agent %q, available: %s", name, strings.Join(Names(), ", "))
}

// Names lists the registered agent names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
