// Package effects resolves the named, parameterized effect lists
// carried by spell and gear cards. The kind set is closed; names with
// no known kind resolve to a no-op, so card data referencing effects
// this engine does not implement degrades gracefully instead of
// crashing the match.
package effects

import (
	"fmt"
	"strings"

	"github.com/lanebound/lanebound/internal/game/core"
)

// Kind is the closed enum of effect kinds the engine implements.
type Kind int

const (
	KindUnknown Kind = iota
	KindDealDamage
	KindGrantMight
	KindDrawCards
	KindGainEnergy
	KindReadyUnits
	KindAddRune
)

var kindsByName = map[string]Kind{
	"deal_damage": KindDealDamage,
	"grant_might": KindGrantMight,
	"draw_cards":  KindDrawCards,
	"gain_energy": KindGainEnergy,
	"ready_units": KindReadyUnits,
	"add_rune":    KindAddRune,
}

var kindNames = map[Kind]string{
	KindUnknown:    "unknown",
	KindDealDamage: "deal_damage",
	KindGrantMight: "grant_might",
	KindDrawCards:  "draw_cards",
	KindGainEnergy: "gain_energy",
	KindReadyUnits: "ready_units",
	KindAddRune:    "add_rune",
}

// ParseKind maps an effect name from card data onto the closed enum.
// Unrecognized names fall through to KindUnknown.
func ParseKind(name string) Kind {
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KindUnknown
}

func (k Kind) String() string { return kindNames[k] }

// PlayerOps is the slice of player behavior effects may touch. The
// narrow interface keeps this package free of engine internals.
type PlayerOps interface {
	DrawCard() *core.Card
	GainEnergy(amount int)
	AddRune(domain core.Domain, ready bool)
}

// LaneOps is the slice of battlefield behavior effects may touch.
type LaneOps interface {
	ApplyDirectDamage(target core.Side, damage int) int
	GrantMight(target core.Side, amount int, all bool)
	ReadyUnits(target core.Side, all bool)
}

// Context carries the acting card's surroundings into each handler:
// who cast it, who they face, and the lane it targets.
type Context struct {
	ActorSide core.Side
	Actor     PlayerOps
	Opponent  PlayerOps
	Lane      LaneOps
}

func (ctx *Context) player(target string) PlayerOps {
	if target == "opponent" {
		return ctx.Opponent
	}
	return ctx.Actor
}

func (ctx *Context) side(target string) core.Side {
	if target == "opponent" {
		return ctx.ActorSide.Other()
	}
	return ctx.ActorSide
}

// Handler applies one effect spec. A returned error means the spec was
// invalid; the resolver logs and skips it, never aborting the match.
type Handler func(ctx *Context, params map[string]any) error

var handlers = map[Kind]Handler{
	KindDealDamage: dealDamage,
	KindGrantMight: grantMight,
	KindDrawCards:  drawCards,
	KindGainEnergy: gainEnergy,
	KindReadyUnits: readyUnits,
	KindAddRune:    addRune,
}

// Apply dispatches one effect spec to its handler. Unknown kinds are
// the explicit no-op arm.
func Apply(ctx *Context, spec core.EffectSpec) error {
	kind := ParseKind(spec.Name)
	handler, ok := handlers[kind]
	if !ok {
		return nil
	}
	return handler(ctx, spec.Params)
}

func dealDamage(ctx *Context, params map[string]any) error {
	amount := intParam(params, "amount", 0)
	target := strParam(params, "target", "opponent")
	ctx.Lane.ApplyDirectDamage(ctx.side(target), amount)
	return nil
}

func grantMight(ctx *Context, params map[string]any) error {
	amount := intParam(params, "amount", 0)
	target := strParam(params, "target", "actor")
	scope := strParam(params, "scope", "all")
	ctx.Lane.GrantMight(ctx.side(target), amount, scope != "single")
	return nil
}

func drawCards(ctx *Context, params map[string]any) error {
	count := intParam(params, "count", 1)
	player := ctx.player(strParam(params, "target", "actor"))
	// Stops quietly when the deck runs out.
	for i := 0; i < count; i++ {
		if player.DrawCard() == nil {
			break
		}
	}
	return nil
}

func gainEnergy(ctx *Context, params map[string]any) error {
	amount := intParam(params, "amount", 0)
	ctx.player(strParam(params, "target", "actor")).GainEnergy(amount)
	return nil
}

func readyUnits(ctx *Context, params map[string]any) error {
	target := strParam(params, "target", "actor")
	scope := strParam(params, "scope", "all")
	ctx.Lane.ReadyUnits(ctx.side(target), scope != "single")
	return nil
}

func addRune(ctx *Context, params map[string]any) error {
	raw := strParam(params, "domain", "")
	domain, err := core.ParseDomain(raw)
	if err != nil {
		return fmt.Errorf("add_rune: %w: %q", core.ErrUnknownDomain, raw)
	}
	ready := boolParam(params, "ready", true)
	ctx.player(strParam(params, "target", "actor")).AddRune(domain, ready)
	return nil
}

// intParam coerces a parameter across the numeric types the YAML and
// JSON decoders produce.
func intParam(params map[string]any, key string, def int) int {
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case uint64:
		return int(n)
	default:
		return def
	}
}

func strParam(params map[string]any, key, def string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return strings.ToLower(strings.TrimSpace(s))
		}
	}
	return def
}

func boolParam(params map[string]any, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}
