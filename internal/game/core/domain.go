package core

import (
	"fmt"
	"strings"
)

// Domain is one of the six resource colors a rune or card can belong
// to.
type Domain string

const (
	DomainBody  Domain = "BODY"
	DomainCalm  Domain = "CALM"
	DomainChaos Domain = "CHAOS"
	DomainFury  Domain = "FURY"
	DomainMind  Domain = "MIND"
	DomainOrder Domain = "ORDER"
)

// AllDomains lists every domain in the fixed order channeling iterates
// them. The order is part of the rules: with more than two ready runes,
// earlier domains activate first.
var AllDomains = []Domain{
	DomainBody,
	DomainCalm,
	DomainChaos,
	DomainFury,
	DomainMind,
	DomainOrder,
}

// Single-letter codes used in compact card data.
var domainCodes = map[Domain]string{
	DomainFury:  "R",
	DomainCalm:  "G",
	DomainMind:  "B",
	DomainBody:  "O",
	DomainChaos: "P",
	DomainOrder: "Y",
}

// Code returns the single-letter code for the domain.
func (d Domain) Code() string {
	return domainCodes[d]
}

// ParseDomain resolves a domain from its full name or single-letter
// code, case-insensitively.
func ParseDomain(s string) (Domain, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for _, d := range AllDomains {
		if string(d) == key || domainCodes[d] == key {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}
