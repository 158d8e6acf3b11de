package core

import "errors"

var (
	ErrUnknownDomain   = errors.New("unknown domain")
	ErrUnknownCategory = errors.New("unknown card category")
	ErrMissingName     = errors.New("card requires a name")
	ErrMissingDomain   = errors.New("rune card requires a domain")
	ErrUnknownCard     = errors.New("card not found in catalog")
)
