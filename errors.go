package symcanon

import "errors"

var (
	// ErrInvalidExpr is returned when the zero Expr is passed where a real
	// expression is needed.
	ErrInvalidExpr = errors.New("invalid expression")

	// ErrDepthExceeded is returned when canonicalization goes deeper than
	// Config.MaxDepth.
	ErrDepthExceeded = errors.New("expression too deep")

	// ErrUnknownFunction is returned by LookupFunction.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)
