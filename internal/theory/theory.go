// Package theory names the classical structural-analysis theory families
// this library intends to cover. Every method here is a documented
// placeholder: it accepts arbitrary parameters and returns
// analysis.NotSupportedError, so callers can probe the surface without
// ever mistaking an empty result for a computed one.
//
// Implemented theories live in their own packages (beam, column).
package theory
