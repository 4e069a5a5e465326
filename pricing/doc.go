// Package pricing values vanilla equity options under a flat Black-Scholes
// market: closed form for European exercise and recombining binomial trees
// for European, Bermudan and American exercise.
//
// Params is a comparable value type, so a valuation can be memoized with
// memocache keyed by the full set of market and contract inputs.
package pricing
