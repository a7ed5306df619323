// Package testutil provides deterministic test helpers: a seeded,
// thread-safe random number generator for producing integer operands in
// randomized overflow tests.
package testutil
