// Package predicate implements the boolean query tree evaluated against a
// cell's current tokens and the shared RNG: On, Not, True, And, Or, and
// Chance. Evaluation is not idempotent — Chance consumes RNG state on
// every call — so callers must assume side effects whenever a predicate
// is evaluated more than once for the same cell.
package predicate
