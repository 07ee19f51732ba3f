// Package token defines the map the engine paints onto: a dense grid of
// cells, each holding a set of opaque string tokens, together with the
// canvas view (a sub-rectangle plus a pointer to the shared map) that
// every generator node receives.
package token
