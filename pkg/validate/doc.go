// Package validate runs post-generation sanity checks against a
// finished token.Map: hard constraints that must hold (every passable
// cell reachable from a starting set) and soft constraints that merely
// score a generation run (how much of the map got painted at all).
package validate
