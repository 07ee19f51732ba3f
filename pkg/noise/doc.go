// Package noise generates smooth scalar fields over a rectangle using
// diamond-square midpoint displacement, then resamples them onto an
// arbitrary target rectangle by nearest neighbour. It backs the
// generator tree's NoiseMap node, which thresholds the field by
// quantile rather than absolute value so the same generator composes
// over differently sized areas.
package noise
