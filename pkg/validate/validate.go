package validate

import (
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/token"
)

// Options configures Validate.
type Options struct {
	// Passable reports whether a token marks a cell as passable for
	// connectivity purposes. Required.
	Passable func(token.Token) bool

	// Sources are the cells connectivity is checked from (e.g. every
	// cell tagged "start" or "spawn"). Required, at least one entry.
	Sources []grid.Vec2
}

// Validate runs every constraint check against m and returns a report.
// Passed reflects the hard constraints only; soft constraint scores
// below 0.8 are recorded as warnings.
func Validate(m *token.Map, opts Options) *Report {
	report := &Report{Passed: true}

	hard := []ConstraintResult{
		CheckConnectivity(m, opts.Passable, opts.Sources),
		CheckSourcesLinked(m, opts.Passable, opts.Sources),
	}
	for _, res := range hard {
		report.Results = append(report.Results, res)
		if !res.Satisfied {
			report.Passed = false
			report.Errors = append(report.Errors, res.Details)
		}
	}

	soft := []ConstraintResult{
		CheckCoverage(m),
	}
	for _, res := range soft {
		report.Results = append(report.Results, res)
		if res.Score < 0.8 {
			report.Warnings = append(report.Warnings, res.Details)
		}
	}

	return report
}
