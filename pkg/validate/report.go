package validate

import "fmt"

// ConstraintResult is the outcome of one check: hard checks set
// Satisfied, soft checks set Score (0.0-1.0, higher is better).
type ConstraintResult struct {
	Name      string
	Satisfied bool
	Score     float64
	Details   string
}

// Report collects every constraint checked against one generated map.
type Report struct {
	Passed   bool
	Results  []ConstraintResult
	Warnings []string
	Errors   []string
}

func newHardResult(name string, satisfied bool, details string) ConstraintResult {
	return ConstraintResult{Name: name, Satisfied: satisfied, Score: boolScore(satisfied), Details: details}
}

func newSoftResult(name string, score float64, details string) ConstraintResult {
	return ConstraintResult{Name: name, Satisfied: true, Score: score, Details: details}
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// String renders a short human-readable summary, one line per result.
func (r *Report) String() string {
	s := fmt.Sprintf("Passed: %v\n", r.Passed)
	for _, res := range r.Results {
		mark := "FAIL"
		if res.Satisfied {
			mark = "ok"
		}
		s += fmt.Sprintf("  [%s] %s: %s\n", mark, res.Name, res.Details)
	}
	return s
}
