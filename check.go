package shaperglot

import "fmt"

// CheckImplementation is one concrete behavioral test a Check can run
// against a font, for a language's exemplar data. Three ship with this
// module: CodepointCoverage, NoOrphanedMarks, and ShapingDiffers (see the
// checks package); providers compose them into Checks.
type CheckImplementation interface {
	Name() string
	Describe() string
	// ShouldSkip reports whether this implementation has nothing to test
	// for the current language (e.g. a feature the font doesn't declare),
	// and if so, why.
	ShouldSkip(ctx *CheckerContext) (reason string, skip bool)
	// Execute runs every sub-test this implementation owns and returns the
	// problems found together with how many sub-tests actually ran.
	Execute(ctx *CheckerContext) (problems []Problem, subTestsRun int)
}

// ScoringStrategy controls how a Check's implementations' problems turn
// into a numeric score and status.
type ScoringStrategy int

const (
	// Continuous scores proportionally to the fraction of sub-tests that
	// found a problem.
	Continuous ScoringStrategy = iota
	// AllOrNothing scores 1.0 if no implementation found a problem, 0.0
	// otherwise — used when any single problem should disqualify the
	// language entirely.
	AllOrNothing
)

// Check aggregates one or more CheckImplementations under a single name,
// weight, scoring strategy, and the ResultCode to report when something
// goes wrong (Warn or Fail, depending on how serious the provider considers
// this check).
type Check struct {
	Name            string
	Severity        ResultCode
	Description     string
	ScoringStrategy ScoringStrategy
	Weight          uint8
	Implementations []CheckImplementation
}

// Execute runs every implementation in order. When an implementation wants
// to skip and it is the Check's only implementation, the whole Check result
// is a Skip (score 0.5) rather than a pass or fail — a lone skipped
// implementation means this check plain doesn't apply, not that it found no
// problems. When there's more than one implementation, a skip becomes a
// "skip" Problem alongside whatever the other implementations find.
func (c *Check) Execute(ctx *CheckerContext) CheckResult {
	var problems []Problem
	totalChecks := 0

	for _, impl := range c.Implementations {
		if reason, skip := impl.ShouldSkip(ctx); skip {
			skipProblem := Problem{
				CheckName: c.Name,
				Code:      "skip",
				Message:   fmt.Sprintf("Check skipped: %s", reason),
			}
			if len(c.Implementations) == 1 {
				return CheckResult{
					CheckName:        c.Name,
					CheckDescription: c.Description,
					Status:           Skip,
					Score:            0.5,
					Weight:           c.Weight,
					Problems:         []Problem{skipProblem},
					TotalChecks:      1,
				}
			}
			problems = append(problems, skipProblem)
			totalChecks++
			continue
		}
		localProblems, checksRun := impl.Execute(ctx)
		problems = append(problems, localProblems...)
		totalChecks += checksRun
	}

	var score float32
	switch c.ScoringStrategy {
	case AllOrNothing:
		if len(problems) == 0 {
			score = 1.0
		}
	default: // Continuous
		if totalChecks == 0 {
			score = 1.0
		} else {
			score = 1.0 - float32(len(problems))/float32(totalChecks)
		}
	}

	status := c.Severity
	switch {
	case totalChecks == 0:
		status = Skip
	case len(problems) == 0:
		status = Pass
	case c.ScoringStrategy == AllOrNothing && anyTerminal(problems):
		status = StopNow
	}

	return CheckResult{
		CheckName:        c.Name,
		CheckDescription: c.Description,
		Status:           status,
		Score:            score,
		Weight:           c.Weight,
		Problems:         problems,
		TotalChecks:      totalChecks,
	}
}

func anyTerminal(problems []Problem) bool {
	for _, p := range problems {
		if p.Terminal {
			return true
		}
	}
	return false
}
