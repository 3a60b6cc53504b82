package shaperglot

import (
	"fmt"
	"math"
)

// SupportLevel is the overall verdict a Reporter reaches for one
// (font, language) pair.
type SupportLevel int

const (
	// Complete means every check passed with no problems at all: 100%.
	Complete SupportLevel = iota
	// Supported means no Fails or Warns, only optional Skips.
	Supported
	// Incomplete means there were Warns but no Fails: usable, but missing
	// polish.
	Incomplete
	// Unsupported means there was at least one Fail.
	Unsupported
	// None means the font failed a StopNow check: it is not usable at all
	// for this language.
	None
	// Indeterminate means no checks could run at all (the language
	// definition is too sparse), so support cannot be judged either way.
	Indeterminate
)

func (s SupportLevel) String() string {
	switch s {
	case Complete:
		return "Complete"
	case Supported:
		return "Supported"
	case Incomplete:
		return "Incomplete"
	case Unsupported:
		return "Unsupported"
	case None:
		return "None"
	case Indeterminate:
		return "Indeterminate"
	default:
		return "Unknown"
	}
}

// Reporter collects the CheckResults produced by running one Language's
// Checks against one font, and derives a score, support level, and
// deduplicated set of required fixes from them.
type Reporter struct {
	results []CheckResult
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Add appends one CheckResult, in the order it was produced.
func (r *Reporter) Add(result CheckResult) {
	r.results = append(r.results, result)
}

// Results returns every CheckResult collected, in check-run order.
func (r *Reporter) Results() []CheckResult {
	return r.results
}

// Problems returns every Problem found across every result, in
// check-run, then within-check, order.
func (r *Reporter) Problems() []Problem {
	var problems []Problem
	for _, result := range r.results {
		problems = append(problems, result.Problems...)
	}
	return problems
}

// UniqueFixes groups every Fix suggested across every problem by fix type,
// deduplicating repeated (fix_type, fix_thing) pairs — several checks may
// independently land on the same fix.
func (r *Reporter) UniqueFixes() map[string]map[string]struct{} {
	fixes := map[string]map[string]struct{}{}
	for _, result := range r.results {
		for _, problem := range result.Problems {
			for _, fix := range problem.Fixes {
				things, ok := fixes[fix.FixType]
				if !ok {
					things = map[string]struct{}{}
					fixes[fix.FixType] = things
				}
				things[fix.FixThing] = struct{}{}
			}
		}
	}
	return fixes
}

// FixesRequired is the total number of distinct fixes needed across every
// fix type.
func (r *Reporter) FixesRequired() int {
	total := 0
	for _, things := range r.UniqueFixes() {
		total += len(things)
	}
	return total
}

// Score is the weighted sum of every result's score, as a percentage. It is
// only meaningful when IsUnknown is false — callers must check
// SupportLevel (or IsUnknown directly) first. If every result has zero
// weight the score is undefined by contract; this returns NaN rather than
// a misleading number.
func (r *Reporter) Score() float32 {
	var totalWeight, weightedScore float32
	for _, result := range r.results {
		w := float32(result.Weight)
		totalWeight += w
		weightedScore += result.Score * w
	}
	if totalWeight == 0 {
		return float32(math.NaN())
	}
	return weightedScore / totalWeight * 100.0
}

// IsUnknown reports whether no check actually ran a single sub-test — the
// language definition was too sparse to test anything, not that everything
// passed.
func (r *Reporter) IsUnknown() bool {
	total := 0
	for _, result := range r.results {
		total += result.TotalChecks
	}
	return total == 0
}

// IsSuccess reports whether the font fully supports the language: known,
// and every result found zero problems.
func (r *Reporter) IsSuccess() bool {
	if r.IsUnknown() {
		return false
	}
	for _, result := range r.results {
		if len(result.Problems) > 0 {
			return false
		}
	}
	return true
}

// IsNearlySuccess reports whether the number of distinct fixes required is
// within a caller-chosen threshold.
func (r *Reporter) IsNearlySuccess(nearly int) bool {
	return r.FixesRequired() <= nearly
}

// SupportLevel derives the overall verdict from the collected results.
func (r *Reporter) SupportLevel() SupportLevel {
	for _, result := range r.results {
		if result.Status == StopNow {
			return None
		}
	}
	if r.IsUnknown() {
		return Indeterminate
	}
	if r.IsSuccess() {
		return Complete
	}
	for _, result := range r.results {
		if result.Status == Fail {
			return Unsupported
		}
	}
	for _, result := range r.results {
		if result.Status == Warn {
			return Incomplete
		}
	}
	return Supported
}

// ToSummaryString renders the one-sentence, deterministic summary for a
// language's support level.
func (r *Reporter) ToSummaryString(language *Language) string {
	switch r.SupportLevel() {
	case Complete:
		return fmt.Sprintf("Font has complete support for %s (%s): 100%%", language.ID, language.Name)
	case Supported:
		return fmt.Sprintf("Font fully supports %s (%s): %.0f%%", language.ID, language.Name, r.Score())
	case Incomplete:
		return fmt.Sprintf("Font partially supports %s (%s): %.0f%% (%d fixes required)",
			language.ID, language.Name, r.Score(), r.FixesRequired())
	case Unsupported:
		return fmt.Sprintf("Font does not support %s (%s): %.0f%% (%d fixes required)",
			language.ID, language.Name, r.Score(), r.FixesRequired())
	case None:
		return fmt.Sprintf("Font does not attempt to support %s (%s)", language.ID, language.Name)
	default: // Indeterminate
		return fmt.Sprintf("Cannot determine whether font supports %s (%s)", language.ID, language.Name)
	}
}
