// Package shaperglot determines whether a font adequately supports a
// written language by testing how it actually shapes text: mark attachment,
// positional forms, and shaping-sensitive behavior, rather than simply
// checking codepoint coverage.
package shaperglot

import "github.com/googlefonts/shaperglot/shaping"

// ShapingInput is the data a CheckImplementation hands to the shaping
// adapter: the text to shape, any feature overrides ("+tag"/"-tag"/"tag=N"),
// and an optional BCP-47 language.
type ShapingInput = shaping.Input

// NewShapingInput builds a ShapingInput with no feature overrides or
// language.
func NewShapingInput(text string) ShapingInput {
	return shaping.NewSimple(text)
}

// NewShapingInputWithFeature builds a ShapingInput with a single feature
// override.
func NewShapingInputWithFeature(text, feature string) ShapingInput {
	return shaping.NewWithFeature(text, feature)
}

// ResultCode is the outcome of running one Check.
type ResultCode int

const (
	// Pass means the check found no problems.
	Pass ResultCode = iota
	// Warn means the check found problems worth surfacing, but they don't
	// disqualify the font from supporting the language.
	Warn
	// Fail means the check found a problem serious enough that the font
	// does not adequately support the language.
	Fail
	// Skip means the check did not run (should_skip returned a reason).
	Skip
	// StopNow means a problem is serious enough that no further checks for
	// this language should run at all.
	StopNow
)

func (r ResultCode) String() string {
	switch r {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	case StopNow:
		return "stop-now"
	default:
		return "unknown"
	}
}

// Fix describes one concrete, actionable remedy for a Problem.
type Fix struct {
	FixType  string // e.g. "add_codepoint", "add_anchor", "add_feature"
	FixThing string // the thing to fix: a codepoint string, a "prev -> mark" glyph pair, a rule description
}

// Problem is one concrete issue a check found. Equality for deduplication
// purposes is defined on (CheckName, Message) only: the same message from
// the same check, found twice via different sub-tests, is the same problem.
type Problem struct {
	CheckName string
	Code      string
	Message   string
	Terminal  bool // if true, and the owning Check uses AllOrNothing scoring, execution stops
	Context   string
	Fixes     []Fix
}

// Equal reports whether two problems are the same for deduplication
// purposes: same owning check, same message.
func (p Problem) Equal(other Problem) bool {
	return p.CheckName == other.CheckName && p.Message == other.Message
}

// CheckResult is the outcome of running one Check: every CheckImplementation
// it owns has executed (or been skipped), and their problems and sub-test
// counts have been aggregated into a single score and status.
type CheckResult struct {
	CheckName        string
	CheckDescription string
	Status           ResultCode
	Score            float32
	Weight           uint8
	Problems         []Problem
	TotalChecks      int
}

// Summary renders a one-line description of the result, e.g. for verbose
// check output.
func (r CheckResult) Summary() string {
	if len(r.Problems) == 0 {
		return r.CheckName + ": no problems found"
	}
	return r.CheckName + " check failed"
}
