package shaperglot

import "testing"

// fakeImpl is a CheckImplementation stub that never touches its ctx, so it
// can be exercised against a nil *CheckerContext.
type fakeImpl struct {
	name        string
	skipReason  string
	skip        bool
	problems    []Problem
	subTestsRun int
}

func (f *fakeImpl) Name() string    { return f.name }
func (f *fakeImpl) Describe() string { return f.name }
func (f *fakeImpl) ShouldSkip(ctx *CheckerContext) (string, bool) {
	return f.skipReason, f.skip
}
func (f *fakeImpl) Execute(ctx *CheckerContext) ([]Problem, int) {
	return f.problems, f.subTestsRun
}

func TestCheckExecutePass(t *testing.T) {
	c := &Check{
		Name:            "TestCheck",
		Severity:        Warn,
		ScoringStrategy: Continuous,
		Weight:          1,
		Implementations: []CheckImplementation{
			&fakeImpl{name: "a", subTestsRun: 4},
		},
	}
	result := c.Execute(nil)
	if result.Status != Pass {
		t.Errorf("status = %v, want Pass", result.Status)
	}
	if result.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", result.Score)
	}
}

func TestCheckExecuteSoleImplementationSkip(t *testing.T) {
	c := &Check{
		Name:            "TestCheck",
		Severity:        Warn,
		ScoringStrategy: Continuous,
		Implementations: []CheckImplementation{
			&fakeImpl{name: "a", skip: true, skipReason: "no exemplar data"},
		},
	}
	result := c.Execute(nil)
	if result.Status != Skip {
		t.Errorf("status = %v, want Skip", result.Status)
	}
	if result.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", result.Score)
	}
	if result.TotalChecks != 1 {
		t.Errorf("totalChecks = %d, want 1", result.TotalChecks)
	}
	if len(result.Problems) != 1 || result.Problems[0].Code != "skip" {
		t.Errorf("expected one skip problem, got %v", result.Problems)
	}
}

func TestCheckExecuteNonSoleImplementationSkip(t *testing.T) {
	c := &Check{
		Name:            "TestCheck",
		Severity:        Warn,
		ScoringStrategy: Continuous,
		Implementations: []CheckImplementation{
			&fakeImpl{name: "a", skip: true, skipReason: "optional feature absent"},
			&fakeImpl{name: "b", subTestsRun: 3},
		},
	}
	result := c.Execute(nil)
	if result.Status != Warn {
		t.Errorf("status = %v, want Warn", result.Status)
	}
	if result.TotalChecks != 4 {
		t.Errorf("totalChecks = %d, want 4", result.TotalChecks)
	}
	if len(result.Problems) != 1 || result.Problems[0].Code != "skip" {
		t.Errorf("expected one skip problem, got %v", result.Problems)
	}
}

func TestCheckExecuteContinuousScoring(t *testing.T) {
	c := &Check{
		Name:            "TestCheck",
		Severity:        Warn,
		ScoringStrategy: Continuous,
		Implementations: []CheckImplementation{
			&fakeImpl{name: "a", subTestsRun: 4, problems: []Problem{{CheckName: "a", Message: "m1"}}},
		},
	}
	result := c.Execute(nil)
	if result.Status != Warn {
		t.Errorf("status = %v, want Warn", result.Status)
	}
	want := float32(1.0 - 1.0/4.0)
	if result.Score != want {
		t.Errorf("score = %v, want %v", result.Score, want)
	}
}

func TestCheckExecuteAllOrNothingStopNow(t *testing.T) {
	c := &Check{
		Name:            "TestCheck",
		Severity:        Fail,
		ScoringStrategy: AllOrNothing,
		Implementations: []CheckImplementation{
			&fakeImpl{name: "a", subTestsRun: 1, problems: []Problem{{CheckName: "a", Message: "fatal", Terminal: true}}},
		},
	}
	result := c.Execute(nil)
	if result.Status != StopNow {
		t.Errorf("status = %v, want StopNow", result.Status)
	}
	if result.Score != 0.0 {
		t.Errorf("score = %v, want 0.0", result.Score)
	}
}

func TestCheckExecuteNoSubTestsSkips(t *testing.T) {
	c := &Check{
		Name:            "TestCheck",
		Severity:        Warn,
		ScoringStrategy: Continuous,
		Implementations: []CheckImplementation{
			&fakeImpl{name: "a", subTestsRun: 0},
		},
	}
	result := c.Execute(nil)
	if result.Status != Skip {
		t.Errorf("status = %v, want Skip", result.Status)
	}
}

func TestProblemEqual(t *testing.T) {
	p1 := Problem{CheckName: "c", Message: "m", Code: "x"}
	p2 := Problem{CheckName: "c", Message: "m", Code: "y"}
	p3 := Problem{CheckName: "c", Message: "other"}
	if !p1.Equal(p2) {
		t.Error("expected p1 and p2 to be equal (code doesn't participate)")
	}
	if p1.Equal(p3) {
		t.Error("expected p1 and p3 to differ")
	}
}
