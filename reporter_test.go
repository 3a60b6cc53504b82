package shaperglot

import "testing"

func TestReporterSupportLevelComplete(t *testing.T) {
	r := NewReporter()
	r.Add(CheckResult{CheckName: "a", Status: Pass, Score: 1.0, Weight: 1, TotalChecks: 2})
	if got := r.SupportLevel(); got != Complete {
		t.Errorf("SupportLevel() = %v, want Complete", got)
	}
	if r.Score() != 100 {
		t.Errorf("Score() = %v, want 100", r.Score())
	}
}

func TestReporterSupportLevelIndeterminate(t *testing.T) {
	r := NewReporter()
	r.Add(CheckResult{CheckName: "a", Status: Skip, Score: 0.5, Weight: 1, TotalChecks: 0})
	if got := r.SupportLevel(); got != Indeterminate {
		t.Errorf("SupportLevel() = %v, want Indeterminate", got)
	}
}

func TestReporterSupportLevelStopNow(t *testing.T) {
	r := NewReporter()
	r.Add(CheckResult{CheckName: "a", Status: StopNow, Score: 0, Weight: 1, TotalChecks: 1,
		Problems: []Problem{{CheckName: "a", Message: "fatal", Terminal: true}}})
	r.Add(CheckResult{CheckName: "b", Status: Pass, Score: 1, Weight: 1, TotalChecks: 1})
	if got := r.SupportLevel(); got != None {
		t.Errorf("SupportLevel() = %v, want None", got)
	}
}

func TestReporterSupportLevelUnsupportedBeatsIncomplete(t *testing.T) {
	r := NewReporter()
	r.Add(CheckResult{CheckName: "a", Status: Warn, Score: 0.5, Weight: 1, TotalChecks: 2,
		Problems: []Problem{{CheckName: "a", Message: "m1"}}})
	r.Add(CheckResult{CheckName: "b", Status: Fail, Score: 0, Weight: 1, TotalChecks: 1,
		Problems: []Problem{{CheckName: "b", Message: "m2"}}})
	if got := r.SupportLevel(); got != Unsupported {
		t.Errorf("SupportLevel() = %v, want Unsupported", got)
	}
}

func TestReporterFixesRequiredDeduplicates(t *testing.T) {
	r := NewReporter()
	r.Add(CheckResult{CheckName: "a", Status: Warn, Weight: 1, TotalChecks: 1, Problems: []Problem{
		{CheckName: "a", Message: "m1", Fixes: []Fix{{FixType: "add_codepoint", FixThing: "x"}}},
	}})
	r.Add(CheckResult{CheckName: "b", Status: Warn, Weight: 1, TotalChecks: 1, Problems: []Problem{
		{CheckName: "b", Message: "m2", Fixes: []Fix{{FixType: "add_codepoint", FixThing: "x"}, {FixType: "add_anchor", FixThing: "y -> z"}}},
	}})
	if got := r.FixesRequired(); got != 2 {
		t.Errorf("FixesRequired() = %d, want 2", got)
	}
}

func TestReporterToSummaryString(t *testing.T) {
	lang := &Language{ID: "en_Latn", Name: "English"}
	r := NewReporter()
	r.Add(CheckResult{CheckName: "a", Status: Pass, Score: 1.0, Weight: 1, TotalChecks: 1})
	got := r.ToSummaryString(lang)
	want := "Font has complete support for en_Latn (English): 100%"
	if got != want {
		t.Errorf("ToSummaryString() = %q, want %q", got, want)
	}
}
