package providers

import (
	"testing"

	"github.com/googlefonts/shaperglot"
)

func TestSmallCapsProviderNonLatinSkipped(t *testing.T) {
	lang := &shaperglot.Language{ID: "ar_Arab", Script: "Arab", Bases: []string{"ا"}}
	if got := SmallCapsProvider{}.ChecksFor(lang); got != nil {
		t.Errorf("expected no checks for non-Latin script, got %v", got)
	}
}

func TestSmallCapsProviderCollectsLowercaseLetters(t *testing.T) {
	lang := &shaperglot.Language{
		ID: "en_Latn", Script: "Latn",
		Bases:       []string{"a", "B", "c"},
		Auxiliaries: []string{"x"},
	}
	checksOut := SmallCapsProvider{}.ChecksFor(lang)
	if len(checksOut) != 1 {
		t.Fatalf("expected exactly 1 check, got %d", len(checksOut))
	}
	c := checksOut[0]
	if c.Weight != 10 || c.Severity != shaperglot.Warn || c.ScoringStrategy != shaperglot.Continuous {
		t.Errorf("unexpected check shape: %+v", c)
	}
	if len(c.Implementations) != 1 {
		t.Fatalf("expected a single ShapingDiffers implementation, got %d", len(c.Implementations))
	}
	sd, ok := c.Implementations[0].(interface{ Name() string })
	if !ok || sd.Name() != "ShapingDiffers" {
		t.Errorf("expected ShapingDiffers implementation, got %T", c.Implementations[0])
	}
}
