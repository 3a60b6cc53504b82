package providers

import (
	"testing"

	"github.com/googlefonts/shaperglot"
)

func TestHasComplexDecomposedBase(t *testing.T) {
	if hasComplexDecomposedBase("a") {
		t.Error("plain ascii letter should not be complex")
	}
	if !hasComplexDecomposedBase("á") {
		t.Error("letter+combining-acute should be complex")
	}
}

func TestOrthographiesProviderMandatoryCheck(t *testing.T) {
	lang := &shaperglot.Language{
		ID: "en_Latn", Name: "English", Script: "Latn",
		Bases: []string{"a", "b", "c"},
	}
	checks := OrthographiesProvider{}.ChecksFor(lang)
	if len(checks) != 1 {
		t.Fatalf("expected 1 check (no marks/auxiliaries), got %d", len(checks))
	}
	c := checks[0]
	if c.Severity != shaperglot.Fail || c.ScoringStrategy != shaperglot.AllOrNothing || c.Weight != 80 {
		t.Errorf("unexpected check shape: %+v", c)
	}
	if len(c.Implementations) != 1 {
		t.Errorf("expected one CodepointCoverage implementation with no marks, got %d", len(c.Implementations))
	}
}

func TestOrthographiesProviderWithMarksAndAuxiliaries(t *testing.T) {
	lang := &shaperglot.Language{
		ID: "vi_Latn", Name: "Vietnamese", Script: "Latn",
		Bases:       []string{"a", "á"},
		Marks:       []string{"◌́"},
		Auxiliaries: []string{"x"},
	}
	checks := OrthographiesProvider{}.ChecksFor(lang)
	if len(checks) != 2 {
		t.Fatalf("expected mandatory + auxiliary check, got %d", len(checks))
	}
	mandatory := checks[0]
	if len(mandatory.Implementations) != 3 {
		t.Errorf("expected base+mark+complex-base implementations, got %d", len(mandatory.Implementations))
	}
}
