package providers

import (
	"testing"

	"github.com/googlefonts/shaperglot"
)

func TestTomlProviderKnownLanguage(t *testing.T) {
	lang := &shaperglot.Language{ID: "nqo_Nkoo", Name: "N'Ko"}
	out := NewTomlProvider().ChecksFor(lang)
	if len(out) != 1 {
		t.Fatalf("expected 1 manually-authored check, got %d", len(out))
	}
	c := out[0]
	if c.Severity != shaperglot.Fail || c.ScoringStrategy != shaperglot.AllOrNothing {
		t.Errorf("unexpected check shape: %+v", c)
	}
	if len(c.Implementations) != 1 {
		t.Fatalf("expected one codepoint_coverage implementation, got %d", len(c.Implementations))
	}
}

func TestTomlProviderUnknownLanguage(t *testing.T) {
	lang := &shaperglot.Language{ID: "zz_Zzzz"}
	if out := NewTomlProvider().ChecksFor(lang); out != nil {
		t.Errorf("expected nil for unlisted language, got %v", out)
	}
}
