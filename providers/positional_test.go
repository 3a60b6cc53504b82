package providers

import (
	"testing"

	"github.com/googlefonts/shaperglot"
	"github.com/googlefonts/shaperglot/checks"
)

func TestPositionalProviderNonArabicSkipped(t *testing.T) {
	lang := &shaperglot.Language{ID: "en_Latn", Script: "Latn", Bases: []string{"a"}}
	if got := PositionalProvider{}.ChecksFor(lang); got != nil {
		t.Errorf("expected no checks for non-Arabic script, got %v", got)
	}
}

func TestPositionalProviderDualJoiningLetter(t *testing.T) {
	// U+0628 ARABIC LETTER BEH is dual-joining.
	lang := &shaperglot.Language{ID: "ar_Arab", Script: "Arab", Bases: []string{"ب"}}
	out := PositionalProvider{}.ChecksFor(lang)
	if len(out) != 1 {
		t.Fatalf("expected 1 check, got %d", len(out))
	}
	c := out[0]
	if len(c.Implementations) != 3 {
		t.Fatalf("expected init/medi/fina implementations, got %d", len(c.Implementations))
	}
	for _, impl := range c.Implementations {
		sd := impl.(*checks.ShapingDiffers)
		if len(sd.Pairs) != 1 {
			t.Errorf("expected exactly one pair for a dual-joining letter, got %d", len(sd.Pairs))
		}
		if !sd.IgnoreNotdefs {
			t.Error("expected IgnoreNotdefs to be set")
		}
	}
}

func TestPositionalProviderRightJoiningLetter(t *testing.T) {
	// U+0627 ARABIC LETTER ALEF is right-joining.
	lang := &shaperglot.Language{ID: "ar_Arab", Script: "Arab", Bases: []string{"ا"}}
	out := PositionalProvider{}.ChecksFor(lang)
	c := out[0]
	init := c.Implementations[0].(*checks.ShapingDiffers)
	medi := c.Implementations[1].(*checks.ShapingDiffers)
	fina := c.Implementations[2].(*checks.ShapingDiffers)
	if len(init.Pairs) != 0 || len(medi.Pairs) != 0 {
		t.Error("right-joining letters should only produce a fina pair")
	}
	if len(fina.Pairs) != 1 {
		t.Errorf("expected one fina pair, got %d", len(fina.Pairs))
	}
}
