package providers

import (
	"unicode"
	"unicode/utf8"

	"github.com/googlefonts/shaperglot"
	"github.com/googlefonts/shaperglot/checks"
)

// SmallCapsProvider checks that single lowercase Latin letters form small
// caps when the "smcp" feature is enabled.
type SmallCapsProvider struct{}

func (SmallCapsProvider) ChecksFor(language *shaperglot.Language) []*shaperglot.Check {
	if language.Script != "Latn" {
		return nil
	}

	var pairs []checks.ShapingPair
	for _, s := range append(append([]string{}, language.Bases...), language.Auxiliaries...) {
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) || !unicode.Is(unicode.Ll, r) {
			continue
		}
		pairs = append(pairs, checks.ShapingPair{
			Before: shaperglot.NewShapingInput(s),
			After:  shaperglot.NewShapingInputWithFeature(s, "smcp"),
		})
	}

	return []*shaperglot.Check{{
		Name:            "Small caps for Latin letters",
		Severity:        shaperglot.Warn,
		Description:     "Latin letters should form small caps when the smcp feature is enabled",
		ScoringStrategy: shaperglot.Continuous,
		Weight:          10,
		Implementations: []shaperglot.CheckImplementation{
			&checks.ShapingDiffers{Pairs: pairs, FeaturesOptional: true, IgnoreNotdefs: true},
		},
	}}
}
