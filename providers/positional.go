package providers

import (
	"unicode"
	"unicode/utf8"

	"github.com/googlefonts/shaperglot"
	"github.com/googlefonts/shaperglot/checks"
)

const zwj = "‍"

// PositionalProvider checks that Arabic letters take the correct positional
// (init/medi/fina) forms when joining is forced via zero-width joiners
// with the corresponding feature disabled versus left to the shaper.
type PositionalProvider struct{}

func (PositionalProvider) ChecksFor(language *shaperglot.Language) []*shaperglot.Check {
	if language.Script != "Arab" {
		return nil
	}

	var letters []string
	for _, s := range language.Bases {
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) || !unicode.IsLetter(r) {
			continue
		}
		letters = append(letters, s)
	}

	var initPairs, mediPairs, finaPairs []checks.ShapingPair
	for _, base := range letters {
		r, _ := utf8.DecodeRuneInString(base)
		switch classifyJoiningType(r) {
		case joiningDual:
			initPairs = append(initPairs, positionalCheck("", base, zwj, "init"))
			mediPairs = append(mediPairs, positionalCheck(zwj, base, zwj, "medi"))
			finaPairs = append(finaPairs, positionalCheck(zwj, base, "", "fina"))
		case joiningRight:
			finaPairs = append(finaPairs, positionalCheck(zwj, base, "", "fina"))
		}
	}

	return []*shaperglot.Check{{
		Name:            "Positional forms for Arabic letters",
		Severity:        shaperglot.Fail,
		Description:     "Arabic letters should form positional forms when the init, medi, and fina features are enabled",
		ScoringStrategy: shaperglot.Continuous,
		Weight:          20,
		Implementations: []shaperglot.CheckImplementation{
			&checks.ShapingDiffers{Pairs: initPairs, IgnoreNotdefs: true},
			&checks.ShapingDiffers{Pairs: mediPairs, IgnoreNotdefs: true},
			&checks.ShapingDiffers{Pairs: finaPairs, IgnoreNotdefs: true},
		},
	}}
}

// positionalCheck builds the (before, after) pair for one positional form:
// before disables the feature that would normally produce it (so the
// shaper falls back to an unjoined form for comparison), after lets the
// shaper apply it normally.
func positionalCheck(pre, character, post, feature string) checks.ShapingPair {
	text := pre + character + post
	return checks.ShapingPair{
		Before: shaperglot.NewShapingInputWithFeature(text, "-"+feature),
		After:  shaperglot.NewShapingInput(text),
	}
}
