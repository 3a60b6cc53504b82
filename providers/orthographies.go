package providers

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/googlefonts/shaperglot"
	"github.com/googlefonts/shaperglot/checks"
)

// OrthographiesProvider checks that the font covers the basic codepoints of
// a language's orthography. This is mandatory for every language: base and
// mark exemplars are required, auxiliary exemplars are optional.
type OrthographiesProvider struct{}

func (OrthographiesProvider) ChecksFor(language *shaperglot.Language) []*shaperglot.Check {
	var out []*shaperglot.Check
	if len(language.Bases) > 0 {
		out = append(out, mandatoryOrthography(language))
	}
	if c := auxiliariesCheck(language); c != nil {
		out = append(out, c)
	}
	return out
}

// hasComplexDecomposedBase reports whether a base exemplar's NFD
// decomposition contains a combining mark codepoint.
func hasComplexDecomposedBase(base string) bool {
	for _, r := range norm.NFD.String(base) {
		if unicode.Is(unicode.Mark, r) {
			return true
		}
	}
	return false
}

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}

func mandatoryOrthography(language *shaperglot.Language) *shaperglot.Check {
	and := ""
	if len(language.Marks) > 0 {
		and = " and marks"
	}
	check := &shaperglot.Check{
		Name: "Mandatory orthography codepoints",
		Description: fmt.Sprintf("The font MUST support the following %s bases%s: %s",
			language.Name, and, quoteJoin(append(append([]string{}, language.Bases...), language.Marks...))),
		Severity:        shaperglot.Fail,
		Weight:          80,
		ScoringStrategy: shaperglot.AllOrNothing,
		Implementations: []shaperglot.CheckImplementation{
			&checks.CodepointCoverage{Strings: language.Bases, Code: "base", TerminalIfEmpty: true},
		},
	}

	if len(language.Marks) > 0 {
		marks := make([]string, len(language.Marks))
		for i, m := range language.Marks {
			marks[i] = strings.ReplaceAll(m, "◌", "")
		}
		check.Implementations = append(check.Implementations,
			&checks.CodepointCoverage{Strings: marks, Code: "mark", TerminalIfEmpty: false})
	}

	var complexBases []shaperglot.ShapingInput
	for _, base := range language.Bases {
		if hasComplexDecomposedBase(base) {
			complexBases = append(complexBases, shaperglot.NewShapingInput(base))
		}
	}
	if len(complexBases) > 0 {
		check.Implementations = append(check.Implementations,
			&checks.NoOrphanedMarks{Inputs: complexBases, HasOrthography: true})
	}
	return check
}

func auxiliariesCheck(language *shaperglot.Language) *shaperglot.Check {
	if len(language.Auxiliaries) == 0 {
		return nil
	}
	var complexAuxs []shaperglot.ShapingInput
	for _, s := range language.Auxiliaries {
		if !hasComplexDecomposedBase(s) {
			continue
		}
		text := s
		if len([]rune(s)) == 1 {
			text = "◌" + s
		}
		complexAuxs = append(complexAuxs, shaperglot.NewShapingInput(text))
	}

	check := &shaperglot.Check{
		Name: "Auxiliary orthography codepoints",
		Description: fmt.Sprintf("The font SHOULD support the following auxiliary orthography codepoints: %s",
			quoteJoin(language.Auxiliaries)),
		Weight:          20,
		ScoringStrategy: shaperglot.Continuous,
		Severity:        shaperglot.Warn,
	}
	for _, codepoint := range language.Auxiliaries {
		check.Implementations = append(check.Implementations,
			&checks.CodepointCoverage{Strings: []string{codepoint}, Code: "auxiliary", TerminalIfEmpty: false})
	}
	if len(complexAuxs) > 0 {
		check.Implementations = append(check.Implementations,
			&checks.NoOrphanedMarks{Inputs: complexAuxs, HasOrthography: true})
	}
	return check
}
