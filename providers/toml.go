package providers

import (
	"fmt"
	"sync"

	_ "embed"

	"github.com/BurntSushi/toml"

	"github.com/googlefonts/shaperglot"
	"github.com/googlefonts/shaperglot/checks"
)

//go:embed manual_checks.toml
var manualChecksTOML string

// tomlShapingInput is ShapingInput's on-disk shape.
type tomlShapingInput struct {
	Text     string   `toml:"text"`
	Features []string `toml:"features"`
	Language string   `toml:"language"`
}

func (in tomlShapingInput) toInput() shaperglot.ShapingInput {
	return shaperglot.ShapingInput{Text: in.Text, Features: in.Features, Language: in.Language}
}

// tomlPair is one (before, after) ShapingDiffers pair's on-disk shape.
type tomlPair struct {
	Before tomlShapingInput `toml:"before"`
	After  tomlShapingInput `toml:"after"`
}

// tomlImplementation is one CheckImpl's on-disk shape, discriminated by
// Type: "CodepointCoverage", "NoOrphanedMarks", or "ShapingDiffers" — the
// fields irrelevant to that variant are simply left zero.
type tomlImplementation struct {
	Type string `toml:"type"`

	// CodepointCoverage
	Strings         []string `toml:"strings"`
	Code            string   `toml:"code"`
	TerminalIfEmpty bool     `toml:"terminal_if_empty"`

	// NoOrphanedMarks
	TestStrings    []string `toml:"test_strings"`
	HasOrthography bool     `toml:"has_orthography"`

	// ShapingDiffers
	Pairs            []tomlPair `toml:"pairs"`
	FeaturesOptional bool       `toml:"features_optional"`
	IgnoreNotdefs    bool       `toml:"ignore_notdefs"`
}

func (t tomlImplementation) toImplementation() (shaperglot.CheckImplementation, error) {
	switch t.Type {
	case "CodepointCoverage":
		return &checks.CodepointCoverage{Strings: t.Strings, Code: t.Code, TerminalIfEmpty: t.TerminalIfEmpty}, nil
	case "NoOrphanedMarks":
		inputs := make([]shaperglot.ShapingInput, len(t.TestStrings))
		for i, s := range t.TestStrings {
			inputs[i] = shaperglot.NewShapingInput(s)
		}
		return &checks.NoOrphanedMarks{Inputs: inputs, HasOrthography: t.HasOrthography}, nil
	case "ShapingDiffers":
		pairs := make([]checks.ShapingPair, len(t.Pairs))
		for i, p := range t.Pairs {
			pairs[i] = checks.ShapingPair{Before: p.Before.toInput(), After: p.After.toInput()}
		}
		return &checks.ShapingDiffers{Pairs: pairs, FeaturesOptional: t.FeaturesOptional, IgnoreNotdefs: t.IgnoreNotdefs}, nil
	default:
		return nil, fmt.Errorf("unknown implementation type %q", t.Type)
	}
}

// tomlCheck is one hand-authored check's on-disk shape, matching Check's
// natural field names.
type tomlCheck struct {
	Name            string               `toml:"name"`
	Description     string               `toml:"description"`
	Severity        string               `toml:"severity"`
	ScoringStrategy string               `toml:"scoring_strategy"`
	Weight          uint8                `toml:"weight"`
	Implementations []tomlImplementation `toml:"implementations"`
}

var (
	manualChecksOnce sync.Once
	manualChecks     map[string][]tomlCheck
)

// loadManualChecks decodes the embedded manual_checks.toml once, the first
// time a TomlProvider is asked for checks. A malformed document is a build
// configuration error, not a per-font runtime condition, so it panics
// rather than threading an error through every ChecksFor call.
func loadManualChecks() map[string][]tomlCheck {
	manualChecksOnce.Do(func() {
		manualChecks = map[string][]tomlCheck{}
		if _, err := toml.Decode(manualChecksTOML, &manualChecks); err != nil {
			panic(fmt.Sprintf("providers: could not parse manual checks file: %s", err))
		}
	})
	return manualChecks
}

// TomlProvider serves hand-authored checks loaded from a static TOML
// document, keyed by language id.
type TomlProvider struct{}

func NewTomlProvider() TomlProvider { return TomlProvider{} }

func (TomlProvider) ChecksFor(language *shaperglot.Language) []*shaperglot.Check {
	entries, ok := loadManualChecks()[language.ID]
	if !ok {
		return nil
	}
	out := make([]*shaperglot.Check, 0, len(entries))
	for _, entry := range entries {
		c, err := entry.toCheck()
		if err != nil {
			panic(fmt.Sprintf("providers: manual check %q for %s: %s", entry.Name, language.ID, err))
		}
		out = append(out, c)
	}
	return out
}

func (t tomlCheck) toCheck() (*shaperglot.Check, error) {
	severity := shaperglot.Warn
	if t.Severity == "fail" {
		severity = shaperglot.Fail
	}
	strategy := shaperglot.Continuous
	if t.ScoringStrategy == "all_or_nothing" {
		strategy = shaperglot.AllOrNothing
	}
	impls := make([]shaperglot.CheckImplementation, 0, len(t.Implementations))
	for _, raw := range t.Implementations {
		impl, err := raw.toImplementation()
		if err != nil {
			return nil, err
		}
		impls = append(impls, impl)
	}
	return &shaperglot.Check{
		Name:            t.Name,
		Description:     t.Description,
		Severity:        severity,
		ScoringStrategy: strategy,
		Weight:          t.Weight,
		Implementations: impls,
	}, nil
}
