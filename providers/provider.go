// Package providers composes the checks package's CheckImplementations into
// Checks, one family of checks per concern: basic orthography coverage,
// small-caps behavior, Arabic positional forms, and hand-authored checks
// loaded from a TOML file.
package providers

import "github.com/googlefonts/shaperglot"

// Provider derives zero or more Checks for a language from its exemplar
// data. A language's final Check list is the concatenation of every
// Provider's output, in provider order.
type Provider interface {
	ChecksFor(language *shaperglot.Language) []*shaperglot.Check
}

// BaseCheckProvider is the Provider every language uses: it runs every
// other Provider in this package and concatenates their Checks.
type BaseCheckProvider struct{}

func (BaseCheckProvider) ChecksFor(language *shaperglot.Language) []*shaperglot.Check {
	var checks []*shaperglot.Check
	checks = append(checks, OrthographiesProvider{}.ChecksFor(language)...)
	checks = append(checks, SmallCapsProvider{}.ChecksFor(language)...)
	checks = append(checks, PositionalProvider{}.ChecksFor(language)...)
	checks = append(checks, AfricanLatinProvider{}.ChecksFor(language)...)
	checks = append(checks, NewTomlProvider().ChecksFor(language)...)
	return checks
}
