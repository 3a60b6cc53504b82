package providers

import "github.com/googlefonts/shaperglot"

// AfricanLatinProvider is a deliberate no-op. An earlier revision of this
// checker walked African Latin-script languages' bases and auxiliaries
// looking for base+mark combinations to build NoOrphanedMarks checks from,
// but OrthographiesProvider's complex-base handling already covers that,
// and the small-caps check above is generic enough to apply on its own.
// Nothing African-Latin-specific is left to check here.
type AfricanLatinProvider struct{}

func (AfricanLatinProvider) ChecksFor(language *shaperglot.Language) []*shaperglot.Check {
	return nil
}
