package shaperglot

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/opentype/ot"

	"github.com/googlefonts/shaperglot/font"
	"github.com/googlefonts/shaperglot/shaping"
)

func checkerTracer() tracing.Trace {
	return tracing.Select("shaperglot.checker")
}

// CheckerContext is the read-only view of a parsed font that every
// CheckImplementation receives: glyph names, OpenType feature tags, the
// codepoint charmap and its reverse, and the means to shape text through
// the font. It is built once per font and never mutated afterward.
type CheckerContext struct {
	font *font.Font
	otf  *ot.Font
}

// NewCheckerContext parses font bytes into a CheckerContext: glyph names,
// feature tags, and the codepoint/glyph charmaps are all built eagerly, not
// lazily, since every check needs them and a font is parsed once per run.
func NewCheckerContext(data []byte) (*CheckerContext, error) {
	f, err := font.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("shaperglot: %w", err)
	}
	otf, err := ot.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("shaperglot: %w", err)
	}
	return &CheckerContext{font: f, otf: otf}, nil
}

// GlyphName returns a glyph's name, or a synthetic "gidN" name if the font
// carries none for it.
func (c *CheckerContext) GlyphName(gid ot.GlyphIndex) string {
	return c.font.GlyphName(sfnt.GlyphIndex(gid))
}

// HasFeature reports whether the font's GSUB or GPOS FeatureList declares
// tag.
func (c *CheckerContext) HasFeature(tag string) bool {
	return c.font.HasFeature(tag)
}

// FeatureTags returns the full set of feature tags the font declares.
func (c *CheckerContext) FeatureTags() map[string]bool {
	return c.font.FeatureTags()
}

// GlyphForCodepoint looks up the glyph a codepoint maps to directly in the
// font's cmap.
func (c *CheckerContext) GlyphForCodepoint(r rune) (ot.GlyphIndex, bool) {
	gid, ok := c.font.Charmap().GlyphFor(r)
	return ot.GlyphIndex(gid), ok
}

// CodepointForGlyph looks up the (first-wins, smallest-codepoint) codepoint
// known to map to a glyph. It does not attempt to resolve glyphs reachable
// only through GSUB substitution, only the direct cmap relationship.
func (c *CheckerContext) CodepointForGlyph(gid ot.GlyphIndex) (rune, bool) {
	return c.font.Charmap().CodepointFor(sfnt.GlyphIndex(gid))
}

// Shape runs a ShapingInput through the font's shaping engines.
func (c *CheckerContext) Shape(input ShapingInput) (shaping.Output, error) {
	out, err := shaping.Shape(c.font, c.otf, input)
	if err != nil {
		checkerTracer().Infof("shape %s failed: %s", input.Describe(), err)
	}
	return out, err
}

// Checker runs a language's compiled Checks against one font.
type Checker struct {
	ctx *CheckerContext
}

// NewChecker parses font bytes and returns a Checker ready to check
// languages against it.
func NewChecker(fontData []byte) (*Checker, error) {
	ctx, err := NewCheckerContext(fontData)
	if err != nil {
		return nil, err
	}
	return &Checker{ctx: ctx}, nil
}

// Context exposes the underlying CheckerContext, e.g. for a CLI that wants
// to print glyph names or feature tags directly.
func (chk *Checker) Context() *CheckerContext {
	return chk.ctx
}

// Check runs every Check in language.Checks, in order, against this
// Checker's font. It stops as soon as a Check's status is StopNow: that
// signals the font fails something so fundamental that further checks for
// this language would be noise.
func (chk *Checker) Check(language *Language) *Reporter {
	reporter := NewReporter()
	for _, check := range language.Checks {
		result := check.Execute(chk.ctx)
		reporter.Add(result)
		if result.Status == StopNow {
			break
		}
	}
	return reporter
}
