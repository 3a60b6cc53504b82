// Package shaping adapts otshape's streaming shaping pipeline to the narrow
// request/response shape the checker needs: shape a string of text, with an
// optional set of feature overrides and an optional BCP-47 language, and get
// back the glyph ids, clusters and positions that resulted.
package shaping

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/opentype/ot"
	"github.com/npillmayer/opentype/otshape"
	"github.com/npillmayer/opentype/otshape/otarabic"
	"github.com/npillmayer/opentype/otshape/otcore"
	"github.com/npillmayer/opentype/otshape/othebrew"
	"github.com/npillmayer/schuko/tracing"

	"github.com/googlefonts/shaperglot/font"
)

func tracer() tracing.Trace {
	return tracing.Select("shaperglot.shaping")
}

// Input is one shaping request: a run of text, a set of feature overrides
// (in "+tag" / "-tag" / "tag=value" syntax, applied for the whole run), and
// an optional BCP-47 language tag.
type Input struct {
	Text     string
	Features []string
	Language string
}

// NewSimple builds an Input with no feature overrides and no language.
func NewSimple(text string) Input {
	return Input{Text: text}
}

// NewWithFeature builds an Input with a single feature override.
func NewWithFeature(text, feature string) Input {
	return Input{Text: text, Features: []string{feature}}
}

// Describe renders the input in a human-readable form, e.g. for problem
// messages: the text followed by its feature overrides and language, if any.
func (in Input) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q", in.Text)
	if len(in.Features) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(in.Features, ","))
	}
	if in.Language != "" {
		fmt.Fprintf(&b, " (lang=%s)", in.Language)
	}
	return b.String()
}

// Glyph is one shaped glyph: its id in the font, the source-text cluster it
// belongs to, and its shaping-applied offset from the pen position.
type Glyph struct {
	GlyphID   ot.GlyphIndex
	Cluster   uint32
	XOffset   int32
	YOffset   int32
	XAdvance  int32
	YAdvance  int32
	IsNotdef  bool
	GlyphName string
}

// Output is the shaped result of one Input: glyphs in shaped (visual) order.
type Output struct {
	Glyphs []Glyph
}

// collector is an otshape.GlyphSink that appends every glyph it receives.
type collector struct {
	font  *font.Font
	otf   *ot.Font
	out   Output
}

func (c *collector) WriteGlyph(g otshape.GlyphRecord) error {
	c.out.Glyphs = append(c.out.Glyphs, Glyph{
		GlyphID:   g.GID,
		Cluster:   g.Cluster,
		XOffset:   g.Pos.XOffset,
		YOffset:   g.Pos.YOffset,
		XAdvance:  g.Pos.XAdvance,
		YAdvance:  g.Pos.YAdvance,
		IsNotdef:  g.GID == 0,
		GlyphName: c.font.GlyphName(sfnt.GlyphIndex(g.GID)),
	})
	return nil
}

// Shape runs text through the font's GSUB/GPOS shaping engines and returns
// the shaped glyph stream.
//
// Direction is always left-to-right: every check this module runs — mark
// attachment, positional forms, shaping-differs comparisons — only cares
// about glyph identity, cluster membership and relative offsets, not visual
// run direction, so there is no need to thread bidi resolution through here.
func Shape(f *font.Font, otf *ot.Font, in Input) (Output, error) {
	ctx, err := buildSelectionContext(in.Language)
	if err != nil {
		return Output{}, fmt.Errorf("shaping: %w", err)
	}

	features, err := parseFeatures(in.Features)
	if err != nil {
		return Output{}, fmt.Errorf("shaping: %w", err)
	}

	sink := &collector{font: f, otf: otf}
	req := otshape.ShapeRequest{
		Options: otshape.ShapeOptions{
			Params: otshape.Params{
				Font:      otf,
				Direction: ctx.Direction,
				Script:    ctx.Script,
				Language:  ctx.Language,
				Features:  features,
			},
			FlushBoundary: otshape.FlushOnRunBoundary,
		},
		Source:  strings.NewReader(in.Text),
		Sink:    sink,
		Shapers: []otshape.ShapingEngine{otarabic.New(), othebrew.New(), otcore.New()},
	}
	if err := otshape.Shape(req); err != nil {
		tracer().Infof("shaping %q failed: %s", in.Text, err)
		return Output{}, fmt.Errorf("shaping: %w", err)
	}
	return sink.out, nil
}

func buildSelectionContext(lang string) (otshape.SelectionContext, error) {
	ctx := otshape.SelectionContext{Direction: bidi.LeftToRight}
	if lang == "" {
		return ctx, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return ctx, fmt.Errorf("parse language %q: %w", lang, err)
	}
	ctx.Language = tag
	base, conf := tag.Script()
	if conf != language.No {
		ctx.Script = base
	}
	return ctx, nil
}

// parseFeatures turns "+tag" / "-tag" / "tag" / "tag=N" strings into
// otshape.FeatureRange values applied to the whole run (Start/End <= 0).
func parseFeatures(specs []string) ([]otshape.FeatureRange, error) {
	ranges := make([]otshape.FeatureRange, 0, len(specs))
	for _, spec := range specs {
		fr, err := parseFeatureSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("parse feature %q: %w", spec, err)
		}
		ranges = append(ranges, fr)
	}
	return ranges, nil
}

func parseFeatureSpec(spec string) (otshape.FeatureRange, error) {
	on := true
	value := 1
	switch {
	case strings.HasPrefix(spec, "-"):
		on = false
		value = 0
		spec = spec[1:]
	case strings.HasPrefix(spec, "+"):
		spec = spec[1:]
	}
	if eq := strings.IndexByte(spec, '='); eq >= 0 {
		v, err := strconv.Atoi(spec[eq+1:])
		if err != nil {
			return otshape.FeatureRange{}, fmt.Errorf("feature value: %w", err)
		}
		value = v
		spec = spec[:eq]
		on = value != 0
	}
	if len(spec) != 4 {
		return otshape.FeatureRange{}, fmt.Errorf("feature tag must be 4 characters, got %q", spec)
	}
	return otshape.FeatureRange{
		Feature: ot.T(spec),
		Arg:     value,
		On:      on,
	}, nil
}
