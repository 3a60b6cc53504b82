package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/googlefonts/shaperglot"
	"github.com/googlefonts/shaperglot/shaping"
)

// ShapingPair is one before/after comparison ShapingDiffers runs: shaping
// Before and After must produce visibly different glyph streams, or the
// feature/rule under test isn't doing anything.
type ShapingPair struct {
	Before shaperglot.ShapingInput
	After  shaperglot.ShapingInput
}

// ShapingDiffers verifies that enabling a behavior (a feature, a rule)
// actually changes how text shapes — catching declared-but-inert features.
type ShapingDiffers struct {
	Pairs            []ShapingPair
	FeaturesOptional bool // should_skip checks the pairs' feature tags against the font when true
	IgnoreNotdefs    bool // a pair that's identical only because both sides notdef'd is a silent skip
}

func (s *ShapingDiffers) Name() string { return "ShapingDiffers" }

func (s *ShapingDiffers) Describe() string {
	parts := make([]string, 0, len(s.Pairs))
	for _, pair := range s.Pairs {
		parts = append(parts, fmt.Sprintf("%s versus %s", pair.Before.Describe(), pair.After.Describe()))
	}
	return "in the following situations, different results are produced: " + strings.Join(parts, ", ")
}

// ShouldSkip checks the union of feature tags referenced by every pair
// against the font's declared feature tags, when FeaturesOptional is set;
// otherwise the check always runs.
func (s *ShapingDiffers) ShouldSkip(ctx *shaperglot.CheckerContext) (string, bool) {
	if !s.FeaturesOptional {
		return "", false
	}
	seen := map[string]bool{}
	for _, pair := range s.Pairs {
		for _, tag := range pair.Before.Features {
			seen[strings.Trim(tag, "+-")] = true
		}
		for _, tag := range pair.After.Features {
			seen[strings.Trim(tag, "+-")] = true
		}
	}
	var missing []string
	for tag := range seen {
		if !ctx.HasFeature(tag) {
			missing = append(missing, tag)
		}
	}
	if len(missing) == 0 {
		return "", false
	}
	sort.Strings(missing)
	return fmt.Sprintf("The following features are needed for this check, but are missing: %s", strings.Join(missing, ", ")), true
}

func (s *ShapingDiffers) Execute(ctx *shaperglot.CheckerContext) ([]shaperglot.Problem, int) {
	var problems []shaperglot.Problem
	for _, pair := range s.Pairs {
		before, err := ctx.Shape(pair.Before)
		if err != nil {
			continue
		}
		after, err := ctx.Shape(pair.After)
		if err != nil {
			continue
		}

		if serialize(ctx, before) != serialize(ctx, after) {
			continue
		}
		if s.IgnoreNotdefs && (containsNotdef(before) || containsNotdef(after)) {
			continue
		}
		problems = append(problems, shaperglot.Problem{
			CheckName: s.Name(),
			Code:      "shaping-same",
			Message: fmt.Sprintf("When %s and %s, the output is expected to be different, but was the same",
				pair.Before.Describe(), pair.After.Describe()),
			Fixes: []shaperglot.Fix{{
				FixType:  "add_feature",
				FixThing: fmt.Sprintf("A rule such that %s and %s give different results", pair.Before.Describe(), pair.After.Describe()),
			}},
		})
	}
	return problems, len(s.Pairs)
}

// serialize renders a shaped output in the canonical form two runs are
// compared by: glyph name (falling back to its id), cluster, offsets, and
// advances.
// Two shaped buffers are considered identical iff their serializations are.
func serialize(ctx *shaperglot.CheckerContext, out shaping.Output) string {
	var b strings.Builder
	for _, g := range out.Glyphs {
		fmt.Fprintf(&b, "(%s,%d,%d,%d,%d,%d)",
			ctx.GlyphName(g.GlyphID), g.Cluster, g.XOffset, g.YOffset, g.XAdvance, g.YAdvance)
	}
	return b.String()
}

func containsNotdef(out shaping.Output) bool {
	for _, g := range out.Glyphs {
		if g.IsNotdef {
			return true
		}
	}
	return false
}
