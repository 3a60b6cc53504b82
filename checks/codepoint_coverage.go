// Package checks implements the three concrete CheckImplementations
// providers compose into Checks: CodepointCoverage, NoOrphanedMarks, and
// ShapingDiffers.
package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/googlefonts/shaperglot"
)

// CodepointCoverage declares a set of grapheme-cluster strings covered iff
// shaping each one (with no feature overrides) produces no notdef glyphs.
type CodepointCoverage struct {
	Strings         []string
	Code            string // e.g. "base", "mark" -> problem code "{code}s-missing"
	TerminalIfEmpty bool   // if every string is missing, mark the problem terminal
}

func (c *CodepointCoverage) Name() string { return "CodepointCoverage" }

func (c *CodepointCoverage) Describe() string {
	return fmt.Sprintf("Check that the font covers %d %s code point(s)", len(c.Strings), c.Code)
}

// ShouldSkip never skips: coverage can always be tested.
func (c *CodepointCoverage) ShouldSkip(ctx *shaperglot.CheckerContext) (string, bool) {
	return "", false
}

func (c *CodepointCoverage) Execute(ctx *shaperglot.CheckerContext) ([]shaperglot.Problem, int) {
	var missing []string
	for _, s := range c.Strings {
		out, err := ctx.Shape(shaperglot.NewShapingInput(s))
		if err != nil {
			missing = append(missing, s)
			continue
		}
		for _, g := range out.Glyphs {
			if g.IsNotdef {
				missing = append(missing, s)
				break
			}
		}
	}
	if len(missing) == 0 {
		return nil, len(c.Strings)
	}

	sort.Strings(missing)
	fixes := make([]shaperglot.Fix, 0, len(missing))
	for _, s := range missing {
		fixes = append(fixes, shaperglot.Fix{FixType: "add_codepoint", FixThing: s})
	}
	problem := shaperglot.Problem{
		CheckName: c.Name(),
		Code:      fmt.Sprintf("%ss-missing", c.Code),
		Message:   fmt.Sprintf("The font is missing glyphs for the following %s code point(s): %s", c.Code, strings.Join(missing, ", ")),
		Terminal:  c.TerminalIfEmpty && len(missing) == len(c.Strings),
		Fixes:     fixes,
	}
	return []shaperglot.Problem{problem}, len(c.Strings)
}
