package checks

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/opentype/ot"

	"github.com/googlefonts/shaperglot"
)

const dottedCircle rune = 0x25CC

// NoOrphanedMarks catches mark-to-base attachment failures: combining marks
// that shape to a zero offset (meaning no anchor positioned them against
// their base) or that trigger a spurious dotted-circle insertion.
type NoOrphanedMarks struct {
	Inputs         []shaperglot.ShapingInput
	HasOrthography bool // if false, a bare notdef is reported too
}

func (n *NoOrphanedMarks) Name() string { return "NoOrphanedMarks" }

func (n *NoOrphanedMarks) Describe() string {
	return "Check that combining marks attach to their base glyphs"
}

func (n *NoOrphanedMarks) ShouldSkip(ctx *shaperglot.CheckerContext) (string, bool) {
	return "", false
}

func (n *NoOrphanedMarks) Execute(ctx *shaperglot.CheckerContext) ([]shaperglot.Problem, int) {
	dottedCircleGID, haveDottedCircle := ctx.GlyphForCodepoint(dottedCircle)

	var problems []shaperglot.Problem
	for _, input := range n.Inputs {
		out, err := ctx.Shape(input)
		if err != nil {
			continue
		}
		textHasDottedCircle := strings.ContainsRune(input.Text, dottedCircle)

		var prevGID ot.GlyphIndex
		for i, g := range out.Glyphs {
			if g.IsNotdef && !n.HasOrthography {
				problems = append(problems, shaperglot.Problem{
					CheckName: n.Name(),
					Code:      "notdef-produced",
					Message:   fmt.Sprintf("Shaping %s produced a .notdef glyph", input.Describe()),
					Fixes:     notdefFixes(input.Text, g.Cluster),
				})
			}

			if isNonspacingMark(ctx, g.GlyphID) {
				switch {
				case i > 0 && haveDottedCircle && prevGID == dottedCircleGID && !textHasDottedCircle:
					problems = append(problems, shaperglot.Problem{
						CheckName: n.Name(),
						Code:      "dotted-circle-produced",
						Message:   fmt.Sprintf("Shaping %s produced a spurious dotted circle before %s", input.Describe(), ctx.GlyphName(g.GlyphID)),
						Fixes:     []shaperglot.Fix{{FixType: "add_feature", FixThing: "to avoid a dotted circle while shaping " + input.Describe()}},
					})
				case g.XOffset == 0 && g.YOffset == 0:
					prevName := "start of text"
					if i > 0 {
						prevName = ctx.GlyphName(prevGID)
					}
					curName := ctx.GlyphName(g.GlyphID)
					problems = append(problems, shaperglot.Problem{
						CheckName: n.Name(),
						Code:      "orphaned-mark",
						Message:   fmt.Sprintf("Mark %s did not attach to %s in %s", curName, prevName, input.Describe()),
						Fixes:     []shaperglot.Fix{{FixType: "add_anchor", FixThing: fmt.Sprintf("%s -> %s", prevName, curName)}},
					})
				}
			}
			prevGID = g.GlyphID
		}
	}
	return problems, len(n.Inputs)
}

// isNonspacingMark reports whether a glyph's cmap-reachable codepoint has
// the Unicode Mn (NonspacingMark) general category.
func isNonspacingMark(ctx *shaperglot.CheckerContext, gid ot.GlyphIndex) bool {
	r, ok := ctx.CodepointForGlyph(gid)
	if !ok {
		return false
	}
	return unicode.Is(unicode.Mn, r)
}

// notdefFixes derives an add_codepoint fix from the rune at a glyph's source
// cluster, when that byte offset resolves to a valid rune.
func notdefFixes(text string, cluster uint32) []shaperglot.Fix {
	if int(cluster) >= len(text) {
		return nil
	}
	r, size := utf8.DecodeRuneInString(text[cluster:])
	if r == utf8.RuneError && size <= 1 {
		return nil
	}
	return []shaperglot.Fix{{FixType: "add_codepoint", FixThing: string(r)}}
}
