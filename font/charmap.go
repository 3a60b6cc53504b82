package font

import "golang.org/x/image/font/sfnt"

// Charmap is a codepoint-to-glyph map together with its first-wins reverse:
// glyph id to the smallest codepoint that maps to it. Some fonts map several
// codepoints onto the same glyph (duplicate encodings, compatibility
// characters); the reverse map keeps the first one found while scanning
// codepoints in ascending order, rather than building a lazily-populated
// multi-valued reverse map.
type Charmap struct {
	forward map[rune]sfnt.GlyphIndex
	reverse map[sfnt.GlyphIndex]rune
}

// GlyphFor returns the glyph id a codepoint maps to, and whether the font
// has a mapping for it at all.
func (c *Charmap) GlyphFor(r rune) (sfnt.GlyphIndex, bool) {
	gid, ok := c.forward[r]
	return gid, ok
}

// CodepointFor returns the smallest codepoint known to map to gid, first-wins
// by ascending codepoint order.
func (c *Charmap) CodepointFor(gid sfnt.GlyphIndex) (rune, bool) {
	r, ok := c.reverse[gid]
	return r, ok
}

// buildCharmap scans the Basic Multilingual Plane for codepoints the font
// maps to a non-.notdef glyph. Every script exemplar this module's language
// database ships for is within the BMP; supplementary-plane scripts are not
// scanned, a documented gap rather than an unbounded 0..0x10FFFF sweep.
func buildCharmap(sf *sfnt.Font) *Charmap {
	c := &Charmap{
		forward: make(map[rune]sfnt.GlyphIndex),
		reverse: make(map[sfnt.GlyphIndex]rune),
	}
	var buf sfnt.Buffer
	for r := rune(0x20); r <= 0xFFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue // surrogate range, not a valid codepoint
		}
		gid, err := sf.GlyphIndex(&buf, r)
		if err != nil || gid == 0 {
			continue
		}
		c.forward[r] = gid
		if _, seen := c.reverse[gid]; !seen {
			c.reverse[gid] = r
		}
	}
	return c
}
