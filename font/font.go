// Package font adapts a parsed OpenType font to the two narrow queries the
// checker needs: which glyph names and feature tags the font declares, and
// a codepoint-to-glyph charmap. It wraps golang.org/x/image/font/sfnt for
// glyph metadata and parses the font's own table directory directly for the
// GSUB/GPOS feature lists, which sfnt does not expose.
package font

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("shaperglot.font")
}

// Font is a parsed font file together with the glyph-name table, feature-tag
// set and codepoint charmap the checker needs to reason about.
type Font struct {
	raw   []byte
	sfnt  *sfnt.Font
	names []string        // glyph id -> name, len == NumGlyphs
	feats map[string]bool // GSUB/GPOS feature tags present in the font
	cmap  *Charmap
}

// Parse loads an OpenType font from raw bytes and builds its glyph-name
// table, feature-tag set and charmap eagerly, since every check needs all
// three and a font is parsed at most once per checker run.
func Parse(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse sfnt: %w", err)
	}
	f := &Font{raw: data, sfnt: sf}

	names, err := glyphNames(sf, data)
	if err != nil {
		tracer().Infof("font: glyph names unavailable: %s", err)
		names = nil
	}
	f.names = names

	feats, err := featureTags(data)
	if err != nil {
		tracer().Infof("font: feature tags unavailable: %s", err)
		feats = map[string]bool{}
	}
	f.feats = feats

	f.cmap = buildCharmap(sf)

	return f, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}

// GlyphName returns the PostScript-ish name of a glyph, or a synthetic
// "gidNNN" name when the font's post table carries no name for it (format
// 3.0, or an index past the end of a truncated format 2.0 table).
func (f *Font) GlyphName(gid sfnt.GlyphIndex) string {
	if int(gid) < len(f.names) && f.names[gid] != "" {
		return f.names[gid]
	}
	return fmt.Sprintf("gid%d", gid)
}

// HasFeature reports whether tag is present in the font's GSUB or GPOS
// FeatureList.
func (f *Font) HasFeature(tag string) bool {
	return f.feats[tag]
}

// FeatureTags returns the full set of GSUB/GPOS feature tags the font
// declares.
func (f *Font) FeatureTags() map[string]bool {
	return f.feats
}

// SFNT exposes the underlying sfnt.Font for the shaping adapter, which needs
// it to drive otshape.
func (f *Font) SFNT() *sfnt.Font {
	return f.sfnt
}

// Raw returns the font's original bytes.
func (f *Font) Raw() []byte {
	return f.raw
}

// Charmap returns the font's codepoint-to-glyph map.
func (f *Font) Charmap() *Charmap {
	return f.cmap
}

// --- glyph names (post table, via sfnt) -----------------------------------

// glyphNames resolves a name for every glyph in the font using sfnt's own
// post-table support (it understands format 1.0's standard Macintosh names
// and format 2.0's custom name pool the same way boxesandglue-textshape's
// hand-rolled ot.PostTable does; format 3.0 carries no names and every
// lookup falls back to a synthetic name in GlyphName above).
func glyphNames(sf *sfnt.Font, data []byte) ([]string, error) {
	n := sf.NumGlyphs()
	names := make([]string, n)
	var buf sfnt.Buffer
	for gid := 0; gid < n; gid++ {
		name, err := sf.GlyphName(&buf, sfnt.GlyphIndex(gid))
		if err != nil && err != sfnt.ErrNotFound {
			return names, err
		}
		names[gid] = name
	}
	return names, nil
}

// --- feature tags (GSUB/GPOS FeatureList, parsed directly) ----------------

// featureTags scans the font's table directory for GSUB and GPOS and
// collects every tag named in their FeatureList. sfnt does not expose
// layout tables, so this parses the standard OpenType header directly:
// a table directory of (tag, checksum, offset, length) records, and within
// GSUB/GPOS a FeatureList of (tag, offset) records at a fixed header
// position (both tables share the same header shape).
func featureTags(data []byte) (map[string]bool, error) {
	dir, err := parseTableDirectory(data)
	if err != nil {
		return nil, err
	}
	tags := map[string]bool{}
	for _, name := range []string{"GSUB", "GPOS"} {
		rec, ok := dir[name]
		if !ok {
			continue
		}
		if err := collectFeatureTags(data, rec, tags); err != nil {
			return tags, fmt.Errorf("font: %s feature list: %w", name, err)
		}
	}
	return tags, nil
}

type tableRecord struct {
	offset uint32
	length uint32
}

// parseTableDirectory reads the sfnt table directory (an OpenType/TrueType
// file starts with a fixed 12-byte header, then one 16-byte record per
// table: tag, checksum, offset, length).
func parseTableDirectory(data []byte) (map[string]tableRecord, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("font: file too small for an sfnt header")
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	dir := make(map[string]tableRecord, numTables)
	base := 12
	for i := 0; i < numTables; i++ {
		off := base + i*16
		if off+16 > len(data) {
			return dir, fmt.Errorf("font: truncated table directory")
		}
		tag := string(data[off : off+4])
		recOff := binary.BigEndian.Uint32(data[off+8 : off+12])
		recLen := binary.BigEndian.Uint32(data[off+12 : off+16])
		dir[tag] = tableRecord{offset: recOff, length: recLen}
	}
	return dir, nil
}

// collectFeatureTags reads a GSUB/GPOS table's FeatureList and adds every
// feature tag it names to tags.
func collectFeatureTags(data []byte, rec tableRecord, tags map[string]bool) error {
	start := int(rec.offset)
	end := start + int(rec.length)
	if start < 0 || end > len(data) || start+8 > len(data) {
		return fmt.Errorf("offset out of range")
	}
	table := data[start:end]
	if len(table) < 8 {
		return fmt.Errorf("header too short")
	}
	featureListOffset := int(binary.BigEndian.Uint16(table[6:8]))
	if featureListOffset+2 > len(table) {
		return fmt.Errorf("feature list offset out of range")
	}
	flist := table[featureListOffset:]
	featureCount := int(binary.BigEndian.Uint16(flist[0:2]))
	for i := 0; i < featureCount; i++ {
		recOff := 2 + i*6
		if recOff+6 > len(flist) {
			break
		}
		tag := string(flist[recOff : recOff+4])
		tags[tag] = true
	}
	return nil
}
