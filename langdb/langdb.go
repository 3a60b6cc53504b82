// Package langdb is the language database: exemplar grapheme-cluster data
// for a set of written languages, compiled into shaperglot.Language values
// with their Checks already populated via providers.BaseCheckProvider.
//
// The real upstream database (the google-fonts/lang-tags-derived exemplar
// data the original tool draws on) lives outside this retrieval pack, so
// the set below is a small hand-authored illustration covering a Latin, an
// Arabic, and a mark-heavy language — enough to exercise every provider.
// See DESIGN.md for the exact provenance of each entry.
package langdb

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/googlefonts/shaperglot"
	"github.com/googlefonts/shaperglot/providers"
)

const combiningMark = '◌' // dotted circle, prefixed onto bare marks

// entry is one language's raw exemplar data, before checks are compiled.
type entry struct {
	id, name, script, languageCode string
	base, auxiliary, marks         string
}

// entries is the hand-authored database. Each exemplar string follows the
// source format: whitespace-separated grapheme clusters, optionally wrapped
// in {braces}; braces are stripped from any token longer than one rune, and a
// token is split on whitespace before that, so a braced cluster cannot
// contain whitespace.
var entries = []entry{
	{
		id: "en_Latn", name: "English", script: "Latn", languageCode: "en",
		base:      "a b c d e f g h i j k l m n o p q r s t u v w x y z",
		auxiliary: "á é í ó ú à è ì ò ù â ê î ô û ñ ç",
	},
	{
		id: "ar_Arab", name: "Arabic", script: "Arab", languageCode: "ar",
		base:      "ا ب ت ث ج ح خ د ذ ر ز س ش ص ض ط ظ ع غ ف ق ك ل م ن ه و ي",
		auxiliary: "ء ة ى",
		marks:     "ً ٌ ٍ َ ُ ِ ّ ْ",
	},
	{
		id: "vi_Latn", name: "Vietnamese", script: "Latn", languageCode: "vi",
		base:      "a ă â b c d đ e ê g h i k l m n o ô ơ p q r s t u ư v x y {á} {à} {ả} {ã} {ạ}",
		auxiliary: "{é} {è} {ó} {ò}",
		marks:     "́ ̀ ̉ ̃ ̣",
	},
}

// Languages is the compiled database: every entry turned into a
// shaperglot.Language with checks populated, in entries order.
type Languages struct {
	all []*shaperglot.Language
}

// New compiles the embedded database. It never fails: the data is static
// and known-good at compile time.
func New() *Languages {
	db := &Languages{all: make([]*shaperglot.Language, 0, len(entries))}
	for _, e := range entries {
		lang := &shaperglot.Language{
			ID:           e.id,
			Name:         e.name,
			Script:       e.script,
			LanguageCode: e.languageCode,
			Bases:        parseChars(e.base),
			Auxiliaries:  parseChars(e.auxiliary),
			Marks:        parseMarks(e.marks),
		}
		lang.Checks = providers.BaseCheckProvider{}.ChecksFor(lang)
		db.all = append(db.all, lang)
	}
	return db
}

// All returns every compiled language, in database order.
func (db *Languages) All() []*shaperglot.Language {
	return db.all
}

// Get looks up a language by ID first, falling back to a name match.
func (db *Languages) Get(id string) (*shaperglot.Language, bool) {
	for _, lang := range db.all {
		if lang.ID == id {
			return lang, true
		}
	}
	for _, lang := range db.all {
		if lang.Name == id {
			return lang, true
		}
	}
	return nil, false
}

// parseChars splits an exemplar-characters string into individual grapheme
// clusters: whitespace-separated tokens, brace-wrapping stripped from any
// token longer than one rune, NFC-normalized, keeping both the original and
// normalized forms when they differ. Empty results are dropped.
func parseChars(chars string) []string {
	var out []string
	for _, tok := range strings.Fields(chars) {
		s := tok
		if len([]rune(s)) > 1 {
			s = strings.TrimPrefix(s, "{")
			s = strings.TrimSuffix(s, "}")
		}
		normalized := norm.NFC.String(s)
		if normalized != s {
			out = appendNonEmpty(out, s, normalized)
		} else {
			out = appendNonEmpty(out, s)
		}
	}
	return out
}

func appendNonEmpty(out []string, ss ...string) []string {
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseMarks splits a marks string into individual combining marks, each
// prefixed with a dotted circle if it doesn't already carry one.
func parseMarks(marks string) []string {
	var out []string
	for _, tok := range strings.Fields(marks) {
		if strings.HasPrefix(tok, string(combiningMark)) {
			out = append(out, tok)
		} else {
			out = append(out, string(combiningMark)+tok)
		}
	}
	return out
}
