package shaperglot

// Language is one written language's metadata and its compiled Checks: the
// exemplar grapheme clusters a font needs to shape correctly, and the list
// of Checks providers derived from them. Constructed once when the language
// database loads; immutable afterward.
type Language struct {
	ID           string // "<lang>_<script>", e.g. "en_Latn"
	Name         string
	Script       string
	LanguageCode string
	Bases        []string // mandatory grapheme clusters
	Marks        []string // combining marks, each prefixed with U+25CC
	Auxiliaries  []string // optional grapheme clusters
	Checks       []*Check
}
