package providers

import "unicode"

// joiningType is the Unicode Arabic joining type of a codepoint, used to
// decide which positional forms (init/medi/fina) a letter can take.
//
// Ported from the teacher's own otshape/otarabic classifier, which the
// shaping engine uses internally for the same purpose (see DESIGN.md):
// once PositionalProvider depends on github.com/npillmayer/opentype as an
// external module, that classifier's unexported internals are no longer
// reachable, so this is a from-scratch reimplementation of the same
// Unicode Joining_Type logic rather than a borrowed private symbol. The
// original Rust provider draws the equivalent data from the
// unicode_joining_type crate; there is no such crate in the Go ecosystem,
// so this follows the teacher's own approach of deriving it directly from
// stdlib unicode range tables plus an explicit right-joining letter set.
type joiningType uint8

const (
	joiningNonJoining joiningType = iota
	joiningRight
	joiningDual
)

func classifyJoiningType(cp rune) joiningType {
	if unicode.Is(unicode.M, cp) {
		return joiningNonJoining // transparent, not a base letter
	}
	if isRightJoining(cp) {
		return joiningRight
	}
	if isArabicJoiningLetter(cp) {
		return joiningDual
	}
	return joiningNonJoining
}

func isArabicJoiningLetter(cp rune) bool {
	return unicode.IsLetter(cp) && unicode.In(cp, unicode.Arabic)
}

// rightJoiningRunes lists the Arabic letters whose Unicode Joining_Type is
// R (Right_Joining): they join to a preceding letter but never to a
// following one, so they only ever take an isolated or final form.
var rightJoiningRunes = map[rune]struct{}{
	'آ': {}, 'أ': {}, 'ؤ': {}, 'إ': {}, 'ا': {}, 'ة': {},
	'د': {}, 'ذ': {}, 'ر': {}, 'ز': {}, 'و': {},
	'ٱ': {}, 'ٲ': {}, 'ٳ': {}, 'ٵ': {}, 'ٶ': {}, 'ٷ': {},
	'ڈ': {}, 'ډ': {}, 'ڑ': {}, 'ۀ': {}, 'ۃ': {}, 'ۄ': {},
	'ۅ': {}, 'ۆ': {}, 'ۇ': {}, 'ۈ': {}, 'ۉ': {}, 'ۊ': {},
	'ۋ': {}, 'ۍ': {},
}

func isRightJoining(cp rune) bool {
	_, ok := rightJoiningRunes[cp]
	return ok
}
