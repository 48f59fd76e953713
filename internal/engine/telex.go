package engine

import "unicode"

// telexMarkKeys are Telex's pitch-mark keys (pipeline stage 3).
var telexMarkKeys = map[rune]Mark{
	's': MarkAcute,
	'f': MarkGrave,
	'r': MarkHook,
	'x': MarkTilde,
	'j': MarkDot,
}

// telexMethod implements method for the Telex convention.
type telexMethod struct{}

func (telexMethod) Name() string { return "Telex" }

func (telexMethod) KeyCategory(r rune) keyCategory {
	lower := unicode.ToLower(r)
	switch {
	case lower == 'z':
		return catMarkRemove
	case telexMarkKeyIsLower(lower):
		return catMark
	case isVowelLetter(lower):
		return catVowel
	case isLetterRune(lower):
		return catConsonant
	case lower == ' ' || lower == '\t' || lower == '\n':
		return catSpace
	}
	return catOther
}

func telexMarkKeyIsLower(lower rune) bool {
	_, ok := telexMarkKeys[lower]
	return ok
}

// MarkFor returns the mark a Telex key applies, if it is a mark key.
func (telexMethod) MarkFor(r rune) (Mark, bool) {
	m, ok := telexMarkKeys[unicode.ToLower(r)]
	return m, ok
}

// IsMarkRemove reports whether r is Telex's mark-removal key.
func (telexMethod) IsMarkRemove(r rune) bool {
	return unicode.ToLower(r) == 'z'
}

// IsStroke reports whether r, typed a second time on a 'd' cell,
// applies the stroke (Telex: second 'd').
func (telexMethod) IsStroke(r rune) bool {
	return unicode.ToLower(r) == 'd'
}

// DoubleShape reports the tone shape a doubled vowel key applies (aa,
// ee, oo), independent of 'w'.
func (telexMethod) DoubleShape(base rune) (Tone, bool) {
	switch base {
	case 'a':
		return ToneCircumflex, true
	case 'e':
		return ToneCircumflex, true
	case 'o':
		return ToneCircumflex, true
	}
	return ToneShapeNone, false
}

// WShape reports the shape 'w' applies to a given base vowel (a -> ă,
// o -> ơ, u -> ư).
func (telexMethod) WShape(base rune) (Tone, bool) {
	switch base {
	case 'a':
		return ToneBreve, true
	case 'o', 'u':
		return ToneHorn, true
	}
	return ToneShapeNone, false
}

// IsWKey reports whether r is Telex's 'w' key (horn/breve modifier and,
// standalone, the ư shortcut).
func (telexMethod) IsWKey(r rune) bool {
	return unicode.ToLower(r) == 'w'
}

func isVowelLetter(r rune) bool {
	return letterClassOf[r]&clsVowel != 0
}

func isLetterRune(r rune) bool {
	return r >= 'a' && r <= 'z'
}
