package engine

// vniMarkKeys are VNI's pitch-mark digit keys (pipeline stage 3).
var vniMarkKeys = map[rune]Mark{
	'1': MarkAcute,
	'2': MarkGrave,
	'3': MarkHook,
	'4': MarkTilde,
	'5': MarkDot,
}

// vniMethod implements method for the VNI convention.
type vniMethod struct{}

func (vniMethod) Name() string { return "VNI" }

func (vniMethod) KeyCategory(r rune) keyCategory {
	switch {
	case r == '0':
		return catMarkRemove
	case vniMarkKeyDigit(r):
		return catMark
	case r == '6' || r == '7' || r == '8' || r == '9':
		return catTone
	case isVowelLetter(r):
		return catVowel
	case isLetterRune(r):
		return catConsonant
	case r == ' ' || r == '\t' || r == '\n':
		return catSpace
	}
	return catOther
}

func vniMarkKeyDigit(r rune) bool {
	_, ok := vniMarkKeys[r]
	return ok
}

// MarkFor returns the mark a VNI digit applies, if it is a mark key.
func (vniMethod) MarkFor(r rune) (Mark, bool) {
	m, ok := vniMarkKeys[r]
	return m, ok
}

// IsMarkRemove reports whether r is VNI's mark-removal key ('0').
func (vniMethod) IsMarkRemove(r rune) bool { return r == '0' }

// IsStroke reports whether r applies the đ stroke ('9').
func (vniMethod) IsStroke(r rune) bool { return r == '9' }

// DoubleShape is unused by VNI: shapes are applied by digit, not by
// doubling a base letter.
func (vniMethod) DoubleShape(rune) (Tone, bool) { return ToneShapeNone, false }

// WShape is unused by VNI.
func (vniMethod) WShape(rune) (Tone, bool) { return ToneShapeNone, false }

// IsWKey is unused by VNI: it has no 'w' shortcut.
func (vniMethod) IsWKey(rune) bool { return false }

// DigitShape reports the Tone a VNI digit (6/7/8) applies.
func (vniMethod) DigitShape(r rune) (Tone, bool) {
	switch r {
	case '6':
		return ToneCircumflex, true
	case '7':
		return ToneHorn, true
	case '8':
		return ToneBreve, true
	}
	return ToneShapeNone, false
}
