package engine

import "strings"

// syllableShape is the parsed (C1, G, V1..V3, C2) decomposition of a
// buffer's cells (C4), plus the resolved nucleus-pattern id for the nucleus.
type syllableShape struct {
	onset   string
	nucleus []rune
	coda    string
	pattern nucleusPattern
	ok      bool
}

// validationFailure names which of the six fail-fast rules rejected a
// syllable, for diagnostics and tests; the controller only needs ok/not.
type validationFailure int

const (
	failNone validationFailure = iota
	failNoVowel
	failInitialInvalid
	failUnconsumed
	failInitialVowel
	failFinalInvalid
	failNucleusPattern
	failStopTone
)

// analyze parses the buffer's composed cells into onset/nucleus/coda by
// greedy longest-prefix consonant match against M1, then runs the six
// fail-fast rules of spec §4.3. Rule 7 (tone vs stop final) is not run
// here; callers check it with checkStopTone.
func analyze(cells []Char, afterQ *bool) (syllableShape, validationFailure) {
	letters := make([]rune, len(cells))
	for i, c := range cells {
		letters[i] = baseLetter(c)
	}

	onset, rest := splitOnset(letters)
	nucleus, coda, consumed := splitNucleusCoda(rest)

	if len(nucleus) == 0 {
		return syllableShape{}, failNoVowel
	}
	if !validInitials[onset] {
		return syllableShape{}, failInitialInvalid
	}
	if consumed != len(rest) {
		return syllableShape{}, failUnconsumed
	}
	if !initialVowelLegal(onset, nucleus[0]) {
		return syllableShape{}, failInitialVowel
	}
	if !vowelFinalLegal(string(nucleus), coda) {
		return syllableShape{}, failFinalInvalid
	}
	pattern, ok := findNucleusPattern(normalizeNucleus(nucleus))
	if !ok {
		return syllableShape{}, failNucleusPattern
	}

	if afterQ != nil {
		// splitOnset never produces a literal two-letter "qu" onset: its
		// consonant-prefix scan stops at 'u' (a vowel), so a qu-initial
		// syllable like "quê" always parses as onset "q" plus a nucleus
		// that itself starts with 'u' ("uê"). After-Q placement context
		// is keyed on that single-letter onset, not the M1 "qu" entry.
		*afterQ = onset == "q"
	}

	shape := syllableShape{onset: onset, nucleus: nucleus, coda: coda, pattern: pattern, ok: true}
	return shape, failNone
}

// checkStopTone runs Rule 7: stop finals (p,t,c,ch) only admit sắc/nặng.
func checkStopTone(coda string, mark Mark) bool {
	if !stopFinals[coda] {
		return true
	}
	return toneStopValid[mark]
}

// splitOnset greedily matches the longest valid initial-consonant prefix
// (ngh > ng/nh/ch/gh/kh/ph/th/tr > single consonants) against M1. The
// scan stops at the first vowel, so the M1 entries "gi" and "qu" are
// never produced.
func splitOnset(letters []rune) (string, []rune) {
	isCons := func(r rune) bool { return letterClassOf[r]&clsConsonant != 0 }

	i := 0
	for i < len(letters) && isCons(letters[i]) {
		i++
	}
	if i == 0 {
		return "", letters
	}

	for l := i; l >= 1; l-- {
		candidate := string(letters[:l])
		if validInitials[candidate] {
			return candidate, letters[l:]
		}
	}
	return "", letters
}

// splitNucleusCoda greedily consumes vowels into the nucleus, then
// consonants into the coda, returning how many runes were consumed.
func splitNucleusCoda(letters []rune) ([]rune, string, int) {
	isVowel := func(r rune) bool { return letterClassOf[r]&clsVowel != 0 }

	i := 0
	for i < len(letters) && isVowel(letters[i]) {
		i++
	}
	nucleus := letters[:i]

	j := i
	for j < len(letters) && letterClassOf[letters[j]]&clsConsonant != 0 {
		j++
	}
	coda := string(letters[i:j])
	return nucleus, coda, j
}

// normalizeNucleus strips any shaped vowel back to ASCII-adjacent form
// is NOT done here: nucleus patterns are matched on the shaped letters
// themselves (e.g. "iê", "ươ"), since that's what distinguishes ia+final
// from iê+final. This helper exists to make that explicit at call
// sites.
func normalizeNucleus(nucleus []rune) []rune { return nucleus }

// lastWordBreak reports whether r is a word-terminator: space,
// punctuation, or control characters that flush a pending word.
func lastWordBreak(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return strings.ContainsRune(".,;:!?()[]{}\"'`~@#$%^&*-_=+/\\|<>", r)
}

// isSentenceTerminator reports whether r ends a sentence, for
// AutoCapitalize's "capitalize after sentence terminators" rule. A
// narrower set than lastWordBreak: a comma or a closing bracket ends a
// word but not a sentence.
func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '\n'
}
