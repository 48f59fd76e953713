package engine

// shouldAutoRestore implements C7: given the raw ASCII typed for a word
// and its Vietnamese-transformed composition, decide whether the raw
// form looks like an accidentally-transformed English word that should
// be reverted instead of committed.
//
// Only consulted at a word terminator, and only when composed != raw
// (nothing was transformed otherwise, so there is nothing to restore).
func shouldAutoRestore(raw string, composed string) bool {
	if raw == composed {
		return false
	}
	r := []rune(toLowerASCII(raw))
	if len(r) < 2 {
		return false
	}

	for i := 0; i+1 < len(r); i++ {
		a, b := r[i], r[i+1]
		if !isASCIILower(a) || !isASCIILower(b) {
			continue
		}
		// (i) two consecutive consonants forming a legal English onset
		// or coda cluster.
		if letterClassOf[a]&clsConsonant != 0 && letterClassOf[b]&clsConsonant != 0 {
			if isEnglishOnset(a, b) || isEnglishCoda(a, b) {
				return true
			}
		}
	}

	// (ii) ends in "-ei-" plus a modifier letter (i.e. contains "ei"
	// immediately followed by a Telex/VNI modifier key rather than a
	// further vowel), a pattern that never occurs in native Vietnamese
	// nuclei but is common in English loanwords like "their", "weird".
	for i := 0; i+2 < len(r); i++ {
		if r[i] == 'e' && r[i+1] == 'i' && isTelexModifierRune(r[i+2]) {
			return true
		}
	}

	// (iii) begins with w/f followed by a letter that does not form an
	// impossible English bigram (E3) -- w and f are not native
	// Vietnamese initials.
	if len(r) >= 2 && (r[0] == 'w' || r[0] == 'f') {
		if isASCIILower(r[1]) && !isImpossibleBigram(r[0], r[1]) {
			return true
		}
	}

	return false
}

func toLowerASCII(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	return string(out)
}

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

func isTelexModifierRune(r rune) bool {
	switch r {
	case 's', 'f', 'r', 'x', 'j', 'z', 'w':
		return true
	}
	return false
}
