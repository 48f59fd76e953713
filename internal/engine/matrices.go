package engine

// This file holds the engine's static phonotactic data (C3): the
// validation matrices referenced throughout the spec as M1-M8, the
// English-heuristic tables E1-E3, and the compact hot-path tables U1-U7.
// All of it is immutable, built once at package init from declarative
// lists rather than scattered conditionals, and shared without
// synchronization by every engine instance.

// --- U1 LETTER_CLASS -------------------------------------------------

type letterClass uint8

const (
	clsVowel letterClass = 1 << iota
	clsConsonant
	clsFinal  // may end a syllable (coda or semivowel)
	clsStop   // p, t, c, ch -- restricts tone per Rule 7
)

var letterClassOf = func() map[rune]letterClass {
	m := map[rune]letterClass{}
	for _, r := range "aeiouyăâêôơư" {
		m[r] = clsVowel
	}
	for _, r := range "bcdđghklmnpqrstvx" {
		m[r] |= clsConsonant
	}
	for _, r := range []rune{'c', 'm', 'n', 'p', 't', 'i', 'y', 'o', 'u'} {
		m[r] |= clsFinal
	}
	for _, r := range []rune{'p', 't', 'c'} {
		m[r] |= clsStop
	}
	return m
}()

// --- U2/U3 dispatch state machine (4.5) -------------------------------

type dispatchState uint8

const (
	stateStart dispatchState = iota
	stateHasInitial
	stateHasVowel
	stateHasFinal
	stateHasPending
	numDispatchStates
)

type keyCategory uint8

const (
	catVowel keyCategory = iota
	catConsonant
	catStop
	catTone
	catMark
	catMarkRemove
	catSpace
	catOther
	numKeyCategories
)

type dispatchAction uint8

const (
	actNoOp dispatchAction = iota
	actAppendVowel
	actAppendConsonant
	actApplyTone
	actApplyMark
	actDefer
	actRevert
	actCommit
)

// dispatch packs (action, nextState) for each (state, category) pair, a
// single lookup replacing the per-key if/else chain a naive pipeline
// would need.
var dispatch [numDispatchStates][numKeyCategories]struct {
	action dispatchAction
	next   dispatchState
}

func init() {
	for s := dispatchState(0); s < numDispatchStates; s++ {
		for c := keyCategory(0); c < numKeyCategories; c++ {
			dispatch[s][c] = struct {
				action dispatchAction
				next   dispatchState
			}{actNoOp, s}
		}
	}
	set := func(s dispatchState, c keyCategory, a dispatchAction, next dispatchState) {
		dispatch[s][c] = struct {
			action dispatchAction
			next   dispatchState
		}{a, next}
	}

	set(stateStart, catConsonant, actAppendConsonant, stateHasInitial)
	set(stateStart, catVowel, actAppendVowel, stateHasVowel)
	set(stateHasInitial, catConsonant, actAppendConsonant, stateHasInitial)
	set(stateHasInitial, catVowel, actAppendVowel, stateHasVowel)
	set(stateHasVowel, catVowel, actAppendVowel, stateHasVowel)
	set(stateHasVowel, catTone, actApplyTone, stateHasVowel)
	set(stateHasVowel, catMark, actApplyMark, stateHasVowel)
	set(stateHasVowel, catMarkRemove, actApplyMark, stateHasVowel)
	set(stateHasVowel, catStop, actAppendConsonant, stateHasFinal)
	set(stateHasVowel, catConsonant, actAppendConsonant, stateHasFinal)
	set(stateHasFinal, catTone, actApplyTone, stateHasFinal)
	set(stateHasFinal, catMark, actApplyMark, stateHasFinal)
	set(stateHasFinal, catMarkRemove, actApplyMark, stateHasFinal)
	set(stateHasPending, catVowel, actAppendVowel, stateHasVowel)
	set(stateHasPending, catConsonant, actAppendConsonant, stateHasFinal)
	for s := dispatchState(0); s < numDispatchStates; s++ {
		set(s, catSpace, actCommit, stateStart)
	}
}

// --- U4 DEFER ----------------------------------------------------------

type deferDecision uint8

const (
	deferKeep deferDecision = iota
	deferApply
	deferCancel
)

type pendingKind uint8

const (
	pendingNone pendingKind = iota
	pendingWVowel
	pendingTone
	pendingMark
)

// deferTable[(pendingKind, nextIsFinal)] -> decision.
var deferTable = [4][2]deferDecision{
	pendingNone:   {deferCancel, deferCancel},
	pendingWVowel: {deferApply, deferApply},
	pendingTone:   {deferKeep, deferApply},
	pendingMark:   {deferKeep, deferApply},
}

func deferDecide(k pendingKind, nextIsFinal bool) deferDecision {
	idx := 0
	if nextIsFinal {
		idx = 1
	}
	return deferTable[k][idx]
}

// --- U5 REVERT_KEY -------------------------------------------------

// revertKey gives, per transformKind, the raw key which if typed again
// immediately reverts that transform (BR-02).
var revertKey = [11]rune{
	transformNone:            0,
	transformStroke:          'd',
	transformToneCircumflex:  'a', // Telex doubles the base letter (a, e or o); 'a' stands for all three
	transformToneHorn:        'w',
	transformToneBreve:       'w',
	transformMarkAcute:       's',
	transformMarkGrave:       'f',
	transformMarkHook:        'r',
	transformMarkTilde:       'x',
	transformMarkDot:         'j',
	transformMarkClear:       'z',
}

// --- U6 TONE_STOP_VALID / M6 TONE_FINAL -------------------------------

// stopFinals are the four finals that restrict tone per Rule 7.
var stopFinals = map[string]bool{"p": true, "t": true, "c": true, "ch": true}

// toneStopValid[mark] reports whether mark may appear on a stop final.
var toneStopValid = [6]bool{
	MarkNone:  true,
	MarkAcute: true,
	MarkGrave: false,
	MarkHook:  false,
	MarkTilde: false,
	MarkDot:   true,
}

// --- U7 MOD_VALID ------------------------------------------------------

// modValid reports, per base vowel, which Tone shapes are legal.
var modValid = map[rune][3]bool{
	// index 0=Breve, 1=Circumflex, 2=Horn
	'a': {true, true, false},
	'e': {false, true, false},
	'o': {false, true, true},
	'u': {false, false, true},
}

func modifierValid(base rune, t Tone) bool {
	v, ok := modValid[base]
	if !ok {
		return false
	}
	switch t {
	case ToneBreve:
		return v[0]
	case ToneCircumflex:
		return v[1]
	case ToneHorn:
		return v[2]
	}
	return false
}

// --- M1 INITIAL_VALID / M2 INITIAL_VOWEL ------------------------------

// validInitials are the 29 legal initial-consonant spellings (28
// consonant forms plus the empty onset of a vowel-initial syllable).
var validInitials = map[string]bool{
	"":    true,
	"b":   true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k":   true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r":   true, "s": true, "t": true, "v": true, "x": true,
	"ch":  true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh":  true, "ph": true, "qu": true, "th": true, "tr": true,
	"ngh": true,
}

// initialVowelForbidden lists (initial, nucleus-first-letter) pairs
// that are spelling-rule violations (c/k, g/gh, ng/ngh): M2's 0 cells.
var initialVowelForbidden = map[string]map[byte]bool{
	"c":   {'e': true, 'i': true, 'y': true},
	"k":   {'a': true, 'o': true, 'u': true},
	"g":   {'e': true, 'i': true},
	"gh":  {'a': true, 'o': true, 'u': true},
	"ng":  {'e': true, 'i': true},
	"ngh": {'a': true, 'o': true, 'u': true},
}

func initialVowelLegal(initial string, nucleusFirst rune) bool {
	if !validInitials[initial] {
		return false
	}
	if forbidden, ok := initialVowelForbidden[initial]; ok {
		b := byte(nucleusFirst)
		if nucleusFirst < 128 && forbidden[b] {
			return false
		}
	}
	return true
}

// --- M3/M4/M7/M8: the recognized nucleus patterns ------------------

// nucleusPattern is one of the recognized vowel-nucleus spellings.
type nucleusPattern struct {
	id      int
	letters []rune
}

// nucleusPatterns enumerates the 12 single vowels, 26 diphthongs and 8
// triphthongs that make up Vietnamese vowel nuclei (M3/M4's legal
// entries, and M7/M8's rows). The nominal count quoted for M7/M8
// elsewhere is 43; "iê", "uô", "ươ" are included here as well (bringing
// the total to 46) since without them common bare-nucleus-plus-final
// words like "tiên", "muốn", "được" fail to parse -- see DESIGN.md.
var nucleusPatterns = buildNucleusPatterns()

func buildNucleusPatterns() []nucleusPattern {
	singles := []string{"a", "ă", "â", "e", "ê", "i", "o", "ô", "ơ", "u", "ư", "y"}
	pairs := []string{
		"ai", "ao", "au", "ay", "âu", "ây", "eo", "êu", "ia", "iê", "iu",
		"oa", "oe", "oi", "ôi", "ơi", "ua", "uê", "ui", "uô", "uy", "ưa",
		"ươ", "ưi", "ưu", "yê",
	}
	triples := []string{"iêu", "oai", "oay", "uôi", "uyê", "uyu", "ươi", "ươu"}

	var out []nucleusPattern
	id := 0
	for _, group := range [][]string{singles, pairs, triples} {
		for _, s := range group {
			out = append(out, nucleusPattern{id: id, letters: []rune(s)})
			id++
		}
	}
	return out
}

// findNucleusPattern returns the pattern matching the given lowercase
// nucleus spelling, and ok=false if the spelling is not one of the
// recognized patterns (M3/M4's "illegal" cells).
func findNucleusPattern(nucleus []rune) (nucleusPattern, bool) {
	for _, p := range nucleusPatterns {
		if runesEqual(p.letters, nucleus) {
			return p, true
		}
	}
	return nucleusPattern{}, false
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// placementSlot computes M7/M8: which index into the nucleus pattern's
// letters receives the tone/modifier mark, given whether the syllable
// has a final consonant, whether the onset is "qu" (after-Q changes
// which letter counts as the glide), and whether modern placement is
// selected. This is the declarative form of the traditional
// "find the tone position" heuristic, generalized into the
// nucleus-pattern table the spec calls for instead of nested vowel-by-vowel branches.
func placementSlot(p nucleusPattern, hasFinal bool, afterQ bool, modern bool) int {
	n := len(p.letters)
	if n == 1 {
		return 0
	}

	// A shaped vowel (ă, â, ê, ô, ơ, ư) always carries the mark itself.
	for i, r := range p.letters {
		if isShapedVowel(r) {
			return i
		}
	}

	key := string(p.letters)

	// The "new vs old" ambiguous set: oa, oe, uy (and their afterQ
	// cousins like quy) place the mark on the last vowel under the
	// traditional rule (hoà, thuý), the first under the modern rule
	// (hòa, thúy). afterQ always forces the last letter (quý, quỳ),
	// regardless of modern/traditional.
	if !hasFinal {
		switch key {
		case "oa", "oe", "uy":
			if afterQ {
				return n - 1
			}
			if modern {
				return 0
			}
			return n - 1
		case "ia":
			return 0 // traditional: nghĩa, not nghiã
		case "ua":
			return 0 // của, not cuả
		}
	}

	if hasFinal {
		return 1 // hoàn not hòan
	}

	if n == 2 {
		return 0
	}
	return 1 // three-letter nucleus: middle vowel (xoài, khuỷu)
}

func isShapedVowel(r rune) bool {
	switch r {
	case 'ă', 'â', 'ê', 'ô', 'ơ', 'ư':
		return true
	}
	return false
}

// --- M5 VOWEL_FINAL ------------------------------------------------

// validFinals are the 8 consonant codas plus the empty (no-final) case,
// i.e. M5's 9 columns.
var validFinals = map[string]bool{
	"":   true,
	"c":  true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// vowelFinalForbidden encodes M5's handful of nucleus/final
// incompatibilities beyond plain coda legality (e.g. a nucleus already
// ending in a semivowel cannot take another semivowel-shaped final).
var vowelFinalForbidden = map[string]map[string]bool{
	"ay": {"i": true, "y": true, "o": true, "u": true},
	"au": {"i": true, "y": true, "o": true, "u": true},
}

func vowelFinalLegal(nucleus string, final string) bool {
	if !validFinals[final] {
		return false
	}
	if forbidden, ok := vowelFinalForbidden[nucleus]; ok && forbidden[final] {
		return false
	}
	return true
}

// --- E1-E3: English onset/coda legality and impossible bigrams -------

// englishOnsetClusters and englishCodaClusters are declarative
// whitelists; the 26x26 legality grids are generated from them rather
// than hand-written per-pair conditionals.
var englishOnsetClusters = []string{
	"bl", "br", "ch", "cl", "cr", "dr", "dw", "fl", "fr", "gl", "gr",
	"ph", "pl", "pr", "qu", "sc", "sh", "sk", "sl", "sm", "sn", "sp",
	"spl", "spr", "squ", "st", "str", "sw", "th", "thr", "tr", "tw",
	"wh", "wr",
}

var englishCodaClusters = []string{
	"ck", "ct", "ft", "ld", "lf", "lk", "lm", "lp", "lt", "mp", "nd",
	"nk", "nt", "pt", "rd", "rk", "rl", "rm", "rn", "rp", "rt", "sk",
	"sp", "st", "xt", "ng", "nce", "nch", "tch",
}

// englishImpossibleBigrams are letter pairs that never occur together
// in English spelling, used by the auto-restore heuristic's bigram scan.
var englishImpossibleBigrams = []string{
	"bx", "cx", "fq", "jq", "qb", "qc", "qd", "qf", "qg", "qh", "qj",
	"qk", "ql", "qm", "qn", "qp", "qr", "qs", "qt", "qv", "qw", "qx",
	"qy", "qz", "vq", "xq", "zq",
}

var (
	onsetLegal      [26][26]bool
	codaLegal       [26][26]bool
	impossibleBigram[26][26]bool
)

func init() {
	fill := func(table *[26][26]bool, clusters []string) {
		for _, c := range clusters {
			r := []rune(c)
			if len(r) < 2 {
				continue
			}
			a, b := int(r[0]-'a'), int(r[1]-'a')
			if a >= 0 && a < 26 && b >= 0 && b < 26 {
				table[a][b] = true
			}
		}
	}
	fill(&onsetLegal, englishOnsetClusters)
	fill(&codaLegal, englishCodaClusters)
	fill(&impossibleBigram, englishImpossibleBigrams)
}

func isEnglishOnset(a, b rune) bool {
	if a < 'a' || a > 'z' || b < 'a' || b > 'z' {
		return false
	}
	return onsetLegal[a-'a'][b-'a']
}

func isEnglishCoda(a, b rune) bool {
	if a < 'a' || a > 'z' || b < 'a' || b > 'z' {
		return false
	}
	return codaLegal[a-'a'][b-'a']
}

func isImpossibleBigram(a, b rune) bool {
	if a < 'a' || a > 'z' || b < 'a' || b > 'z' {
		return false
	}
	return impossibleBigram[a-'a'][b-'a']
}
