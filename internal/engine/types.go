// Package engine is the core keystroke-transformation engine of the
// Vietnamese input method: a circular keystroke buffer, a per-key
// transform pipeline, static phonotactic validation matrices, tone/mark
// placement, a shortcut (text-expansion) subsystem, an English
// auto-restore heuristic, and ESC/double-key revert.
//
// The engine is logically single-threaded: callers serialize access
// (see pkg/ime for the exported, mutex-guarded entry point). It performs
// no I/O and allocates nothing beyond the bounded Result it returns.
package engine

// Tone is the diacritic shape placed atop a vowel (â, ơ, ă, ...).
// Distinct from Mark, which is the pitch-contour tone (sắc, huyền, ...).
type Tone int

const (
	ToneShapeNone Tone = iota
	ToneCircumflex    // â, ê, ô
	ToneHorn          // ơ, ư
	ToneBreve         // ă
)

// Mark is the pitch-contour mark (thanh) applied to a syllable's nucleus.
type Mark int

const (
	MarkNone Mark = iota
	MarkAcute    // sắc (á)
	MarkGrave    // huyền (à)
	MarkHook     // hỏi (ả)
	MarkTilde    // ngã (ã)
	MarkDot      // nặng (ạ)
)

// Char is a single buffer cell (C1): the raw key that created it, case,
// and the accumulated tone/mark/stroke flags applied since.
//
// Invariants: Tone is compatible with Key (Circumflex only on a/e/o,
// Horn only on o/u, Breve only on a); Stroke is only set when Key=='d';
// Mark is carried on whichever cell the placement resolver chose, and
// the buffer enforces at most one marked cell per word.
type Char struct {
	Key    rune // canonical lowercase ASCII letter
	Caps   bool
	Tone   Tone
	Mark   Mark
	Stroke bool
}

// toneCompatible reports whether t is a legal shape for the base letter.
func toneCompatible(key rune, t Tone) bool {
	switch t {
	case ToneShapeNone:
		return true
	case ToneCircumflex:
		return key == 'a' || key == 'e' || key == 'o'
	case ToneHorn:
		return key == 'o' || key == 'u'
	case ToneBreve:
		return key == 'a'
	}
	return false
}

// Action classifies what a Result asks the host to do.
type Action uint8

const (
	ActionNone    Action = iota // pass-through, no edit
	ActionSend                  // replace Backspace chars then insert Chars
	ActionRestore               // swap composed text for the raw ASCII typed
)

// Result is the bounded edit instruction returned by Process. It mirrors
// the packed 140-byte struct of the external interface: at most 32
// codepoints inserted, at most 16 characters removed.
type Result struct {
	Action    Action
	Backspace uint8  // number of previously-emitted characters to delete, ≤16
	Chars     []rune // codepoints to insert, len ≤32
}

const (
	maxBackspace = 16
	maxChars     = 32
)

// InputMethod selects the keystroke convention.
type InputMethod int

const (
	Telex InputMethod = iota
	VNI
)

// Common host keycodes (illustrative; a real host hook translates its own
// platform keycodes into these before calling Process).
const (
	KeyBackspace rune = 0
	KeyEscape    rune = 27
	KeyTab       rune = '\t'
	KeyReturn    rune = '\n'
	KeySpace     rune = ' '
)
