package engine

import "unicode/utf8"

// ShortcutCondition selects when a trigger fires.
type ShortcutCondition uint8

const (
	// Immediate triggers (any trigger containing a non-letter rune) fire
	// the moment their full trigger text has been typed, e.g. "2k".
	// Through Controller.Process, a rune that lastWordBreak treats as a
	// word terminator (such as '-' or '>') ends the word instead of
	// reaching the matcher, so triggers containing such runes, e.g.
	// "->", never fire.
	Immediate ShortcutCondition = iota
	// OnWordBoundary triggers fire only when immediately followed by a
	// word-terminator keystroke, and only while the characters that
	// formed the trigger are still intact ASCII (not yet transformed
	// into Vietnamese).
	OnWordBoundary
)

// Shortcut is one trigger -> replacement rule (C8).
type Shortcut struct {
	Trigger     string
	Replacement string
	Condition   ShortcutCondition
}

const (
	maxTriggerLen     = 32
	maxReplacementLen = 64
)

// ShortcutManager owns the dynamic trigger table. Duplicate triggers are
// last-writer-wins: adding a trigger that already exists overwrites the
// old rule's replacement and condition in place, so removing it later
// removes the single current entry, not a shadowed history.
type ShortcutManager struct {
	byTrigger map[string]Shortcut
}

// NewShortcutManager returns an empty manager.
func NewShortcutManager() *ShortcutManager {
	return &ShortcutManager{byTrigger: map[string]Shortcut{}}
}

// Add registers or overwrites a trigger. Empty trigger/replacement, or
// either exceeding its length cap, is rejected silently.
func (m *ShortcutManager) Add(trigger, replacement string) {
	if trigger == "" || replacement == "" {
		return
	}
	if utf8.RuneCountInString(trigger) > maxTriggerLen {
		return
	}
	if utf8.RuneCountInString(replacement) > maxReplacementLen {
		return
	}
	m.byTrigger[trigger] = Shortcut{
		Trigger:     trigger,
		Replacement: replacement,
		Condition:   classifyTrigger(trigger),
	}
}

// Remove deletes a trigger, if present.
func (m *ShortcutManager) Remove(trigger string) {
	delete(m.byTrigger, trigger)
}

// Clear removes every trigger.
func (m *ShortcutManager) Clear() {
	m.byTrigger = map[string]Shortcut{}
}

// classifyTrigger auto-classifies a trigger: any non-letter rune makes
// it Immediate, pure-letter triggers are OnWordBoundary.
func classifyTrigger(trigger string) ShortcutCondition {
	for _, r := range trigger {
		if !isASCIILetter(r) {
			return Immediate
		}
	}
	return OnWordBoundary
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// matchImmediate checks whether tail (the raw text just typed, most
// recent rune last) ends with any Immediate trigger, returning the
// matching rule and whether one matched.
func (m *ShortcutManager) matchImmediate(tail []rune) (Shortcut, bool) {
	return m.matchSuffix(tail, Immediate)
}

// matchWordBoundary checks whether tail ends with any OnWordBoundary
// trigger, to be called exactly when a word-terminator keystroke
// arrives.
func (m *ShortcutManager) matchWordBoundary(tail []rune) (Shortcut, bool) {
	return m.matchSuffix(tail, OnWordBoundary)
}

func (m *ShortcutManager) matchSuffix(tail []rune, cond ShortcutCondition) (Shortcut, bool) {
	var best Shortcut
	found := false
	for _, s := range m.byTrigger {
		if s.Condition != cond {
			continue
		}
		tr := []rune(s.Trigger)
		if len(tr) > len(tail) {
			continue
		}
		if runesEqual(tail[len(tail)-len(tr):], tr) {
			if !found || len(tr) > len([]rune(best.Trigger)) {
				best = s
				found = true
			}
		}
	}
	return best, found
}
