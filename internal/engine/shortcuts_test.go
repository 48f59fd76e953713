package engine

import "testing"

func TestShortcutManagerAddAndRemove(t *testing.T) {
	m := NewShortcutManager()
	m.Add("btw", "by the way")

	s, ok := m.matchWordBoundary([]rune("btw"))
	if !ok {
		t.Fatalf("expected match for btw")
	}
	if s.Replacement != "by the way" {
		t.Fatalf("replacement = %q, want %q", s.Replacement, "by the way")
	}

	m.Remove("btw")
	if _, ok := m.matchWordBoundary([]rune("btw")); ok {
		t.Fatalf("expected no match after Remove")
	}
}

func TestShortcutManagerClassifiesImmediateVsWordBoundary(t *testing.T) {
	m := NewShortcutManager()
	m.Add("->", "→")
	m.Add("btw", "by the way")

	if _, ok := m.matchImmediate([]rune("->")); !ok {
		t.Fatalf("'->' should be classified Immediate and match")
	}
	if _, ok := m.matchImmediate([]rune("btw")); ok {
		t.Fatalf("'btw' is pure-letter, should not match under Immediate")
	}
	if _, ok := m.matchWordBoundary([]rune("btw")); !ok {
		t.Fatalf("'btw' should match under OnWordBoundary")
	}
}

func TestShortcutManagerLongestSuffixWins(t *testing.T) {
	m := NewShortcutManager()
	m.Add("tw", "shorter")
	m.Add("btw", "longer")

	s, ok := m.matchWordBoundary([]rune("btw"))
	if !ok || s.Replacement != "longer" {
		t.Fatalf("expected the longest matching suffix (btw) to win, got %+v ok=%v", s, ok)
	}
}

func TestShortcutManagerAddRejectsEmptyAndOversized(t *testing.T) {
	m := NewShortcutManager()
	m.Add("", "x")
	if _, ok := m.matchWordBoundary([]rune("")); ok {
		t.Fatalf("empty trigger must not be registered")
	}

	huge := make([]rune, maxTriggerLen+1)
	for i := range huge {
		huge[i] = 'a'
	}
	m.Add(string(huge), "y")
	if _, ok := m.matchWordBoundary(huge); ok {
		t.Fatalf("over-length trigger must not be registered")
	}
}

func TestShortcutManagerLastWriterWins(t *testing.T) {
	m := NewShortcutManager()
	m.Add("btw", "first")
	m.Add("btw", "second")

	s, ok := m.matchWordBoundary([]rune("btw"))
	if !ok || s.Replacement != "second" {
		t.Fatalf("expected overwritten replacement, got %+v ok=%v", s, ok)
	}
}

func TestShortcutManagerClear(t *testing.T) {
	m := NewShortcutManager()
	m.Add("btw", "by the way")
	m.Clear()
	if _, ok := m.matchWordBoundary([]rune("btw")); ok {
		t.Fatalf("expected no triggers after Clear")
	}
}
