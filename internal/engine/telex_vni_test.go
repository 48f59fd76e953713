package engine

import "testing"

func TestTelexKeyCategory(t *testing.T) {
	m := telexMethod{}
	cases := []struct {
		key  rune
		want keyCategory
	}{
		{'a', catVowel},
		{'b', catConsonant},
		{'s', catMark},
		{'z', catMarkRemove},
		{' ', catSpace},
		{'0', catOther},
	}
	for _, tc := range cases {
		if got := m.KeyCategory(tc.key); got != tc.want {
			t.Errorf("KeyCategory(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestTelexMarkFor(t *testing.T) {
	m := telexMethod{}
	cases := map[rune]Mark{'s': MarkAcute, 'f': MarkGrave, 'r': MarkHook, 'x': MarkTilde, 'j': MarkDot}
	for key, want := range cases {
		got, ok := m.MarkFor(key)
		if !ok || got != want {
			t.Errorf("MarkFor(%q) = %v, %v, want %v, true", key, got, ok, want)
		}
	}
	if _, ok := m.MarkFor('a'); ok {
		t.Errorf("MarkFor('a') should not match")
	}
}

func TestTelexShapes(t *testing.T) {
	m := telexMethod{}
	if tone, ok := m.DoubleShape('a'); !ok || tone != ToneCircumflex {
		t.Errorf("DoubleShape('a') = %v, %v, want ToneCircumflex, true", tone, ok)
	}
	if tone, ok := m.WShape('a'); !ok || tone != ToneBreve {
		t.Errorf("WShape('a') = %v, %v, want ToneBreve, true", tone, ok)
	}
	if tone, ok := m.WShape('u'); !ok || tone != ToneHorn {
		t.Errorf("WShape('u') = %v, %v, want ToneHorn, true", tone, ok)
	}
	if !m.IsWKey('W') {
		t.Errorf("IsWKey should be case-insensitive")
	}
}

func TestVNIKeyCategory(t *testing.T) {
	m := vniMethod{}
	cases := []struct {
		key  rune
		want keyCategory
	}{
		{'a', catVowel},
		{'b', catConsonant},
		{'1', catMark},
		{'0', catMarkRemove},
		{'6', catTone},
		{' ', catSpace},
	}
	for _, tc := range cases {
		if got := m.KeyCategory(tc.key); got != tc.want {
			t.Errorf("KeyCategory(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestVNIDigitShape(t *testing.T) {
	m := vniMethod{}
	cases := map[rune]Tone{'6': ToneCircumflex, '7': ToneHorn, '8': ToneBreve}
	for digit, want := range cases {
		got, ok := m.DigitShape(digit)
		if !ok || got != want {
			t.Errorf("DigitShape(%q) = %v, %v, want %v, true", digit, got, ok, want)
		}
	}
	if !m.IsStroke('9') {
		t.Errorf("'9' should apply the stroke in VNI")
	}
}

func TestVNIHasNoWShortcut(t *testing.T) {
	m := vniMethod{}
	if m.IsWKey('w') {
		t.Errorf("VNI should not treat 'w' as a shortcut key")
	}
	if _, ok := m.WShape('a'); ok {
		t.Errorf("VNI WShape should always report ok=false")
	}
}
