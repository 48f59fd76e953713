package engine

import "testing"

func TestShouldAutoRestoreConsonantCluster(t *testing.T) {
	// "chrome" typed in Telex: 'r' triggers hook, composed differs
	// from raw, and "ch"+"r" is a legal English onset cluster.
	if !shouldAutoRestore("chrome", "chrỏme") {
		t.Fatalf("expected auto-restore for an English consonant-cluster word")
	}
}

func TestShouldAutoRestoreNoopWhenUnchanged(t *testing.T) {
	if shouldAutoRestore("dau", "dau") {
		t.Fatalf("should not restore when nothing was transformed")
	}
}

func TestShouldAutoRestoreEiModifierTail(t *testing.T) {
	// "weird": contains "ei" immediately followed by the Telex 'r' key.
	if !shouldAutoRestore("weird", "weirrd") {
		t.Fatalf("expected auto-restore for ei+modifier tail")
	}
}

func TestShouldAutoRestoreWFOnset(t *testing.T) {
	if !shouldAutoRestore("where", "wherre") {
		t.Fatalf("expected auto-restore for w-onset word")
	}
}

func TestShouldAutoRestoreLeavesNativeWordsAlone(t *testing.T) {
	if shouldAutoRestore("dau", "đau") {
		t.Fatalf("should not flag a legitimately transformed native word")
	}
}

func TestIsEnglishOnsetAndCoda(t *testing.T) {
	if !isEnglishOnset('s', 't') {
		t.Fatalf("st should be a legal English onset cluster")
	}
	if isEnglishOnset('t', 's') {
		t.Fatalf("ts should not be a legal English onset cluster")
	}
	if !isEnglishCoda('n', 'd') {
		t.Fatalf("nd should be a legal English coda cluster")
	}
}

func TestIsImpossibleBigram(t *testing.T) {
	if !isImpossibleBigram('q', 'x') {
		t.Fatalf("qx should be flagged as an impossible English bigram")
	}
	if isImpossibleBigram('s', 't') {
		t.Fatalf("st should not be flagged as impossible")
	}
}
