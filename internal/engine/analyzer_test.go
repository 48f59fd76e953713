package engine

import "testing"

func chars(letters string) []Char {
	runes := []rune(letters)
	out := make([]Char, len(runes))
	for i, r := range runes {
		out[i] = Char{Key: r}
	}
	return out
}

func TestAnalyzeSplitsOnsetNucleusCoda(t *testing.T) {
	cases := []struct {
		word    string
		onset   string
		nucleus string
		coda    string
	}{
		{"dau", "d", "au", ""},
		{"viêt", "v", "iê", "t"},
		{"nghe", "ngh", "e", ""},
		{"qua", "q", "ua", ""},
		{"hoan", "h", "oa", "n"},
		{"thương", "th", "ươ", "ng"},
	}
	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			shape, fail := analyze(chars(tc.word), nil)
			if !shape.ok {
				t.Fatalf("analyze(%q) failed: %v", tc.word, fail)
			}
			if shape.onset != tc.onset {
				t.Errorf("onset = %q, want %q", shape.onset, tc.onset)
			}
			if string(shape.nucleus) != tc.nucleus {
				t.Errorf("nucleus = %q, want %q", string(shape.nucleus), tc.nucleus)
			}
			if shape.coda != tc.coda {
				t.Errorf("coda = %q, want %q", shape.coda, tc.coda)
			}
		})
	}
}

func TestAnalyzeAfterQTracksSingleLetterOnset(t *testing.T) {
	var afterQ bool
	shape, _ := analyze(chars("qua"), &afterQ)
	if !shape.ok {
		t.Fatalf("analyze(%q) should succeed", "qua")
	}
	if shape.onset != "q" {
		t.Fatalf("onset = %q, want %q (splitOnset never produces literal qu)", shape.onset, "q")
	}
	if !afterQ {
		t.Fatalf("afterQ = false, want true for qu-initial syllable")
	}

	afterQ = false
	shape, _ = analyze(chars("ba"), &afterQ)
	if !shape.ok {
		t.Fatalf("analyze(%q) should succeed", "ba")
	}
	if afterQ {
		t.Fatalf("afterQ = true, want false for non-q onset")
	}
}

func TestAnalyzeRejectsNoVowel(t *testing.T) {
	_, fail := analyze(chars("ngh"), nil)
	if fail != failNoVowel {
		t.Fatalf("fail = %v, want failNoVowel", fail)
	}
}

func TestAnalyzeRejectsInitialVowelViolation(t *testing.T) {
	// "ce" violates M2: 'c' never precedes e/i/y.
	_, fail := analyze(chars("ce"), nil)
	if fail != failInitialVowel {
		t.Fatalf("fail = %v, want failInitialVowel", fail)
	}
}

func TestAnalyzeRejectsUnrecognizedNucleus(t *testing.T) {
	// "eo" is legal but "eu" is not one of the 46 recognized patterns.
	_, fail := analyze(chars("deu"), nil)
	if fail != failNucleusPattern {
		t.Fatalf("fail = %v, want failNucleusPattern", fail)
	}
}

func TestAnalyzeRejectsBadFinal(t *testing.T) {
	// "b" is not one of M5's 8 legal codas.
	_, fail := analyze(chars("dab"), nil)
	if fail != failFinalInvalid {
		t.Fatalf("fail = %v, want failFinalInvalid", fail)
	}
}

func TestVowelFinalLegalExceptions(t *testing.T) {
	if vowelFinalLegal("ay", "i") {
		t.Fatalf("nucleus ay should forbid final i")
	}
	if !vowelFinalLegal("a", "n") {
		t.Fatalf("nucleus a should allow final n")
	}
}

func TestCheckStopTone(t *testing.T) {
	if !checkStopTone("t", MarkAcute) {
		t.Fatalf("sac should be legal on a stop final")
	}
	if checkStopTone("t", MarkGrave) {
		t.Fatalf("huyen should be illegal on a stop final")
	}
	if !checkStopTone("n", MarkGrave) {
		t.Fatalf("huyen should be legal on a non-stop final")
	}
}
