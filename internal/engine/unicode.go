package engine

import "unicode"

// shapeTable is U-adjacent static data: base vowel letter -> tone shape ->
// the shaped (still tone-mark-free) vowel. Only a/e/o/u ever take a
// shape; i/y/consonants never appear here (see toneCompatible).
var shapeTable = map[rune]map[Tone]rune{
	'a': {ToneBreve: 'ă', ToneCircumflex: 'â'},
	'e': {ToneCircumflex: 'ê'},
	'o': {ToneCircumflex: 'ô', ToneHorn: 'ơ'},
	'u': {ToneHorn: 'ư'},
}

// toneMarkTable maps a shaped vowel plus a pitch mark to its final
// composed rune. This is the Unicode-output half of M7/M8: the
// placement resolver decides WHICH cell carries the mark; this table
// decides WHAT rune results once it does.
var toneMarkTable = map[rune]map[Mark]rune{
	'a': {MarkAcute: 'á', MarkGrave: 'à', MarkHook: 'ả', MarkTilde: 'ã', MarkDot: 'ạ'},
	'ă': {MarkAcute: 'ắ', MarkGrave: 'ằ', MarkHook: 'ẳ', MarkTilde: 'ẵ', MarkDot: 'ặ'},
	'â': {MarkAcute: 'ấ', MarkGrave: 'ầ', MarkHook: 'ẩ', MarkTilde: 'ẫ', MarkDot: 'ậ'},
	'e': {MarkAcute: 'é', MarkGrave: 'è', MarkHook: 'ẻ', MarkTilde: 'ẽ', MarkDot: 'ẹ'},
	'ê': {MarkAcute: 'ế', MarkGrave: 'ề', MarkHook: 'ể', MarkTilde: 'ễ', MarkDot: 'ệ'},
	'i': {MarkAcute: 'í', MarkGrave: 'ì', MarkHook: 'ỉ', MarkTilde: 'ĩ', MarkDot: 'ị'},
	'o': {MarkAcute: 'ó', MarkGrave: 'ò', MarkHook: 'ỏ', MarkTilde: 'õ', MarkDot: 'ọ'},
	'ô': {MarkAcute: 'ố', MarkGrave: 'ồ', MarkHook: 'ổ', MarkTilde: 'ỗ', MarkDot: 'ộ'},
	'ơ': {MarkAcute: 'ớ', MarkGrave: 'ờ', MarkHook: 'ở', MarkTilde: 'ỡ', MarkDot: 'ợ'},
	'u': {MarkAcute: 'ú', MarkGrave: 'ù', MarkHook: 'ủ', MarkTilde: 'ũ', MarkDot: 'ụ'},
	'ư': {MarkAcute: 'ứ', MarkGrave: 'ừ', MarkHook: 'ử', MarkTilde: 'ữ', MarkDot: 'ự'},
	'y': {MarkAcute: 'ý', MarkGrave: 'ỳ', MarkHook: 'ỷ', MarkTilde: 'ỹ', MarkDot: 'ỵ'},
}

// renderChar composes a single cell into its display rune: stroke first
// (d -> đ), then tone shape, then pitch mark, then case. Vietnamese case
// folding for precomposed letters (ế -> Ế, etc.) is standard Unicode
// case data, so unicode.ToUpper handles it without a second table.
func renderChar(c Char) rune {
	key := c.Key
	if key == 'd' && c.Stroke {
		key = 'đ'
	}

	shaped := key
	if tones, ok := shapeTable[key]; ok {
		if r, ok := tones[c.Tone]; ok {
			shaped = r
		}
	}

	out := shaped
	if marks, ok := toneMarkTable[shaped]; ok {
		if r, ok := marks[c.Mark]; ok {
			out = r
		}
	}

	if c.Caps {
		out = unicode.ToUpper(out)
	}
	return out
}

// baseLetter renders cell c down to its tone-shaped vowel (â, ê, ơ, ư,
// ô, ă) or stroked đ, but without its pitch mark. The syllable analyzer
// classifies and pattern-matches on this shaped form, not the raw ASCII
// key, since shape is what distinguishes nucleus patterns like "ia" from
// "iê" or "ua" from "ươ" (letterClassOf and nucleusPatterns are both
// keyed on shaped runes for the same reason).
func baseLetter(c Char) rune {
	if c.Key == 'd' {
		if c.Stroke {
			return 'đ'
		}
		return 'd'
	}
	if tones, ok := shapeTable[c.Key]; ok {
		if r, ok2 := tones[c.Tone]; ok2 {
			return r
		}
	}
	return c.Key
}
