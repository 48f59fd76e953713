package engine

// BufferCapacity is the fixed ring size N (C2). Vietnamese syllables never
// exceed 7 letters, but shortcut triggers can run longer, hence 16.
const BufferCapacity = 16

// transformKind tags the last transformation applied to a cell, consulted
// by the double-key revert detector (U5) and by history bookkeeping.
type transformKind uint8

const (
	transformNone transformKind = iota
	transformStroke
	transformToneCircumflex
	transformToneHorn
	transformToneBreve
	transformMarkAcute
	transformMarkGrave
	transformMarkHook
	transformMarkTilde
	transformMarkDot
	transformMarkClear
)

// Buffer is the fixed-capacity circular keystroke buffer (C2). Three
// parallel fixed arrays back the structure: chars holds the live,
// mutable cell state; raw holds the ASCII keystroke that first created
// each cell (never mutated after insertion); transforms holds the id of
// the last transform applied to each cell, used for revert detection.
//
// Insertion is always at the logical end. On overflow the oldest cell is
// dropped and the remaining window shifts left, preserving recent
// context — Vietnamese syllables are short, so the dropped cell is never
// part of the word still being composed.
type Buffer struct {
	chars      [BufferCapacity]Char
	raw        [BufferCapacity]rune
	transforms [BufferCapacity]transformKind
	size       int

	// rawLog is the literal ASCII keystroke sequence typed since the last
	// word boundary, independent of how many cells it collapsed into.
	// It is what ESC restore replays (spec §4.8, §8 round-trip property).
	rawLog []rune
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len returns the number of valid cells.
func (b *Buffer) Len() int { return b.size }

// shift drops the oldest cell and moves the window left by one.
func (b *Buffer) shift() {
	copy(b.chars[0:], b.chars[1:])
	copy(b.raw[0:], b.raw[1:])
	copy(b.transforms[0:], b.transforms[1:])
	b.size--
}

// Push appends a new cell, created from the given raw keystroke. On a
// full buffer the oldest cell is dropped first.
func (b *Buffer) Push(c Char, rawKey rune) {
	if b.size == BufferCapacity {
		b.shift()
	}
	b.chars[b.size] = c
	b.raw[b.size] = rawKey
	b.transforms[b.size] = transformNone
	b.size++
}

// Pop removes and returns the last cell (for revert). ok is false on an
// empty buffer.
func (b *Buffer) Pop() (c Char, ok bool) {
	if b.size == 0 {
		return Char{}, false
	}
	b.size--
	return b.chars[b.size], true
}

// At returns the cell at logical index i (0 == oldest).
func (b *Buffer) At(i int) Char { return b.chars[i] }

// SetAt mutates the cell at logical index i in place, recording kind as
// its most recent transform.
func (b *Buffer) SetAt(i int, c Char, kind transformKind) {
	b.chars[i] = c
	b.transforms[i] = kind
}

// LastTransform returns the transform id of the most recently written
// cell, or transformNone on an empty buffer.
func (b *Buffer) LastTransform() transformKind {
	if b.size == 0 {
		return transformNone
	}
	return b.transforms[b.size-1]
}

// Clear empties the buffer and its raw keystroke log (word boundary).
func (b *Buffer) Clear() {
	b.size = 0
	b.rawLog = b.rawLog[:0]
}

// RecordRawKey appends a keystroke to the word-level raw log, used for
// ESC restore. Call this for every keystroke that reaches the pipeline,
// including ones that end up rejected or deferred.
func (b *Buffer) RecordRawKey(r rune) {
	b.rawLog = append(b.rawLog, r)
}

// RawLog returns the literal ASCII typed so far this word.
func (b *Buffer) RawLog() []rune {
	out := make([]rune, len(b.rawLog))
	copy(out, b.rawLog)
	return out
}

// Snapshot returns a copy of the live cells, used by the syllable
// analyzer (via currentShape) so analysis never mutates the live buffer.
func (b *Buffer) Snapshot() []Char {
	out := make([]Char, b.size)
	copy(out, b.chars[:b.size])
	return out
}

// RawText renders the buffer's per-cell raw keystrokes (not the full
// rawLog — this is the "what letter started each cell" projection).
func (b *Buffer) RawText() string {
	runes := make([]rune, b.size)
	copy(runes, b.raw[:b.size])
	return string(runes)
}

// ComposedText renders each live cell to its display rune (C5/C6
// output) and concatenates them.
func (b *Buffer) ComposedText() string {
	runes := make([]rune, 0, b.size)
	for i := 0; i < b.size; i++ {
		runes = append(runes, renderChar(b.chars[i]))
	}
	return string(runes)
}
