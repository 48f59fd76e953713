package engine

import "unicode"

// transformMethod is the per-keystroke-convention surface the pipeline
// dispatches against; telexMethod and vniMethod each implement it.
type transformMethod interface {
	Name() string
	KeyCategory(r rune) keyCategory
	MarkFor(r rune) (Mark, bool)
	IsMarkRemove(r rune) bool
	IsStroke(r rune) bool
	DoubleShape(base rune) (Tone, bool)
	WShape(base rune) (Tone, bool)
	IsWKey(r rune) bool
}

// digitShaper is implemented only by vniMethod: VNI places tone shapes by
// trailing digit rather than by doubling or 'w'.
type digitShaper interface {
	DigitShape(r rune) (Tone, bool)
}

func (c *Controller) method() transformMethod {
	if c.cfg.Method == VNI {
		return vniMethod{}
	}
	return telexMethod{}
}

// advanceState runs U2/U3's compact dispatch table to track the word's
// coarse shape (start -> has-initial -> has-vowel -> has-final) as each
// keystroke's category arrives, a single lookup replacing what would
// otherwise be a per-key if/else chain just to know "are we past the
// nucleus yet". The fine-grained cell mutation is still decided by the
// richer per-method stage functions below; this only drives dstate.
func (c *Controller) advanceState(key rune) {
	cat := c.method().KeyCategory(unicode.ToLower(key))
	c.dstate = dispatch[c.dstate][cat].next
}

// runPipeline is C5: the seven-stage transform pipeline for one regular
// keystroke. Stages 1-5 claim the keystroke when they apply;
// stage 6 (appendLiteral) always claims if nothing earlier did. Stage 7
// (shortcut expansion) runs separately, after the cell-level transform,
// from applyLetter.
func (c *Controller) runPipeline(key rune, caps bool) {
	lower := unicode.ToLower(key)
	m := c.method()

	if c.cfg.BracketShortcut && (lower == '[' || lower == ']') {
		c.applyBracketShortcut(lower, caps)
		return
	}

	// Stage 1: đ-stroke.
	if m.IsStroke(lower) && c.applyStroke() {
		return
	}

	// Stage 2: tone shape (doubled vowel / w for Telex, digit for VNI).
	if c.applyToneShape(lower, m) {
		return
	}

	// Stage 3: pitch mark.
	if mark, ok := m.MarkFor(lower); ok {
		if c.applyMark(mark) {
			return
		}
	}

	// Stage 4: mark removal.
	if m.IsMarkRemove(lower) {
		if c.applyMarkRemove() {
			return
		}
	}

	// Stage 5: Telex's bare 'w' -> ư shortcut.
	if c.cfg.Method == Telex && m.IsWKey(lower) && !c.cfg.SkipWShortcut {
		if c.applyWVowelShortcut(caps) {
			return
		}
	}

	// Stage 6: plain letter.
	c.appendLiteral(key, caps)
}

func (c *Controller) applyStroke() bool {
	for i := 0; i < c.buf.Len(); i++ {
		cell := c.buf.At(i)
		if cell.Key == 'd' && !cell.Stroke {
			prev := cell
			cell.Stroke = true
			c.buf.SetAt(i, cell, transformStroke)
			c.setLastTransform(transformStroke, 'd', i, prev)
			return true
		}
	}
	return false
}

func (c *Controller) applyToneShape(lower rune, m transformMethod) bool {
	if c.cfg.Method == VNI {
		ds, ok := m.(digitShaper)
		if !ok {
			return false
		}
		tone, ok := ds.DigitShape(lower)
		if !ok {
			return false
		}
		return c.applyToneToTarget(tone, vniDigitFor(tone))
	}

	tm, _ := m.(telexMethod)
	if lower == 'w' {
		return c.applyWShape(tm)
	}
	if isVowelLetter(lower) {
		return c.applyDoubleShape(lower, tm)
	}
	return false
}

func (c *Controller) applyDoubleShape(lower rune, tm telexMethod) bool {
	n := c.buf.Len()
	if n == 0 {
		return false
	}
	last := c.buf.At(n - 1)
	if last.Key != lower || last.Tone != ToneShapeNone {
		return false
	}
	tone, ok := tm.DoubleShape(lower)
	if !ok {
		return false
	}
	prev := last
	last.Tone = tone
	kind := toneTransformFor(tone)
	c.buf.SetAt(n-1, last, kind)
	c.setLastTransform(kind, lower, n-1, prev)
	return true
}

func (c *Controller) applyWShape(tm telexMethod) bool {
	n := c.buf.Len()
	if n >= 2 {
		a := c.buf.At(n - 2)
		b := c.buf.At(n - 1)
		if a.Key == 'u' && b.Key == 'o' && a.Tone == ToneShapeNone && b.Tone == ToneShapeNone {
			prevB := b
			a.Tone, b.Tone = ToneHorn, ToneHorn
			c.buf.SetAt(n-2, a, transformToneHorn)
			c.buf.SetAt(n-1, b, transformToneHorn)
			c.setLastTransform(transformToneHorn, 'w', n-1, prevB)
			return true
		}
	}
	if n >= 1 {
		last := c.buf.At(n - 1)
		if tone, ok := tm.WShape(last.Key); ok && last.Tone == ToneShapeNone {
			prev := last
			last.Tone = tone
			kind := toneTransformFor(tone)
			c.buf.SetAt(n-1, last, kind)
			c.setLastTransform(kind, 'w', n-1, prev)
			return true
		}
	}
	return false
}

func (c *Controller) applyToneToTarget(tone Tone, digit rune) bool {
	for i := c.buf.Len() - 1; i >= 0; i-- {
		cell := c.buf.At(i)
		if letterClassOf[cell.Key]&clsVowel == 0 || cell.Tone != ToneShapeNone {
			continue
		}
		if !modifierValid(cell.Key, tone) {
			continue
		}
		prev := cell
		cell.Tone = tone
		kind := toneTransformFor(tone)
		c.buf.SetAt(i, cell, kind)
		c.setLastTransform(kind, digit, i, prev)
		return true
	}
	return false
}

func toneTransformFor(t Tone) transformKind {
	switch t {
	case ToneCircumflex:
		return transformToneCircumflex
	case ToneHorn:
		return transformToneHorn
	case ToneBreve:
		return transformToneBreve
	}
	return transformNone
}

func vniDigitFor(t Tone) rune {
	switch t {
	case ToneCircumflex:
		return '6'
	case ToneHorn:
		return '7'
	case ToneBreve:
		return '8'
	}
	return 0
}

// applyMark is stage 3: resolve the current syllable's placement (C6) and
// apply the mark to that cell. If the result fails Rule 7 (stop-final
// tone restriction) and free_tone is off, the cell is rolled back and the
// keystroke is reported unclaimed, so the caller falls through to a
// literal insertion per spec §4.2.
func (c *Controller) applyMark(mark Mark) bool {
	shape, afterQ, ok := c.currentShape()
	if !ok {
		return false
	}
	if deferDecide(pendingMark, shape.coda != "") == deferCancel {
		return false
	}
	onsetLen := len([]rune(shape.onset))
	idx := resolvePlacement(shape, onsetLen, afterQ, c.cfg.Modern)
	if idx < 0 || idx >= c.buf.Len() {
		return false
	}
	cell := c.buf.At(idx)
	prev := cell
	cell.Mark = mark
	c.buf.SetAt(idx, cell, markTransformFor(mark))

	if !c.cfg.FreeTone && !checkStopTone(shape.coda, mark) {
		c.buf.SetAt(idx, prev, transformNone)
		return false
	}

	c.setLastTransform(markTransformFor(mark), keyForMark(mark, c.cfg.Method), idx, prev)
	return true
}

func (c *Controller) applyMarkRemove() bool {
	shape, _, ok := c.currentShape()
	if !ok {
		return false
	}
	onsetLen := len([]rune(shape.onset))
	end := onsetLen + len(shape.nucleus)
	if end > c.buf.Len() {
		end = c.buf.Len()
	}
	for i := onsetLen; i < end; i++ {
		cell := c.buf.At(i)
		if cell.Mark != MarkNone {
			prev := cell
			cell.Mark = MarkNone
			c.buf.SetAt(i, cell, transformMarkClear)
			c.setLastTransform(transformMarkClear, markRemoveKey(c.cfg.Method), i, prev)
			return true
		}
	}
	return false
}

func (c *Controller) applyWVowelShortcut(caps bool) bool {
	for i := 0; i < c.buf.Len(); i++ {
		if letterClassOf[c.buf.At(i).Key]&clsVowel != 0 {
			return false
		}
	}
	c.buf.Push(Char{Key: 'u', Caps: caps, Tone: ToneHorn}, 'w')
	c.lastTransform = transformNone
	return true
}

// applyBracketShortcut is Telex's explicit bracket-mode shortcut: '[' ->
// ơ, ']' -> ư, inserted unconditionally (unlike the bare-w shortcut, it
// does not require the buffer to still be vowel-free).
func (c *Controller) applyBracketShortcut(lower rune, caps bool) {
	if lower == '[' {
		c.buf.Push(Char{Key: 'o', Caps: caps, Tone: ToneHorn}, '[')
	} else {
		c.buf.Push(Char{Key: 'u', Caps: caps, Tone: ToneHorn}, ']')
	}
	c.lastTransform = transformNone
}

func (c *Controller) appendLiteral(key rune, caps bool) {
	lower := unicode.ToLower(key)
	c.buf.Push(Char{Key: lower, Caps: caps}, lower)
	c.lastTransform = transformNone
}

// applyImmediateShortcuts is stage 7: checks whether the raw keys just
// typed end with a registered Immediate trigger and, if so, swaps the
// matched cells for the replacement text. Triggers classified Immediate
// always contain a non-letter rune, which never gets consumed by stages
// 1-5, so the trigger's rune count always equals the number of trailing
// cells it produced.
func (c *Controller) applyImmediateShortcuts() {
	tail := c.buf.RawLog()
	s, ok := c.shortcuts.matchImmediate(tail)
	if !ok {
		return
	}
	n := len([]rune(s.Trigger))
	if n > c.buf.Len() {
		return
	}
	for i := 0; i < n; i++ {
		c.buf.Pop()
	}
	for _, r := range s.Replacement {
		c.buf.Push(Char{Key: r}, r)
	}
	c.lastTransform = transformNone
}

func (c *Controller) currentShape() (syllableShape, bool, bool) {
	var afterQ bool
	shape, _ := analyze(c.buf.Snapshot(), &afterQ)
	return shape, afterQ, shape.ok
}

func (c *Controller) setLastTransform(kind transformKind, key rune, idx int, prev Char) {
	c.lastTransform = kind
	c.lastTransformKey = unicode.ToLower(key)
	c.lastTransformIdx = idx
	c.prevChar = prev
}

func markTransformFor(m Mark) transformKind {
	switch m {
	case MarkAcute:
		return transformMarkAcute
	case MarkGrave:
		return transformMarkGrave
	case MarkHook:
		return transformMarkHook
	case MarkTilde:
		return transformMarkTilde
	case MarkDot:
		return transformMarkDot
	}
	return transformNone
}

func keyForMark(mark Mark, im InputMethod) rune {
	table := telexMarkKeys
	if im == VNI {
		table = vniMarkKeys
	}
	for k, v := range table {
		if v == mark {
			return k
		}
	}
	return 0
}

func markRemoveKey(im InputMethod) rune {
	if im == VNI {
		return '0'
	}
	return 'z'
}

// tryDoubleKeyRevert is BR-02: if the previous keystroke applied a
// transform and this keystroke repeats the exact key that triggered it,
// undo the transform and insert the repeated key as a literal new cell,
// rather than running it back through the pipeline.
func (c *Controller) tryDoubleKeyRevert(key rune, caps bool) bool {
	if !c.cfg.DoubleKeyRevert || c.lastTransform == transformNone {
		return false
	}
	if unicode.ToLower(key) != c.lastTransformKey {
		return false
	}
	idx := c.lastTransformIdx
	if idx < 0 || idx >= c.buf.Len() {
		return false
	}
	c.buf.SetAt(idx, c.prevChar, transformNone)
	c.lastTransform = transformNone
	c.appendLiteral(key, caps)
	c.applyImmediateShortcuts()
	return true
}
