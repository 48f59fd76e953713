package engine

import "unicode"

// Controller is the top-level engine state (C9): it owns the circular
// buffer, the shortcut table, and the configuration flags, and exposes
// the single logical keystroke operation, Process. Callers are expected
// to serialize calls to Process and the setters (see pkg/ime for the
// mutex-guarded wrapper); Controller itself does no locking.
type Controller struct {
	cfg       Config
	enabled   bool
	buf       *Buffer
	shortcuts *ShortcutManager

	emitted []rune // composed runes already sent to the host this word

	lastTransform    transformKind
	lastTransformKey rune // lowercased key that produced lastTransform
	lastTransformIdx int
	prevChar         Char // cell state before lastTransform, for revert

	lastWordRaw      string // snapshot for post-commit ESC restore
	lastWordComposed string
	canRestoreLast   bool

	dstate dispatchState // U2/U3 coarse per-word state, for pending/defer bookkeeping

	capitalizeNext bool // set after a sentence terminator when AutoCapitalize is on
}

// NewController creates a ready-to-use engine with the given configuration.
func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:       cfg,
		enabled:   true,
		buf:       NewBuffer(),
		shortcuts: NewShortcutManager(),
	}
}

// SetEnabled enables or disables transformation. Disabling clears the
// in-progress word, matching spec §4.8's "pipeline untouched" guarantee
// the next time the engine is re-enabled.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.ClearAll()
	}
}

// SetMethod switches between Telex and VNI.
func (c *Controller) SetMethod(m InputMethod) { c.cfg.Method = m }

// SetSkipWShortcut toggles Telex's bare 'w' -> ư shortcut.
func (c *Controller) SetSkipWShortcut(v bool) { c.cfg.SkipWShortcut = v }

// SetBracketShortcut toggles '['/']' -> ơ/ư.
func (c *Controller) SetBracketShortcut(v bool) { c.cfg.BracketShortcut = v }

// SetEscRestore toggles ESC restore.
func (c *Controller) SetEscRestore(v bool) { c.cfg.EscRestore = v }

// SetFreeTone toggles skipping the Rule 7 stop-final tone check (see
// Config.FreeTone).
func (c *Controller) SetFreeTone(v bool) { c.cfg.FreeTone = v }

// SetModern toggles modern vs traditional tone placement.
func (c *Controller) SetModern(v bool) { c.cfg.Modern = v }

// SetEnglishAutoRestore toggles the English-word heuristic.
func (c *Controller) SetEnglishAutoRestore(v bool) { c.cfg.EnglishAutoRestore = v }

// SetAutoCapitalize toggles capitalization after sentence terminators.
func (c *Controller) SetAutoCapitalize(v bool) { c.cfg.AutoCapitalize = v }

// AddShortcut registers a trigger -> replacement rule.
func (c *Controller) AddShortcut(trigger, replacement string) { c.shortcuts.Add(trigger, replacement) }

// RemoveShortcut deletes a trigger.
func (c *Controller) RemoveShortcut(trigger string) { c.shortcuts.Remove(trigger) }

// ClearShortcuts removes every trigger.
func (c *Controller) ClearShortcuts() { c.shortcuts.Clear() }

// ClearWord clears the in-progress word, keeping the last-committed-word
// snapshot available for ESC restore.
func (c *Controller) ClearWord() {
	c.buf.Clear()
	c.emitted = nil
	c.lastTransform = transformNone
	c.dstate = stateStart
}

// ClearAll clears the in-progress word and the committed-word history.
func (c *Controller) ClearAll() {
	c.ClearWord()
	c.lastWordRaw = ""
	c.lastWordComposed = ""
	c.canRestoreLast = false
	c.capitalizeNext = false
}

// GetBuffer returns the current composed buffer as runes (introspection,
// spec §6's get_buffer).
func (c *Controller) GetBuffer() []rune {
	return []rune(c.buf.ComposedText())
}

// Process is the engine's single logical operation (C9): it consumes one
// keystroke and returns a bounded edit instruction.
func (c *Controller) Process(key rune, caps, ctrl, shift bool) Result {
	if !c.enabled || ctrl {
		return Result{Action: ActionNone}
	}

	switch key {
	case KeyBackspace:
		return c.processBackspace()
	case KeyEscape:
		return c.processEscape()
	}

	if c.cfg.BracketShortcut && c.cfg.Method == Telex && (key == '[' || key == ']') {
		return c.processLetter(key, caps)
	}

	if lastWordBreak(key) || key == KeyReturn {
		return c.processWordBoundary(key)
	}

	return c.processLetter(key, caps)
}

func (c *Controller) processEscape() Result {
	if !c.cfg.EscRestore {
		return Result{Action: ActionNone}
	}
	if c.buf.Len() > 0 {
		raw := c.buf.RawLog()
		res := Result{
			Action:    ActionRestore,
			Backspace: clampBackspace(len(c.emitted)),
			Chars:     clampChars(raw),
		}
		c.ClearWord()
		return res
	}
	if c.canRestoreLast {
		res := Result{
			Action:    ActionRestore,
			Backspace: clampBackspace(len([]rune(c.lastWordComposed))),
			Chars:     clampChars([]rune(c.lastWordRaw)),
		}
		c.canRestoreLast = false
		return res
	}
	return Result{Action: ActionNone}
}

func (c *Controller) processBackspace() Result {
	raw := c.buf.RawLog()
	if len(raw) == 0 {
		return Result{Action: ActionNone}
	}
	raw = raw[:len(raw)-1]

	c.buf.Clear()
	c.lastTransform = transformNone
	for _, r := range raw {
		c.buf.RecordRawKey(r)
		c.applyLetter(r, unicode.IsUpper(r))
	}

	newComposed := []rune(c.buf.ComposedText())
	res := c.diffResult(newComposed)
	c.emitted = newComposed
	return res
}

func (c *Controller) processWordBoundary(key rune) Result {
	raw := string(c.buf.RawLog())
	composed := c.buf.ComposedText()

	if c.cfg.AutoCapitalize && isSentenceTerminator(key) {
		c.capitalizeNext = true
	}

	if c.cfg.EnglishAutoRestore && shouldAutoRestore(raw, composed) {
		chars := append([]rune(raw), key)
		res := Result{
			Action:    ActionRestore,
			Backspace: clampBackspace(len([]rune(composed))),
			Chars:     clampChars(chars),
		}
		c.lastWordRaw, c.lastWordComposed = raw, raw
		c.canRestoreLast = true
		c.ClearWord()
		return res
	}

	if composed == raw {
		if s, ok := c.shortcuts.matchWordBoundary([]rune(raw)); ok {
			trigger := []rune(s.Trigger)
			replacement := []rune(s.Replacement)
			chars := append(append([]rune{}, replacement...), key)
			res := Result{
				Action:    ActionSend,
				Backspace: clampBackspace(len(trigger)),
				Chars:     clampChars(chars),
			}
			c.lastWordRaw, c.lastWordComposed = s.Replacement, s.Replacement
			c.canRestoreLast = true
			c.ClearWord()
			return res
		}
	}

	c.lastWordRaw, c.lastWordComposed = raw, composed
	c.canRestoreLast = true
	c.ClearWord()
	return Result{Action: ActionSend, Backspace: 0, Chars: []rune{key}}
}

func (c *Controller) processLetter(key rune, caps bool) Result {
	if c.capitalizeNext && c.buf.Len() == 0 {
		caps = true
		c.capitalizeNext = false
	}

	c.buf.RecordRawKey(applyCase(key, caps))
	c.advanceState(key)

	if c.tryDoubleKeyRevert(key, caps) {
		newComposed := []rune(c.buf.ComposedText())
		res := c.diffResult(newComposed)
		c.emitted = newComposed
		return res
	}

	c.applyLetter(key, caps)

	newComposed := []rune(c.buf.ComposedText())
	res := c.diffResult(newComposed)
	c.emitted = newComposed
	return res
}

// applyLetter runs the seven-stage transform pipeline for a single
// regular (non-boundary, non-revert) keystroke, without touching
// emitted/diff bookkeeping -- used both by normal processing and by
// backspace's replay.
func (c *Controller) applyLetter(key rune, caps bool) {
	c.runPipeline(key, caps)
	c.applyImmediateShortcuts()
}

func (c *Controller) diffResult(newComposed []rune) Result {
	common := 0
	for common < len(c.emitted) && common < len(newComposed) && c.emitted[common] == newComposed[common] {
		common++
	}
	backspace := len(c.emitted) - common
	chars := newComposed[common:]
	return Result{
		Action:    ActionSend,
		Backspace: clampBackspace(backspace),
		Chars:     clampChars(chars),
	}
}

func clampBackspace(n int) uint8 {
	if n > maxBackspace {
		n = maxBackspace
	}
	if n < 0 {
		n = 0
	}
	return uint8(n)
}

func clampChars(rs []rune) []rune {
	if len(rs) > maxChars {
		rs = rs[:maxChars]
	}
	out := make([]rune, len(rs))
	copy(out, rs)
	return out
}

func applyCase(key rune, caps bool) rune {
	if caps {
		return unicode.ToUpper(key)
	}
	return unicode.ToLower(key)
}
