// Package ime is the exported, mutex-guarded surface of the Vietnamese
// input method engine (spec §6): a single Engine value wraps one
// internal/engine.Controller and serializes every call, so it is safe
// to share across the goroutines a host process (a D-Bus export, a CLI
// harness) typically drives it from.
package ime

import (
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/username/goviet/internal/engine"
)

// Engine is the public entry point. The zero value is not usable; call
// New.
type Engine struct {
	mu   sync.Mutex
	ctrl *engine.Controller
}

// New returns a ready Engine with the default configuration (Telex, ESC
// restore on, traditional tone placement).
func New() *Engine {
	return &Engine{ctrl: engine.NewController(engine.DefaultConfig())}
}

// ProcessKey consumes one keystroke and returns the bounded edit
// instruction the host should apply.
func (e *Engine) ProcessKey(key rune, caps, ctrl, shift bool) engine.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctrl.Process(key, caps, ctrl, shift)
}

// SetEnabled enables or disables transformation.
func (e *Engine) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetEnabled(enabled)
}

// SetMethod switches between Telex and VNI.
func (e *Engine) SetMethod(m engine.InputMethod) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetMethod(m)
}

// SetSkipWShortcut toggles Telex's bare 'w' -> ư shortcut.
func (e *Engine) SetSkipWShortcut(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetSkipWShortcut(v)
}

// SetBracketShortcut toggles '['/']' -> ơ/ư.
func (e *Engine) SetBracketShortcut(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetBracketShortcut(v)
}

// SetEscRestore toggles ESC restore.
func (e *Engine) SetEscRestore(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetEscRestore(v)
}

// SetFreeTone toggles skipping the Rule 7 stop-final tone check when a
// mark is applied.
func (e *Engine) SetFreeTone(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetFreeTone(v)
}

// SetModern toggles modern vs traditional tone placement.
func (e *Engine) SetModern(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetModern(v)
}

// SetEnglishAutoRestore toggles the English-word heuristic.
func (e *Engine) SetEnglishAutoRestore(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetEnglishAutoRestore(v)
}

// SetAutoCapitalize toggles capitalization after sentence terminators.
func (e *Engine) SetAutoCapitalize(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.SetAutoCapitalize(v)
}

// AddShortcut registers a trigger -> replacement text-expansion rule.
func (e *Engine) AddShortcut(trigger, replacement string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.AddShortcut(trigger, replacement)
}

// RemoveShortcut deletes a trigger.
func (e *Engine) RemoveShortcut(trigger string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.RemoveShortcut(trigger)
}

// ClearShortcuts removes every registered trigger.
func (e *Engine) ClearShortcuts() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.ClearShortcuts()
}

// ClearWord clears the in-progress word.
func (e *Engine) ClearWord() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.ClearWord()
}

// ClearAll clears the in-progress word and the committed-word history
// ESC restore would otherwise fall back to.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.ClearAll()
}

// GetBuffer returns the current composed buffer, NFC-normalized since
// precomposed Vietnamese letters can also be represented as base+combining
// sequences and downstream consumers (terminals, GTK/Qt text widgets)
// expect the former.
func (e *Engine) GetBuffer() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return norm.NFC.String(string(e.ctrl.GetBuffer()))
}
