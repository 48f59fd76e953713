package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/username/goviet/internal/engine"
	"github.com/username/goviet/pkg/ime"
)

// Service adapts a pkg/ime.Engine to the JSON handlers below. It holds
// no state of its own; every call is forwarded straight to the engine,
// which already serializes access behind its own mutex.
type Service struct {
	engine *ime.Engine
}

// NewService wraps an engine for HTTP export.
func NewService(e *ime.Engine) *Service { return &Service{engine: e} }

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// handleHealth is a liveness probe for the settings UI / tray to confirm
// the daemon is up before attempting D-Bus or keystroke wiring.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetBuffer returns the current composed preedit text (§6's
// get_buffer, over JSON instead of a UTF-32 out-pointer).
func (s *Service) handleGetBuffer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"buffer": s.engine.GetBuffer()})
}

type configRequest struct {
	Enabled            *bool   `json:"enabled,omitempty"`
	Method             *string `json:"method,omitempty"` // "telex" or "vni"
	SkipWShortcut      *bool   `json:"skip_w_shortcut,omitempty"`
	BracketShortcut    *bool   `json:"bracket_shortcut,omitempty"`
	EscRestore         *bool   `json:"esc_restore,omitempty"`
	FreeTone           *bool   `json:"free_tone,omitempty"`
	Modern             *bool   `json:"modern,omitempty"`
	EnglishAutoRestore *bool   `json:"english_auto_restore,omitempty"`
	AutoCapitalize     *bool   `json:"auto_capitalize,omitempty"`
}

// handleSetConfig applies any present field of a configRequest; absent
// fields are left untouched. This mirrors §6's independent per-flag
// setters -- one JSON body can flip several at once, but each flag maps
// 1:1 to a single Controller setter, same as the D-Bus object.
func (s *Service) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Enabled != nil {
		s.engine.SetEnabled(*req.Enabled)
	}
	if req.Method != nil {
		switch *req.Method {
		case "telex":
			s.engine.SetMethod(engine.Telex)
		case "vni":
			s.engine.SetMethod(engine.VNI)
		default:
			writeError(w, http.StatusBadRequest, "method must be \"telex\" or \"vni\"")
			return
		}
	}
	if req.SkipWShortcut != nil {
		s.engine.SetSkipWShortcut(*req.SkipWShortcut)
	}
	if req.BracketShortcut != nil {
		s.engine.SetBracketShortcut(*req.BracketShortcut)
	}
	if req.EscRestore != nil {
		s.engine.SetEscRestore(*req.EscRestore)
	}
	if req.FreeTone != nil {
		s.engine.SetFreeTone(*req.FreeTone)
	}
	if req.Modern != nil {
		s.engine.SetModern(*req.Modern)
	}
	if req.EnglishAutoRestore != nil {
		s.engine.SetEnglishAutoRestore(*req.EnglishAutoRestore)
	}
	if req.AutoCapitalize != nil {
		s.engine.SetAutoCapitalize(*req.AutoCapitalize)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "applied"})
}

type shortcutRequest struct {
	Trigger     string `json:"trigger"`
	Replacement string `json:"replacement"`
}

// handleAddShortcut registers a trigger -> replacement rule (§6's
// add_shortcut). Empty trigger/replacement is accepted here and simply
// becomes the engine's documented silent no-op.
func (s *Service) handleAddShortcut(w http.ResponseWriter, r *http.Request) {
	var req shortcutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.engine.AddShortcut(req.Trigger, req.Replacement)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// handleRemoveShortcut deletes a single trigger by its path segment.
func (s *Service) handleRemoveShortcut(w http.ResponseWriter, r *http.Request) {
	trigger := urlParam(r, "trigger")
	s.engine.RemoveShortcut(trigger)
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// handleClearShortcuts drops every registered trigger (§6's
// clear_shortcuts).
func (s *Service) handleClearShortcuts(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearShortcuts()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleClearWord and handleClearAll expose §6's clear_word/clear_all
// for a settings UI that wants to force a reset (e.g. after the user
// switches the focused application).
func (s *Service) handleClearWord(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearWord()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Service) handleClearAll(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearAll()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
