// Command govietd is the D-Bus daemon that exposes the engine to a
// frontend (Fcitx5, ibus, or any other D-Bus capable input method
// shell). It owns exactly one pkg/ime.Engine and exports it as a single
// session-bus object.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/username/goviet/internal/engine"
	"github.com/username/goviet/internal/httpapi"
	"github.com/username/goviet/pkg/ime"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object frontends talk to.
type InputEngine struct {
	engine *ime.Engine
	log    *slog.Logger
}

// NewInputEngine wraps an ime.Engine for D-Bus export.
func NewInputEngine(e *ime.Engine, log *slog.Logger) *InputEngine {
	return &InputEngine{engine: e, log: log}
}

// ProcessKey handles one keystroke from the frontend. codepoint is the
// Unicode codepoint of the key (not an X11 keysym); special keys use the
// engine's own KeyBackspace/KeyEscape/KeyReturn constants.
func (e *InputEngine) ProcessKey(codepoint int32, caps, ctrlHeld, shift bool) (uint8, uint8, string, *dbus.Error) {
	res := e.engine.ProcessKey(rune(codepoint), caps, ctrlHeld, shift)
	e.log.Debug("key processed",
		"codepoint", codepoint, "action", res.Action, "backspace", res.Backspace, "chars", string(res.Chars))
	return uint8(res.Action), res.Backspace, string(res.Chars), nil
}

// SetEnabled enables or disables transformation.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	e.log.Info("enabled changed", "enabled", enabled)
	return nil
}

// SetMethod switches between Telex (0) and VNI (1).
func (e *InputEngine) SetMethod(method uint8) *dbus.Error {
	e.engine.SetMethod(engine.InputMethod(method))
	e.log.Info("method changed", "method", method)
	return nil
}

// SetModern toggles modern vs traditional tone placement.
func (e *InputEngine) SetModern(modern bool) *dbus.Error {
	e.engine.SetModern(modern)
	return nil
}

// SetEnglishAutoRestore toggles the English-word heuristic.
func (e *InputEngine) SetEnglishAutoRestore(v bool) *dbus.Error {
	e.engine.SetEnglishAutoRestore(v)
	return nil
}

// AddShortcut registers a trigger -> replacement rule.
func (e *InputEngine) AddShortcut(trigger, replacement string) *dbus.Error {
	e.engine.AddShortcut(trigger, replacement)
	return nil
}

// GetBuffer returns the current preedit text.
func (e *InputEngine) GetBuffer() (string, *dbus.Error) {
	return e.engine.GetBuffer(), nil
}

// ClearAll resets the in-progress word and the ESC-restore history.
func (e *InputEngine) ClearAll() *dbus.Error {
	e.engine.ClearAll()
	return nil
}

func main() {
	httpAddr := flag.String("http", "127.0.0.1:7878", "loopback address for the settings-UI HTTP control API; empty disables it")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Error("connect to session bus", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		logger.Error("request bus name", "err", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		logger.Error("bus name already taken; another instance may be running")
		os.Exit(1)
	}

	sharedEngine := ime.New()

	inputEngine := NewInputEngine(sharedEngine, logger)
	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		logger.Error("export object", "err", err)
		os.Exit(1)
	}

	fmt.Println("govietd running")
	fmt.Printf("  service:     %s\n", serviceName)
	fmt.Printf("  object path: %s\n", objectPath)
	logger.Info("ready", "service", serviceName, "object_path", objectPath)

	if *httpAddr != "" {
		srv := &http.Server{Addr: *httpAddr, Handler: httpapi.NewRouter(sharedEngine, logger)}
		go func() {
			logger.Info("http control api listening", "addr", *httpAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("http control api stopped", "err", err)
			}
		}()
		defer srv.Close()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("shutting down")
}
