// Command govietcli feeds a line of ASCII text through the engine
// keystroke-by-keystroke and prints the resulting preedit/commit trace.
// It exists for manual QA of the matrices and pipeline without wiring up
// a real keyboard hook.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/username/goviet/internal/engine"
	"github.com/username/goviet/pkg/ime"
)

func main() {
	method := flag.String("method", "telex", "keystroke convention: telex or vni")
	modern := flag.Bool("modern", false, "use modern tone placement")
	englishRestore := flag.Bool("english-restore", true, "auto-restore likely English words")
	shortcutFile := flag.String("shortcuts", "", "path to a trigger=replacement shortcut file, one rule per line")
	verbose := flag.Bool("v", false, "log each keystroke's Result")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFor(*verbose),
	}))

	eng := ime.New()
	switch strings.ToLower(*method) {
	case "vni":
		eng.SetMethod(engine.VNI)
	case "telex":
		eng.SetMethod(engine.Telex)
	default:
		fmt.Fprintf(os.Stderr, "unknown method %q, using telex\n", *method)
	}
	eng.SetModern(*modern)
	eng.SetEnglishAutoRestore(*englishRestore)

	if *shortcutFile != "" {
		if err := loadShortcuts(eng, *shortcutFile); err != nil {
			logger.Error("loading shortcut file", "path", *shortcutFile, "err", err)
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		runInteractive(eng, logger)
		return
	}
	for _, line := range args {
		fmt.Println(replay(eng, line, logger))
	}
}

// loadShortcuts reads "trigger=replacement" lines, grounded in the same
// plain-text config convention the teacher uses for its shortcut table.
func loadShortcuts(eng *ime.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open shortcut file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.SplitN(text, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("shortcut file %s:%d: expected trigger=replacement", path, line)
		}
		eng.AddShortcut(parts[0], parts[1])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read shortcut file: %w", err)
	}
	return nil
}

func runInteractive(eng *ime.Engine, logger *slog.Logger) {
	fmt.Println("govietcli: type a line and press enter (ctrl-d to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(replay(eng, scanner.Text(), logger))
	}
}

// replay feeds line through Process one rune at a time and returns the
// final preedit/commit text, matching what a host's text field would
// show after applying each Result in turn.
func replay(eng *ime.Engine, line string, logger *slog.Logger) string {
	var committed strings.Builder
	for _, r := range line {
		res := eng.ProcessKey(r, false, false, false)
		logger.Debug("keystroke", "key", string(r), "action", res.Action,
			"backspace", res.Backspace, "chars", string(res.Chars))
		applyResult(&committed, res)
	}
	return committed.String()
}

// applyResult mutates committed the way a real text field would on
// receiving a Send/Restore instruction: delete Backspace runes from the
// tail, then append Chars.
func applyResult(committed *strings.Builder, res engine.Result) {
	if res.Action == engine.ActionNone {
		return
	}
	text := []rune(committed.String())
	cut := len(text) - int(res.Backspace)
	if cut < 0 {
		cut = 0
	}
	text = text[:cut]
	committed.Reset()
	committed.WriteString(string(text))
	committed.WriteString(string(res.Chars))
}

func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
