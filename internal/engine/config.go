package engine

// Config holds the per-process configuration flags of spec §6's setter
// table. All fields are safe zero-valued except Method, which defaults
// to Telex, and the feature flags that default on in DefaultConfig.
type Config struct {
	Method InputMethod

	SkipWShortcut       bool // Telex: skip the bare 'w' -> ư shortcut
	BracketShortcut     bool // Telex: '[' -> ơ, ']' -> ư
	EscRestore          bool
	FreeTone            bool // skip the Rule 7 stop-final tone check when applying a mark; the analyzer must still parse the syllable to place the mark
	Modern              bool // modern vs traditional tone placement
	EnglishAutoRestore  bool
	AutoCapitalize      bool
	DoubleKeyRevert     bool // BR-02; on by default, not separately exposed in §6 but needed to run the engine at all
}

// DefaultConfig matches the engine's out-of-the-box behavior.
func DefaultConfig() Config {
	return Config{
		Method:          Telex,
		EscRestore:      true,
		Modern:          false,
		DoubleKeyRevert: true,
	}
}
