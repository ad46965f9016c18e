// Package dispatcher maintains a registry of command.Command
// implementations and the single master automata.NFA that routes input
// to them. Mutation (Add/Remove) is single-writer; the resulting NFA is
// immutable and safe for concurrent readers (Dispatch/TabComplete) once
// published.
package dispatcher

// Config tunes the dispatcher's internal strategy selection.
type Config struct {
	// MinLiteralPrefixCommands is the number of registered commands
	// with a required literal prefix (automata.RequiredLiteralPrefix)
	// below which building an Aho-Corasick prefilter isn't worth its
	// own construction cost; the master NFA is searched directly
	// instead. This threshold is kept low since building the automaton
	// is cheap relative to one NFA walk per keystroke.
	MinLiteralPrefixCommands int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MinLiteralPrefixCommands: 2,
	}
}
