package command

// Value is whatever a command's execution produces. The Rust original
// fixes this to u64 (Minecraft command feedback is always an integer);
// this port generalizes it to an empty interface since a Go console
// command is just as likely to return a struct, a string, or nothing.
type Value = any

// Command is the contract the dispatcher drives. A command supplies an
// over-approximating regex used to route input to it, an entry point
// that both parses and executes in one step, and an equality predicate
// used to dedupe registrations and to find a command again on removal.
type Command interface {
	// Regex returns a pattern matching a superset of the inputs this
	// command accepts. It must not use a rejected regex feature (see
	// the automata package's Feature type): anchors, word boundaries
	// and lazy quantifiers are out.
	Regex() string

	// Call attempts to parse and execute input in one step. A
	// *ParseError means the input wasn't shaped for this command and
	// the dispatcher should try another candidate; a *ExecError means
	// this command matched but failed to run, and is surfaced to the
	// caller immediately.
	Call(input string) (Value, error)

	// Equal reports whether other is the same registration as this
	// command, for dedup on Add and lookup on Remove.
	Equal(other Command) bool
}
