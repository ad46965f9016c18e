package command

// DynamicCompleter is implemented by commands whose tab completions
// can't be fully described by their regex — an online-player-name
// argument being the canonical example, since the set of valid
// completions changes at runtime and the regex can only ever
// over-approximate it as "any word". The dispatcher completes input from
// the master NFA's grammar as usual and, in addition, asks every
// registered DynamicCompleter for completions of the same input.
type DynamicCompleter interface {
	Command

	// CompleteDynamic returns candidate completions for prefix, the
	// whole input passed to the dispatcher's TabComplete. Each returned
	// string is used as a complete completion of the input, not appended
	// to it. Order is not significant; the dispatcher sorts and
	// deduplicates across all candidates.
	CompleteDynamic(prefix string) []string
}
