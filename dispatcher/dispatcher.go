package dispatcher

import (
	"errors"
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/dispatch/automata"
	"github.com/coregx/dispatch/command"
)

// ErrNoCommand is returned by Dispatch when no registered command's
// grammar accepts any prefix of the input at all (the master NFA's Find
// itself fails), as opposed to a command's typed parser rejecting the
// input after its literal matched.
var ErrNoCommand = errors.New("dispatcher: no command starts with that input")

// Dispatcher holds an ordered registry of commands and the single
// master NFA formed by unioning their regexes. It is a single-writer,
// multi-reader value: Add/Remove mutate it exclusively, while Dispatch
// and TabComplete only need a consistent snapshot of the master NFA
// (see Guarded for a ready-made RWMutex wrapper).
type Dispatcher struct {
	config Config

	commands []command.Command
	// prefixes[i] is automata.RequiredLiteralPrefix() for commands[i]'s
	// regex, or nil if that command's grammar has none. Kept alongside
	// commands so the Aho-Corasick prefilter can be rebuilt without
	// recompiling every regex on every Add.
	prefixes [][]byte

	nfa automata.NFA
	ac  *ahocorasick.Automaton
}

// New returns an empty dispatcher with default configuration.
func New() *Dispatcher {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns an empty dispatcher using cfg.
func NewWithConfig(cfg Config) *Dispatcher {
	return &Dispatcher{config: cfg, nfa: automata.Empty()}
}

// Add registers cmd. Returns false, nil if an equal command (per
// Command.Equal) was already registered; the dispatcher is left
// unchanged. A build failure (malformed or unsupported regex) also
// leaves the dispatcher exactly as it was: the new NFA is only
// installed once every step building it has succeeded.
func (d *Dispatcher) Add(cmd command.Command) (bool, error) {
	for _, existing := range d.commands {
		if existing.Equal(cmd) {
			return false, nil
		}
	}

	addition, err := automata.Compile(cmd.Regex())
	if err != nil {
		return false, err
	}
	id := len(d.commands)
	addition.AssociateWith(id)
	prefix := addition.RequiredLiteralPrefix()

	merged, err := automata.Union(d.nfa, addition)
	if err != nil {
		return false, err
	}

	d.commands = append(d.commands, cmd)
	d.prefixes = append(d.prefixes, prefix)
	d.nfa = merged
	d.rebuildPrefilter()
	return true, nil
}

// Remove unregisters cmd, identified by Command.Equal, and rebuilds the
// master NFA from the remaining commands. It is a no-op (returning nil)
// if cmd was never registered.
//
// Rebuilding from scratch rather than surgically removing cmd's states
// is deliberately simple: commands change far less often than they are
// dispatched against. If the rebuild fails — in practice this only
// happens on state-id exhaustion, since the remaining regexes were all
// already known-good — the removed command is reinserted and the NFA
// rebuilt again before the error is surfaced, so a failed Remove never
// leaves the dispatcher missing a command it claims to still have.
func (d *Dispatcher) Remove(cmd command.Command) error {
	idx := -1
	for i, existing := range d.commands {
		if existing.Equal(cmd) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	removed := d.commands[idx]
	removedPrefix := d.prefixes[idx]

	d.commands = removeAt(d.commands, idx)
	d.prefixes = removeAtBytes(d.prefixes, idx)

	if err := d.rebuild(); err != nil {
		d.commands = insertAt(d.commands, idx, removed)
		d.prefixes = insertAtBytes(d.prefixes, idx, removedPrefix)
		if restoreErr := d.rebuild(); restoreErr != nil {
			panic("dispatcher: could not restore prior registration after a failed rebuild: " + restoreErr.Error())
		}
		return err
	}
	return nil
}

func (d *Dispatcher) rebuild() error {
	nfa := automata.Empty()
	prefixes := make([][]byte, len(d.commands))

	for id, cmd := range d.commands {
		addition, err := automata.Compile(cmd.Regex())
		if err != nil {
			return err
		}
		addition.AssociateWith(id)
		prefixes[id] = addition.RequiredLiteralPrefix()

		merged, err := automata.Union(nfa, addition)
		if err != nil {
			return err
		}
		nfa = merged
	}

	d.nfa = nfa
	d.prefixes = prefixes
	d.rebuildPrefilter()
	return nil
}

// rebuildPrefilter builds (or tears down) the Aho-Corasick automaton
// used to fast-reject input before running the master NFA. It only
// builds one when every registered command has a required literal
// prefix — a command whose grammar can start with anything (e.g.
// `[0-9].*`) would make "the automaton found nothing" an unsound reason
// to skip the NFA, so the prefilter is simply not used in that case.
func (d *Dispatcher) rebuildPrefilter() {
	d.ac = nil

	if len(d.commands) < d.config.MinLiteralPrefixCommands {
		return
	}
	for _, p := range d.prefixes {
		if len(p) == 0 {
			return
		}
	}

	builder := ahocorasick.NewBuilder()
	for _, p := range d.prefixes {
		builder.AddPattern(p)
	}
	auto, err := builder.Build()
	if err != nil {
		// Leave d.ac nil; dispatch still works, just without the
		// fast-reject path.
		return
	}
	d.ac = auto
}

// Dispatch runs the master NFA against input, then tries each
// candidate command's Call in registration order. A CommandParse
// failure just means "try the next candidate"; the best (furthest)
// such error is remembered and returned if every candidate fails that
// way. A CommandExec failure is surfaced immediately, since it means a
// candidate did match and attempted to run.
func (d *Dispatcher) Dispatch(input string) (command.Value, error) {
	if d.ac != nil && !d.ac.IsMatch([]byte(input)) {
		// No registered command's literal prefix occurs anywhere in
		// input, so none can occur anchored at its start either.
		return nil, ErrNoCommand
	}

	res := d.nfa.FindEarlyTermination([]byte(input))
	if !res.Matched {
		return nil, ErrNoCommand
	}

	var candidates automata.AssocSet
	for i, state := range res.States {
		if i == 0 {
			candidates = d.nfa.Assoc(state).Clone()
			continue
		}
		candidates.UnionWith(d.nfa.Assoc(state))
	}

	var ids []int
	candidates.Each(func(id int) { ids = append(ids, id) })

	var bestErr *command.ParseError
	for _, id := range ids {
		val, err := d.commands[id].Call(input)
		if err == nil {
			return val, nil
		}

		if execErr, ok := err.(*command.ExecError); ok {
			return nil, execErr
		}

		parseErr, ok := err.(*command.ParseError)
		if !ok {
			parseErr = &command.ParseError{Rest: input, Msg: err.Error()}
		}
		if bestErr == nil || len(parseErr.Rest) < len(bestErr.Rest) {
			bestErr = parseErr
		}
	}

	if bestErr != nil {
		return nil, bestErr
	}
	return nil, ErrNoCommand
}

// TabComplete proposes completions of input. Completions reachable
// purely from the master NFA's grammar (§4.G's bounded branching walk)
// are combined with whatever any registered DynamicCompleter commands
// propose for the same prefix — e.g. an online-player-name argument,
// whose valid completions no static regex can enumerate. The merged
// result is sorted and deduplicated.
func (d *Dispatcher) TabComplete(input string) []string {
	results := make(map[string]struct{})

	if states := d.nfa.StatesAfter([]byte(input)); states != nil {
		for _, suffix := range d.nfa.TabComplete(states) {
			results[input+suffix] = struct{}{}
		}
	}

	for _, cmd := range d.commands {
		dyn, ok := cmd.(command.DynamicCompleter)
		if !ok {
			continue
		}
		for _, completion := range dyn.CompleteDynamic(input) {
			results[completion] = struct{}{}
		}
	}

	out := make([]string, 0, len(results))
	for s := range results {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
