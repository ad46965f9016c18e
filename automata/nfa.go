package automata

// NFA is a non-deterministic finite automaton over bytes. It owns its
// dense state array, its interned byte-class set and its accepting
// ("end") state set. NFAs are built bottom-up by the combinators in this
// package (Literal, Union, FollowedBy, Repeat, Optional) and are
// immutable once handed to a dispatcher: the master NFA is always
// rebuilt wholesale rather than mutated in place (see the dispatcher
// package), so nothing outside this package ever mutates an NFA that
// readers may be holding a reference to.
//
// Combinators consume their operands: Union(a, b), FollowedBy(a, b) and
// friends may write directly into a's (and occasionally b's) backing
// arrays rather than copying, the same way append(s, x) may reuse s's
// backing array. Once an NFA has been passed to a combinator, only the
// returned value is safe to keep using — call Clone first if the
// original is still needed.
type NFA struct {
	states  []nfaState
	classes *classSet
	ends    map[StateID]struct{}
}

// Empty returns an NFA with no states. Unioning or concatenating with an
// empty NFA is a no-op by definition: the result is just the other operand.
func Empty() NFA {
	return NFA{ends: make(map[StateID]struct{})}
}

// WithCapacity pre-sizes the state array and end set. It is an
// optimization hint only; both grow automatically as needed. The classes
// hint is accepted but not used: the class set always starts with just
// the canonical empty class.
func WithCapacity(states, classes, ends int) NFA {
	n := NFA{
		states: make([]nfaState, 0, states),
		ends:   make(map[StateID]struct{}, ends),
	}
	n.classes = newClassSet()
	if classes > 0 {
		// newClassSet already reserves the canonical empty class; nothing
		// further to preallocate since classes are only known as they're
		// interned.
		_ = classes
	}
	return n
}

// IsEmpty reports whether the NFA has no states. This is distinct from
// accepting no input: an NFA with states but an empty end set accepts
// nothing, while IsEmpty means there is nothing here at all (the
// identity element for Union/FollowedBy).
func (n *NFA) IsEmpty() bool {
	return len(n.states) == 0
}

// States returns the number of states in the NFA.
func (n *NFA) States() int { return len(n.states) }

// Start returns the NFA's start state, always state 0 by construction.
func (n *NFA) Start() StateID { return 0 }

func (n *NFA) ensureClasses() {
	if n.classes == nil {
		n.classes = newClassSet()
	}
}

// PushState allocates a new, empty state (no transitions, no epsilons,
// no associations) and returns its id.
func (n *NFA) PushState() (StateID, error) {
	n.ensureClasses()
	if len(n.states) >= int(InvalidState) {
		return InvalidState, ErrTooManyStates
	}
	id := StateID(len(n.states))
	n.states = append(n.states, nfaState{class: 0})
	return id, nil
}

// PushEnd marks state as accepting and reports whether it was already
// accepting.
func (n *NFA) PushEnd(state StateID) bool {
	if n.ends == nil {
		n.ends = make(map[StateID]struct{})
	}
	if _, ok := n.ends[state]; ok {
		return false
	}
	n.ends[state] = struct{}{}
	return true
}

// IsEnd reports whether state is an accepting state.
func (n *NFA) IsEnd(state StateID) bool {
	_, ok := n.ends[state]
	return ok
}

// Ends returns the accepting state set, in no particular order.
func (n *NFA) Ends() []StateID {
	out := make([]StateID, 0, len(n.ends))
	for id := range n.ends {
		out = append(out, id)
	}
	return out
}

// PushEpsilon adds an epsilon (non-consuming) edge from -> to, skipping
// it if the edge already exists (invariant: no duplicate epsilons).
func (n *NFA) PushEpsilon(from, to StateID) {
	s := &n.states[from]
	if s.hasEpsilonTo(to) {
		return
	}
	s.epsilon = append(s.epsilon, to)
}

// Edge returns the state reachable from `from` by consuming byte b,
// without following any epsilon transitions. The second return value is
// false if there is no such transition.
func (n *NFA) Edge(from StateID, b byte) (StateID, bool) {
	s := &n.states[from]
	class := n.classes.get(s.class)
	slot := class[b]
	if slot == 0 {
		return InvalidState, false
	}
	return s.table[slot-1], true
}

// AssociateWith marks every state of the NFA as reachable under command
// index id. Called before unioning a per-command NFA into the master NFA
// so that, after union, an accepting run can be traced back to the
// commands whose grammar it matched.
func (n *NFA) AssociateWith(id int) {
	for i := range n.states {
		n.states[i].assoc.Insert(id)
	}
}

// Assoc returns the association set of the given state.
func (n *NFA) Assoc(state StateID) *AssocSet {
	return &n.states[state].assoc
}

// Clone returns a deep, independent copy of n. NFA combinators that need
// to reuse the same sub-NFA more than once (repeat-by-doubling, bounded
// repetition) clone rather than alias, since every other builder mutates
// or splices its operands' state arrays.
func (n *NFA) Clone() NFA {
	out := NFA{
		states: make([]nfaState, len(n.states)),
		ends:   make(map[StateID]struct{}, len(n.ends)),
	}
	for i, s := range n.states {
		out.states[i] = nfaState{
			class:   s.class,
			assoc:   s.assoc.Clone(),
			table:   append([]StateID(nil), s.table...),
			epsilon: append([]StateID(nil), s.epsilon...),
		}
	}
	for id := range n.ends {
		out.ends[id] = struct{}{}
	}
	if n.classes != nil {
		out.classes = n.classes.clone()
	} else {
		out.classes = newClassSet()
	}
	return out
}

// Compact drops interned byte classes no longer referenced by any state.
// Building NFAs never needs this for correctness: orphaned classes are
// harmless, just wasted memory, and Compact reclaims them. Long-lived
// dispatchers that rebuild rarely may call it to bound memory growth.
func (n *NFA) Compact() {
	used := make(map[ByteClassID]bool, n.classes.len())
	used[0] = true
	for _, s := range n.states {
		used[s.class] = true
	}
	remap := make(map[ByteClassID]ByteClassID, len(used))
	fresh := newClassSet()
	for id, class := range n.classes.classes {
		if used[ByteClassID(id)] {
			remap[ByteClassID(id)] = fresh.intern(class)
		}
	}
	for i := range n.states {
		n.states[i].class = remap[n.states[i].class]
	}
	n.classes = fresh
}
