package automata

// ByteClassID is a stable identifier for an interned ByteClass. Ids are
// assigned in first-seen order and are never reused within an NFA's
// lifetime, mirroring an order-preserving IndexSet.
type ByteClassID uint32

// ByteClass maps each of the 256 possible input bytes to a small
// neighbour-table slot. Slot 0 always means "no transition" — the
// canonical empty class, interned at position 0 of every NFA's class set.
// Two states that transition identically on every byte always intern to
// the same ByteClass value and therefore share a ByteClassID.
type ByteClass [256]uint8

func emptyByteClass() ByteClass { return ByteClass{} }

// classSet is the per-NFA content-addressed, order-preserving set of
// interned byte classes.
type classSet struct {
	classes []ByteClass
	index   map[ByteClass]ByteClassID
}

func newClassSet() *classSet {
	cs := &classSet{
		classes: make([]ByteClass, 0, 8),
		index:   make(map[ByteClass]ByteClassID, 8),
	}
	cs.intern(emptyByteClass())
	return cs
}

// intern returns the id for class, appending a fresh entry if this exact
// 256-byte mapping has not been seen before in this NFA.
func (cs *classSet) intern(class ByteClass) ByteClassID {
	if id, ok := cs.index[class]; ok {
		return id
	}
	id := ByteClassID(len(cs.classes))
	cs.classes = append(cs.classes, class)
	cs.index[class] = id
	return id
}

func (cs *classSet) get(id ByteClassID) ByteClass {
	return cs.classes[id]
}

func (cs *classSet) clone() *classSet {
	out := &classSet{
		classes: make([]ByteClass, len(cs.classes)),
		index:   make(map[ByteClass]ByteClassID, len(cs.index)),
	}
	copy(out.classes, cs.classes)
	for k, v := range cs.index {
		out.index[k] = v
	}
	return out
}

func (cs *classSet) len() int { return len(cs.classes) }
