package automata

import "testing"

func TestFindLiteral(t *testing.T) {
	n := mustLiteral(t, "Abc")

	if !n.Find([]byte("Abc")).Matched {
		t.Error(`expected "Abc" to match`)
	}
	for _, in := range []string{"Ab", "A", "Abcd"} {
		if n.Find([]byte(in)).Matched {
			t.Errorf("expected %q not to match", in)
		}
	}
}

func TestFindEarlyTerminationAgreesWithFind(t *testing.T) {
	tp := mustLiteral(t, "tp")
	tp.AssociateWith(0)
	ban := mustLiteral(t, "ban")
	ban.AssociateWith(1)

	n, err := Union(tp, ban)
	if err != nil {
		t.Fatal(err)
	}

	for _, in := range []string{"tp", "ban", "xx"} {
		want := n.Find([]byte(in)).Matched
		got := n.FindEarlyTermination([]byte(in)).Matched
		if got != want {
			t.Errorf("FindEarlyTermination(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStatesAfterPartialInput(t *testing.T) {
	n := mustLiteral(t, "teleport")

	states := n.StatesAfter([]byte("tele"))
	if len(states) == 0 {
		t.Fatal("expected a live state after a valid partial prefix")
	}

	if n.StatesAfter([]byte("nope")) != nil {
		t.Error("expected no live states after a prefix the literal can't match")
	}

	full := n.StatesAfter([]byte("teleport"))
	if len(full) != 1 || !n.IsEnd(full[0]) {
		t.Errorf("expected the full literal to land on its single accepting state, got %v", full)
	}
}

func TestFindEarlyTerminationNarrowsToOneCommand(t *testing.T) {
	tp := mustLiteral(t, "tp")
	tp.AssociateWith(0)
	ban := mustLiteral(t, "ban")
	ban.AssociateWith(1)

	n, err := Union(tp, ban)
	if err != nil {
		t.Fatal(err)
	}

	res := n.FindEarlyTermination([]byte("tp"))
	if !res.Matched {
		t.Fatal("expected early-termination match")
	}
	for _, s := range res.States {
		if n.Assoc(s).Contains(1) {
			t.Errorf("state %v should not remain associated with command 1 (ban)", s)
		}
		if !n.Assoc(s).Contains(0) {
			t.Errorf("state %v should remain associated with command 0 (tp)", s)
		}
	}
}
