package dispatcher

import (
	"fmt"
	"testing"

	"github.com/coregx/dispatch/command"
	"github.com/coregx/dispatch/parse"
)

// tpCommand teleports to three integer coordinates: "tp <x> <y> <z>".
type tpCommand struct{}

func (tpCommand) Regex() string { return `tp(\s+[+-]?\d+){3}` }

func (tpCommand) Equal(other command.Command) bool {
	_, ok := other.(tpCommand)
	return ok
}

func (tpCommand) Call(input string) (command.Value, error) {
	p := parse.NewAnd[any](parse.NewLiteral[any]("tp"),
		parse.NewAnd[any](parse.NewAnd[any](parse.OneOrMoreSpace[any]{}, parse.Int[any]{}),
			parse.NewAnd[any](parse.NewAnd[any](parse.OneOrMoreSpace[any]{}, parse.Int[any]{}),
				parse.NewAnd[any](parse.OneOrMoreSpace[any]{}, parse.Int[any]{}))))

	res, _ := p.IterParse(nil, nil, input)
	if res.Err != nil {
		return nil, &command.ParseError{Rest: res.Err.Rest, Msg: res.Err.Msg}
	}
	if res.Rest != "" {
		return nil, &command.ParseError{Rest: res.Rest, Msg: "unexpected trailing input"}
	}
	vals := res.Value.([]any)
	return fmt.Sprintf("teleported to %d %d %d", vals[0], vals[1], vals[2]), nil
}

// banCommand bans a single named player: "ban <word>".
type banCommand struct {
	knownPlayers map[string]bool
}

func (banCommand) Regex() string { return `ban\s+\S+` }

func (banCommand) Equal(other command.Command) bool {
	_, ok := other.(banCommand)
	return ok
}

func (b banCommand) Call(input string) (command.Value, error) {
	p := parse.NewAnd[any](parse.NewLiteral[any]("ban"),
		parse.NewAnd[any](parse.OneOrMoreSpace[any]{}, parse.Word[any]{}))

	res, _ := p.IterParse(nil, nil, input)
	if res.Err != nil {
		return nil, &command.ParseError{Rest: res.Err.Rest, Msg: res.Err.Msg}
	}
	vals := res.Value.([]any)
	name := vals[0].(string)
	if b.knownPlayers != nil && !b.knownPlayers[name] {
		return nil, &command.ExecError{Msg: fmt.Sprintf("no such player %q", name)}
	}
	return fmt.Sprintf("banned %s", name), nil
}

func TestDispatchRoutesToMatchingCommand(t *testing.T) {
	d := New()
	if _, err := d.Add(tpCommand{}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Add(banCommand{knownPlayers: map[string]bool{"steve": true}}); err != nil {
		t.Fatal(err)
	}

	val, err := d.Dispatch("tp 1 2 3")
	if err != nil {
		t.Fatalf("Dispatch(tp): %v", err)
	}
	if val != "teleported to 1 2 3" {
		t.Errorf("Dispatch(tp) = %v", val)
	}

	val, err = d.Dispatch("ban steve")
	if err != nil {
		t.Fatalf("Dispatch(ban): %v", err)
	}
	if val != "banned steve" {
		t.Errorf("Dispatch(ban) = %v", val)
	}
}

func TestDispatchExecErrorSurfacesImmediately(t *testing.T) {
	d := New()
	if _, err := d.Add(banCommand{knownPlayers: map[string]bool{"steve": true}}); err != nil {
		t.Fatal(err)
	}

	_, err := d.Dispatch("ban herobrine")
	if err == nil {
		t.Fatal("expected an exec error")
	}
	if _, ok := err.(*command.ExecError); !ok {
		t.Errorf("expected *command.ExecError, got %T: %v", err, err)
	}
}

func TestDispatchNoCommandMatches(t *testing.T) {
	d := New()
	if _, err := d.Add(tpCommand{}); err != nil {
		t.Fatal(err)
	}

	_, err := d.Dispatch("fly up")
	if err != ErrNoCommand {
		t.Errorf("Dispatch(fly up) error = %v, want ErrNoCommand", err)
	}
}

func TestAddDedupesByEqual(t *testing.T) {
	d := New()
	added, err := d.Add(tpCommand{})
	if err != nil || !added {
		t.Fatalf("first Add: added=%v err=%v", added, err)
	}
	added, err = d.Add(tpCommand{})
	if err != nil || added {
		t.Fatalf("second Add: added=%v err=%v, want added=false", added, err)
	}
}

func TestRemoveThenDispatchFails(t *testing.T) {
	d := New()
	if _, err := d.Add(tpCommand{}); err != nil {
		t.Fatal(err)
	}
	if err := d.Remove(tpCommand{}); err != nil {
		t.Fatal(err)
	}

	_, err := d.Dispatch("tp 1 2 3")
	if err != ErrNoCommand {
		t.Errorf("Dispatch after Remove = %v, want ErrNoCommand", err)
	}
}

func TestRemoveUnregisteredIsNoop(t *testing.T) {
	d := New()
	if _, err := d.Add(tpCommand{}); err != nil {
		t.Fatal(err)
	}
	if err := d.Remove(banCommand{}); err != nil {
		t.Fatalf("removing an unregistered command should be a no-op, got %v", err)
	}
}

func TestTabCompleteListsLiteralCommands(t *testing.T) {
	d := New()
	if _, err := d.Add(tpCommand{}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Add(banCommand{}); err != nil {
		t.Fatal(err)
	}

	got := d.TabComplete("t")
	found := false
	for _, s := range got {
		if len(s) >= 2 && s[:2] == "tp" {
			found = true
		}
	}
	if !found {
		t.Errorf("TabComplete(%q) = %v, want something starting with tp", "t", got)
	}
}
