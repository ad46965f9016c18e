package dispatcher

import "github.com/coregx/dispatch/command"

// removeAt returns a new slice with the element at idx removed,
// without aliasing the backing array of cmds — Remove's restore-on-
// failure path needs the pre-removal slice to stay untouched.
func removeAt(cmds []command.Command, idx int) []command.Command {
	out := make([]command.Command, 0, len(cmds)-1)
	out = append(out, cmds[:idx]...)
	out = append(out, cmds[idx+1:]...)
	return out
}

// insertAt returns a new slice with cmd inserted at idx.
func insertAt(cmds []command.Command, idx int, cmd command.Command) []command.Command {
	out := make([]command.Command, 0, len(cmds)+1)
	out = append(out, cmds[:idx]...)
	out = append(out, cmd)
	out = append(out, cmds[idx:]...)
	return out
}

func removeAtBytes(xs [][]byte, idx int) [][]byte {
	out := make([][]byte, 0, len(xs)-1)
	out = append(out, xs[:idx]...)
	out = append(out, xs[idx+1:]...)
	return out
}

func insertAtBytes(xs [][]byte, idx int, x []byte) [][]byte {
	out := make([][]byte, 0, len(xs)+1)
	out = append(out, xs[:idx]...)
	out = append(out, x)
	out = append(out, xs[idx:]...)
	return out
}
