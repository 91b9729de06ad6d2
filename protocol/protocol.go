package protocol

import "fmt"

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	Deal
	TapStock
	Move
	DoubleTap
	Hint
	AutoComplete
	Undo
	State
	Error
)

var cmdNames = []string{
	"Null",
	"Deal",
	"TapStock",
	"Move",
	"DoubleTap",
	"Hint",
	"AutoComplete",
	"Undo",
	"State",
	"Error",
}

func (c Cmd) String() string {
	if c < 0 || int(c) >= len(cmdNames) {
		return fmt.Sprintf("Cmd(%d)", int(c))
	}
	return cmdNames[c]
}

// ParseCmd returns the command with the given name
func ParseCmd(name string) (Cmd, error) {
	for i, n := range cmdNames {
		if n == name {
			return Cmd(i), nil
		}
	}
	return Null, fmt.Errorf("unknown command %q", name)
}
