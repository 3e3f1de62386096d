package robot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCommand is returned for a command letter outside L, R, M.
var ErrInvalidCommand = errors.New("invalid command")

// Command is a single instruction sent to a robot.
type Command int

const (
	Move Command = iota
	RotateLeft
	RotateRight
)

// ParseCommand maps 'M', 'L' or 'R' to its command.
func ParseCommand(ch rune) (Command, error) {
	switch ch {
	case 'M':
		return Move, nil
	case 'L':
		return RotateLeft, nil
	case 'R':
		return RotateRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCommand, ch)
}

// Letter returns the single-letter form of c.
func (c Command) Letter() rune {
	switch c {
	case Move:
		return 'M'
	case RotateLeft:
		return 'L'
	case RotateRight:
		return 'R'
	}
	return '?'
}

func (c Command) String() string {
	return string(c.Letter())
}

// FormatCommands renders cmds as a contiguous letter string.
func FormatCommands(cmds []Command) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteRune(c.Letter())
	}
	return b.String()
}
