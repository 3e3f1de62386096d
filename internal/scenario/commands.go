package scenario

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"tablebots/internal/robot"
)

var commandLexer = sync.OnceValues(func() (*lexmachine.Lexer, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[ \t]+`), skip)
	l.Add([]byte(`L`), command(robot.RotateLeft))
	l.Add([]byte(`R`), command(robot.RotateRight))
	l.Add([]byte(`M`), command(robot.Move))
	if err := l.Compile(); err != nil {
		return nil, err
	}
	return l, nil
})

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func command(c robot.Command) lexmachine.Action {
	return func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return c, nil
	}
}

// ParseCommands reads a command string such as "LMLMM" or "L M L M M".
// An unknown letter fails with robot.ErrInvalidCommand and its column.
func ParseCommands(text string) ([]robot.Command, error) {
	l, err := commandLexer()
	if err != nil {
		return nil, fmt.Errorf("compile command lexer: %w", err)
	}
	scanner, err := l.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}

	var cmds []robot.Command
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				ch, _ := utf8.DecodeRuneInString(text[ui.StartTC:])
				return nil, fmt.Errorf("column %d: %w: %q", ui.StartColumn, robot.ErrInvalidCommand, ch)
			}
			return nil, err
		}
		cmds = append(cmds, tok.(robot.Command))
	}
	return cmds, nil
}
