// Package scenario loads the table size, start poses and command sequences of
// a two-robot run from its text form.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"go.uber.org/multierr"

	"tablebots/internal/robot"
	"tablebots/internal/table"
)

// ErrInvalidScenario wraps every problem found while reading a scenario.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a parsed scenario file. Index 0 is robot 1, index 1 robot 2.
type Scenario struct {
	Name     string
	Bounds   table.Bounds
	Starts   [2]robot.Pose
	Commands [2][]robot.Command
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(filepath.Base(path), string(data))
}

// Parse reads a scenario from data. All line-level problems are reported
// together.
func Parse(name, data string) (*Scenario, error) {
	f, err := parser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	sc := &Scenario{Name: name}
	var errs error

	errs = multierr.Append(errs, checkLabel(f.Table.Label, f.Table.Pos, 1))
	bounds, err := table.NewBounds(f.Table.Width, f.Table.Height)
	errs = multierr.Append(errs, at(f.Table.Pos, err))
	sc.Bounds = bounds

	for i, line := range []*startLine{f.RobotA, f.RobotB} {
		errs = multierr.Append(errs, checkLabel(line.Label, line.Pos, i+2))
		pose, err := line.pose()
		errs = multierr.Append(errs, at(line.Pos, err))
		sc.Starts[i] = pose
	}

	for i, line := range []*commandLine{f.CmdsA, f.CmdsB} {
		errs = multierr.Append(errs, checkLabel(line.Label, line.Pos, i+4))
		cmds, err := line.commands()
		errs = multierr.Append(errs, err)
		sc.Commands[i] = cmds
	}

	if errs != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrInvalidScenario, errs)
	}
	return sc, nil
}

func (l *startLine) pose() (robot.Pose, error) {
	ch, size := utf8.DecodeRuneInString(l.Orientation)
	if size != len(l.Orientation) {
		return robot.Pose{}, fmt.Errorf("%w: %q", robot.ErrInvalidOrientation, l.Orientation)
	}
	o, err := robot.ParseOrientation(ch)
	if err != nil {
		return robot.Pose{}, err
	}
	return robot.Pose{Position: robot.Position{X: l.X, Y: l.Y}, Orientation: o}, nil
}

func (l *commandLine) commands() ([]robot.Command, error) {
	cmds := []robot.Command{}
	var errs error
	for _, w := range l.Words {
		parsed, err := ParseCommands(w.Text)
		if err != nil {
			errs = multierr.Append(errs, at(w.Pos, err))
			continue
		}
		cmds = append(cmds, parsed...)
	}
	return cmds, errs
}

func checkLabel(label string, pos lexer.Position, want int) error {
	n, err := strconv.Atoi(strings.TrimSuffix(label, ":"))
	if err != nil || n != want {
		return at(pos, fmt.Errorf("line label %q, want \"%d:\"", label, want))
	}
	return nil
}

func at(pos lexer.Position, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", pos, err)
}

// String writes sc back in its file form.
func (sc *Scenario) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "1: %d %d\n", sc.Bounds.Width, sc.Bounds.Height)
	fmt.Fprintf(&b, "2: %s\n", sc.Starts[0])
	fmt.Fprintf(&b, "3: %s\n", sc.Starts[1])
	fmt.Fprintf(&b, "4: %s\n", robot.FormatCommands(sc.Commands[0]))
	fmt.Fprintf(&b, "5: %s\n", robot.FormatCommands(sc.Commands[1]))
	return b.String()
}
