// Package report prints validation outcomes and robot poses for people.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tablebots/internal/robot"
	"tablebots/internal/table"
)

// Reporter writes human-readable lines to w.
type Reporter struct {
	w       io.Writer
	heading lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

// New creates a Reporter. Color is only emitted when color is true and w is
// a terminal that supports it.
func New(w io.Writer, color bool) *Reporter {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8")),
	}
}

// Heading writes a section title such as "Running scenario 1:".
func (r *Reporter) Heading(format string, args ...any) {
	fmt.Fprintln(r.w, r.heading.Render(fmt.Sprintf(format, args...)))
}

// Line writes an unstyled line.
func (r *Reporter) Line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Pose writes the position and orientation of a robot that is numbered n.
func (r *Reporter) Pose(n int, p robot.Pose) {
	fmt.Fprintf(r.w, "The position and orientation of robot %d are: %d %d %s\n",
		n, p.Position.X, p.Position.Y, p.Orientation)
}

// Validation writes why a scenario was rejected, or that it was accepted.
func (r *Reporter) Validation(res table.Result) {
	if res.Valid() {
		fmt.Fprintln(r.w, r.ok.Render("Commands are valid."))
		return
	}
	if oob, ok := res.OutOfBounds(); ok {
		fmt.Fprintln(r.w, r.fail.Render(fmt.Sprintf("%s goes off the table at step %d %s. Aborting...",
			oob.Robot, oob.Step, oob.Position)))
		return
	}
	if ce, ok := res.Collision(); ok {
		fmt.Fprintln(r.w, r.fail.Render(fmt.Sprintf("The input commands result in a collision of the two robots at step %d %s. Aborting...",
			ce.Step, ce.Position)))
		return
	}
	fmt.Fprintln(r.w, r.fail.Render(res.Reason()))
}

// Trajectory writes one line per pose: "step x y O".
func (r *Reporter) Trajectory(name string, t robot.Trajectory) {
	fmt.Fprintln(r.w, r.heading.Render(name))
	for i, p := range t {
		fmt.Fprintf(r.w, "%3d  %s\n", i, p)
	}
}
