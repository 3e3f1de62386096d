// Package render draws trajectories as text, one frame per step.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tablebots/internal/robot"
	"tablebots/internal/table"
)

// Options controls frame layout.
type Options struct {
	Columns int  // frames per row, default 4
	Color   bool // style output when the writer supports it
}

var glyphs = map[robot.Orientation]rune{
	robot.North: '^',
	robot.East:  '>',
	robot.South: 'v',
	robot.West:  '<',
}

// Renderer draws frames to one writer.
type Renderer struct {
	w       io.Writer
	opts    Options
	title   lipgloss.Style
	onTable lipgloss.Style
	offBot  lipgloss.Style
	bot     lipgloss.Style
	frame   lipgloss.Style
}

func New(w io.Writer, opts Options) *Renderer {
	if opts.Columns <= 0 {
		opts.Columns = 4
	}
	r := lipgloss.NewRenderer(w)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		w:       w,
		opts:    opts,
		title:   r.NewStyle().Bold(true),
		onTable: r.NewStyle().Faint(true),
		bot:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1")),
		offBot:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8")),
		frame:   r.NewStyle().PaddingRight(2),
	}
}

// Frame draws the table with one robot pose on it. A one-cell margin around
// the table keeps an off-table pose visible.
func (r *Renderer) Frame(title string, p robot.Pose, b table.Bounds) string {
	var sb strings.Builder
	sb.WriteString(r.title.Render(title))
	sb.WriteByte('\n')
	for y := b.Height + 1; y >= -1; y-- {
		for x := -1; x <= b.Width+1; x++ {
			pos := robot.Position{X: x, Y: y}
			switch {
			case pos == p.Position && b.Contains(pos):
				sb.WriteString(r.bot.Render(string(glyphs[p.Orientation])))
			case pos == p.Position:
				sb.WriteString(r.offBot.Render(string(glyphs[p.Orientation])))
			case b.Contains(pos):
				sb.WriteString(r.onTable.Render("."))
			default:
				sb.WriteByte(' ')
			}
			if x < b.Width+1 {
				sb.WriteByte(' ')
			}
		}
		if y > -1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Trajectory writes every step of t, Columns frames per row.
func (r *Renderer) Trajectory(name string, t robot.Trajectory, b table.Bounds) error {
	if _, err := fmt.Fprintln(r.w, r.title.Render(name)); err != nil {
		return err
	}
	frames := make([]string, 0, r.opts.Columns)
	flush := func() error {
		if len(frames) == 0 {
			return nil
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, frames...)
		frames = frames[:0]
		_, err := fmt.Fprintln(r.w, row)
		return err
	}

	for i, p := range t {
		title := "Start"
		if i > 0 {
			title = fmt.Sprintf("Command %d", i)
		}
		frames = append(frames, r.frame.Render(r.Frame(title, p, b)))
		if len(frames) == r.opts.Columns {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}
