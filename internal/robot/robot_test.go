package robot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var all = []Orientation{North, East, South, West}

func cmds(t *testing.T, s string) []Command {
	t.Helper()
	out := make([]Command, 0, len(s))
	for _, ch := range s {
		c, err := ParseCommand(ch)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		out = append(out, c)
	}
	return out
}

func TestRotationTables(t *testing.T) {
	tests := []struct {
		from        Orientation
		left, right Orientation
	}{
		{North, West, East},
		{East, North, South},
		{South, East, West},
		{West, South, North},
	}
	for _, tt := range tests {
		if got := tt.from.Left(); got != tt.left {
			t.Errorf("%s.Left() = %s, want %s", tt.from, got, tt.left)
		}
		if got := tt.from.Right(); got != tt.right {
			t.Errorf("%s.Right() = %s, want %s", tt.from, got, tt.right)
		}
	}
}

func TestRotationInverse(t *testing.T) {
	for _, o := range all {
		if got := o.Right().Left(); got != o {
			t.Errorf("left(right(%s)) = %s", o, got)
		}
		if got := o.Left().Right(); got != o {
			t.Errorf("right(left(%s)) = %s", o, got)
		}
	}
}

func TestRotationCycle(t *testing.T) {
	for _, o := range all {
		l, r := o, o
		for i := 0; i < 4; i++ {
			l = l.Left()
			r = r.Right()
		}
		if l != o || r != o {
			t.Errorf("four turns from %s: left %s right %s", o, l, r)
		}
	}
}

func TestOrientationCodec(t *testing.T) {
	for _, o := range all {
		ch, err := FormatOrientation(o)
		if err != nil {
			t.Fatalf("format %d: %v", o, err)
		}
		back, err := ParseOrientation(ch)
		if err != nil {
			t.Fatalf("parse %q: %v", ch, err)
		}
		if back != o {
			t.Errorf("round trip %s -> %q -> %s", o, ch, back)
		}
		fromVec, err := OrientationFromVector(o.Vector())
		if err != nil || fromVec != o {
			t.Errorf("vector round trip %s: got %s, %v", o, fromVec, err)
		}
	}
}

func TestOrientationCodecErrors(t *testing.T) {
	for _, ch := range []rune{'n', 'X', ' ', 'Z'} {
		if _, err := ParseOrientation(ch); !errors.Is(err, ErrInvalidOrientation) {
			t.Errorf("ParseOrientation(%q) err = %v", ch, err)
		}
	}
	if _, err := FormatOrientation(Orientation(7)); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("FormatOrientation(7) err = %v", err)
	}
	for _, v := range []Vector{{0, 0}, {1, 1}, {0, 2}, {-1, -1}} {
		if _, err := OrientationFromVector(v); !errors.Is(err, ErrInvalidOrientation) {
			t.Errorf("OrientationFromVector(%v) err = %v", v, err)
		}
	}
}

func TestParseCommand(t *testing.T) {
	if _, err := ParseCommand('X'); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("ParseCommand('X') err = %v", err)
	}
	if got := FormatCommands(cmds(t, "LRM")); got != "LRM" {
		t.Fatalf("FormatCommands = %q", got)
	}
}

func TestPlanEmpty(t *testing.T) {
	start := Pose{Position{3, 4}, West}
	got := Plan(start, nil)
	if diff := cmp.Diff(Trajectory{start}, got); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanLength(t *testing.T) {
	for _, s := range []string{"", "M", "LR", "MMMMMMMM", "LMLMLMLMM"} {
		got := Plan(Pose{}, cmds(t, s))
		if len(got) != len(s)+1 {
			t.Errorf("len(Plan(%q)) = %d, want %d", s, len(got), len(s)+1)
		}
	}
}

func TestPlanReferenceScenario(t *testing.T) {
	start := Pose{Position{1, 2}, North}
	traj := Plan(start, cmds(t, "LMLMLMLMM"))

	want := Pose{Position{1, 3}, North}
	if got := traj.Final(); got != want {
		t.Fatalf("final pose = %s, want %s", got, want)
	}
	if traj[0] != start {
		t.Fatalf("step 0 = %s, want start %s", traj[0], start)
	}
}

func TestPlanSteps(t *testing.T) {
	traj := Plan(Pose{Position{0, 0}, South}, cmds(t, "MLM"))
	want := Trajectory{
		{Position{0, 0}, South},
		{Position{0, -1}, South},
		{Position{0, -1}, East},
		{Position{1, -1}, East},
	}
	if diff := cmp.Diff(want, traj); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveReversible(t *testing.T) {
	for _, o := range all {
		for _, turn := range []string{"LL", "RR"} {
			start := Pose{Position{2, 2}, o}
			got := Plan(start, cmds(t, "M"+turn+"M")).Final()
			if got.Position != start.Position {
				t.Errorf("%s M%sM ended at %s", o, turn, got.Position)
			}
		}
	}
}

func TestPlanIdempotent(t *testing.T) {
	start := Pose{Position{1, 1}, East}
	c := cmds(t, "MMRMLLM")
	first := Plan(start, c)
	second := Plan(start, c)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("plan not idempotent:\n%s", diff)
	}
	if FormatCommands(c) != "MMRMLLM" {
		t.Fatalf("commands mutated: %s", FormatCommands(c))
	}
}

func TestHoldFinal(t *testing.T) {
	traj := Plan(Pose{Position{0, 0}, North}, cmds(t, "M"))
	got := traj.HoldFinal(4)
	want := Trajectory{
		{Position{0, 0}, North},
		{Position{0, 1}, North},
		{Position{0, 1}, North},
		{Position{0, 1}, North},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hold mismatch (-want +got):\n%s", diff)
	}
	if len(traj.HoldFinal(1)) != 2 {
		t.Fatalf("HoldFinal shortened trajectory")
	}
}
