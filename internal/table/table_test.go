package table

import (
	"errors"
	"testing"

	"tablebots/internal/robot"
)

func pose(x, y int, o robot.Orientation) robot.Pose {
	return robot.Pose{Position: robot.Position{X: x, Y: y}, Orientation: o}
}

func TestContains(t *testing.T) {
	b := Bounds{Width: 5, Height: 5}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{5, 5, true},
		{5, 0, true},
		{0, 5, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{6, 0, false},
		{0, 6, false},
	}
	for _, tt := range tests {
		if got := b.Contains(robot.Position{X: tt.x, Y: tt.y}); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNewBounds(t *testing.T) {
	if _, err := NewBounds(-1, 3); !errors.Is(err, ErrNegativeBounds) {
		t.Fatalf("NewBounds(-1,3) err = %v", err)
	}
	b, err := NewBounds(0, 0)
	if err != nil || !b.Contains(robot.Position{}) {
		t.Fatalf("zero table should hold the origin: %v", err)
	}
}

func TestOffTableSouth(t *testing.T) {
	b := Bounds{Width: 5, Height: 5}
	traj := robot.Plan(pose(0, 0, robot.South), []robot.Command{robot.Move})

	if traj[1].Position != (robot.Position{X: 0, Y: -1}) {
		t.Fatalf("step 1 at %s", traj[1].Position)
	}
	if b.Contains(traj[1].Position) {
		t.Fatalf("(0,-1) reported on table")
	}
	if StaysOnTable(traj, b) {
		t.Fatalf("StaysOnTable = true")
	}

	err := CheckTrajectory("Robot 1", traj, b)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("err = %v, want *OutOfBoundsError", err)
	}
	if oob.Step != 1 || oob.Robot != "Robot 1" {
		t.Fatalf("got step %d robot %q", oob.Step, oob.Robot)
	}
}

func TestCollisionStepAligned(t *testing.T) {
	a := robot.Trajectory{pose(1, 1, robot.North), pose(2, 2, robot.North), pose(2, 3, robot.North)}
	same := robot.Trajectory{pose(3, 3, robot.West), pose(2, 2, robot.West)}
	later := robot.Trajectory{pose(2, 2, robot.West), pose(3, 2, robot.West), pose(3, 3, robot.West)}

	if NoCollision(a, same) {
		t.Fatalf("same-step overlap not detected")
	}
	var ce *CollisionError
	if err := CheckCollision(a, same); !errors.As(err, &ce) || ce.Step != 1 {
		t.Fatalf("CheckCollision = %v", err)
	}
	if !NoCollision(a, later) {
		t.Fatalf("different-step overlap reported as collision")
	}
}

func TestCollisionCommonPrefixOnly(t *testing.T) {
	short := robot.Trajectory{pose(0, 0, robot.North), pose(0, 1, robot.North)}
	long := robot.Trajectory{pose(2, 1, robot.West), pose(1, 1, robot.West), pose(0, 1, robot.West)}

	if !NoCollision(short, long) {
		t.Fatalf("steps past the shorter trajectory were compared")
	}
}

func TestValidateOrder(t *testing.T) {
	b := Bounds{Width: 2, Height: 2}
	offA := robot.Trajectory{pose(0, 0, robot.South), pose(0, -1, robot.South)}
	offB := robot.Trajectory{pose(2, 2, robot.North), pose(2, 3, robot.North)}
	ok := robot.Trajectory{pose(1, 1, robot.North), pose(1, 2, robot.North)}

	var oob *OutOfBoundsError
	if err := Validate(b, offA, offB); !errors.As(err, &oob) || oob.Robot != RobotA {
		t.Fatalf("want robot A failure first, got %v", err)
	}
	if err := Validate(b, ok, offB); !errors.As(err, &oob) || oob.Robot != RobotB {
		t.Fatalf("want robot B failure, got %v", err)
	}

	var ce *CollisionError
	if err := Validate(b, ok, ok, WithNames("a", "b")); !errors.As(err, &ce) {
		t.Fatalf("want collision, got %v", err)
	}
	if ce.Robots != [2]string{"a", "b"} || ce.Step != 0 {
		t.Fatalf("collision = %+v", ce)
	}
	if err := Validate(b, ok, robot.Trajectory{pose(0, 0, robot.East)}); err != nil {
		t.Fatalf("valid scenario rejected: %v", err)
	}
}

func TestValidateHoldFinalPose(t *testing.T) {
	b := Bounds{Width: 5, Height: 5}
	parked := robot.Trajectory{pose(1, 1, robot.North)}
	passing := robot.Trajectory{pose(3, 1, robot.West), pose(2, 1, robot.West), pose(1, 1, robot.West)}

	if err := Validate(b, parked, passing); err != nil {
		t.Fatalf("common-prefix policy rejected: %v", err)
	}
	err := Validate(b, parked, passing, WithHoldFinalPose())
	var ce *CollisionError
	if !errors.As(err, &ce) || ce.Step != 2 {
		t.Fatalf("hold-final policy err = %v", err)
	}
}

func TestResult(t *testing.T) {
	b := Bounds{Width: 5, Height: 5}
	ok := robot.Trajectory{pose(1, 1, robot.North)}
	off := robot.Trajectory{pose(6, 1, robot.North)}

	if r := NewResult(b, ok, robot.Trajectory{pose(2, 2, robot.North)}); !r.Valid() || r.Reason() != "" {
		t.Fatalf("valid result = %+v", r)
	}
	r := NewResult(b, ok, off)
	if r.Valid() {
		t.Fatalf("invalid result reported valid")
	}
	if e, found := r.OutOfBounds(); !found || e.Robot != RobotB {
		t.Fatalf("OutOfBounds() = %v, %v", e, found)
	}
	if _, found := r.Collision(); found {
		t.Fatalf("bounds failure reported as collision")
	}
	if r.Reason() != "Robot 2 goes off the table at step 0 (6,1)" {
		t.Fatalf("Reason() = %q", r.Reason())
	}
}
