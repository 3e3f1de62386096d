// Package table validates robot trajectories against the table edges and
// against each other.
package table

import (
	"errors"
	"fmt"

	"tablebots/internal/robot"
)

// ErrNegativeBounds is returned by NewBounds for a negative dimension.
var ErrNegativeBounds = errors.New("table size must be non-negative")

// Bounds is the closed rectangle [0,Width] x [0,Height].
type Bounds struct {
	Width, Height int
}

func NewBounds(width, height int) (Bounds, error) {
	if width < 0 || height < 0 {
		return Bounds{}, fmt.Errorf("%w: %d x %d", ErrNegativeBounds, width, height)
	}
	return Bounds{Width: width, Height: height}, nil
}

// Contains reports whether p lies on the table, edges included.
func (b Bounds) Contains(p robot.Position) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// OutOfBoundsError reports the first step at which a robot leaves the table.
type OutOfBoundsError struct {
	Robot    string
	Step     int
	Position robot.Position
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s goes off the table at step %d %s", e.Robot, e.Step, e.Position)
}

// CollisionError reports the first step at which two robots share a cell.
type CollisionError struct {
	Robots   [2]string
	Step     int
	Position robot.Position
}

func (e *CollisionError) Error() string {
	if e.Robots[0] == "" {
		return fmt.Sprintf("robots collide at step %d %s", e.Step, e.Position)
	}
	return fmt.Sprintf("%s and %s collide at step %d %s", e.Robots[0], e.Robots[1], e.Step, e.Position)
}

// CheckTrajectory returns an *OutOfBoundsError for the first pose of t that
// is off the table.
func CheckTrajectory(name string, t robot.Trajectory, b Bounds) error {
	for i, p := range t {
		if !b.Contains(p.Position) {
			return &OutOfBoundsError{Robot: name, Step: i, Position: p.Position}
		}
	}
	return nil
}

// StaysOnTable reports whether every pose of t is on the table.
func StaysOnTable(t robot.Trajectory, b Bounds) bool {
	return CheckTrajectory("", t, b) == nil
}

// CheckCollision compares a and b step by step over their common prefix.
func CheckCollision(a, b robot.Trajectory) error {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i].Position == b[i].Position {
			return &CollisionError{Step: i, Position: a[i].Position}
		}
	}
	return nil
}

// NoCollision reports whether a and b never share a cell at the same step.
func NoCollision(a, b robot.Trajectory) bool {
	return CheckCollision(a, b) == nil
}
