package robot

import "fmt"

// Position is a cell on the table grid. It is not clamped to any bounds.
type Position struct {
	X, Y int
}

// Add offsets p by v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Pose is the full state of a robot at an instant.
type Pose struct {
	Position    Position
	Orientation Orientation
}

// Apply returns the pose reached by executing cmd from p.
func (p Pose) Apply(cmd Command) Pose {
	switch cmd {
	case RotateLeft:
		p.Orientation = p.Orientation.Left()
	case RotateRight:
		p.Orientation = p.Orientation.Right()
	case Move:
		p.Position = p.Position.Add(p.Orientation.Vector())
	}
	return p
}

// String formats p the way scenario files write a start pose: "x y O".
func (p Pose) String() string {
	return fmt.Sprintf("%d %d %s", p.Position.X, p.Position.Y, p.Orientation)
}
