package robot

import (
	"errors"
	"fmt"
)

// ErrInvalidOrientation is returned for any orientation outside N, E, S, W.
var ErrInvalidOrientation = errors.New("invalid orientation")

// Vector is a fixed-size integer pair used for headings and offsets.
type Vector struct {
	X, Y int
}

// Orientation is the heading of a robot on the table.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var headings = [...]Vector{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

var letters = [...]rune{
	North: 'N',
	East:  'E',
	South: 'S',
	West:  'W',
}

// rotation matrices, row major
type matrix [2][2]int

var (
	ccw = matrix{{0, -1}, {1, 0}}
	cw  = matrix{{0, 1}, {-1, 0}}
)

func (m matrix) apply(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

func (o Orientation) valid() bool {
	return o >= North && o <= West
}

// Vector returns the unit step for o.
func (o Orientation) Vector() Vector {
	if !o.valid() {
		return Vector{}
	}
	return headings[o]
}

// Left rotates o 90 degrees counterclockwise.
func (o Orientation) Left() Orientation {
	return o.rotate(ccw)
}

// Right rotates o 90 degrees clockwise.
func (o Orientation) Right() Orientation {
	return o.rotate(cw)
}

func (o Orientation) rotate(m matrix) Orientation {
	if !o.valid() {
		return o
	}
	// rotating a unit heading always lands on another unit heading
	next, _ := OrientationFromVector(m.apply(headings[o]))
	return next
}

func (o Orientation) String() string {
	r, err := FormatOrientation(o)
	if err != nil {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return string(r)
}

// ParseOrientation maps 'N', 'E', 'S' or 'W' to its orientation.
func ParseOrientation(ch rune) (Orientation, error) {
	for o, l := range letters {
		if l == ch {
			return Orientation(o), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, ch)
}

// FormatOrientation is the inverse of ParseOrientation.
func FormatOrientation(o Orientation) (rune, error) {
	if !o.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	return letters[o], nil
}

// OrientationFromVector returns the orientation whose heading is v.
func OrientationFromVector(v Vector) (Orientation, error) {
	for o, h := range headings {
		if h == v {
			return Orientation(o), nil
		}
	}
	return 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidOrientation, v.X, v.Y)
}
