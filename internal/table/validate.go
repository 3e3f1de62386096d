package table

import (
	"errors"

	"tablebots/internal/robot"
)

// Default robot names used in validation errors.
const (
	RobotA = "Robot 1"
	RobotB = "Robot 2"
)

type options struct {
	holdFinal bool
	names     [2]string
}

// Option configures Validate.
type Option func(*options)

// WithHoldFinalPose treats a robot that has run out of commands as resting on
// its final cell, so the longer trajectory is checked against it too.
func WithHoldFinalPose() Option {
	return func(o *options) { o.holdFinal = true }
}

// WithNames overrides the robot names reported in errors.
func WithNames(a, b string) Option {
	return func(o *options) { o.names = [2]string{a, b} }
}

// Validate checks bounds for a, then bounds for b, then collision, and
// returns the first failure.
func Validate(bounds Bounds, a, b robot.Trajectory, opts ...Option) error {
	o := options{names: [2]string{RobotA, RobotB}}
	for _, opt := range opts {
		opt(&o)
	}

	if err := CheckTrajectory(o.names[0], a, bounds); err != nil {
		return err
	}
	if err := CheckTrajectory(o.names[1], b, bounds); err != nil {
		return err
	}

	if o.holdFinal {
		n := max(len(a), len(b))
		a, b = a.HoldFinal(n), b.HoldFinal(n)
	}
	if err := CheckCollision(a, b); err != nil {
		var ce *CollisionError
		if errors.As(err, &ce) {
			ce.Robots = o.names
		}
		return err
	}
	return nil
}

// Result is the outcome of Validate in a form reporters can switch on.
type Result struct {
	Err error
}

// NewResult runs Validate and wraps its outcome.
func NewResult(bounds Bounds, a, b robot.Trajectory, opts ...Option) Result {
	return Result{Err: Validate(bounds, a, b, opts...)}
}

func (r Result) Valid() bool {
	return r.Err == nil
}

// OutOfBounds returns the bounds failure, if that is why validation failed.
func (r Result) OutOfBounds() (*OutOfBoundsError, bool) {
	var e *OutOfBoundsError
	ok := errors.As(r.Err, &e)
	return e, ok
}

// Collision returns the collision failure, if that is why validation failed.
func (r Result) Collision() (*CollisionError, bool) {
	var e *CollisionError
	ok := errors.As(r.Err, &e)
	return e, ok
}

// Reason is the failure message, or "" for a valid result.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
