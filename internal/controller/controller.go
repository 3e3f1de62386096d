// Package controller runs a two-robot scenario: it plans both trajectories,
// validates them, and only then transmits commands to the live sessions.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tablebots/internal/robot"
	"tablebots/internal/scenario"
	"tablebots/internal/table"
)

var (
	// ErrNotValidated is returned by SendCommands before Validate has run.
	ErrNotValidated = errors.New("scenario not validated")
	// ErrDispatchFailed is returned when a session rejects a command.
	ErrDispatchFailed = errors.New("robot failed to execute command")
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for controller events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithRegistry starts the sessions in r instead of a private registry.
func WithRegistry(r *robot.Registry) Option {
	return func(c *Controller) { c.registry = r }
}

// WithHoldFinalPose makes validation treat a finished robot as parked on its
// last cell.
func WithHoldFinalPose(hold bool) Option {
	return func(c *Controller) { c.holdFinal = hold }
}

// Controller owns the two robots of one scenario.
type Controller struct {
	name      string
	bounds    table.Bounds
	starts    [2]robot.Pose
	commands  [2][]robot.Command
	sessions  [2]*robot.Session
	registry  *robot.Registry
	logger    *slog.Logger
	holdFinal bool

	validated bool
	result    table.Result
}

// New creates a controller for sc and starts one session per robot.
func New(sc *scenario.Scenario, opts ...Option) (*Controller, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scenario", scenario.ErrInvalidScenario)
	}
	c := &Controller{
		name:     sc.Name,
		bounds:   sc.Bounds,
		starts:   sc.Starts,
		commands: sc.Commands,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = robot.NewRegistry()
	}

	for i, name := range [2]string{table.RobotA, table.RobotB} {
		c.sessions[i] = c.registry.Start(name, c.starts[i])
	}

	c.logger.Info("scenario.loaded",
		slog.String("scenario", c.name),
		slog.Int("width", c.bounds.Width),
		slog.Int("height", c.bounds.Height),
		slog.String("robot1", c.starts[0].String()),
		slog.String("robot2", c.starts[1].String()))
	return c, nil
}

func (c *Controller) Name() string {
	return c.name
}

func (c *Controller) Bounds() table.Bounds {
	return c.bounds
}

// Trajectories plans both robots from their start poses. Planning does not
// depend on validation or on commands already sent.
func (c *Controller) Trajectories() (robot.Trajectory, robot.Trajectory) {
	return robot.Plan(c.starts[0], c.commands[0]), robot.Plan(c.starts[1], c.commands[1])
}

// Validate checks both planned trajectories and remembers the outcome for
// SendCommands.
func (c *Controller) Validate() table.Result {
	a, b := c.Trajectories()
	var opts []table.Option
	if c.holdFinal {
		opts = append(opts, table.WithHoldFinalPose())
	}
	c.result = table.NewResult(c.bounds, a, b, opts...)
	c.validated = true

	if !c.result.Valid() {
		c.logger.Warn("scenario.invalid",
			slog.String("scenario", c.name),
			slog.String("reason", c.result.Reason()))
	}
	return c.result
}

// SendCommands transmits both command sequences step by step, robot 1 then
// robot 2 at each step. A robot whose sequence is exhausted is skipped.
// Nothing is sent unless the last Validate succeeded.
func (c *Controller) SendCommands(ctx context.Context) error {
	if !c.validated {
		return ErrNotValidated
	}
	if !c.result.Valid() {
		return c.result.Err
	}

	steps := max(len(c.commands[0]), len(c.commands[1]))
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for r, s := range c.sessions {
			if i >= len(c.commands[r]) {
				continue
			}
			cmd := c.commands[r][i]
			if !s.ApplyCommand(cmd) {
				return fmt.Errorf("%w: %s step %d %s", ErrDispatchFailed, s.Name(), i+1, cmd)
			}
			c.logger.Debug("dispatch.command",
				slog.String("robot", s.Name()),
				slog.Int("step", i+1),
				slog.String("command", cmd.String()),
				slog.String("pose", s.CurrentPose().String()))
		}
	}

	a, b := c.Poses()
	c.logger.Info("dispatch.complete",
		slog.String("scenario", c.name),
		slog.Int("steps", steps),
		slog.String("robot1", a.String()),
		slog.String("robot2", b.String()))
	return nil
}

// Poses returns the current live pose of each robot.
func (c *Controller) Poses() (robot.Pose, robot.Pose) {
	return c.sessions[0].CurrentPose(), c.sessions[1].CurrentPose()
}

// Close releases the controller's sessions from its registry.
func (c *Controller) Close() {
	for _, s := range c.sessions {
		c.registry.Stop(s.ID())
	}
}
