package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"tablebots/internal/config"
	"tablebots/internal/controller"
	"tablebots/internal/render"
	"tablebots/internal/report"
	"tablebots/internal/scenario"
	"tablebots/internal/table"
)

var errRejected = errors.New("one or more scenarios were rejected")

type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	out    *report.Reporter
	stdout io.Writer
}

func newApp(stdout, stderr io.Writer) *cli.App {
	rt := &runtime{stdout: stdout}

	renderFlags := []cli.Flag{
		&cli.BoolFlag{Name: "render", Usage: "draw every step of both trajectories"},
		&cli.IntFlag{Name: "columns", Usage: "frames per row when rendering"},
	}
	holdFlag := &cli.BoolFlag{Name: "hold-final-pose", Usage: "check a finished robot against the other robot's remaining steps"}

	return &cli.App{
		Name:      "tablebots",
		Usage:     "simulate and validate two robots on a table",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable styled output"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.Log.Level = c.String("log-level")
			}
			if c.Bool("no-color") {
				cfg.Render.Color = false
			}
			logger, err := cfg.Logger(stderr)
			if err != nil {
				return err
			}
			rt.cfg, rt.logger = cfg, logger
			rt.out = report.New(stdout, cfg.Render.Color)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "validate each scenario, then send its commands and report the robots",
				ArgsUsage: "FILE...",
				Flags:     append([]cli.Flag{holdFlag}, renderFlags...),
				Action:    rt.run,
			},
			{
				Name:      "plan",
				Usage:     "print the planned trajectory of both robots",
				ArgsUsage: "FILE",
				Flags:     renderFlags,
				Action:    rt.plan,
			},
			{
				Name:      "validate",
				Usage:     "check scenarios without sending commands",
				ArgsUsage: "FILE...",
				Flags:     []cli.Flag{holdFlag},
				Action:    rt.validate,
			},
		},
	}
}

func (rt *runtime) controller(c *cli.Context, path string) (*controller.Controller, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	hold := rt.cfg.Validation.HoldFinalPose
	if c.IsSet("hold-final-pose") {
		hold = c.Bool("hold-final-pose")
	}
	return controller.New(sc,
		controller.WithLogger(rt.logger),
		controller.WithHoldFinalPose(hold))
}

func (rt *runtime) renderer(c *cli.Context) *render.Renderer {
	if !rt.cfg.Render.Enabled && !c.Bool("render") {
		return nil
	}
	columns := rt.cfg.Render.Columns
	if c.IsSet("columns") {
		columns = c.Int("columns")
	}
	return render.New(rt.stdout, render.Options{Columns: columns, Color: rt.cfg.Render.Color})
}

func files(c *cli.Context, limit int) ([]string, error) {
	paths := c.Args().Slice()
	if len(paths) == 0 || (limit > 0 && len(paths) > limit) {
		return nil, fmt.Errorf("usage: %s %s %s", c.App.Name, c.Command.Name, c.Command.ArgsUsage)
	}
	return paths, nil
}

func (rt *runtime) run(c *cli.Context) error {
	paths, err := files(c, 0)
	if err != nil {
		return err
	}
	rend := rt.renderer(c)

	rejected := false
	for i, path := range paths {
		if i > 0 {
			rt.out.Line("")
		}
		rt.out.Heading("Running scenario %d (%s):", i+1, path)
		ctl, err := rt.controller(c, path)
		if err != nil {
			return err
		}

		res := ctl.Validate()
		rt.out.Validation(res)
		if res.Valid() {
			a, b := ctl.Poses()
			rt.out.Pose(1, a)
			rt.out.Pose(2, b)
			rt.out.Line("Sending commands for scenario %d:", i+1)
			if err := ctl.SendCommands(c.Context); err != nil {
				ctl.Close()
				return err
			}
			a, b = ctl.Poses()
			rt.out.Pose(1, a)
			rt.out.Pose(2, b)
		} else {
			rejected = true
		}

		if rend != nil {
			if err := drawBoth(rend, ctl); err != nil {
				ctl.Close()
				return err
			}
		}
		ctl.Close()
	}
	if rejected {
		return errRejected
	}
	return nil
}

func (rt *runtime) plan(c *cli.Context) error {
	paths, err := files(c, 1)
	if err != nil {
		return err
	}
	ctl, err := rt.controller(c, paths[0])
	if err != nil {
		return err
	}
	defer ctl.Close()

	a, b := ctl.Trajectories()
	rt.out.Trajectory(table.RobotA, a)
	rt.out.Trajectory(table.RobotB, b)
	if rend := rt.renderer(c); rend != nil {
		return drawBoth(rend, ctl)
	}
	return nil
}

func (rt *runtime) validate(c *cli.Context) error {
	paths, err := files(c, 0)
	if err != nil {
		return err
	}
	rejected := false
	for _, path := range paths {
		ctl, err := rt.controller(c, path)
		if err != nil {
			return err
		}
		rt.out.Line("%s:", path)
		res := ctl.Validate()
		rt.out.Validation(res)
		rejected = rejected || !res.Valid()
		ctl.Close()
	}
	if rejected {
		return errRejected
	}
	return nil
}

func drawBoth(rend *render.Renderer, ctl *controller.Controller) error {
	a, b := ctl.Trajectories()
	if err := rend.Trajectory(table.RobotA, a, ctl.Bounds()); err != nil {
		return err
	}
	return rend.Trajectory(table.RobotB, b, ctl.Bounds())
}
