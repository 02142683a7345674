// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tempus/metrics"
	"github.com/katalvlaran/tempus/payload"
	"github.com/katalvlaran/tempus/stn"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel    string
	logFormat   string
	metricsFile string

	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "tempus",
		Short: "Solve Simple Temporal Networks",
		Long: `tempus reads duration constraints between time points, builds the
distance graph and propagates it with Floyd-Warshall. The result is the
tightest bound on every pair of time points, or the time point of a
negative cycle when the constraints are infeasible.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	root.AddCommand(newSolveCmd(a), newCheckCmd(a), newBoundsCmd(a))

	return root
}

// setup builds the run logger and the metrics recorder.
func (a *app) setup() error {
	logger, err := newLogger(a.logLevel, a.logFormat, a.errOut)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	a.logger = logger.With(slog.String("run_id", uuid.NewString()))
	a.recorder = metrics.NewRecorder()

	return nil
}

// newLogger creates a slog.Logger writing to w.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (want text or json)", format)
	}
}

// load decodes, validates and registers the request at path.
func (a *app) load(path string) (*stn.Network, error) {
	req, err := payload.Load(path)
	if err != nil {
		return nil, err
	}
	if err = payload.Validate(req); err != nil {
		return nil, err
	}
	opts, err := req.BuilderOptions()
	if err != nil {
		return nil, err
	}

	n := stn.New(stn.WithLogger(a.logger), stn.WithObserver(a.recorder))
	nodes, arcs, err := n.Register(req.Edges(), opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Info("network registered", "file", path, "time_points", nodes, "arcs", arcs)

	return n, nil
}

// propagate runs the solver and logs the outcome.
func (a *app) propagate(n *stn.Network) error {
	err := n.Propagate()
	if err != nil {
		a.logger.Info("network infeasible", "error", err, "elapsed", n.Elapsed())

		return err
	}
	a.logger.Info("network propagated", "elapsed", n.Elapsed(), "entries", len(n.Table()))

	return nil
}

// finish writes the metrics file, if requested, and classifies err.
func (a *app) finish(err error) error {
	if a.metricsFile != "" && a.recorder != nil {
		if werr := a.recorder.WriteTextfile(a.metricsFile); werr != nil {
			a.logger.Error("writing metrics file", "path", a.metricsFile, "error", werr)
			err = errors.Join(err, werr)
		}
	}

	return classify(err)
}
