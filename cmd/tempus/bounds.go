// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tempus/core"
)

func newBoundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <file> <from> <to>",
		Short: "Print the feasible window of t(to) - t(from)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() { err = a.finish(err) }()

			from, err := parseTimePoint(args[1])
			if err != nil {
				return err
			}
			to, err := parseTimePoint(args[2])
			if err != nil {
				return err
			}
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err = a.propagate(n); err != nil {
				return err
			}

			b, ok := n.Bounds(from, to)
			if !ok {
				missing := from
				if n.Graph().HasVertex(from) {
					missing = to
				}

				return &ExitError{Code: exitUsage, Err: fmt.Errorf("time point %d: %w", missing, core.ErrVertexNotFound)}
			}
			_, err = fmt.Fprintln(a.out, b)

			return err
		},
	}
}

func parseTimePoint(s string) (core.TimePoint, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ExitError{Code: exitUsage, Err: fmt.Errorf("invalid time point %q", s)}
	}

	return core.TimePoint(v), nil
}
