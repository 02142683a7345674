// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tempus/stn"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report whether a constraint file is consistent",
		Long: `check propagates the constraints and prints "consistent", or
"inconsistent: <reason>" and exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() { err = a.finish(err) }()

			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			err = a.propagate(n)
			switch {
			case err == nil:
				_, err = fmt.Fprintln(a.out, "consistent")

				return err
			case errors.Is(err, stn.ErrNegativeCycle):
				_, werr := fmt.Fprintf(a.out, "inconsistent: %v\n", err)

				return &ExitError{Code: exitInfeasible, Err: werr}
			default:
				return err
			}
		},
	}
}
