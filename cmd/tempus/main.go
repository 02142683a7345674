// SPDX-License-Identifier: MIT

// Command tempus solves Simple Temporal Networks described in JSON, YAML or
// HCL files.
//
//	tempus solve plan.yaml --output json
//	tempus check plan.hcl
//	tempus bounds plan.json 1 5
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps errors to an exit code.
func run(args []string, out, errOut io.Writer) int {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(errOut, exitErr.Err)
		}

		return exitErr.Code
	}
	fmt.Fprintln(errOut, err)

	return exitUsage
}
