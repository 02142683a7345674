// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tempus/payload"
)

func newSolveCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Propagate a constraint file and print the constraint table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() { err = a.finish(err) }()

			if output != "table" && output != "json" && output != "yaml" {
				return &ExitError{Code: exitUsage, Err: fmt.Errorf("invalid --output %q (want table, json or yaml)", output)}
			}
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err = a.propagate(n); err != nil {
				return err
			}

			return writeResult(a.out, payload.NewResult(n), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")

	return cmd
}

// writeResult renders res in the requested format.
func writeResult(w io.Writer, res *payload.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}

		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, renderTable(res, isTerminal(w)))

		return err
	}
}

// renderTable draws the rows as a bordered table; the header is bold on terminals.
func renderTable(res *payload.Result, styled bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FROM", "TO", "DISTANCE")
	if styled {
		header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		})
	}
	for _, r := range res.Rows {
		t = t.Row(r.From.String(), r.To.String(), strconv.FormatFloat(r.Distance, 'g', -1, 64))
	}

	return t.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
