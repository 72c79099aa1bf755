package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/writ/conformance"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func newConformCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "conform",
		Short: "Run the built-in conformance suite",
		Long: `Runs the built-in cases against the records exports using the
configured record-transform policy and sample variant. Exits with status 2
when any case fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := a.close(); err == nil {
					err = cerr
				}
			}()

			runner := conformance.NewRunner(a.registry, conformance.WithLogger(a.logger.Named("conformance")))
			report := runner.Run(cmd.Context(), conformance.Suite(a.engine.Transform(), a.engine.Variant()))

			if !opts.quiet {
				printReport(cmd.OutOrStdout(), report, stdoutIsTerminal())
			}
			if failed := report.Failed(); len(failed) > 0 {
				return &exitCodeError{
					code: exitMismatch,
					err:  fmt.Errorf("%d of %d cases failed", len(failed), len(report.Results)),
				}
			}
			return nil
		},
	}
}

func printReport(w io.Writer, report conformance.Report, color bool) {
	pass, fail := "PASS", "FAIL"
	if color {
		pass, fail = passStyle.Render(pass), failStyle.Render(fail)
	}
	for _, res := range report.Results {
		if res.Passed {
			fmt.Fprintf(w, "%s  %s\n", pass, res.Case.Name)
			continue
		}
		fmt.Fprintf(w, "%s  %s: %v\n", fail, res.Case.Name, res.Err)
	}
	fmt.Fprintf(w, "\n%d/%d passed\n", len(report.Results)-len(report.Failed()), len(report.Results))
}
