package main

import (
	"github.com/spf13/cobra"
)

// options holds the flags shared by every command.
type options struct {
	expect      string
	batch       string
	configPath  string
	policy      string
	sample      string
	metricsFile string
	verbose     bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "writ [flags] FUNCNAME [ARGS...]",
		Short: "Call record exports with JSON arguments",
		Long: `Calls a records export with JSON-encoded arguments and prints the
JSON-encoded result.

Batch File Format:
  A JSON or YAML file may be passed with -b in lieu of in-line arguments.
  It must hold either a list of lists or a list of single values:

    ["Alice", "Bob"]            OR      [["Alice", 30], ["Bob", 5]]

  Each entry of the outer list is the argument list of one call.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, opts, args[0], args[1:])
		},
	}
	// Arguments after FUNCNAME may look like flags (-5).
	cmd.Flags().SetInterspersed(false)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&opts.policy, "policy", "", "record-transform policy (age-by-ten, fixture)")
	pf.StringVar(&opts.sample, "sample", "", "sample collection variant (populated, empty)")
	pf.StringVar(&opts.metricsFile, "metrics-file", "", "write call metrics to this file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress result output")

	f := cmd.Flags()
	f.StringVarP(&opts.expect, "expect", "e", "", "expected result as JSON; a mismatch exits with status 2")
	f.StringVarP(&opts.batch, "batch", "b", "", "file of inputs to use in place of in-line arguments")

	cmd.AddCommand(
		newListCmd(opts),
		newConformCmd(opts),
		newInteractiveCmd(opts),
	)
	return cmd
}
