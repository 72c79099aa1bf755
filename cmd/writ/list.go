package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var defs bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exports and their signatures",
		Args:  cobra.NoArgs,
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

			out := cmd.OutOrStdout()
			seen := make(map[string]bool)
			for _, exp := range a.registry.Exports() {
				fmt.Fprintf(out, "%s: %s\n", exp.QualifiedName(), exp.Signature)
				if !defs {
					continue
				}
				for _, def := range exp.Signature.RecordDefs() {
					if !seen[def] {
						seen[def] = true
						fmt.Fprintf(out, "  %s\n", def)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&defs, "records", false, "also print record definitions")
	return cmd
}
