package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/sant0-9/consult/internal/persona"
	"github.com/spf13/cobra"
)

func newPersonasCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "personas",
		Short: "List the available personas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := persona.Builtin()
			def := catalog.Default()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range catalog.All() {
				marker := ""
				if p.Label == def.Label {
					marker = "(default)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, p.Label, marker)
				if verbose {
					fmt.Fprintf(w, "\t%s\t\n", p.Instruction)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show each persona's instruction")

	return cmd
}
