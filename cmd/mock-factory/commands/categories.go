package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mock-factory/factory"
	"mock-factory/internal/render"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories with a registered generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "CATEGORY\tDEFAULT")

			for _, category := range factory.DefaultRegistry().Categories() {
				def := "-"
				if v, ok := factory.DefaultValue(category); ok {
					if v != factory.Undefined {
						v = render.Plain(v)
					}
					def = fmt.Sprint(v)
				}

				fmt.Fprintf(w, "%s\t%s\n", category, def)
			}

			return w.Flush()
		},
	}
}
