package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mock-factory/factory"
	"mock-factory/internal/analyze"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "analyze <package>...",
		Short: "Synthesize a mock of a Go type",
		Long: `Load Go packages and synthesize a mock of one of their named types.

Struct fields become properties named by their JSON tag, pointers are
nullable and named string or number types with constants become unions of
their values. The type is either qualified ("mock-factory/store.Delivery")
or a name unique among the loaded packages.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := analyze.NewAnalyzer(a.log).LoadPackages(args...)
			if err != nil {
				return err
			}

			typ, err := graph.Find(flags.typeName)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			return flags.emit(cmd, a.log, factory.Options{Type: typ})
		},
	}

	cmd.Flags().StringVarP(&flags.typeName, "type", "t", "", "Named type to synthesize")
	flags.register(cmd)

	_ = cmd.MarkFlagRequired("type")

	return cmd
}
