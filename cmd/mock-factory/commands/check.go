package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mock-factory/internal/fixture"
)

func newCheckCmd(a *app) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every type of a schema can be synthesized",
		Long: `Synthesize every type declared in a YAML schema file and report findings.

Exit codes:
  0 - No errors (warnings and infos may be printed)
  1 - At least one type cannot be synthesized`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := fixture.LoadFile(schemaPath)
			if err != nil {
				return err
			}

			diags := schema.Check()
			for _, d := range diags.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d)
			}

			a.log.Debug("schema checked",
				zap.Int("errors", len(diags.Errors)),
				zap.Int("warnings", len(diags.Warnings)))

			if diags.HasErrors() {
				return fmt.Errorf("%d error(s) in %s", len(diags.Errors), schemaPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to the YAML schema file")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
