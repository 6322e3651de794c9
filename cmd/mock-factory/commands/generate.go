package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mock-factory/internal/fixture"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		schemaPath string
		flags      outputFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a mock from a YAML schema file",
		Long: `Synthesize a mock of a type declared in a YAML schema file.

The schema root type is used unless --type names another one. Overrides and
defaults of the schema apply; --set overrides take precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := fixture.LoadFile(schemaPath)
			if err != nil {
				return err
			}

			a.log.Debug("schema loaded",
				zap.String("path", schemaPath),
				zap.String("root", schema.File.Root),
				zap.Int("types", len(schema.Types)))

			opts, err := schema.Options(flags.typeName)
			if err != nil {
				return err
			}

			return flags.emit(cmd, a.log, opts)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to the YAML schema file")
	cmd.Flags().StringVarP(&flags.typeName, "type", "t", "", "Type to synthesize (default: schema root)")
	flags.register(cmd)

	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
