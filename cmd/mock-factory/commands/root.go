// Package commands implements the mock-factory command tree.
package commands

import (
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"mock-factory/factory"
	"mock-factory/internal/logging"
	"mock-factory/internal/render"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	log *zap.Logger

	verbose bool
	logJSON bool
}

// NewRootCmd builds the mock-factory command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "mock-factory",
		Short: "Synthesize mock values from type descriptors",
		Long: `Synthesize deterministic example values from type descriptors.

Descriptors come from a YAML schema file or from the named types of Go
packages. Every primitive gets a fixed default value, arrays hold a single
element and unions resolve to their first member.

Examples:
  mock-factory generate -s delivery.yaml                # root type of the schema
  mock-factory generate -s delivery.yaml -t Address -f yaml
  mock-factory analyze ./store -t Delivery --set houseNumber=42
  mock-factory check -s delivery.yaml                   # report unsynthesizable types
  mock-factory categories                               # builtin generators`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: a.verbose, JSON: a.logJSON})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Log as JSON instead of console text")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newCategoriesCmd())

	return root
}

// outputFlags are the synthesis flags shared by generate and analyze.
type outputFlags struct {
	typeName string
	format   string
	set      []string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", render.FormatJSON.String(), "Output format: json, yaml")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "Property value override as name=value (value parsed as YAML, repeatable)")
}

// overrides parses --set flags on top of base.
func (f *outputFlags) overrides(base map[string]any) (map[string]any, error) {
	res := make(map[string]any, len(base)+len(f.set))
	maps.Copy(res, base)

	for _, kv := range f.set {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, want name=value", kv)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", kv, err)
		}

		res[name] = value
	}

	return res, nil
}

// emit synthesizes opts and writes the result to the command output.
func (f *outputFlags) emit(cmd *cobra.Command, log *zap.Logger, opts factory.Options) error {
	format, err := render.ParseFormat(f.format)
	if err != nil {
		return err
	}

	opts.ValueOverrides, err = f.overrides(opts.ValueOverrides)
	if err != nil {
		return err
	}

	log.Debug("synthesizing mock",
		zap.Stringer("type", opts.Type),
		zap.Int("valueOverrides", len(opts.ValueOverrides)),
		zap.Int("defaultOverrides", len(opts.DefaultOverrides)))

	mock, err := factory.GenerateMockObject(opts)
	if err != nil {
		return err
	}

	return render.Encode(cmd.OutOrStdout(), mock, format)
}
