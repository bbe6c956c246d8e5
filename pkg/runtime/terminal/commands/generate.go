package commands

import (
	"io"

	"github.com/de-tools/csv-reporter/pkg/runtime/terminal/export"
	"github.com/de-tools/csv-reporter/pkg/services/report"
	"github.com/de-tools/csv-reporter/pkg/services/source"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	files       []string
	reportName  string
	profilePath string
	format      string
	registry    report.Registry
	output      io.Writer
	logger      zerolog.Logger
}

// NewGenerateCmd builds the root command: merge the input CSV files and render
// the requested report as a table.
func NewGenerateCmd(registry report.Registry, output io.Writer, logger zerolog.Logger) *cobra.Command {
	gc := &GenerateCmd{registry: registry, output: output, logger: logger}
	cmd := &cobra.Command{
		Use:           "csv-reporter",
		Short:         "Generate reports from CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          gc.run,
	}

	// Define flags
	cmd.Flags().StringSliceVar(&gc.files, "files", nil, "Input CSV files, merged in the given order")
	cmd.Flags().StringVar(&gc.reportName, "report", "", "Name of the report to generate")
	cmd.Flags().StringVar(&gc.profilePath, "profile", "", "Path to an output profile (YAML)")
	cmd.Flags().StringVar(&gc.format, "format", "", "Table style: simple or grid (overrides the profile)")

	// Mark required flags
	_ = cmd.MarkFlagRequired("files")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	profile := DefaultProfile()
	if gc.profilePath != "" {
		p, err := LoadProfile(gc.profilePath)
		if err != nil {
			return err
		}
		profile = *p
	}
	if gc.format != "" {
		profile.Format = gc.format
	}

	style, err := export.ParseStyle(profile.Format)
	if err != nil {
		return err
	}

	table, err := source.ReadAll(gc.files, source.MergeOptions{StrictHeaders: profile.StrictHeaders})
	if err != nil {
		return err
	}

	gc.logger.Debug().
		Int("files", len(gc.files)).
		Int("rows", len(table.Rows)).
		Str("report", gc.reportName).
		Msg("merged input files")

	result, err := gc.registry.Generate(gc.reportName, table)
	if err != nil {
		return err
	}

	reporter := export.NewReporter(gc.output, style)
	return reporter.Handle(&result)
}
