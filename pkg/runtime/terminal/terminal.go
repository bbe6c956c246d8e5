package terminal

import (
	"io"
	"os"

	"github.com/de-tools/csv-reporter/pkg/runtime/terminal/commands"
	"github.com/de-tools/csv-reporter/pkg/services/report"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry report.Registry
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry report.Registry
	Output   io.Writer
	Logger   *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{registry: opts.Registry}
	cli.rootCmd = commands.NewGenerateCmd(opts.Registry, opts.Output, logger)
	cli.rootCmd.AddCommand(commands.NewReportsCmd(opts.Registry))
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}
