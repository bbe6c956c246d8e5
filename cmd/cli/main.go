package main

import (
	"fmt"
	"os"

	"github.com/de-tools/csv-reporter/pkg/runtime/terminal"
	"github.com/de-tools/csv-reporter/pkg/services/report"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	registry, err := report.NewRegistry(map[string]report.Generator{
		"performance": report.Performance,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
		Logger:   &logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
