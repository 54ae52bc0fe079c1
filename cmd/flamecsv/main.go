// Command flamecsv converts a flamegraph SVG into two report artifacts:
// a flat CSV with one row per stack-frame node and a JSON summary of
// total samples per function, ranked descending.
//
// # Usage
//
//	flamecsv [flags] <flamegraph.svg>
//	flamecsv schema
//
// Outputs are written next to the input as <prefix>.nodes.csv and
// <prefix>.top.json, where the prefix defaults to the input path without
// its extension. On success a single confirmation line is printed:
//
//	Wrote <prefix>.nodes.csv and <prefix>.top.json (nodes=<n>)
//
// The schema subcommand prints the JSON Schema describing the .top.json
// artifact.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/flamecsv/flamegraph"
	"go.jacobcolvin.com/flamecsv/log"
	"go.jacobcolvin.com/flamecsv/profile"
	"go.jacobcolvin.com/flamecsv/version"
)

func main() {
	convCfg := flamegraph.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "flamecsv [flags] <flamegraph.svg>",
		Short: "Convert a flamegraph SVG into CSV and JSON reports",
		Long: `flamecsv extracts every stack-frame node from a flamegraph SVG and writes
two artifacts: <prefix>.nodes.csv with one row per frame in document
order, and <prefix>.top.json with total samples per function, ranked
descending and normalized against the synthetic "all" root frame when
one exists.`,
		Version:       version.Info(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(convCfg, logCfg, profCfg, args[0])
		},
	}

	convCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
	} {
		completionErr := register(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	rootCmd.AddCommand(newSchemaCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(convCfg *flamegraph.Config, logCfg *log.Config, profCfg *profile.Config, svgPath string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	profiler := profCfg.NewProfiler()

	err = profiler.Start()
	if err != nil {
		return err
	}

	defer func() {
		stopErr := profiler.Stop()
		if stopErr != nil {
			slog.Error("stopping profiler", slog.Any("error", stopErr))
		}
	}()

	result, err := convCfg.NewConverter().Run(svgPath)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s and %s (nodes=%d)\n", result.NodesCSV, result.TopJSON, result.Nodes)

	return nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the .top.json artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(flamegraph.TopSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling schema: %w", err)
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("writing schema: %w", err)
			}

			return nil
		},
	}
}
