// Package collect is a subcommand of the root command. It scans a directory of
// simulator results and writes the extracted statistics to a single report.
package collect

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"simstat/internal/app"
	"simstat/internal/config"
	"simstat/internal/extract"
	"simstat/internal/report"
	"simstat/internal/scan"
	"simstat/internal/util"
	"simstat/internal/workflow"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const cmdName = "collect"

var examples = []string{
	fmt.Sprintf("  Collect results into a workbook:      $ %s %s --input ./result --output collected_data.xlsx", app.Name, cmdName),
	fmt.Sprintf("  Collect results as JSON:              $ %s %s --input ./result --output collected_data.json --format json", app.Name, cmdName),
	fmt.Sprintf("  Collect .out and .log reports:        $ %s %s --input ./result --output stats.xlsx --ext .out,.log", app.Name, cmdName),
	fmt.Sprintf("  Collect with settings from a file:    $ %s %s --config simstat.yaml", app.Name, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Extract statistics from simulator reports into a spreadsheet",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagInput       string
	flagOutput      string
	flagFormat      string
	flagExtensions  []string
	flagConfig      string
	flagMetricsFile string

	// settings is filled by validateFlags and consumed by runCmd
	settings config.Collection
)

const (
	flagInputName       = "input"
	flagOutputName      = "output"
	flagFormatName      = "format"
	flagExtensionsName  = "ext"
	flagConfigName      = "config"
	flagMetricsFileName = "metrics-file"
)

func init() {
	Cmd.Flags().StringVar(&flagInput, flagInputName, "", "")
	Cmd.Flags().StringVar(&flagOutput, flagOutputName, "", "")
	Cmd.Flags().StringVar(&flagFormat, flagFormatName, report.FormatXlsx, "")
	Cmd.Flags().StringSliceVar(&flagExtensions, flagExtensionsName, []string{scan.DefaultExtension}, "")
	Cmd.Flags().StringVar(&flagConfig, flagConfigName, "", "")
	Cmd.Flags().StringVar(&flagMetricsFile, flagMetricsFileName, "", "")

	Cmd.SetUsageFunc(usageFunc)
}

func usageFunc(cmd *cobra.Command) error {
	cmd.Printf("Usage: %s [flags]\n\n", cmd.CommandPath())
	cmd.Printf("Examples:\n%s\n\n", cmd.Example)
	cmd.Println("Flags:")
	for _, group := range getFlagGroups() {
		cmd.Printf("  %s:\n", group.GroupName)
		for _, flag := range group.Flags {
			flagDefault := ""
			if cmd.Flags().Lookup(flag.Name).DefValue != "" && cmd.Flags().Lookup(flag.Name).DefValue != "[]" {
				flagDefault = fmt.Sprintf(" (default: %s)", cmd.Flags().Lookup(flag.Name).DefValue)
			}
			cmd.Printf("    --%-20s %s%s\n", flag.Name, flag.Help, flagDefault)
		}
	}
	cmd.Println("\nGlobal Flags:")
	cmd.Parent().PersistentFlags().VisitAll(func(pf *pflag.Flag) {
		flagDefault := ""
		if pf.DefValue != "" {
			flagDefault = fmt.Sprintf(" (default: %s)", pf.DefValue)
		}
		cmd.Printf("  --%-20s %s%s\n", pf.Name, pf.Usage, flagDefault)
	})
	return nil
}

func getFlagGroups() []app.FlagGroup {
	var groups []app.FlagGroup
	groups = append(groups, app.FlagGroup{
		GroupName: "Input Options",
		Flags: []app.Flag{
			{
				Name: flagInputName,
				Help: "results directory, each sub-directory becomes a sheet",
			},
			{
				Name: flagExtensionsName,
				Help: "comma-separated list of report file extensions",
			},
		},
	})
	groups = append(groups, app.FlagGroup{
		GroupName: "Output Options",
		Flags: []app.Flag{
			{
				Name: flagOutputName,
				Help: "report file to create, overwritten if it exists",
			},
			{
				Name: flagFormatName,
				Help: fmt.Sprintf("choose output format from: %s", strings.Join(report.FormatOptions, ", ")),
			},
			{
				Name: flagMetricsFileName,
				Help: "write run counters to this file in Prometheus text format",
			},
		},
	})
	groups = append(groups, app.FlagGroup{
		GroupName: "Configuration Options",
		Flags: []app.Flag{
			{
				Name: flagConfigName,
				Help: "YAML file with collection settings, flags take precedence",
			},
		},
	})
	return groups
}

// flagSettings returns the settings given explicitly on the command line.
func flagSettings(flags *pflag.FlagSet) config.Collection {
	var c config.Collection
	if flags.Changed(flagInputName) {
		c.Input = flagInput
	}
	if flags.Changed(flagOutputName) {
		c.Output = flagOutput
	}
	if flags.Changed(flagFormatName) {
		c.Format = flagFormat
	}
	if flags.Changed(flagExtensionsName) {
		c.Extensions = flagExtensions
	}
	if flags.Changed(flagMetricsFileName) {
		c.MetricsFile = flagMetricsFile
	}
	return c
}

func validateFlags(cmd *cobra.Command, args []string) error {
	var base config.Collection
	if flagConfig != "" {
		var err error
		if base, err = config.Load(util.ExpandUser(flagConfig)); err != nil {
			return app.FlagValidationError(cmd, err.Error())
		}
	}
	var err error
	settings, err = base.Merge(flagSettings(cmd.Flags())).Normalize()
	if err != nil {
		return app.FlagValidationError(cmd, err.Error())
	}
	// fail fast, before any output is produced
	exists, err := util.DirectoryExists(settings.Input)
	if err != nil {
		return app.FlagValidationError(cmd, fmt.Sprintf("failed to check input directory: %v", err))
	}
	if !exists {
		return app.FlagValidationError(cmd, fmt.Sprintf("input directory '%s' does not exist", settings.Input))
	}
	for _, path := range []string{settings.Output, settings.MetricsFile} {
		if path == "" {
			continue
		}
		// an existing file is overwritten, anything else is refused
		if _, err = util.FileExists(path); err != nil {
			return app.FlagValidationError(cmd, fmt.Sprintf("cannot write to '%s': %v", path, err))
		}
		exists, err = util.DirectoryExists(filepath.Dir(path))
		if err != nil {
			return app.FlagValidationError(cmd, fmt.Sprintf("failed to check output directory: %v", err))
		}
		if !exists {
			return app.FlagValidationError(cmd, fmt.Sprintf("output directory '%s' does not exist", filepath.Dir(path)))
		}
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	if appContext, ok := app.ContextFrom(cmd); ok {
		slog.Info("collect settings", slog.String("version", appContext.Version), slog.String("input", settings.Input), slog.String("output", settings.Output), slog.String("format", settings.Format))
	}
	collectionCommand := workflow.CollectionCommand{
		Settings:  settings,
		Extractor: extract.NewChampSimExtractor(),
		Out:       os.Stderr,
	}
	summary, err := collectionCommand.Run()
	if errors.Is(err, workflow.ErrNoData) {
		fmt.Fprintln(os.Stderr, "No data was extracted. No file will be created.")
		return nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if appContext, ok := app.ContextFrom(cmd); ok && appContext.LogFilePath != "" {
			fmt.Fprintf(os.Stderr, "See %s for details.\n", appContext.LogFilePath)
		}
		cmd.SilenceUsage = true
		return err
	}
	if len(summary.FileErrors) > 0 {
		slog.Warn("some report files were skipped", slog.Int("count", len(summary.FileErrors)))
	}
	return nil
}
