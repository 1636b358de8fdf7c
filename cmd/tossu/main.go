package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/minsukim/tossu/pkg/config"
	"github.com/minsukim/tossu/pkg/models"
	"github.com/minsukim/tossu/pkg/parser"
	"github.com/minsukim/tossu/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "tossu",
	Short: "Toss Securities statement parser",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "tossu",
	})
}

func buildConfig(cmd *cobra.Command, logger *log.Logger) (*config.Config, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return cfg, nil
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path>",
	Short: "Convert statement PDFs to trade and cash movement CSVs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := buildConfig(cmd, logger)
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger).
			WithFilters(cliFilters.toTradeFilter(), cliFilters.toCashFilter())

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			fileInfo, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}

			if fileInfo.IsDir() {
				if err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
			} else {
				if err := processor.ProcessFile(match); err != nil {
					logger.Warn("failed to process file", "error", err, "file", match)
				}
			}
		}
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Process every statement listed in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := buildConfig(cmd, logger)
		if err != nil {
			return err
		}

		manifest, err := models.FromFile(args[0])
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger).
			WithFilters(cliFilters.toTradeFilter(), cliFilters.toCashFilter())
		return processor.ProcessManifest(manifest)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <statement.pdf>",
	Short: "Parse a statement and dump the full result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		logger.SetLevel(log.DebugLevel)

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		diag := &parser.Diagnostics{}
		parsed, err := parser.New(logger).WithDiagnostics(diag).ProcessBytes(data, filepath.Base(args[0]))
		if err != nil {
			return err
		}

		pp.Println(parsed)
		pp.Println(parsed.Summary())
		logger.Info("diagnostics", "rows_rejected", diag.RowsRejected, "fields_defaulted", diag.FieldsDefaulted)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: next to each input file)")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start date (YYYY/MM/DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End date (YYYY/MM/DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.side, "side", "", "Trade side filter (buy or sell)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.kind, "kind", "", "Cash movement filter (deposit or withdrawal)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.stock, "stock", "", "Filter by stock name or code (case insensitive)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
