package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/minsukim/tossu/pkg/config"
	"github.com/minsukim/tossu/pkg/csv"
	"github.com/minsukim/tossu/pkg/models"
	"github.com/minsukim/tossu/pkg/parser"
)

// Processor converts statement PDFs on disk into trade and cash movement CSVs.
type Processor struct {
	config   *config.Config
	logger   *log.Logger
	parser   *parser.Parser
	tradeFlt csv.FilterFunc[models.Trade]
	cashFlt  csv.FilterFunc[models.CashMovement]
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		parser: parser.New(logger),
	}
}

// WithFilters restricts which records make it into the CSV output.
func (p *Processor) WithFilters(trades csv.FilterFunc[models.Trade], cash csv.FilterFunc[models.CashMovement]) *Processor {
	p.tradeFlt = trades
	p.cashFlt = cash
	return p
}

func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}
		if err := p.ProcessFile(filepath.Join(dir, entry.Name())); err != nil {
			p.logger.Error("failed to process statement", "file", entry.Name(), "error", err)
		}
	}

	return nil
}

func (p *Processor) ProcessFile(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	diag := &parser.Diagnostics{}
	parsed, err := p.parser.WithDiagnostics(diag).ProcessBytes(data, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("failed to parse statement: %w", err)
	}

	return p.writeOutputs(parsed, inputPath, p.config.OutputDir, diag)
}

// ProcessManifest runs every statement listed in a batch manifest through the
// models.Parser contract. The manifest's output_dir, when set, overrides the
// configured one.
func (p *Processor) ProcessManifest(m *models.Manifest) error {
	outputDir := p.config.OutputDir
	if m.OutputDir != "" {
		outputDir = m.OutputDir
	}

	for _, st := range m.Statements {
		path, err := st.File()
		if err != nil {
			p.logger.Error("failed to resolve statement path", "file", st.FilePath, "error", err)
			continue
		}

		diag := &parser.Diagnostics{}
		parsed, err := st.Parse(p.parser.WithDiagnostics(diag))
		if err != nil {
			p.logger.Error("failed to process statement", "file", path, "error", err)
			continue
		}

		if err := p.writeOutputs(parsed, path, outputDir, diag); err != nil {
			p.logger.Error("failed to write statement output", "file", path, "error", err)
		}
	}
	return nil
}

func (p *Processor) writeOutputs(parsed *models.ParsedStatement, inputPath, outputDir string, diag *parser.Diagnostics) error {
	tradesOut := outputPath(inputPath, outputDir, "-trades.csv")
	if err := os.WriteFile(tradesOut, csv.Create(models.TradeHeader, parsed.Trades, p.tradeFlt), 0644); err != nil {
		return fmt.Errorf("failed to write trades csv: %w", err)
	}
	cashOut := outputPath(inputPath, outputDir, "-cash.csv")
	if err := os.WriteFile(cashOut, csv.Create(models.CashMovementHeader, parsed.CashMovements, p.cashFlt), 0644); err != nil {
		return fmt.Errorf("failed to write cash csv: %w", err)
	}

	p.logger.Info("processed statement",
		"input", inputPath,
		"trades", len(parsed.Trades),
		"cash_movements", len(parsed.CashMovements),
		"rows_rejected", diag.RowsRejected,
		"fields_defaulted", diag.FieldsDefaulted,
	)
	return nil
}

func outputPath(inputPath, outputDir, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if outputDir != "" {
		return filepath.Join(outputDir, base+suffix)
	}
	return filepath.Join(filepath.Dir(inputPath), base+suffix)
}
