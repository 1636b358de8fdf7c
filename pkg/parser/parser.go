// Package parser reconstructs the trade and deposit/withdrawal tables of a
// Toss Securities account statement from its PDF text layer.
package parser

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/minsukim/tossu/pkg/extract"
	"github.com/minsukim/tossu/pkg/layout"
	"github.com/minsukim/tossu/pkg/models"
)

type Parser struct {
	logger *log.Logger
	diag   *Diagnostics
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// WithDiagnostics returns a copy of the parser that records row rejects and
// field defaults into d. The original parser is untouched, so one base parser
// can serve concurrent parses each with its own collector.
func (p *Parser) WithDiagnostics(d *Diagnostics) *Parser {
	clone := *p
	clone.diag = d
	return &clone
}

// ProcessBytes parses one statement PDF. Failure to decode the PDF itself is
// the only error; individual malformed rows are skipped, never fatal.
func (p *Parser) ProcessBytes(data []byte, filename string) (*models.ParsedStatement, error) {
	p.logger.Debug("parsing statement", "filename", filename, "bytes", len(data))

	pages, err := extract.Fragments(data)
	if err != nil {
		return nil, err
	}

	return p.ParseRows(layout.DocumentRows(pages)), nil
}

// ParseRows runs both section parsers over an already reconstructed row
// sequence. The same rows feed both parsers; row-level content filters keep a
// row from producing both a trade and a cash movement.
func (p *Parser) ParseRows(rows []string) *models.ParsedStatement {
	trades := p.parseTrades(rows)
	movements := p.parseCashMovements(rows)

	p.logger.Debug("parsed statement", "trades", len(trades), "cash_movements", len(movements))

	return &models.ParsedStatement{
		Trades:        trades,
		CashMovements: movements,
		ParsedAt:      time.Now(),
	}
}
