package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/minsukim/tossu/pkg/layout"
	"github.com/minsukim/tossu/pkg/models"
)

// A trade row carries at least 12 columns: date, side, stock (one or more
// tokens), exchange rate, quantity, amount, unit price, commission, tax,
// repayment/overdue adjustment, remaining shares, cash balance.
const minTradeTokens = 12

var stockInfoRe = regexp.MustCompile(`^(.+?)\(([^)]+)\)$`)

func (p *Parser) parseTrades(rows []string) []models.Trade {
	var trades []models.Trade
	for i, row := range tradeSection(rows) {
		row = strings.TrimSpace(row)
		if skipRow(row) || !dateRe.MatchString(row) {
			continue
		}
		if !strings.Contains(row, markerBuy) && !strings.Contains(row, markerSell) {
			continue
		}

		trade, err := p.parseTradeRow(layout.Tokenize(row), i)
		if err != nil {
			p.logger.Debug("skipping trade row", "row", row, "error", err)
			p.diag.rejectRow()
			continue
		}
		trades = append(trades, *trade)
	}
	return trades
}

func (p *Parser) parseTradeRow(tokens []string, rowIndex int) (*models.Trade, error) {
	if len(tokens) < minTradeTokens {
		return nil, fmt.Errorf("expected at least %d columns, got %d", minTradeTokens, len(tokens))
	}

	date, err := time.Parse("2006.01.02", tokens[0])
	if err != nil {
		return nil, fmt.Errorf("invalid trade date %q: %w", tokens[0], err)
	}

	var side models.Side
	switch tokens[1] {
	case markerBuy:
		side = models.Buy
	case markerSell:
		side = models.Sell
	default:
		return nil, fmt.Errorf("unrecognized trade side %q", tokens[1])
	}

	stockInfo, end := collectStockInfo(tokens)
	name, code := splitStockInfo(stockInfo)

	// The column walk resumes right after the stock tokens. base+6 is the
	// repayment/overdue adjustment column, which the statement carries but no
	// record field needs.
	base := end + 1
	return &models.Trade{
		ID:              models.TradeID(date, code, side, rowIndex),
		Date:            date,
		Side:            side,
		StockName:       name,
		StockCode:       code,
		ExchangeRate:    p.number(token(tokens, base)),
		Quantity:        p.number(token(tokens, base+1)),
		Amount:          p.amount(token(tokens, base+2)),
		UnitPrice:       p.amount(token(tokens, base+3)),
		Commission:      p.amount(token(tokens, base+4)),
		Tax:             p.amount(token(tokens, base+5)),
		RemainingShares: p.number(token(tokens, base+7)),
		CashBalance:     p.amount(token(tokens, base+8)),
	}, nil
}

// collectStockInfo merges the stock tokens starting at index 2. Stock names
// may contain embedded spaces, so tokens are joined up to and including the
// one carrying the parenthesized stock code. Without such a token, index 2
// alone is the whole descriptor.
func collectStockInfo(tokens []string) (string, int) {
	for j := 2; j < len(tokens); j++ {
		if strings.Contains(tokens[j], "(") && strings.Contains(tokens[j], ")") {
			return strings.Join(tokens[2:j+1], " "), j
		}
	}
	return tokens[2], 2
}

// splitStockInfo separates "name(code)". On mismatch the whole string is the
// name and the code stays empty.
func splitStockInfo(info string) (string, string) {
	if m := stockInfoRe.FindStringSubmatch(info); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(info), ""
}
