package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/minsukim/tossu/pkg/layout"
	"github.com/minsukim/tossu/pkg/models"
)

// largeNumberFloor is the magnitude above which a token counts as an
// amount/balance candidate rather than a rate, count, or code.
const largeNumberFloor = 1000

func (p *Parser) parseCashMovements(rows []string) []models.CashMovement {
	var movements []models.CashMovement
	for i, row := range cashSection(rows) {
		row = strings.TrimSpace(row)
		if skipRow(row) || !dateRe.MatchString(row) {
			continue
		}
		// Trade rows can pass the cash header check too; they belong to the
		// trade parser alone.
		if strings.Contains(row, markerBuy) || strings.Contains(row, markerSell) {
			continue
		}

		tokens := layout.Tokenize(row)
		if len(tokens) < 3 {
			p.logger.Debug("skipping cash row", "row", row, "error", "too few columns")
			p.diag.rejectRow()
			continue
		}
		if !strings.Contains(tokens[1], markerDeposit) && !strings.Contains(tokens[1], markerWithdraw) {
			continue
		}

		movement, err := p.parseCashRow(tokens, i)
		if err != nil {
			p.logger.Debug("skipping cash row", "row", row, "error", err)
			p.diag.rejectRow()
			continue
		}
		movements = append(movements, *movement)
	}
	return movements
}

// parseCashRow recovers fields by magnitude rather than position because the
// deposit/withdrawal table does not keep a stable column count.
func (p *Parser) parseCashRow(tokens []string, rowIndex int) (*models.CashMovement, error) {
	date, err := time.Parse("2006.01.02", tokens[0])
	if err != nil {
		return nil, fmt.Errorf("invalid movement date %q: %w", tokens[0], err)
	}

	label := tokens[1]
	kind := models.Withdrawal
	if strings.Contains(label, markerDeposit) {
		kind = models.Deposit
	}

	var large []float64
	for j := 2; j < len(tokens); j++ {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tokens[j], ",", ""), 64)
		if err == nil && v >= largeNumberFloor {
			large = append(large, v)
		}
	}

	// The last large number is the running balance, the one before it the
	// movement amount. With a single large number the amount is certain and
	// the balance is taken from the final token when it qualifies; that is a
	// known approximation for rows that print only the balance.
	var amount, balance float64
	switch {
	case len(large) >= 2:
		balance = math.Round(large[len(large)-1])
		amount = math.Round(large[len(large)-2])
	case len(large) == 1:
		amount = math.Round(large[0])
		last := strings.ReplaceAll(tokens[len(tokens)-1], ",", "")
		if v, err := strconv.ParseFloat(last, 64); err == nil && v >= largeNumberFloor {
			balance = math.Round(v)
		} else {
			p.diag.defaultField()
		}
	default:
		p.diag.defaultField()
		p.diag.defaultField()
	}

	// Exchange rate: the first decimal-pointed value strictly between 100 and
	// 10000 anywhere after the label.
	var rate float64
	for j := 2; j < len(tokens); j++ {
		s := strings.ReplaceAll(tokens[j], ",", "")
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && v > 100 && v < 10000 && strings.Contains(s, ".") {
			rate = v
			break
		}
	}

	return &models.CashMovement{
		ID:           models.CashMovementID(date, label, rowIndex),
		Date:         date,
		Kind:         kind,
		ExchangeRate: rate,
		Amount:       math.Abs(amount),
		Balance:      math.Abs(balance),
		Description:  label,
	}, nil
}
