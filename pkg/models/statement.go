package models

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Side classifies a trade row.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Kind classifies a cash movement row.
type Kind string

const (
	Deposit    Kind = "DEPOSIT"
	Withdrawal Kind = "WITHDRAWAL"
)

// Trade is one settled stock trade row from the statement. Amounts are in the
// statement's primary currency; any foreign-currency suffix on the source
// token is stripped during parsing.
type Trade struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Side            Side      `json:"type"`
	StockName       string    `json:"stockName"`
	StockCode       string    `json:"stockCode"`
	ExchangeRate    float64   `json:"exchangeRate"`
	Quantity        float64   `json:"quantity"`
	Amount          float64   `json:"amount"`
	UnitPrice       float64   `json:"price"`
	Commission      float64   `json:"commission"`
	Tax             float64   `json:"tax"`
	RemainingShares float64   `json:"holdings"`
	CashBalance     float64   `json:"balance"`
}

// CashMovement is one deposit or withdrawal row. Description carries the raw
// transaction-type label from the statement.
type CashMovement struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Kind         Kind      `json:"type"`
	ExchangeRate float64   `json:"exchangeRate"`
	Amount       float64   `json:"amount"`
	Balance      float64   `json:"balance"`
	Description  string    `json:"description"`
}

// ParsedStatement is the complete result of parsing one statement. It owns its
// record slices and is never mutated after construction.
type ParsedStatement struct {
	Trades        []Trade        `json:"trades"`
	CashMovements []CashMovement `json:"cashMovements"`
	ParsedAt      time.Time      `json:"parsedAt"`
}

// TradeID builds the row-scoped trade identifier. It is unique within a single
// parse only, never a stable cross-run key.
func TradeID(date time.Time, stockCode string, side Side, rowIndex int) string {
	return fmt.Sprintf("%s-%s-%s-%d", date.Format("2006.01.02"), stockCode, side, rowIndex)
}

// CashMovementID builds the row-scoped cash movement identifier. Same caveat
// as TradeID.
func CashMovementID(date time.Time, label string, rowIndex int) string {
	return fmt.Sprintf("%s-%s-%d", date.Format("2006.01.02"), label, rowIndex)
}

// Summary aggregates a statement the way the account dashboard presents it.
type Summary struct {
	TradeCount       int     `json:"tradeCount"`
	BuyCount         int     `json:"buyCount"`
	SellCount        int     `json:"sellCount"`
	TotalDeposits    float64 `json:"totalDeposits"`
	TotalWithdrawals float64 `json:"totalWithdrawals"`
	NetFlow          float64 `json:"netFlow"`
}

// Summary computes aggregate totals over the parsed records.
func (s *ParsedStatement) Summary() Summary {
	sum := Summary{TradeCount: len(s.Trades)}
	for _, t := range s.Trades {
		if t.Side == Buy {
			sum.BuyCount++
		} else {
			sum.SellCount++
		}
	}
	for _, m := range s.CashMovements {
		if m.Kind == Deposit {
			sum.TotalDeposits += m.Amount
		} else {
			sum.TotalWithdrawals += m.Amount
		}
	}
	sum.NetFlow = sum.TotalDeposits - sum.TotalWithdrawals
	return sum
}

// TradesByDateDesc returns a copy of the trades sorted newest first. The
// parser itself preserves statement row order; sorting is presentation only.
func (s *ParsedStatement) TradesByDateDesc() []Trade {
	out := make([]Trade, len(s.Trades))
	copy(out, s.Trades)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// CashMovementsByDateDesc returns a copy of the cash movements sorted newest
// first.
func (s *ParsedStatement) CashMovementsByDateDesc() []CashMovement {
	out := make([]CashMovement, len(s.CashMovements))
	copy(out, s.CashMovements)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// TradeHeader is the CSV column set for trades.
var TradeHeader = []string{
	"Date", "Side", "Stock", "Code", "ExchangeRate", "Quantity",
	"Amount", "UnitPrice", "Commission", "Tax", "RemainingShares", "CashBalance",
}

// Fields renders the trade as one CSV row matching TradeHeader.
func (t Trade) Fields() []string {
	return []string{
		t.Date.Format("2006/01/02"),
		string(t.Side),
		t.StockName,
		t.StockCode,
		formatNumber(t.ExchangeRate),
		formatNumber(t.Quantity),
		formatNumber(t.Amount),
		formatNumber(t.UnitPrice),
		formatNumber(t.Commission),
		formatNumber(t.Tax),
		formatNumber(t.RemainingShares),
		formatNumber(t.CashBalance),
	}
}

// CashMovementHeader is the CSV column set for cash movements.
var CashMovementHeader = []string{
	"Date", "Kind", "ExchangeRate", "Amount", "Balance", "Description",
}

// Fields renders the cash movement as one CSV row matching CashMovementHeader.
func (m CashMovement) Fields() []string {
	return []string{
		m.Date.Format("2006/01/02"),
		string(m.Kind),
		formatNumber(m.ExchangeRate),
		formatNumber(m.Amount),
		formatNumber(m.Balance),
		m.Description,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
