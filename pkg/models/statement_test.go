package models

import (
	"testing"
	"time"
)

func day(d string) time.Time {
	t, _ := time.Parse("2006.01.02", d)
	return t
}

func TestSummary(t *testing.T) {
	parsed := &ParsedStatement{
		Trades: []Trade{
			{Side: Buy, Amount: 100000},
			{Side: Buy, Amount: 50000},
			{Side: Sell, Amount: 80000},
		},
		CashMovements: []CashMovement{
			{Kind: Deposit, Amount: 1000000},
			{Kind: Withdrawal, Amount: 300000},
			{Kind: Deposit, Amount: 200000},
		},
	}

	sum := parsed.Summary()
	if sum.TradeCount != 3 || sum.BuyCount != 2 || sum.SellCount != 1 {
		t.Errorf("Unexpected trade counts: %+v", sum)
	}
	if sum.TotalDeposits != 1200000 {
		t.Errorf("Expected total deposits 1200000, got %v", sum.TotalDeposits)
	}
	if sum.TotalWithdrawals != 300000 {
		t.Errorf("Expected total withdrawals 300000, got %v", sum.TotalWithdrawals)
	}
	if sum.NetFlow != 900000 {
		t.Errorf("Expected net flow 900000, got %v", sum.NetFlow)
	}
}

func TestTradesByDateDescLeavesOriginalUntouched(t *testing.T) {
	parsed := &ParsedStatement{
		Trades: []Trade{
			{ID: "old", Date: day("2024.01.01")},
			{ID: "new", Date: day("2024.01.05")},
		},
	}

	sorted := parsed.TradesByDateDesc()
	if sorted[0].ID != "new" || sorted[1].ID != "old" {
		t.Errorf("Expected newest first, got %v then %v", sorted[0].ID, sorted[1].ID)
	}
	if parsed.Trades[0].ID != "old" {
		t.Error("Expected statement order to be preserved on the original slice")
	}
}

func TestTradeID(t *testing.T) {
	id := TradeID(day("2024.01.01"), "US74765K1051", Buy, 7)
	expected := "2024.01.01-US74765K1051-BUY-7"
	if id != expected {
		t.Errorf("Expected %q, got %q", expected, id)
	}
}

func TestFieldsMatchHeaders(t *testing.T) {
	if got := len(Trade{}.Fields()); got != len(TradeHeader) {
		t.Errorf("Trade fields (%d) out of sync with header (%d)", got, len(TradeHeader))
	}
	if got := len(CashMovement{}.Fields()); got != len(CashMovementHeader) {
		t.Errorf("Cash movement fields (%d) out of sync with header (%d)", got, len(CashMovementHeader))
	}
}
