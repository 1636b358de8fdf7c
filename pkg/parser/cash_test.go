package parser

import (
	"testing"

	"github.com/minsukim/tossu/pkg/models"
)

func TestParseCashRowMagnitudeHeuristic(t *testing.T) {
	tokens := []string{"2024.01.02", "출금", "1434.90", "1000000", "5000000"}

	movement, err := testParser().parseCashRow(tokens, 0)
	if err != nil {
		t.Fatalf("parseCashRow failed: %v", err)
	}

	if movement.Kind != models.Withdrawal {
		t.Errorf("Expected kind %v, got %v", models.Withdrawal, movement.Kind)
	}
	if movement.Amount != 1000000 {
		t.Errorf("Expected amount 1000000, got %v", movement.Amount)
	}
	if movement.Balance != 5000000 {
		t.Errorf("Expected balance 5000000, got %v", movement.Balance)
	}
	if movement.ExchangeRate != 1434.9 {
		t.Errorf("Expected exchange rate 1434.9, got %v", movement.ExchangeRate)
	}
	if movement.Description != "출금" {
		t.Errorf("Expected description %q, got %q", "출금", movement.Description)
	}
}

func TestParseCashRowSingleLargeNumber(t *testing.T) {
	// One large number doubles as amount and, being the final token, balance.
	tokens := []string{"2024.01.03", "입금", "5,000"}

	movement, err := testParser().parseCashRow(tokens, 1)
	if err != nil {
		t.Fatalf("parseCashRow failed: %v", err)
	}

	if movement.Kind != models.Deposit {
		t.Errorf("Expected kind %v, got %v", models.Deposit, movement.Kind)
	}
	if movement.Amount != 5000 {
		t.Errorf("Expected amount 5000, got %v", movement.Amount)
	}
	if movement.Balance != 5000 {
		t.Errorf("Expected balance 5000, got %v", movement.Balance)
	}
}

func TestParseCashRowWithoutLargeNumbersStillEmits(t *testing.T) {
	tokens := []string{"2024.01.04", "입금", "환전", "123"}

	diag := &Diagnostics{}
	movement, err := testParser().WithDiagnostics(diag).parseCashRow(tokens, 2)
	if err != nil {
		t.Fatalf("parseCashRow failed: %v", err)
	}

	if movement.Amount != 0 || movement.Balance != 0 {
		t.Errorf("Expected zero amount and balance, got %v and %v", movement.Amount, movement.Balance)
	}
	if diag.FieldsDefaulted != 2 {
		t.Errorf("Expected 2 defaulted fields, got %d", diag.FieldsDefaulted)
	}
}

func TestParseCashMovementsExcludesTradeRows(t *testing.T) {
	rows := []string{
		"거래일자 거래구분 종목명 환율 거래수량 거래대금 단가 수수료 제세금 변제/연체합 잔고 잔액",
		"2024.01.01 구매 퀀텀 Si(US74765K1051) 1,434.90 3 624,181 208,060 617 0 0 3 5,325,358",
		"2024.01.02 출금 1434.90 1,000,000 5,000,000",
		"2024.01.03 이체수수료 100", // label without deposit/withdrawal marker
	}

	movements := testParser().parseCashMovements(rows)
	if len(movements) != 1 {
		t.Fatalf("Expected 1 cash movement, got %d", len(movements))
	}
	if movements[0].Kind != models.Withdrawal {
		t.Errorf("Expected withdrawal, got %v", movements[0].Kind)
	}
}

func TestParseCashMovementsWithoutHeaderReturnsNothing(t *testing.T) {
	rows := []string{
		"거래일자만 있는 제목", // has the date heading but not the full cash header
		"2024.01.02 출금 1,000,000 5,000,000",
	}

	if movements := testParser().parseCashMovements(rows); len(movements) != 0 {
		t.Errorf("Expected no cash movements without the table header, got %d", len(movements))
	}
}
