package main

import (
	"strings"
	"time"

	"github.com/minsukim/tossu/pkg/csv"
	"github.com/minsukim/tossu/pkg/models"
)

type filters struct {
	startDate string
	endDate   string
	side      string
	kind      string
	stock     string
	minAmount float64
}

func (f *filters) dateInRange(date time.Time) bool {
	if f.startDate != "" {
		if start, err := time.Parse("2006/01/02", f.startDate); err == nil && date.Before(start) {
			return false
		}
	}
	if f.endDate != "" {
		if end, err := time.Parse("2006/01/02", f.endDate); err == nil && date.After(end) {
			return false
		}
	}
	return true
}

func (f *filters) toTradeFilter() csv.FilterFunc[models.Trade] {
	return func(t models.Trade) bool {
		if !f.dateInRange(t.Date) {
			return false
		}
		if f.side != "" && !strings.EqualFold(f.side, string(t.Side)) {
			return false
		}
		if f.minAmount != 0 && t.Amount < f.minAmount {
			return false
		}
		if f.stock != "" {
			needle := strings.ToLower(f.stock)
			if !strings.Contains(strings.ToLower(t.StockName), needle) &&
				!strings.Contains(strings.ToLower(t.StockCode), needle) {
				return false
			}
		}
		return true
	}
}

func (f *filters) toCashFilter() csv.FilterFunc[models.CashMovement] {
	return func(m models.CashMovement) bool {
		if !f.dateInRange(m.Date) {
			return false
		}
		if f.kind != "" && !strings.EqualFold(f.kind, string(m.Kind)) {
			return false
		}
		if f.minAmount != 0 && m.Amount < f.minAmount {
			return false
		}
		return true
	}
}
