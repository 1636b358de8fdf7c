package parser

import (
	"regexp"
	"strings"
)

// Literal markers from the issuer's statement layout.
const (
	headerDate     = "거래일자" // trade date column heading
	headerKind     = "거래구분" // transaction type column heading
	headerAmount   = "거래대금" // transaction amount column heading
	footerIssued   = "발급일자" // issue date line that closes a table
	divider        = "---"
	markerBuy      = "구매"
	markerSell     = "판매"
	markerDeposit  = "입금"
	markerWithdraw = "출금"
)

var dateRe = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}`)

// tradeSection returns the rows after the trade-table header, or nil when the
// document has no trade table. A missing section is valid, not an error.
func tradeSection(rows []string) []string {
	for i, row := range rows {
		if strings.Contains(row, headerDate) {
			return rows[i+1:]
		}
	}
	return nil
}

// cashSection returns the rows after the deposit/withdrawal table header. The
// header can coincide with the trade header in some layouts; both locators
// scan independently and the row-level filters disambiguate.
func cashSection(rows []string) []string {
	for i, row := range rows {
		if strings.Contains(row, headerDate) &&
			strings.Contains(row, headerKind) &&
			strings.Contains(row, headerAmount) {
			return rows[i+1:]
		}
	}
	return nil
}

// skipRow reports structural noise inside a section: blank rows, dividers, and
// the issue-date footer.
func skipRow(row string) bool {
	return row == "" || strings.Contains(row, divider) || strings.Contains(row, footerIssued)
}
