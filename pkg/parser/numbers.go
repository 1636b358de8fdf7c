package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumberRe = regexp.MustCompile(`^[\d,]+`)

// number parses a comma-grouped numeric token. Failure defaults to 0 and is
// recorded; sign never survives extraction, it lives in Side/Kind instead.
func (p *Parser) number(tok string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
	if err != nil {
		p.diag.defaultField()
		return 0
	}
	return math.Abs(v)
}

// amount parses the leading digit/comma run of a token, discarding a trailing
// foreign-currency component printed in the same cell.
func (p *Parser) amount(tok string) float64 {
	if m := leadingNumberRe.FindString(tok); m != "" {
		return p.number(m)
	}
	return p.number(tok)
}

// token returns tokens[i], or "0" when the row is shorter than the full column
// walk; truncated rows default instead of failing.
func token(tokens []string, i int) string {
	if i < 0 || i >= len(tokens) {
		return "0"
	}
	return tokens[i]
}
