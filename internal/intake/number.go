package intake

import (
	"strconv"
	"strings"
)

// currencyTokens are stripped before numeric parsing, longest first so
// that "PLN" wins over any shorter overlap.
var currencyTokens = []string{"PLN", "pln", "zł", "zl", "USD", "usd", "EUR", "eur", "$", "€"}

// parseNumber turns a free-text amount into a float. It strips currency
// symbols and grouping spaces (including non-breaking variants) and
// normalizes comma decimal separators, so "1 000 zł" and "1000" both
// parse to 1000.
func parseNumber(raw string) (float64, error) {
	clean := raw
	for _, token := range currencyTokens {
		clean = strings.ReplaceAll(clean, token, "")
	}
	clean = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ' ', ' ':
			return -1
		case ',':
			return '.'
		}
		return r
	}, clean)
	return strconv.ParseFloat(clean, 64)
}
