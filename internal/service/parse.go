package service

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// parseAmount - "$12,345.67" -> 12345.67, при любой ошибке 0
func parseAmount(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}
