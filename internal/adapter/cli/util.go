package cli

import (
	"strconv"
	"strings"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

// parseWeight accepts a positive finite decimal.
func parseWeight(s string) (float64, error) {
	v, err := strconv.ParseFloat(trim(s), 64)
	if err != nil {
		return 0, domain.ErrInvalidWeight
	}
	if err := domain.ValidateWeight(v); err != nil {
		return 0, err
	}
	return v, nil
}

// windowForChoice maps the exact menu choice "1".."4" to a window length in days.
func windowForChoice(s string) (int, bool) {
	for i, days := range app.Windows {
		if s == strconv.Itoa(i+1) {
			return days, true
		}
	}
	return 0, false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
