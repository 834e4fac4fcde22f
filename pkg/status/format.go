package status

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const balancePlaces = 4

// FormatBalance renders a base-unit balance in whole tokens, truncated to
// four decimal places.
func FormatBalance(balance *big.Int, decimals int32) string {
	if balance == nil {
		return "0"
	}
	return decimal.NewFromBigInt(balance, -decimals).Truncate(balancePlaces).String()
}

// FormatTime renders a duration in seconds as "1h 2m 3s", leaving out zero
// components.
func FormatTime(seconds uint64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}
