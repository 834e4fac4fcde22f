package status

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	big18, _ := new(big.Int).SetString("12345678901234567890", 10)

	tests := []struct {
		name     string
		balance  *big.Int
		decimals int32
		want     string
	}{
		{"nil", nil, 18, "0"},
		{"zero", big.NewInt(0), 10, "0"},
		{"whole DOT", big.NewInt(10_000_000_000), 10, "1"},
		{"truncates ether", big18, 18, "12.3456"},
		{"does not round up", big.NewInt(19_999), 4, "1.9999"},
		{"drops below precision", big.NewInt(99_999), 10, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBalance(tt.balance, tt.decimals))
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m"},
		{120, "2m"},
		{3600, "1h"},
		{3723, "1h 2m 3s"},
		{7205, "2h 5s"},
		{90061, "25h 1m 1s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), "seconds=%d", tt.seconds)
	}
}
