package ingest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// ParseLapTime converts a formatted time ("1:23.456", "1:02:03.5" or plain
// "83.456") into seconds. Decimal arithmetic keeps the millisecond digits
// exact before the single final float conversion.
func ParseLapTime(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, fmt.Errorf("unparsable time %q", s)
	}
	total := decimal.Zero
	for i, part := range parts {
		if part == "" {
			return 0, fmt.Errorf("unparsable time %q", s)
		}
		d, err := decimal.NewFromString(part)
		if err != nil {
			return 0, fmt.Errorf("unparsable time %q: %w", s, err)
		}
		if d.IsNegative() {
			return 0, fmt.Errorf("negative time %q", s)
		}
		// all but the last component are minutes/hours
		if i < len(parts)-1 && !d.IsInteger() {
			return 0, fmt.Errorf("unparsable time %q", s)
		}
		total = total.Mul(sixty).Add(d)
	}
	f, _ := total.Float64()
	return f, nil
}
