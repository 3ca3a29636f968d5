package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseMoney converts a display price like "$987,900" or "$2,500/month"
// into a number. A per-period suffix is dropped; the result must be a
// finite positive amount.
func ParseMoney(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if i := strings.IndexByte(cleaned, '/'); i >= 0 {
		cleaned = cleaned[:i]
	}
	if cleaned == "" {
		return 0, fmt.Errorf("record: empty price")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("record: malformed price %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("record: price %q is out of range", s)
	}
	return v, nil
}

// FormatMoney renders an amount as "$11,597.85".
func FormatMoney(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), frac)
}
