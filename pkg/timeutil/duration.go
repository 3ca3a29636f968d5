package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultHorizon is the fallback closing horizon used when none is
	// provided.
	DefaultHorizon = "30d"
)

var (
	horizonPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"d":      24 * time.Hour,
		"day":    24 * time.Hour,
		"days":   24 * time.Hour,
		"w":      7 * 24 * time.Hour,
		"wk":     7 * 24 * time.Hour,
		"wks":    7 * 24 * time.Hour,
		"week":   7 * 24 * time.Hour,
		"weeks":  7 * 24 * time.Hour,
		"mo":     30 * 24 * time.Hour,
		"mos":    30 * 24 * time.Hour,
		"month":  30 * 24 * time.Hour,
		"months": 30 * 24 * time.Hour,
	}
)

// ParseHorizon parses a human-friendly horizon string (for example "30d",
// "2w", or "1mo2w") and returns the equivalent duration along with a
// canonical, compact representation. Months count as thirty days. When the
// input is empty, the default horizon of thirty days is used.
func ParseHorizon(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultHorizon
	}

	lower := strings.ToLower(trimmed)
	remaining := lower
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := horizonPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid horizon segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid horizon value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported horizon unit %q", unitStr)
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("horizon must be greater than zero")
	}

	return total, FormatHorizon(total), nil
}

// FormatHorizon renders a duration using month/week/day tokens.
func FormatHorizon(d time.Duration) string {
	if d <= 0 {
		return "0d"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"mo", 30 * 24 * time.Hour},
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, "")
}
