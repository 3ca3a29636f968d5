package record

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// ParseTime accepts RFC3339 or a bare ISO date.
func ParseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse(layoutISO, v)
}

// Timestamp wraps time.Time with the JSON encoding used across records.
type Timestamp struct {
	time.Time
}

// Date builds a Timestamp for the given calendar day.
func Date(year int, month time.Month, day int) Timestamp {
	return Timestamp{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (t Timestamp) SameDay(then time.Time) bool {
	return t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// DateString renders just the calendar day, the display format for
// note dates and date-added columns.
func (t Timestamp) DateString() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(layoutISO)
}
