package vitals

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	cases := []struct {
		name      string
		birth     time.Time
		reference time.Time
		want      int
	}{
		{"day before birthday", date(2000, 6, 15), date(2024, 6, 14), 23},
		{"on birthday", date(2000, 6, 15), date(2024, 6, 15), 24},
		{"day after birthday", date(2000, 6, 15), date(2024, 6, 16), 24},
		{"earlier month", date(2000, 6, 15), date(2024, 3, 1), 23},
		{"later month", date(2000, 6, 15), date(2024, 9, 1), 24},
		{"newborn", date(2024, 1, 1), date(2024, 6, 1), 0},
		{"same day", date(2024, 6, 1), date(2024, 6, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Age(tc.birth, tc.reference)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Age = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAge_InvalidDates(t *testing.T) {
	var invalid *InvalidDateError

	_, err := Age(time.Time{}, date(2024, 1, 1))
	if !errors.As(err, &invalid) {
		t.Errorf("zero birth date: expected InvalidDateError, got %v", err)
	}

	_, err = Age(date(2030, 1, 1), date(2024, 1, 1))
	if !errors.As(err, &invalid) {
		t.Errorf("future birth date: expected InvalidDateError, got %v", err)
	}
}
