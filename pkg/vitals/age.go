package vitals

import (
	"fmt"
	"time"
)

// InvalidDateError signals a birth date that is missing or after the
// reference date.
type InvalidDateError struct {
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %s", e.Reason)
}

// Age returns whole calendar years elapsed between birth and reference,
// accounting for whether the birthday has occurred yet in the reference year.
func Age(birth, reference time.Time) (int, error) {
	if birth.IsZero() {
		return 0, &InvalidDateError{Reason: "birth date is required"}
	}
	if birth.After(reference) {
		return 0, &InvalidDateError{Reason: "birth date is in the future"}
	}

	years := reference.Year() - birth.Year()
	anniversary := time.Date(reference.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, reference.Location())
	if reference.Before(anniversary) {
		years--
	}
	return years, nil
}
