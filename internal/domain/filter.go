package domain

import "fmt"

// All is the month/day value that disables that filter.
const All = "all"

// Months lists the month names accepted at the month prompt. A month's
// position in this list plus one is its calendar number.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days lists the weekday names accepted at the day prompt.
var Days = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Filter is a validated (city, month, day) selection.
// Month and Day are lowercase and either All or a member of Months / Days.
type Filter struct {
	City  City
	Month string
	Day   string
}

// ParseCity validates a normalized city answer.
func ParseCity(s string) (City, error) {
	c, err := LookupCity(s)
	if err != nil {
		return City{}, fmt.Errorf("%w: unknown city %q", ErrValidation, s)
	}
	return c, nil
}

// ParseMonth validates a normalized month answer.
func ParseMonth(s string) (string, error) {
	if s == All || indexOf(Months, s) >= 0 {
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown month %q", ErrValidation, s)
}

// ParseDay validates a normalized day answer.
func ParseDay(s string) (string, error) {
	if s == All || indexOf(Days, s) >= 0 {
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown day %q", ErrValidation, s)
}

// MonthNumber returns the 1-based calendar number of a name in Months,
// or 0 when month is All or not in the list.
func MonthNumber(month string) int {
	return indexOf(Months, month) + 1
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
