// Package contacts implements the in-memory address book: validated contact
// fields, records, the name-keyed directory and the upcoming birthday query.
package contacts

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the DD.MM.YYYY layout used for birthdays on input and output.
const DateLayout = "02.01.2006"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Phone is a validated 10-digit phone number.
type Phone string

// ValidatePhone returns s as a Phone if it is exactly 10 ASCII digits.
func ValidatePhone(s string) (Phone, error) {
	if !phonePattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, s)
	}
	return Phone(s), nil
}

// String returns the digits.
func (p Phone) String() string { return string(p) }

// Birthday is a calendar date at UTC midnight.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses s as DD.MM.YYYY. Dates that do not exist in the
// calendar (31.02.2000) are rejected. The year is not range checked.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as a time.Time at UTC midnight.
func (b Birthday) Date() time.Time { return b.date }

// Month returns the month of the birthday.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of month of the birthday.
func (b Birthday) Day() int { return b.date.Day() }

// IsZero reports whether b holds no date.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(DateLayout) }
