package contacts

import (
	"fmt"
	"time"
)

// DefaultWindowDays is the length of the upcoming birthday window, inclusive
// of both today and the last day.
const DefaultWindowDays = 7

// LeapDayPolicy decides where a Feb 29 birthday lands in a non-leap year.
type LeapDayPolicy string

const (
	// LeapDayMarch1 moves Feb 29 to Mar 1.
	LeapDayMarch1 LeapDayPolicy = "mar1"
	// LeapDayFeb28 moves Feb 29 to Feb 28.
	LeapDayFeb28 LeapDayPolicy = "feb28"
)

// ParseLeapDayPolicy validates a policy name. The empty string selects Mar 1.
func ParseLeapDayPolicy(s string) (LeapDayPolicy, error) {
	switch LeapDayPolicy(s) {
	case "", LeapDayMarch1:
		return LeapDayMarch1, nil
	case LeapDayFeb28:
		return LeapDayFeb28, nil
	default:
		return "", fmt.Errorf("unknown leap day policy %q (valid: %s, %s)", s, LeapDayMarch1, LeapDayFeb28)
	}
}

// Options tunes ComputeUpcomingWith.
type Options struct {
	WindowDays int
	LeapDay    LeapDayPolicy
}

// DefaultOptions returns the 7 day window with Feb 29 moved to Mar 1.
func DefaultOptions() Options {
	return Options{WindowDays: DefaultWindowDays, LeapDay: LeapDayMarch1}
}

// Upcoming is one entry of the upcoming birthday report.
type Upcoming struct {
	Name string
	// Date is the greeting date: the next occurrence of the birthday,
	// moved to Monday when it falls on a weekend.
	Date time.Time
}

// FormattedDate returns Date as DD.MM.YYYY.
func (u Upcoming) FormattedDate() string { return u.Date.Format(DateLayout) }

// ComputeUpcoming lists contacts whose next birthday falls within
// [today, today+7 days], in address book order.
func ComputeUpcoming(book *AddressBook, today time.Time) []Upcoming {
	return ComputeUpcomingWith(book, today, DefaultOptions())
}

// ComputeUpcomingWith is ComputeUpcoming with an explicit window length and
// leap day policy. Only the calendar date of today is used.
func ComputeUpcomingWith(book *AddressBook, today time.Time, opts Options) []Upcoming {
	if opts.WindowDays < 0 {
		opts.WindowDays = 0
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var out []Upcoming
	for _, r := range book.All() {
		b, ok := r.Birthday()
		if !ok {
			continue
		}
		next := occurrence(b, day.Year(), opts.LeapDay)
		if next.Before(day) {
			next = occurrence(b, day.Year()+1, opts.LeapDay)
		}
		diff := int(next.Sub(day) / (24 * time.Hour))
		if diff < 0 || diff > opts.WindowDays {
			continue
		}
		out = append(out, Upcoming{Name: r.Name(), Date: greetingDate(next)})
	}
	return out
}

// occurrence places the birthday's month and day in year.
func occurrence(b Birthday, year int, policy LeapDayPolicy) time.Time {
	month, dom := b.Month(), b.Day()
	if month == time.February && dom == 29 && !isLeap(year) {
		if policy == LeapDayFeb28 {
			dom = 28
		} else {
			month, dom = time.March, 1
		}
	}
	return time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)
}

// greetingDate shifts Saturday and Sunday to the following Monday.
func greetingDate(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
