package contacts

import "errors"

// Error kinds returned by the contact core. Callers classify them with errors.Is;
// the text shown to users is chosen by the command layer, not here.
var (
	// ErrInvalidPhone is returned when a phone is not exactly 10 digits.
	ErrInvalidPhone = errors.New("invalid phone")

	// ErrInvalidDate is returned when a birthday is not a valid DD.MM.YYYY date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrPhoneNotFound is returned by ChangePhone when the old number is absent.
	ErrPhoneNotFound = errors.New("phone not found")

	// ErrRecordNotFound is returned by callers when a name lookup misses.
	// AddressBook.Find itself reports absence with a bool.
	ErrRecordNotFound = errors.New("record not found")
)
