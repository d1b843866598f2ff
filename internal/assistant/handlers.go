package assistant

import (
	"errors"
	"fmt"
	"strings"

	"addressbook/internal/contacts"
)

// ErrMissingArguments is returned when a command gets fewer tokens than it needs.
var ErrMissingArguments = errors.New("missing arguments")

// User-facing replies.
const (
	msgGreeting        = "How can I help you?"
	msgGoodbye         = "Good bye!"
	msgInvalidCommand  = "Invalid command."
	msgContactAdded    = "Contact added."
	msgContactUpdated  = "Contact updated."
	msgPhoneChanged    = "Phone changed."
	msgBirthdayAdded   = "Birthday added."
	msgNoBirthday      = "Birthday not found."
	msgNoUpcoming      = "No upcoming birthdays."
	msgNoContacts      = "No contacts saved."
	msgEnterName       = "Enter user name."
	msgEnterArgs       = "Enter command arguments."
	msgInvalidPhone    = "Phone number must contain exactly 10 digits."
	msgInvalidDate     = "Invalid date format. Use DD.MM.YYYY"
	msgPhoneNotFound   = "Old phone number not found."
	msgUnexpectedError = "Something went wrong: %v"
)

// messageFor maps an error kind to the text shown to the user.
func messageFor(err error) string {
	switch {
	case errors.Is(err, contacts.ErrRecordNotFound):
		return msgEnterName
	case errors.Is(err, ErrMissingArguments):
		return msgEnterArgs
	case errors.Is(err, contacts.ErrInvalidPhone):
		return msgInvalidPhone
	case errors.Is(err, contacts.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, contacts.ErrPhoneNotFound):
		return msgPhoneNotFound
	default:
		return fmt.Sprintf(msgUnexpectedError, err)
	}
}

// find returns the record for name or ErrRecordNotFound.
func (a *Assistant) find(name string) (*contacts.Record, error) {
	r, ok := a.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", contacts.ErrRecordNotFound, name)
	}
	return r, nil
}

func (a *Assistant) addContact(args []string) (string, error) {
	name, raw := args[0], args[1]
	phone, err := contacts.ValidatePhone(raw)
	if err != nil {
		return "", err
	}

	msg := msgContactUpdated
	r, ok := a.book.Find(name)
	if !ok {
		r = contacts.NewRecord(name)
		a.book.AddRecord(r)
		msg = msgContactAdded
	}
	r.AddPhone(phone)
	return msg, nil
}

func (a *Assistant) changeContact(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.ChangePhone(args[1], args[2]); err != nil {
		return "", err
	}
	return msgPhoneChanged, nil
}

func (a *Assistant) showPhone(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	return joinPhones(r.Phones()), nil
}

func (a *Assistant) showAll(_ []string) (string, error) {
	records := a.book.All()
	if len(records) == 0 {
		return msgNoContacts, nil
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := r.Name() + ": " + joinPhones(r.Phones())
		if b, ok := r.Birthday(); ok {
			line += ", Birthday: " + b.String()
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return msgBirthdayAdded, nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	r, ok := a.book.Find(args[0])
	if !ok {
		return msgNoBirthday, nil
	}
	b, ok := r.Birthday()
	if !ok {
		return msgNoBirthday, nil
	}
	return b.String(), nil
}

func (a *Assistant) birthdays(_ []string) (string, error) {
	upcoming := contacts.ComputeUpcomingWith(a.book, a.now(), a.opts)
	if len(upcoming) == 0 {
		return msgNoUpcoming, nil
	}
	lines := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		lines = append(lines, u.Name+": "+u.FormattedDate())
	}
	return strings.Join(lines, "\n"), nil
}

func joinPhones(phones []contacts.Phone) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
