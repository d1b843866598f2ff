package contacts

import "slices"

// Record is one contact. The name is fixed at creation and keys the record in
// an AddressBook.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with a name and nothing else. The name must be
// non-empty; the command tokenizer never produces empty tokens.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact name.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phones in the order they were added.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends p. Duplicates are kept.
func (r *Record) AddPhone(p Phone) {
	r.phones = append(r.phones, p)
}

// ChangePhone replaces the first phone equal to old with newPhone.
// newPhone is validated before the lookup, so a failure never mutates r.
func (r *Record) ChangePhone(old, newPhone string) error {
	p, err := ValidatePhone(newPhone)
	if err != nil {
		return err
	}
	i := slices.Index(r.phones, Phone(old))
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.phones[i] = p
	return nil
}

// AddBirthday parses s and sets it as the birthday, replacing any previous one.
func (r *Record) AddBirthday(s string) error {
	b, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}
