package contacts

// AddressBook maps names to records and remembers insertion order for listing.
// It is not safe for concurrent use; callers serialize access.
type AddressBook struct {
	index map[string]int
	order []*Record
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{index: make(map[string]int)}
}

// AddRecord stores r under its name. An existing record with the same name is
// replaced entirely and keeps its position in the listing order.
func (b *AddressBook) AddRecord(r *Record) {
	if i, ok := b.index[r.Name()]; ok {
		b.order[i] = r
		return
	}
	b.index[r.Name()] = len(b.order)
	b.order = append(b.order, r)
}

// Find looks a record up by exact, case-sensitive name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.order[i], true
}

// All returns the records in insertion order.
func (b *AddressBook) All() []*Record {
	out := make([]*Record, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }
