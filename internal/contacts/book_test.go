package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(records []*Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name())
	}
	return out
}

func TestAddressBook_FindAndAll(t *testing.T) {
	book := NewAddressBook()
	assert.Equal(t, 0, book.Len())

	for _, n := range []string{"Zoe", "Adam", "Mia"} {
		book.AddRecord(NewRecord(n))
	}

	assert.Equal(t, 3, book.Len())
	assert.Equal(t, []string{"Zoe", "Adam", "Mia"}, names(book.All()))

	r, ok := book.Find("Adam")
	require.True(t, ok)
	assert.Equal(t, "Adam", r.Name())

	_, ok = book.Find("adam")
	assert.False(t, ok, "lookup must be case-sensitive")
	_, ok = book.Find(" Adam")
	assert.False(t, ok, "lookup must not trim")
}

func TestAddressBook_AddRecordReplaces(t *testing.T) {
	book := NewAddressBook()

	first := NewRecord("John")
	first.AddPhone(mustPhone(t, "1111111111"))
	book.AddRecord(first)
	book.AddRecord(NewRecord("Jane"))

	second := NewRecord("John")
	second.AddPhone(mustPhone(t, "2222222222"))
	book.AddRecord(second)

	r, ok := book.Find("John")
	require.True(t, ok)
	assert.Same(t, second, r)
	assert.Equal(t, []Phone{"2222222222"}, r.Phones())

	assert.Equal(t, 2, book.Len())
	assert.Equal(t, []string{"John", "Jane"}, names(book.All()))
}

func TestAddressBook_FindReturnsOwnedRecord(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(NewRecord("John"))

	r, _ := book.Find("John")
	r.AddPhone(mustPhone(t, "1111111111"))

	again, _ := book.Find("John")
	assert.Equal(t, []Phone{"1111111111"}, again.Phones())
}

func TestAddressBook_AllIsACopy(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(NewRecord("John"))

	all := book.All()
	all[0] = NewRecord("Mallory")

	assert.Equal(t, []string{"John"}, names(book.All()))
}
