package contacts

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"123456789", false},
		{"12345678901", false},
		{"", false},
		{"+123456789", false},
		{"123-456-78", false},
		{"12345 6789", false},
		{"123456789a", false},
		{"١٢٣٤٥٦٧٨٩٠", false}, // non-ASCII digits
		{"1234567890\n", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			p, err := ValidatePhone(tt.in)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.in, p.String())
				return
			}
			assert.ErrorIs(t, err, ErrInvalidPhone)
			assert.Empty(t, p)
		})
	}
}

func TestValidatePhone_AnyTenDigits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		s := fmt.Sprintf("%010d", rng.Int63n(10_000_000_000))
		p, err := ValidatePhone(s)
		require.NoError(t, err, s)
		assert.Equal(t, Phone(s), p)
	}
}

func TestParseBirthday(t *testing.T) {
	b, err := ParseBirthday("15.06.1990")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), b.Date())
	assert.Equal(t, time.June, b.Month())
	assert.Equal(t, 15, b.Day())
	assert.False(t, b.IsZero())
}

func TestParseBirthday_Invalid(t *testing.T) {
	for _, in := range []string{
		"31.02.2000",
		"29.02.2001",
		"32.01.2000",
		"00.01.2000",
		"01.13.2000",
		"1.2.2000",
		"01.02.20",
		"2000-02-01",
		"01/02/2000",
		" 01.02.2000",
		"01.02.2000 ",
		"",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseBirthday(in)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestParseBirthday_LeapDay(t *testing.T) {
	b, err := ParseBirthday("29.02.2000")
	require.NoError(t, err)
	assert.Equal(t, "29.02.2000", b.String())
}

func TestParseBirthday_RoundTrip(t *testing.T) {
	start := time.Date(1899, time.December, 25, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2101; d = d.AddDate(0, 0, 97) {
		s := d.Format(DateLayout)
		b, err := ParseBirthday(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, b.String())
	}
}
