package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase91RoundTrip(t *testing.T) {
	cases := []struct {
		n int
		w int
	}{
		{0, 1}, {90, 1}, {0, 4}, {91 * 91, 4}, {91*91*91*91 - 1, 4},
	}
	for _, c := range cases {
		s, err := EncodeBase91(c.n, c.w)
		require.NoError(t, err)
		assert.Len(t, s, c.w)
		got, err := DecodeBase91(s)
		require.NoError(t, err)
		assert.Equal(t, c.n, got)
	}
}

func TestBase91EncodeWidthOverflow(t *testing.T) {
	_, err := EncodeBase91(91*91, 2)
	assert.Error(t, err)
}

func TestBase91EncodeNegative(t *testing.T) {
	_, err := EncodeBase91(-1, 1)
	assert.Error(t, err)
}

func TestBase91DecodeOutOfRange(t *testing.T) {
	_, err := DecodeBase91("\x00")
	assert.Error(t, err)
}

// Scenario S2 from the specification's compressed-position example:
// the latitude field "5L!!" decodes to a known base91 value
// (20*91^3 + 43*91^2 = 15427503, i.e. latitude 90 - 15427503/380926 = 49.5).
func TestBase91KnownValue(t *testing.T) {
	n, err := DecodeBase91("5L!!")
	require.NoError(t, err)
	assert.Equal(t, 15427503, n)
	s, err := EncodeBase91(n, 4)
	require.NoError(t, err)
	assert.Equal(t, "5L!!", s)
}
