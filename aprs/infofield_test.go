package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeInformationFieldUnrecognizedIsRaw covers scenario S5:
// telemetry (and any other DTI the codec doesn't model) decodes straight
// to Raw without error, byte-exact.
func TestDecodeInformationFieldUnrecognizedIsRaw(t *testing.T) {
	raw := []byte("T#001,123,045,067,089,111,10011000")
	field, err := DecodeInformationField(raw)
	require.NoError(t, err)
	r, ok := field.(Raw)
	require.True(t, ok)
	assert.Equal(t, byte('T'), r.DataType)
	assert.Equal(t, raw[1:], r.Data)

	encoded, err := r.Encode()
	require.NoError(t, err)
	assert.Equal(t, raw, encoded)
}

func TestDecodeInformationFieldEmpty(t *testing.T) {
	_, err := DecodeInformationField(nil)
	assert.Error(t, err)
}

func TestDecodeInformationFieldDispatchesAllKnownDTIs(t *testing.T) {
	cases := map[byte]string{
		'!': "!4903.50N/07201.75W>",
		'=': "=4903.50N/07201.75W>",
		'/': "/092345z4903.50N/07201.75W>",
		'@': "@092345z4903.50N/07201.75W>",
		';': ";OBJECT1  *092345z4903.50N/07201.75W>",
		')': ")ITEM1!4903.50N/07201.75W>",
		':': ":KF7HVM   :hi",
		'>': ">hi",
	}
	for dti, raw := range cases {
		field, err := DecodeInformationField([]byte(raw))
		require.NoError(t, err, "dti %q", dti)
		assert.Equal(t, dti, field.DTI(), "dti %q", dti)
	}
}
