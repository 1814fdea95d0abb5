package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataExtensionCourseSpeed(t *testing.T) {
	ext, n, err := DecodeDataExtension([]byte("088/036rest"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, DataExtension{Kind: ExtCourseSpeed, Course: 88, Speed: 36}, ext)
}

func TestDecodeDataExtensionPHG(t *testing.T) {
	ext, n, err := DecodeDataExtension([]byte("PHG7368rest"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, DataExtensionKind(ExtPHG), ext.Kind)
	assert.Equal(t, 49, ext.PowerW)
	assert.Equal(t, 80, ext.HeightFt)
	assert.Equal(t, 6, ext.GainDB)
	assert.Equal(t, 360, ext.Directivity)
}

func TestDecodeDataExtensionRNG(t *testing.T) {
	ext, n, err := DecodeDataExtension([]byte("RNG0050rest"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, DataExtension{Kind: ExtRNG, RangeMiles: 50}, ext)
}

func TestDecodeDataExtensionDFS(t *testing.T) {
	ext, n, err := DecodeDataExtension([]byte("DFS2360rest"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, DataExtensionKind(ExtDFS), ext.Kind)
	assert.Equal(t, 2, ext.StrengthS)
}

func TestDecodeDataExtensionNoneWhenUnrecognized(t *testing.T) {
	ext, n, err := DecodeDataExtension([]byte("just a comment"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, ExtNone, ext.Kind)
}

func TestDecodeDataExtensionTooShort(t *testing.T) {
	ext, n, err := DecodeDataExtension([]byte("short"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, ExtNone, ext.Kind)
}

func TestDataExtensionEncodeRoundTrip(t *testing.T) {
	cases := []DataExtension{
		{Kind: ExtCourseSpeed, Course: 88, Speed: 36},
		{Kind: ExtRNG, RangeMiles: 50},
	}
	for _, want := range cases {
		s, err := want.Encode()
		require.NoError(t, err)
		assert.Len(t, s, 7)
		got, n, err := DecodeDataExtension([]byte(s))
		require.NoError(t, err)
		assert.Equal(t, 7, n)
		assert.Equal(t, want, got)
	}
}
