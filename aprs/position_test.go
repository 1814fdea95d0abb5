package aprs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func almostEqual(t *testing.T, want, got, tolerance float64) {
	t.Helper()
	assert.LessOrEqual(t, math.Abs(want-got), tolerance)
}

// TestUncompressedPositionDecode covers the position block of scenario S1
// (timestamp already stripped): an uncompressed position followed by a
// plain comment.
func TestUncompressedPositionDecode(t *testing.T) {
	pos, n, err := DecodePosition([]byte("4903.50N/07201.75W>Test"))
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	almostEqual(t, 49.05833, pos.Lat, 1e-3)
	almostEqual(t, -72.02917, pos.Lon, 1e-3)
	assert.Equal(t, byte('/'), pos.SymbolTable)
	assert.Equal(t, byte('>'), pos.SymbolCode)
	assert.False(t, pos.Compressed)
}

func TestUncompressedPositionRoundTrip(t *testing.T) {
	p := Position{Lat: 49.05833, Lon: -72.02917, SymbolTable: '/', SymbolCode: '>'}
	s, err := EncodeUncompressedPosition(p)
	require.NoError(t, err)
	assert.Len(t, s, 19)

	got, n, err := DecodePosition([]byte(s))
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	almostEqual(t, p.Lat, got.Lat, 1e-3)
	almostEqual(t, p.Lon, got.Lon, 1e-3)
}

func TestUncompressedPositionAmbiguity(t *testing.T) {
	p := Position{Lat: 49.05833, Lon: -72.02917, Ambiguity: 2, SymbolTable: '/', SymbolCode: '>'}
	s, err := EncodeUncompressedPosition(p)
	require.NoError(t, err)

	got, _, err := DecodePosition([]byte(s))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Ambiguity)
	// masked minutes decode to the midpoint digit '5'
	almostEqual(t, 49+3.55/60, got.Lat, 1e-6)
}

func TestUncompressedPositionInconsistentAmbiguity(t *testing.T) {
	// latitude masks 2 digits, longitude masks none: inconsistent.
	_, _, err := DecodePosition([]byte("4903.  N/07201.75W>"))
	assert.Error(t, err)
}

func TestUncompressedPositionRejectsBadHemisphere(t *testing.T) {
	_, _, err := DecodePosition([]byte("4903.50X/07201.75W>"))
	assert.Error(t, err)
}

// TestCompressedPositionCourseSpeed covers scenario S2: a compressed
// position whose extension slot carries course/speed.
func TestCompressedPositionCourseSpeed(t *testing.T) {
	pos, n, err := DecodePosition([]byte("/5L!!<*e7>7P["))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.True(t, pos.Compressed)
	assert.Equal(t, byte('/'), pos.SymbolTable)
	assert.Equal(t, byte('>'), pos.SymbolCode)
	assert.Equal(t, ExtCourseSpeed, pos.Extension.Kind)
}

func TestCompressedPositionAltitude(t *testing.T) {
	pos, n, err := DecodePosition([]byte("/5L!!<*e7>{?!"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	require.NotNil(t, pos.AltitudeFt)
}

func TestCompressedPositionNoExtension(t *testing.T) {
	pos, n, err := DecodePosition([]byte("/5L!!<*e7>  #"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, ExtNone, pos.Extension.Kind)
	assert.Nil(t, pos.AltitudeFt)
}

func TestCompressedPositionRoundTrip(t *testing.T) {
	p := Position{
		Lat: 49.5, Lon: -72.75, SymbolTable: '/', SymbolCode: '>', Compressed: true,
		Extension: DataExtension{Kind: ExtCourseSpeed, Course: 88, Speed: 36},
	}
	s, err := EncodeCompressedPosition(p)
	require.NoError(t, err)
	assert.Len(t, s, 13)

	got, n, err := DecodePosition([]byte(s))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	almostEqual(t, p.Lat, got.Lat, 1e-2)
	almostEqual(t, p.Lon, got.Lon, 1e-2)
	assert.Equal(t, ExtCourseSpeed, got.Extension.Kind)
}

func TestCompressedPositionRoundTripAltitude(t *testing.T) {
	// The compressed altitude cs-bytes hold a single base-91 digit (0-90)
	// once the leading '{' marker is accounted for, so only altitudes in
	// the 1.002^0..1.002^90 range round-trip exactly.
	alt := 1
	p := Position{
		Lat: 10, Lon: 10, SymbolTable: '/', SymbolCode: '>', Compressed: true,
		AltitudeFt: &alt,
	}
	s, err := EncodeCompressedPosition(p)
	require.NoError(t, err)
	assert.Len(t, s, 13)

	got, _, err := DecodePosition([]byte(s))
	require.NoError(t, err)
	require.NotNil(t, got.AltitudeFt)
	assert.InDelta(t, alt, *got.AltitudeFt, 1)
}

func TestDecodePositionUnrecognizedLead(t *testing.T) {
	_, _, err := DecodePosition([]byte("#not a position"))
	assert.Error(t, err)
}

func TestLiftAltitudeFromComment(t *testing.T) {
	rest, alt := liftAltitude([]byte("Test comment/A=001234 tail"))
	require.NotNil(t, alt)
	assert.Equal(t, 1234, *alt)
	assert.Equal(t, "Test comment tail", string(rest))
}

func TestLiftAltitudeAbsent(t *testing.T) {
	rest, alt := liftAltitude([]byte("plain comment"))
	assert.Nil(t, alt)
	assert.Equal(t, "plain comment", string(rest))
}

func TestConsumeExtensionAndCommentOrder(t *testing.T) {
	ext, alt, comment := consumeExtensionAndComment([]byte("088/036 hello/A=001234"))
	assert.Equal(t, ExtCourseSpeed, ext.Kind)
	require.NotNil(t, alt)
	assert.Equal(t, 1234, *alt)
	assert.Equal(t, " hello", string(comment))
}
