package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallsignText(t *testing.T) {
	c, err := ParseCallsignText("KF7HVM-2")
	require.NoError(t, err)
	assert.Equal(t, Callsign{Base: "KF7HVM", SSID: 2}, c)
	assert.Equal(t, "KF7HVM-2", c.String())
}

func TestParseCallsignTextNoSSID(t *testing.T) {
	c, err := ParseCallsignText("APRS")
	require.NoError(t, err)
	assert.Equal(t, Callsign{Base: "APRS", SSID: 0}, c)
	assert.Equal(t, "APRS", c.String())
}

func TestParseCallsignTextHeard(t *testing.T) {
	c, err := ParseCallsignText("WIDE2-1*")
	require.NoError(t, err)
	assert.True(t, c.Heard)
	assert.Equal(t, "WIDE2-1*", c.String())
}

func TestParseCallsignTextRejectsBadSSID(t *testing.T) {
	_, err := ParseCallsignText("KF7HVM-16")
	assert.Error(t, err)
}

func TestParseCallsignTextRejectsLongBase(t *testing.T) {
	_, err := ParseCallsignText("TOOLONGCALL")
	assert.Error(t, err)
}

func TestCallsignBytesRoundTrip(t *testing.T) {
	c := Callsign{Base: "KF7HVM", SSID: 9, Heard: true}
	b, err := EncodeCallsignBytes(c, true)
	require.NoError(t, err)
	require.Len(t, b, 7)

	got, ext, err := ParseCallsignBytes(b)
	require.NoError(t, err)
	assert.True(t, ext)
	assert.Equal(t, c, got)
}

func TestCallsignBytesShortBase(t *testing.T) {
	c := Callsign{Base: "W7X", SSID: 0}
	b, err := EncodeCallsignBytes(c, false)
	require.NoError(t, err)
	got, ext, err := ParseCallsignBytes(b)
	require.NoError(t, err)
	assert.False(t, ext)
	assert.Equal(t, "W7X", got.Base)
}

func TestParseCallsignBytesWrongLength(t *testing.T) {
	_, _, err := ParseCallsignBytes([]byte("short"))
	assert.Error(t, err)
}
