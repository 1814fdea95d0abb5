package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTNC2PositionReport(t *testing.T) {
	f, err := DecodeTNC2("KF7HVM-2>APRS,WIDE1-1:!4903.50N/07201.75W>Test")
	require.NoError(t, err)
	pr, ok := f.Info.(PositionReport)
	require.True(t, ok)
	assert.False(t, pr.Messaging)
	almostEqual(t, 49.05833, pr.Position.Lat, 1e-3)

	out, err := f.EncodeTNC2()
	require.NoError(t, err)
	assert.Equal(t, "KF7HVM-2>APRS,WIDE1-1:!4903.50N/07201.75W>Test", out)
}

func TestDecodeTNC2RecoversToRawOnBadInfoField(t *testing.T) {
	f, err := DecodeTNC2("KF7HVM>APRS::bad message field with no separator at column 10")
	require.NoError(t, err)
	_, ok := f.Info.(Raw)
	assert.True(t, ok)
}

func TestDecodeAX25RoundTripsThroughFacade(t *testing.T) {
	frame := Frame{
		Destination: Callsign{Base: "APRS"},
		Source:      Callsign{Base: "KF7HVM", SSID: 2},
		Info:        []byte("!4903.50N/07201.75W>Test"),
	}
	b, err := frame.Encode(true)
	require.NoError(t, err)

	f, err := DecodeAX25(b, true)
	require.NoError(t, err)
	require.NotNil(t, f.Frame)
	assert.Equal(t, frame.Source, f.Frame.Source)

	out, err := f.EncodeAX25(true)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestDecodeAX25SurfacesFCSMismatchButStillPopulates(t *testing.T) {
	frame := Frame{
		Destination: Callsign{Base: "APRS"},
		Source:      Callsign{Base: "KF7HVM"},
		Info:        []byte("!4903.50N/07201.75W>"),
	}
	b, err := frame.Encode(true)
	require.NoError(t, err)
	b[len(b)-1] ^= 0xFF

	f, err := DecodeAX25(b, true)
	require.Error(t, err)
	require.NotNil(t, f)
	_, ok := f.Info.(PositionReport)
	assert.True(t, ok)
}

func TestAPRSFrameEncodeTNC2FromAX25Addressing(t *testing.T) {
	frame := Frame{
		Destination: Callsign{Base: "APRS"},
		Source:      Callsign{Base: "KF7HVM", SSID: 2},
		Path:        []Callsign{{Base: "WIDE1", SSID: 1}},
		Info:        []byte("!4903.50N/07201.75W>Test"),
	}
	b, err := frame.Encode(true)
	require.NoError(t, err)

	f, err := DecodeAX25(b, true)
	require.NoError(t, err)

	line, err := f.EncodeTNC2()
	require.NoError(t, err)
	assert.Equal(t, "KF7HVM-2>APRS,WIDE1-1:!4903.50N/07201.75W>Test", line)
}
