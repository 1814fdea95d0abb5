package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTNC2Line(t *testing.T) {
	line, err := DecodeTNC2Line("KF7HVM-2>APRS,WIDE1-1,WIDE2-2:!4903.50N/07201.75W>Test")
	require.NoError(t, err)
	assert.Equal(t, Callsign{Base: "KF7HVM", SSID: 2}, line.Source)
	assert.Equal(t, Callsign{Base: "APRS"}, line.Destination)
	require.Len(t, line.Path, 2)
	assert.Equal(t, Callsign{Base: "WIDE1", SSID: 1}, line.Path[0])
	assert.Equal(t, "!4903.50N/07201.75W>Test", string(line.Info))
}

func TestDecodeTNC2LineNoPath(t *testing.T) {
	line, err := DecodeTNC2Line("KF7HVM>APRS:hello")
	require.NoError(t, err)
	assert.Empty(t, line.Path)
}

func TestDecodeTNC2LineMissingColon(t *testing.T) {
	_, err := DecodeTNC2Line("KF7HVM>APRS no colon here")
	assert.Error(t, err)
}

func TestDecodeTNC2LineMissingGt(t *testing.T) {
	_, err := DecodeTNC2Line("KF7HVM no angle bracket:hello")
	assert.Error(t, err)
}

func TestTNC2LineEncodeRoundTrip(t *testing.T) {
	line := TNC2Line{
		Source:      Callsign{Base: "KF7HVM", SSID: 2},
		Destination: Callsign{Base: "APRS"},
		Path:        []Callsign{{Base: "WIDE1", SSID: 1}, {Base: "WIDE2", SSID: 2, Heard: true}},
		Info:        []byte("!4903.50N/07201.75W>Test"),
	}
	s := line.Encode()
	got, err := DecodeTNC2Line(s)
	require.NoError(t, err)
	assert.Equal(t, line, got)
}

func TestIsServerComment(t *testing.T) {
	assert.True(t, IsServerComment("# aprsc 2.1.4-g sunset"))
	assert.False(t, IsServerComment("KF7HVM>APRS:hello"))
}

func TestBuildLoginLine(t *testing.T) {
	line := BuildLoginLine(Callsign{Base: "KF7HVM", SSID: 2}, 12345, "aprsgo", "1.0", "")
	assert.Equal(t, "user KF7HVM-2 pass 12345 vers aprsgo 1.0\r\n", line)
}

func TestBuildLoginLineWithFilter(t *testing.T) {
	line := BuildLoginLine(Callsign{Base: "KF7HVM"}, -1, "aprsgo", "1.0", "r/49.0/-72.0/50")
	assert.Equal(t, "user KF7HVM pass -1 vers aprsgo 1.0 filter r/49.0/-72.0/50\r\n", line)
}
