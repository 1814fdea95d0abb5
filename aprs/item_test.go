package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItemReport(t *testing.T) {
	field, err := DecodeInformationField([]byte(")ITEM1!4903.50N/07201.75W>Test"))
	require.NoError(t, err)
	item, ok := field.(ItemReport)
	require.True(t, ok)
	assert.Equal(t, "ITEM1", item.Name)
	assert.True(t, item.Live)
	assert.Equal(t, "Test", string(item.Comment))
}

func TestDecodeItemReportKilled(t *testing.T) {
	field, err := DecodeInformationField([]byte(")ITEM1_4903.50N/07201.75W>"))
	require.NoError(t, err)
	item := field.(ItemReport)
	assert.False(t, item.Live)
}

func TestDecodeItemReportNoTerminator(t *testing.T) {
	_, err := DecodeInformationField([]byte(")NOMARKERATALL4903.50N/07201.75W>"))
	assert.Error(t, err)
}

func TestItemReportEncodeRoundTrip(t *testing.T) {
	it := ItemReport{
		Name:     "ITEM1",
		Live:     true,
		Position: Position{Lat: 49.05833, Lon: -72.02917, SymbolTable: '/', SymbolCode: '>'},
		Comment:  []byte("Test"),
	}
	b, err := it.Encode()
	require.NoError(t, err)

	field, err := DecodeInformationField(b)
	require.NoError(t, err)
	got := field.(ItemReport)
	assert.Equal(t, it.Name, got.Name)
	assert.Equal(t, it.Live, got.Live)
	assert.Equal(t, it.Comment, got.Comment)
}

func TestItemReportEncodeRejectsShortName(t *testing.T) {
	it := ItemReport{Name: "AB", Position: Position{SymbolTable: '/', SymbolCode: '>'}}
	_, err := it.Encode()
	assert.Error(t, err)
}
