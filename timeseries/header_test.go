package timeseries

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderKeepsOrder(t *testing.T) {
	header := []string{"Province", "Country", "Lat", "Long", "1/22/20", "1/1/20"}

	dates, err := ParseHeader(header, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"20-01-22", "20-01-01"}, dates)
}

func TestParseHeaderPadding(t *testing.T) {
	header := []string{"a", "12/31/20", "3/7/21", "10/10/21"}

	dates, err := ParseHeader(header, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"20-12-31", "21-03-07", "21-10-10"}, dates)
}

func TestParseHeaderUSLayout(t *testing.T) {
	header := []string{"UID", "iso2", "iso3", "code3", "FIPS", "Admin2", "Province_State",
		"Country_Region", "Lat", "Long_", "Combined_Key", "1/22/20", "1/23/20"}

	dates, err := ParseHeader(header, US.DefaultOffset())
	require.NoError(t, err)
	assert.Equal(t, []string{"20-01-22", "20-01-23"}, dates)
}

func TestParseHeaderMalformedToken(t *testing.T) {
	cases := [][]string{
		{"P", "C", "Lat", "Long", "1/22"},
		{"P", "C", "Lat", "Long", "1/22/20/1"},
		{"P", "C", "Lat", "Long", "2020-01-22"},
	}
	for _, c := range cases {
		_, err := ParseHeader(c, 4)
		assert.True(t, errors.Is(err, ErrMalformedHeaderToken), "wrong error for %v", c)
	}
}

func TestParseHeaderOffsetOutOfRange(t *testing.T) {
	_, err := ParseHeader([]string{"P", "C"}, 4)
	assert.True(t, errors.Is(err, ErrMalformedHeaderToken))
}

func TestParseHeaderNoDates(t *testing.T) {
	dates, err := ParseHeader([]string{"P", "C", "Lat", "Long"}, 4)
	require.NoError(t, err)
	assert.Empty(t, dates)
}
