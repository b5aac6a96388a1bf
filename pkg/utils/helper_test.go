package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("15/06/2026")
	assert.Error(t, err)
}

func TestParseDateTimeFallsBackToDateOnly(t *testing.T) {
	parsed, err := ParseDateTime("2026-06-15T09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, parsed.Hour())

	parsed, err = ParseDateTime("2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Hour())
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)

	at := time.Date(2026, 6, 15, 18, 45, 12, 99, loc)
	start := StartOfDay(at)

	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, SplitCSV(""))
	assert.Equal(t, []string{"excursions", "transfers"}, SplitCSV("excursions, transfers"))
	assert.Equal(t, []string{"rentals"}, SplitCSV(",rentals,,"))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 7, ParseInt("7", 1))
	assert.Equal(t, 20, ParseInt("junk", 20))
	assert.Equal(t, 20, ParseInt("0", 20))
}
