package historical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvFixture = `"Longitude (x)","Latitude (y)","Station Name","Climate ID","Date/Time","Year","Month","Day","Max Temp (°C)"
"-75.1","45.2","TORONTO","6158355","2020-03-05","2020","03","05","5.9"
"-75.1","45.2","TORONTO","6158355","2020-03-06","2020","03","06","1.5"
`

func TestParseCSVMetadata(t *testing.T) {
	meta, err := parseCSVMetadata([]byte(csvFixture))
	require.NoError(t, err)

	require.NotNil(t, meta.Longitude)
	assert.Equal(t, "-75.1", *meta.Longitude)
	require.NotNil(t, meta.Latitude)
	assert.Equal(t, "45.2", *meta.Latitude)
	require.NotNil(t, meta.Name)
	assert.Equal(t, "TORONTO", *meta.Name)
	require.NotNil(t, meta.ClimateIdentifier)
	assert.Equal(t, "6158355", *meta.ClimateIdentifier)

	// The delimited format carries no further station metadata.
	assert.Nil(t, meta.Province)
	assert.Nil(t, meta.Elevation)
	assert.Nil(t, meta.WMOIdentifier)
}

func TestParseCSVMetadata_Empty(t *testing.T) {
	_, err := parseCSVMetadata(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header row")
}

func TestParseCSVMetadata_HeaderOnly(t *testing.T) {
	_, err := parseCSVMetadata([]byte("Longitude (x),Latitude (y),Station Name,Climate ID\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing data row")
}

func TestParseCSVMetadata_TruncatedDataRow(t *testing.T) {
	_, err := parseCSVMetadata([]byte("h1,h2,h3,h4\n-75.1,45.2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}
