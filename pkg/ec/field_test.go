package ec

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dayDoc = `
<stationdata day="5" month="3" year="2020">
	<maxtemp units="°C">5.9</maxtemp>
	<mintemp units="°C">-3,5</mintemp>
	<meantemp></meantemp>
	<speedofmaxgust units="km/h">33</speedofmaxgust>
	<note flag="E">estimated</note>
</stationdata>`

func parseDay(t *testing.T) *Node {
	t.Helper()
	n, err := ParseXML(strings.NewReader(dayDoc))
	require.NoError(t, err)
	return n
}

func TestFieldSpec_Extract(t *testing.T) {
	day := parseDay(t)

	t.Run("float with units attribute", func(t *testing.T) {
		spec := FieldSpec{Path: "maxtemp", Type: TypeFloat}
		value, unit, err := spec.Extract(day)
		require.NoError(t, err)
		assert.Equal(t, 5.9, value)
		assert.Equal(t, "°C", unit)
	})

	t.Run("comma decimal separator", func(t *testing.T) {
		spec := FieldSpec{Path: "mintemp", Type: TypeFloat}
		value, _, err := spec.Extract(day)
		require.NoError(t, err)
		assert.Equal(t, -3.5, value)
	})

	t.Run("int", func(t *testing.T) {
		spec := FieldSpec{Path: "speedofmaxgust", Type: TypeInt}
		value, unit, err := spec.Extract(day)
		require.NoError(t, err)
		assert.Equal(t, 33, value)
		assert.Equal(t, "km/h", unit)
	})

	t.Run("empty element is nil, not an error", func(t *testing.T) {
		spec := FieldSpec{Path: "meantemp", Type: TypeFloat}
		value, unit, err := spec.Extract(day)
		require.NoError(t, err)
		assert.Nil(t, value)
		assert.Empty(t, unit)
	})

	t.Run("absent element is nil, not an error", func(t *testing.T) {
		spec := FieldSpec{Path: "snowonground", Type: TypeFloat}
		value, _, err := spec.Extract(day)
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("attribute override reads the attribute, no unit", func(t *testing.T) {
		spec := FieldSpec{Path: "note", Attribute: "flag", Type: TypeText}
		value, unit, err := spec.Extract(day)
		require.NoError(t, err)
		assert.Equal(t, "E", value)
		assert.Empty(t, unit)
	})

	t.Run("unparseable value surfaces an error", func(t *testing.T) {
		spec := FieldSpec{Path: "maxtemp", Type: TypeInt}
		_, _, err := spec.Extract(day)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coerce")
	})
}

func TestFieldSpec_Label(t *testing.T) {
	spec := FieldSpec{English: "Total Rain", French: "Pluie totale"}
	assert.Equal(t, "Total Rain", spec.Label(English))
	assert.Equal(t, "Pluie totale", spec.Label(French))
}

func TestNode_Find(t *testing.T) {
	doc := `
<climatedata>
	<stationinformation>
		<name>OTTAWA CDA</name>
	</stationinformation>
</climatedata>`
	root, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)

	el := root.Find("stationinformation/name")
	require.NotNil(t, el)
	assert.Equal(t, "OTTAWA CDA", el.TrimmedText())

	assert.Nil(t, root.Find("stationinformation/wmo_identifier"))
	assert.Nil(t, root.Find("nosuch/name"))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "e", English.URLCode())
	assert.Equal(t, "f", French.URLCode())
	assert.True(t, English.Valid())
	assert.True(t, French.Valid())
	assert.False(t, Language("klingon").Valid())
}

func TestCurrentYear_UsesInjectedClock(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })

	assert.Equal(t, 2020, CurrentYear())
}
