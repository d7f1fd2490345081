package historical

import "github.com/chinookdata/ecclimate/pkg/ec"

// measurementKinds orders the registry for deterministic iteration.
var measurementKinds = []string{
	"maxtemp",
	"mintemp",
	"meantemp",
	"heatdegdays",
	"cooldegdays",
	"totalrain",
	"totalsnow",
	"totalprecipitation",
	"snowonground",
	"dirofmaxgust",
	"speedofmaxgust",
}

// measurementFields is the fixed registry of daily measurement kinds: where
// each lives inside a stationdata element, how to coerce it, its display
// unit, and its bilingual label. Read-only after init.
var measurementFields = map[string]ec.FieldSpec{
	"maxtemp": {
		Path:    "maxtemp",
		Type:    ec.TypeFloat,
		Unit:    "°C",
		English: "Maximum Temperature",
		French:  "Température maximale",
	},
	"mintemp": {
		Path:    "mintemp",
		Type:    ec.TypeFloat,
		Unit:    "°C",
		English: "Minimum Temperature",
		French:  "Température minimale",
	},
	"meantemp": {
		Path:    "meantemp",
		Type:    ec.TypeFloat,
		Unit:    "°C",
		English: "Mean Temperature",
		French:  "Température moyenne",
	},
	"heatdegdays": {
		Path:    "heatdegdays",
		Type:    ec.TypeFloat,
		Unit:    "°C",
		English: "Heating Degree Days",
		French:  "Degré-jour de chauffage",
	},
	"cooldegdays": {
		Path:    "cooldegdays",
		Type:    ec.TypeFloat,
		Unit:    "°C",
		English: "Cooling Degree Days",
		French:  "Degré-jour de réfrigération",
	},
	"totalrain": {
		Path:    "totalrain",
		Type:    ec.TypeFloat,
		Unit:    "mm",
		English: "Total Rain",
		French:  "Pluie totale",
	},
	"totalsnow": {
		Path:    "totalsnow",
		Type:    ec.TypeFloat,
		Unit:    "cm",
		English: "Total Snow",
		French:  "Neige totale",
	},
	"totalprecipitation": {
		Path:    "totalprecipitation",
		Type:    ec.TypeFloat,
		Unit:    "mm",
		English: "Total Precipitation",
		French:  "Précipitations totales",
	},
	"snowonground": {
		Path:    "snowonground",
		Type:    ec.TypeFloat,
		Unit:    "cm",
		English: "Snow on Ground",
		French:  "Neige au sol",
	},
	"dirofmaxgust": {
		Path:    "dirofmaxgust",
		Type:    ec.TypeInt,
		Unit:    "10s Deg",
		English: "Direction of Maximum Gust",
		French:  "Direction de la rafale maximale",
	},
	"speedofmaxgust": {
		Path:    "speedofmaxgust",
		Type:    ec.TypeInt,
		Unit:    "km/h",
		English: "Speed of Maximum Gust",
		French:  "Vitesse de la rafale maximale",
	},
}

// metadataFields maps Metadata struct fields to their paths below the
// document root. All metadata stays text; no coercion.
var metadataFields = map[string]ec.FieldSpec{
	"name":               {Path: "stationinformation/name", Type: ec.TypeText},
	"province":           {Path: "stationinformation/province", Type: ec.TypeText},
	"stationoperator":    {Path: "stationinformation/stationoperator", Type: ec.TypeText},
	"latitude":           {Path: "stationinformation/latitude", Type: ec.TypeText},
	"longitude":          {Path: "stationinformation/longitude", Type: ec.TypeText},
	"elevation":          {Path: "stationinformation/elevation", Type: ec.TypeText},
	"climate_identifier": {Path: "stationinformation/climate_identifier", Type: ec.TypeText},
	"wmo_identifier":     {Path: "stationinformation/wmo_identifier", Type: ec.TypeText},
	"tc_identifier":      {Path: "stationinformation/tc_identifier", Type: ec.TypeText},
}

// MeasurementKinds returns the registered kinds in registry order. Every
// DailyRecord carries exactly this key set.
func MeasurementKinds() []string {
	out := make([]string, len(measurementKinds))
	copy(out, measurementKinds)
	return out
}
