package geo

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed countries.json
var countriesJSON []byte

type countryInfo struct {
	Continent string `json:"continent"`
	Name      string `json:"name"`
}

type countryTable struct {
	Continents map[string]string      `json:"continents"`
	Countries  map[string]countryInfo `json:"countries"`
}

var countries = mustLoadCountries(countriesJSON)

func mustLoadCountries(data []byte) countryTable {
	var table countryTable
	if err := json.Unmarshal(data, &table); err != nil {
		panic("geo: invalid countries.json: " + err.Error())
	}
	return table
}

// CountryName returns the English name for an ISO 3166-1 alpha-2 code, or
// "" when the code is unknown.
func CountryName(code string) string {
	return countries.Countries[strings.ToUpper(code)].Name
}

// ContinentCode returns the two-letter continent code of a country.
func ContinentCode(countryCode string) string {
	return countries.Countries[strings.ToUpper(countryCode)].Continent
}

// ContinentName returns the continent name of a country, or "" when the
// country is unknown.
func ContinentName(countryCode string) string {
	return countries.Continents[ContinentCode(countryCode)]
}
