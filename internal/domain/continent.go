package domain

import "strings"

type Continent string

const (
	ContinentAfrica         Continent = "AFRICA"
	ContinentAsia           Continent = "ASIA"
	ContinentEurope         Continent = "EUROPE"
	ContinentMiddleEast     Continent = "MIDDLE_EAST"
	ContinentNorthAmerica   Continent = "NORTH_AMERICA"
	ContinentCentralAmerica Continent = "CENTRAL_AMERICA"
	ContinentSouthAmerica   Continent = "SOUTH_AMERICA"
	ContinentOceania        Continent = "OCEANIA"
	ContinentAntarctica     Continent = "ANTARCTICA"
)

var continentLabels = map[Continent]string{
	ContinentAfrica:         "Afrique",
	ContinentAsia:           "Asie",
	ContinentEurope:         "Europe",
	ContinentMiddleEast:     "Moyen-Orient",
	ContinentNorthAmerica:   "Amérique du Nord",
	ContinentCentralAmerica: "Amérique Centrale & Caraïbes",
	ContinentSouthAmerica:   "Amérique du Sud",
	ContinentOceania:        "Océanie",
	ContinentAntarctica:     "Antarctique",
}

// Label returns the display label of the continent, or the raw code when unknown.
func (c Continent) Label() string {
	if label, ok := continentLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseContinent accepts an API code (any case) or a display label.
func ParseContinent(raw string) (Continent, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	code := Continent(strings.ToUpper(trimmed))
	if _, ok := continentLabels[code]; ok {
		return code, true
	}
	for c, label := range continentLabels {
		if strings.EqualFold(label, trimmed) {
			return c, true
		}
	}
	return "", false
}
