package consts

import "strings"

// CSSECountryName maps a population-by-country name onto the name used by
// the CSSE time series, commas already stripped
var CSSECountryName map[string]string

func init() {
	CSSECountryName = make(map[string]string)

	CSSECountryName["United States"] = "US"
	CSSECountryName["South Korea"] = "Korea South"
	CSSECountryName["Taiwan"] = "Taiwan*"
	CSSECountryName["Myanmar"] = "Burma"
	CSSECountryName["Czech Republic (Czechia)"] = "Czechia"
	CSSECountryName["Côte d'Ivoire"] = "Cote d'Ivoire"
	CSSECountryName["DR Congo"] = "Congo (Kinshasa)"
	CSSECountryName["Congo"] = "Congo (Brazzaville)"
	CSSECountryName["State of Palestine"] = "West Bank and Gaza"
	CSSECountryName["St. Vincent & Grenadines"] = "Saint Vincent and the Grenadines"
	CSSECountryName["Saint Kitts & Nevis"] = "Saint Kitts and Nevis"
	CSSECountryName["Sao Tome & Principe"] = "Sao Tome and Principe"
}

// CSSEName - convert a population source country name into the CSSE
// location name, unknown names are kept with commas removed
func CSSEName(country string) string {
	country = strings.TrimSpace(country)
	if name, ok := CSSECountryName[country]; ok {
		return name
	}
	return strings.Replace(country, ",", "", -1)
}
