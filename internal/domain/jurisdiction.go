package domain

import (
	"sort"
	"strings"
)

// Jurisdiction is a state, province, or district a vehicle can cross into.
type Jurisdiction struct {
	Code    string
	Name    string
	Country string // "US" or "CA"
}

var jurisdictions = map[string]Jurisdiction{}

func init() {
	us := [][2]string{
		{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
		{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
		{"DC", "District of Columbia"}, {"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"},
		{"ID", "Idaho"}, {"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"},
		{"KS", "Kansas"}, {"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"},
		{"MD", "Maryland"}, {"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"},
		{"MS", "Mississippi"}, {"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"},
		{"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"},
		{"NY", "New York"}, {"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"},
		{"OK", "Oklahoma"}, {"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"},
		{"SC", "South Carolina"}, {"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"},
		{"UT", "Utah"}, {"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"},
		{"WV", "West Virginia"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
	}
	ca := [][2]string{
		{"AB", "Alberta"}, {"BC", "British Columbia"}, {"MB", "Manitoba"}, {"NB", "New Brunswick"},
		{"NL", "Newfoundland and Labrador"}, {"NS", "Nova Scotia"}, {"ON", "Ontario"},
		{"PE", "Prince Edward Island"}, {"QC", "Quebec"}, {"SK", "Saskatchewan"},
	}
	for _, j := range us {
		jurisdictions[j[0]] = Jurisdiction{Code: j[0], Name: j[1], Country: "US"}
	}
	for _, j := range ca {
		jurisdictions[j[0]] = Jurisdiction{Code: j[0], Name: j[1], Country: "CA"}
	}
}

// LookupJurisdiction returns the jurisdiction for code. Matching ignores case
// and surrounding whitespace.
func LookupJurisdiction(code string) (Jurisdiction, bool) {
	j, ok := jurisdictions[strings.ToUpper(strings.TrimSpace(code))]
	return j, ok
}

// Jurisdictions returns the full catalog ordered by country (US first), then code.
func Jurisdictions() []Jurisdiction {
	out := make([]Jurisdiction, 0, len(jurisdictions))
	for _, j := range jurisdictions {
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Country != out[b].Country {
			return out[a].Country > out[b].Country // "US" sorts before "CA"
		}
		return out[a].Code < out[b].Code
	})
	return out
}
