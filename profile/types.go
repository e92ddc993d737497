// Package profile holds the structured LinkedIn profile model and the
// pipeline that extracts, structures, and renders it.
package profile

// Experience is one position on a profile.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// Education is one school entry on a profile.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Field  string `json:"field,omitempty"`
	Years  string `json:"years,omitempty"`
}

// Certification is one certification entry on a profile.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
}

// Volunteer is one volunteering entry on a profile.
type Volunteer struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Duration     string `json:"duration,omitempty"`
}

// Recommendation is one recommendation received on a profile.
type Recommendation struct {
	Author       string `json:"author"`
	Relationship string `json:"relationship"`
	Text         string `json:"text"`
}

// Profile is the structured form of an extracted LinkedIn profile.
type Profile struct {
	Name            string           `json:"name"`
	Headline        string           `json:"headline"`
	Location        string           `json:"location"`
	About           string           `json:"about"`
	Experience      []Experience     `json:"experience"`
	Education       []Education      `json:"education"`
	Skills          []string         `json:"skills"`
	Certifications  []Certification  `json:"certifications,omitempty"`
	Languages       []string         `json:"languages,omitempty"`
	Volunteer       []Volunteer      `json:"volunteer,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}
