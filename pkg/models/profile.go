package models

// Profile represents a stored identity record: who the candidate is, how to
// reach them, and their fixed work/education history. Profiles are loaded from
// the profile store and treated as immutable for the process lifetime.
type Profile struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Location  string      `json:"location"`
	Links     []Link      `json:"links,omitempty"`
	Jobs      []Job       `json:"jobs"`
	Education []Education `json:"education,omitempty"`
}

// Link is a labeled URL on a profile (portfolio, LinkedIn, GitHub, ...)
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Job is a single position within a profile's work history
type Job struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Education is a single entry in a profile's education history
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}
