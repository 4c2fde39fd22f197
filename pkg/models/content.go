package models

// SubmittedContent is the per-request narrative content pasted by the caller
// as JSON text: the headline, summary, skill groups and experience bullets for
// one tailored resume. It carries no identity data; that comes from the
// profile at merge time.
type SubmittedContent struct {
	Title      string              `json:"title"`
	Summary    string              `json:"summary"`
	Skills     map[string][]string `json:"skills"`
	Experience []SubmittedEntry    `json:"experience"`
}

// SubmittedEntry is one experience entry of a submission: an optional title
// override plus the detail bullets for the matching profile job.
type SubmittedEntry struct {
	Title   string   `json:"title,omitempty"`
	Details []string `json:"details"`
}

// MergedDocument is the render-ready union of a profile and a submission. It
// is what layouts execute against.
type MergedDocument struct {
	Name       string
	Email      string
	Phone      string
	Location   string
	Links      []Link
	Title      string
	Summary    string
	Skills     map[string][]string
	Experience []MergedExperience
	Education  []Education
}

// MergedExperience pairs one profile job with the submission entry at the
// same index. Structural fields come from the job, Details from the
// submission; Title is the submission's override or the job title.
type MergedExperience struct {
	Title     string
	Company   string
	Location  string
	StartDate string
	EndDate   string
	Details   []string
}
