package content

import "resumeforge/pkg/models"

// Merge combines a stored profile with a normalized submission into the
// render-ready document. Experience is merged positionally: job i's
// structural data pairs with submitted entry i's narrative data. Excess
// submitted entries are ignored; jobs past the end of the submission keep
// their stored title and get an empty detail list.
func Merge(profile *models.Profile, submitted *models.SubmittedContent) *models.MergedDocument {
	doc := &models.MergedDocument{
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Location:  profile.Location,
		Links:     profile.Links,
		Title:     submitted.Title,
		Summary:   submitted.Summary,
		Skills:    submitted.Skills,
		Education: profile.Education,
	}

	doc.Experience = make([]models.MergedExperience, len(profile.Jobs))
	for i, job := range profile.Jobs {
		exp := models.MergedExperience{
			Title:     job.Title,
			Company:   job.Company,
			Location:  job.Location,
			StartDate: job.StartDate,
			EndDate:   job.EndDate,
			Details:   []string{},
		}
		if i < len(submitted.Experience) {
			entry := submitted.Experience[i]
			if entry.Title != "" {
				exp.Title = entry.Title
			}
			if entry.Details != nil {
				exp.Details = entry.Details
			}
		}
		doc.Experience[i] = exp
	}

	return doc
}
