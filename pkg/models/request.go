package models

// GenerateResumeRequest represents the request payload for generating a resume PDF
type GenerateResumeRequest struct {
	Profile  string `json:"profile" validate:"required"`
	JD       string `json:"jd" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Template string `json:"template,omitempty"`
}

// RenderRequest is the payload accepted by the standalone pdf-renderer service
type RenderRequest struct {
	HTML string `json:"html"`
}
