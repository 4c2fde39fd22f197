package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/content"
	"resumeforge/internal/generator"
	"resumeforge/internal/layout"
	"resumeforge/internal/logging"
	"resumeforge/internal/profile"
	"resumeforge/internal/renderer"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var generateValidator = validator.New()

// GenerateResumeHandler handles POST /api/v1/resume/generate. On success the
// response body is the PDF itself; failures are plain-text messages with the
// status carrying the taxonomy (400 bad request, 404 unknown profile, 500
// normalization/render failure).
func GenerateResumeHandler(store *profile.Store, registry *layout.Registry, rast renderer.Rasterizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing resume generation request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/resume/generate",
			"method":     "POST",
		})

		var req models.GenerateResumeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.String(http.StatusBadRequest, "Invalid request body: "+err.Error())
		}

		if err := generateValidator.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.String(http.StatusBadRequest, "Missing required field: "+describeValidationError(err))
		}

		result, err := generator.GenerateResume(c.Request().Context(), store, registry, rast, req)
		if err != nil {
			return respondGenerateError(c, requestID, req.Profile, err)
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename=%q`, result.Filename))
		return c.Blob(http.StatusOK, "application/pdf", result.PDF)
	}
}

func respondGenerateError(c echo.Context, requestID, profileID string, err error) error {
	logger := logging.GetGlobalLogger()

	var missingFields *content.MissingFieldsError
	switch {
	case errors.Is(err, profile.ErrNotFound):
		logger.Warn("Unknown profile requested", map[string]interface{}{
			"request_id": requestID,
			"profile_id": profileID,
		})
		return c.String(http.StatusNotFound, "Profile not found: "+profileID)

	case errors.Is(err, content.ErrMalformedInput), errors.As(err, &missingFields):
		logger.Error("Content normalization failed", map[string]interface{}{
			"request_id": requestID,
			"profile_id": profileID,
			"error":      err.Error(),
		})
		return c.String(http.StatusInternalServerError, "Failed to parse resume content: "+err.Error())

	case errors.Is(err, generator.ErrRender):
		logger.Error("Rendering failed", map[string]interface{}{
			"request_id": requestID,
			"profile_id": profileID,
			"error":      err.Error(),
		})
		return c.String(http.StatusInternalServerError, "Failed to render resume: "+err.Error())

	default:
		logger.Error("Resume generation failed", map[string]interface{}{
			"request_id": requestID,
			"profile_id": profileID,
			"error":      err.Error(),
		})
		return c.String(http.StatusInternalServerError, "Resume generation failed: "+err.Error())
	}
}

// describeValidationError names the first failing field rather than dumping
// the validator's full struct path output at the caller.
func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return err.Error()
}
