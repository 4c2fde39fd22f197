package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resumeforge/internal/content"
	"resumeforge/internal/layout"
	"resumeforge/internal/logging"
	"resumeforge/internal/profile"
	"resumeforge/internal/renderer"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ErrRender marks layout application or rasterization failures so handlers
// can map them precisely. Store and normalization errors pass through
// untouched; they carry their own sentinels.
var ErrRender = errors.New("render_error")

// Result is one generated document: the PDF bytes plus the derived download
// filename. Nothing is persisted.
type Result struct {
	PDF      []byte
	Filename string
}

// GenerateResume runs the full assembly pipeline for one request: profile
// lookup, content normalization and merge, layout rendering, rasterization
// and filename derivation. All failures are terminal; nothing is retried.
func GenerateResume(ctx context.Context, store *profile.Store, registry *layout.Registry, rast renderer.Rasterizer, req models.GenerateResumeRequest) (*Result, error) {
	logger := logging.GetGlobalLogger()
	started := time.Now()

	prof, err := store.Load(req.Profile)
	if err != nil {
		return nil, err
	}

	submitted, err := content.Normalize(req.JD)
	if err != nil {
		return nil, err
	}

	doc := content.Merge(prof, submitted)

	markup, err := registry.Render(doc, req.Template)
	if err != nil {
		logger.Error("Layout rendering failed", map[string]interface{}{
			"profile_id": req.Profile,
			"template":   req.Template,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	pdf, err := rast.Render(ctx, markup)
	if err != nil {
		logger.Error("Rasterization failed", map[string]interface{}{
			"profile_id": req.Profile,
			"engine":     rast.Name(),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	filename := utils.BuildFilename(prof.Name, req.Company, req.Role)

	logger.Info("Resume generated", map[string]interface{}{
		"profile_id":      req.Profile,
		"template":        utils.GetStringOrDefault(req.Template, "default"),
		"filename":        filename,
		"size_bytes":      len(pdf),
		"processing_time": utils.FormatDuration(time.Since(started)),
	})

	return &Result{PDF: pdf, Filename: filename}, nil
}
