package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
	"resumeforge/pkg/models"
)

// RemoteEngine delegates rasterization to a standalone pdf-renderer service
// over HTTP. Used when the API process runs somewhere a browser cannot
// (serverless, minimal containers).
type RemoteEngine struct {
	baseURL string
	client  *http.Client
	logger  types.Logger
}

// NewRemoteEngine creates a rasterizer backed by the service at baseURL
func NewRemoteEngine(baseURL string) *RemoteEngine {
	return &RemoteEngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		logger:  logging.GetGlobalLogger(),
	}
}

// Name identifies the engine
func (e *RemoteEngine) Name() string { return "remote" }

// Render submits the markup to the remote renderer and returns the PDF bytes
func (e *RemoteEngine) Render(ctx context.Context, html string) ([]byte, error) {
	body, err := json.Marshal(models.RenderRequest{HTML: html})
	if err != nil {
		return nil, fmt.Errorf("encode render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("renderer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("renderer error: status=%d body=%s", resp.StatusCode, string(b))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read renderer response: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("renderer returned empty pdf")
	}

	e.logger.Debug("Markup rasterized", map[string]interface{}{
		"engine":     e.Name(),
		"size_bytes": len(pdf),
	})

	return pdf, nil
}

// IsHealthy probes the remote renderer's health endpoint
func (e *RemoteEngine) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
