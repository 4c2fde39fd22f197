package renderer

import (
	"fmt"
	"strings"

	"resumeforge/internal/config"
)

// New creates the rasterizer selected by configuration
func New(cfg *config.Config) (Rasterizer, error) {
	switch strings.ToLower(cfg.Renderer.Engine) {
	case "", "browser":
		return NewBrowserEngine(cfg), nil
	case "remote":
		if cfg.Renderer.RemoteURL == "" {
			return nil, fmt.Errorf("remote renderer engine requires renderer.remote_url (or PDF_RENDERER_URL)")
		}
		return NewRemoteEngine(cfg.Renderer.RemoteURL), nil
	default:
		return nil, fmt.Errorf("unknown renderer engine: %s", cfg.Renderer.Engine)
	}
}
