package renderer

// Rasterizer converts markup into PDF bytes. Engine selection (in-process
// browser versus remote rendering service) is configuration, not core logic;
// callers depend only on this capability.

import "context"

type Rasterizer interface {
	// Render rasterizes the given markup into a PDF document. The session
	// backing a render is scoped to the call and released on every exit
	// path; implementations never share it across requests.
	Render(ctx context.Context, html string) ([]byte, error)

	// Name identifies the engine for logs and health output
	Name() string

	// IsHealthy reports whether the engine can currently rasterize
	IsHealthy(ctx context.Context) bool
}
