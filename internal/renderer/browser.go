package renderer

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
)

// A4 paper in inches, resume margins in inches (15mm top/bottom, flush sides)
const (
	a4WidthIn     = 8.27
	a4HeightIn    = 11.69
	marginVertIn  = 0.59
	marginSidesIn = 0
)

// BrowserEngine rasterizes markup with a headless Chromium controlled through
// rod. Each render launches and tears down its own browser session.
type BrowserEngine struct {
	config *config.Config
	logger types.Logger
}

// NewBrowserEngine creates a browser-backed rasterizer
func NewBrowserEngine(cfg *config.Config) *BrowserEngine {
	return &BrowserEngine{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Name identifies the engine
func (e *BrowserEngine) Name() string { return "browser" }

// Render loads the markup into a fresh page and prints it to PDF. The page,
// browser and launcher are released on every exit path, success or failure.
func (e *BrowserEngine) Render(ctx context.Context, html string) ([]byte, error) {
	l := launcher.New().
		Headless(e.config.Renderer.Headless).
		NoSandbox(true).
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-background-networking")

	if e.config.Renderer.ChromePath != "" {
		l = l.Bin(e.config.Renderer.ChromePath)
	} else if path, found := launcher.LookPath(); found {
		l = l.Bin(path)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(renderContext(ctx))
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}

	// The markup embeds no external resources, so the load event is the
	// right completion signal; waiting for network idle would only add
	// latency.
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for page load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: false,
		PaperWidth:        floatPtr(a4WidthIn),
		PaperHeight:       floatPtr(a4HeightIn),
		MarginTop:         floatPtr(marginVertIn),
		MarginBottom:      floatPtr(marginVertIn),
		MarginLeft:        floatPtr(marginSidesIn),
		MarginRight:       floatPtr(marginSidesIn),
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}

	e.logger.Debug("Markup rasterized", map[string]interface{}{
		"engine":     e.Name(),
		"size_bytes": len(pdf),
	})

	return pdf, nil
}

// IsHealthy reports whether a browser binary is resolvable
func (e *BrowserEngine) IsHealthy(ctx context.Context) bool {
	if e.config.Renderer.ChromePath != "" {
		return true
	}
	_, found := launcher.LookPath()
	return found
}

// renderContext returns the context a render session is bound to. Once
// printing starts it runs to completion or failure; the session never
// inherits the caller's deadline or disconnect, request-level timeouts
// belong to the transport layer.
func renderContext(context.Context) context.Context {
	return context.Background()
}

func floatPtr(v float64) *float64 { return &v }
