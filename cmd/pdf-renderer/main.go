// Standalone HTML-to-PDF rasterization service. Deployments that cannot run
// a browser next to the API (serverless, slim containers) point the main
// server at this process via PDF_RENDERER_URL and the "remote" engine.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/renderer"
	"resumeforge/pkg/models"
)

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func renderHandler(engine *renderer.BrowserEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Bound request body size to prevent memory abuse
		const maxRequestBytes = 2 << 20 // 2 MiB
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

		var req models.RenderRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("invalid json: %v", err), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.HTML) == "" {
			http.Error(w, "html is required", http.StatusBadRequest)
			return
		}

		pdf, err := engine.Render(r.Context(), req.HTML)
		if err != nil {
			http.Error(w, fmt.Sprintf("render failed: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			log.Printf("write response: %v", err)
		}
	}
}

func main() {
	cfg := &config.Config{}
	cfg.Renderer.Headless = true
	if path := os.Getenv("CHROME_PATH"); path != "" {
		cfg.Renderer.ChromePath = path
	}

	engine := renderer.NewBrowserEngine(cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/render", renderHandler(engine))

	addr := ":8999"
	if v := os.Getenv("PORT"); strings.TrimSpace(v) != "" {
		addr = ":" + strings.TrimSpace(v)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	log.Printf("pdf-renderer listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("pdf-renderer failed: %v", err)
	}
}
