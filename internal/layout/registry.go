package layout

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// Registry maps template identifiers to compiled layouts. Each distinct
// identifier is compiled at most once per process; unknown or blank
// identifiers silently resolve to the default layout.
type Registry struct {
	defaultID string
	mu        sync.RWMutex
	cache     map[string]*template.Template
}

// NewRegistry creates a registry with the given default layout identifier.
// A default that does not resolve to a known theme is a fatal configuration
// error, so it is compiled eagerly here.
func NewRegistry(defaultID string) (*Registry, error) {
	defaultID = normalizeID(defaultID)
	if _, ok := themeSources[defaultID]; !ok {
		return nil, fmt.Errorf("default layout %q is not a known theme", defaultID)
	}

	r := &Registry{
		defaultID: defaultID,
		cache:     make(map[string]*template.Template),
	}
	if _, err := r.compile(defaultID); err != nil {
		return nil, fmt.Errorf("compile default layout %q: %w", defaultID, err)
	}
	return r, nil
}

// Get returns the compiled layout for the given identifier, falling back to
// the default for unknown ids. Concurrent first lookups of the same id may
// both compile; the result is identical either way.
func (r *Registry) Get(templateID string) *template.Template {
	id := normalizeID(templateID)
	if _, ok := themeSources[id]; !ok {
		if id != "" {
			logging.GetGlobalLogger().Debug("Unknown layout id, using default", map[string]interface{}{
				"template_id": templateID,
				"default":     r.defaultID,
			})
		}
		id = r.defaultID
	}

	r.mu.RLock()
	tmpl, ok := r.cache[id]
	r.mu.RUnlock()
	if ok {
		return tmpl
	}

	tmpl, err := r.compile(id)
	if err != nil {
		// Broken non-default theme falls back to the default, which was
		// verified at construction time.
		logging.GetGlobalLogger().Error("Layout compilation failed, using default", map[string]interface{}{
			"template_id": id,
			"error":       err.Error(),
		})
		r.mu.RLock()
		tmpl = r.cache[r.defaultID]
		r.mu.RUnlock()
	}
	return tmpl
}

// Render executes the layout selected by templateID over the merged document
// and returns the produced markup.
func (r *Registry) Render(doc *models.MergedDocument, templateID string) (string, error) {
	tmpl := r.Get(templateID)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render layout: %w", err)
	}
	return buf.String(), nil
}

func (r *Registry) compile(id string) (*template.Template, error) {
	src, ok := themeSources[id]
	if !ok {
		return nil, fmt.Errorf("unknown theme: %s", id)
	}

	tmpl, err := template.New(id).Funcs(template.FuncMap{
		"formatKey": formatKey,
		"join":      joinList,
	}).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", id, err)
	}

	r.mu.Lock()
	r.cache[id] = tmpl
	r.mu.Unlock()
	return tmpl, nil
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// formatKey is an identity transform over section and skill-group keys. It
// exists so themes can later reformat keys without changing call sites.
func formatKey(key string) string {
	return key
}

// joinList concatenates a list with the given separator. Non-list values
// produce an empty string.
func joinList(v interface{}, sep string) string {
	switch list := v.(type) {
	case []string:
		return strings.Join(list, sep)
	case []interface{}:
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, sep)
	default:
		return ""
	}
}
