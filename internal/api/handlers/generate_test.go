package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/layout"
	"resumeforge/internal/profile"
)

type fakeRasterizer struct {
	pdf []byte
	err error
}

func (f *fakeRasterizer) Render(_ context.Context, _ string) ([]byte, error) {
	return f.pdf, f.err
}

func (f *fakeRasterizer) Name() string                     { return "fake" }
func (f *fakeRasterizer) IsHealthy(_ context.Context) bool { return true }

const goodBody = `{
	"profile": "jane",
	"jd": "{\"title\":\"Backend Engineer\",\"summary\":\"S\",\"skills\":{},\"experience\":[]}",
	"company": "Acme, Inc.",
	"role": "Sr. Eng!"
}`

func setupHandler(t *testing.T, rast *fakeRasterizer) echo.HandlerFunc {
	t.Helper()

	dir := t.TempDir()
	record := `{"name":"Jane Doe","email":"jane@example.com","jobs":[]}`
	if err := os.WriteFile(filepath.Join(dir, "jane.json"), []byte(record), 0644); err != nil {
		t.Fatal(err)
	}

	registry, err := layout.NewRegistry("classic")
	if err != nil {
		t.Fatal(err)
	}

	return GenerateResumeHandler(profile.NewStore(dir), registry, rast)
}

func doRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestGenerateSuccess(t *testing.T) {
	handler := setupHandler(t, &fakeRasterizer{pdf: []byte("%PDF-1.4 fake")})

	rec := doRequest(t, handler, goodBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	want := `attachment; filename="Jane_Doe_Acme_Inc_Sr_Eng.pdf"`
	if cd := rec.Header().Get(echo.HeaderContentDisposition); cd != want {
		t.Errorf("Content-Disposition = %q, want %q", cd, want)
	}
	if rec.Body.String() != "%PDF-1.4 fake" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestGenerateMissingField(t *testing.T) {
	handler := setupHandler(t, &fakeRasterizer{pdf: []byte("x")})

	body := `{"profile": "jane", "jd": "{}", "company": "Acme"}` // role absent
	rec := doRequest(t, handler, body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Role") {
		t.Errorf("body %q does not name missing field", rec.Body.String())
	}
}

func TestGenerateUnknownProfile(t *testing.T) {
	handler := setupHandler(t, &fakeRasterizer{pdf: []byte("x")})

	body := strings.Replace(goodBody, `"jane"`, `"nobody"`, 1)
	rec := doRequest(t, handler, body)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "nobody") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestGenerateMalformedContent(t *testing.T) {
	handler := setupHandler(t, &fakeRasterizer{pdf: []byte("x")})

	body := `{"profile": "jane", "jd": "not json at all", "company": "Acme", "role": "Eng"}`
	rec := doRequest(t, handler, body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "parse") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestGenerateRenderFailure(t *testing.T) {
	handler := setupHandler(t, &fakeRasterizer{err: errors.New("browser crashed")})

	rec := doRequest(t, handler, goodBody)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "render") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
