package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resumeforge/internal/content"
	"resumeforge/internal/layout"
	"resumeforge/internal/profile"
	"resumeforge/pkg/models"
)

type fakeRasterizer struct {
	pdf      []byte
	err      error
	lastHTML string
	calls    int
}

func (f *fakeRasterizer) Render(_ context.Context, html string) ([]byte, error) {
	f.calls++
	f.lastHTML = html
	return f.pdf, f.err
}

func (f *fakeRasterizer) Name() string                     { return "fake" }
func (f *fakeRasterizer) IsHealthy(_ context.Context) bool { return true }

const testSubmission = `{
	"title": "Backend Engineer",
	"summary": "Builds reliable services.",
	"skills": {"Languages": ["Go"]},
	"experience": [{"details": ["Shipped the billing pipeline"]}]
}`

func testDeps(t *testing.T) (*profile.Store, *layout.Registry) {
	t.Helper()

	dir := t.TempDir()
	record := `{"name":"Jane Doe","email":"jane@example.com","jobs":[{"title":"Engineer","company":"Acme","start_date":"2020-01","end_date":"2022-06"}]}`
	if err := os.WriteFile(filepath.Join(dir, "jane.json"), []byte(record), 0644); err != nil {
		t.Fatal(err)
	}

	registry, err := layout.NewRegistry("classic")
	if err != nil {
		t.Fatal(err)
	}
	return profile.NewStore(dir), registry
}

func TestGenerateResume(t *testing.T) {
	store, registry := testDeps(t)
	rast := &fakeRasterizer{pdf: []byte("%PDF-1.4 fake")}

	res, err := GenerateResume(context.Background(), store, registry, rast, models.GenerateResumeRequest{
		Profile: "jane",
		JD:      testSubmission,
		Company: "Acme, Inc.",
		Role:    "Sr. Eng!",
	})
	if err != nil {
		t.Fatalf("GenerateResume returned error: %v", err)
	}

	if res.Filename != "Jane_Doe_Acme_Inc_Sr_Eng.pdf" {
		t.Errorf("Filename = %q", res.Filename)
	}
	if string(res.PDF) != "%PDF-1.4 fake" {
		t.Errorf("PDF bytes = %q", res.PDF)
	}
	if rast.calls != 1 {
		t.Errorf("rasterizer calls = %d, want 1", rast.calls)
	}
	for _, want := range []string{"Jane Doe", "Acme", "Shipped the billing pipeline"} {
		if !strings.Contains(rast.lastHTML, want) {
			t.Errorf("rendered markup missing %q", want)
		}
	}
}

func TestGenerateResumeUnknownProfile(t *testing.T) {
	store, registry := testDeps(t)
	rast := &fakeRasterizer{pdf: []byte("x")}

	_, err := GenerateResume(context.Background(), store, registry, rast, models.GenerateResumeRequest{
		Profile: "nobody",
		JD:      testSubmission,
		Company: "Acme",
		Role:    "Eng",
	})
	if !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("error = %v, want profile.ErrNotFound", err)
	}
	if rast.calls != 0 {
		t.Errorf("rasterizer called %d times on missing profile", rast.calls)
	}
}

func TestGenerateResumeMalformedContent(t *testing.T) {
	store, registry := testDeps(t)

	_, err := GenerateResume(context.Background(), store, registry, &fakeRasterizer{}, models.GenerateResumeRequest{
		Profile: "jane",
		JD:      "definitely not json",
		Company: "Acme",
		Role:    "Eng",
	})
	if !errors.Is(err, content.ErrMalformedInput) {
		t.Errorf("error = %v, want content.ErrMalformedInput", err)
	}
}

func TestGenerateResumeRasterizerFailure(t *testing.T) {
	store, registry := testDeps(t)
	rast := &fakeRasterizer{err: errors.New("chrome crashed")}

	_, err := GenerateResume(context.Background(), store, registry, rast, models.GenerateResumeRequest{
		Profile: "jane",
		JD:      testSubmission,
		Company: "Acme",
		Role:    "Eng",
	})
	if !errors.Is(err, ErrRender) {
		t.Fatalf("error = %v, want ErrRender", err)
	}
	if !strings.Contains(err.Error(), "chrome crashed") {
		t.Errorf("error %q does not carry cause", err)
	}
}
