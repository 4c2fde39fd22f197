package layout

import (
	"strings"
	"sync"
	"testing"

	"resumeforge/pkg/models"
)

func testDocument() *models.MergedDocument {
	return &models.MergedDocument{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Berlin, DE",
		Title:    "Backend Engineer",
		Summary:  "Builds reliable services.",
		Skills: map[string][]string{
			"Languages": {"Go", "Python"},
			"Tools":     {"Docker"},
		},
		Experience: []models.MergedExperience{
			{
				Title:     "Engineer",
				Company:   "Acme",
				Location:  "Berlin",
				StartDate: "2020-01",
				EndDate:   "2022-06",
				Details:   []string{"Shipped the billing pipeline"},
			},
		},
	}
}

func TestNewRegistryRejectsUnknownDefault(t *testing.T) {
	if _, err := NewRegistry("no-such-theme"); err == nil {
		t.Fatal("expected error for unknown default layout")
	}
}

func TestUnknownTemplateIDRendersDefault(t *testing.T) {
	r, err := NewRegistry("classic")
	if err != nil {
		t.Fatal(err)
	}

	doc := testDocument()
	def, err := r.Render(doc, "classic")
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"", "does-not-exist", "  CLASSIC  "} {
		got, err := r.Render(doc, id)
		if err != nil {
			t.Fatalf("Render(%q) returned error: %v", id, err)
		}
		if got != def {
			t.Errorf("Render(%q) differs from default layout output", id)
		}
	}
}

func TestRenderIncludesMergedContent(t *testing.T) {
	r, err := NewRegistry("classic")
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"classic", "modern"} {
		got, err := r.Render(testDocument(), id)
		if err != nil {
			t.Fatalf("Render(%s) returned error: %v", id, err)
		}
		for _, want := range []string{"Jane Doe", "Acme", "Shipped the billing pipeline", "Go"} {
			if !strings.Contains(got, want) {
				t.Errorf("theme %s output missing %q", id, want)
			}
		}
	}
}

func TestConcurrentFirstCompileIsDeterministic(t *testing.T) {
	r, err := NewRegistry("classic")
	if err != nil {
		t.Fatal(err)
	}

	doc := testDocument()
	const workers = 8
	outputs := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = r.Render(doc, "modern")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if outputs[i] != outputs[0] {
			t.Errorf("worker %d produced different markup", i)
		}
	}
}

func TestJoinList(t *testing.T) {
	if got := joinList([]string{"a", "b"}, ", "); got != "a, b" {
		t.Errorf("joinList strings = %q", got)
	}
	if got := joinList([]interface{}{"a", 1}, "-"); got != "a-1" {
		t.Errorf("joinList interfaces = %q", got)
	}
	if got := joinList("not a list", ", "); got != "" {
		t.Errorf("joinList non-list = %q, want empty", got)
	}
}
