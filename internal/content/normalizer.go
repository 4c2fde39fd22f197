package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// ErrMalformedInput is returned when no JSON object can be recovered from the
// submitted text, even after the repair pass.
var ErrMalformedInput = errors.New("malformed content")

// MissingFieldsError reports which required top-level fields a submission
// carries versus what is expected.
type MissingFieldsError struct {
	Missing []string
	Present []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("content missing required fields [%s]; present: [%s]; required: [%s]",
		strings.Join(e.Missing, ", "),
		strings.Join(e.Present, ", "),
		strings.Join(requiredFields, ", "))
}

var requiredFields = []string{"title", "summary", "skills", "experience"}

var (
	// Fence delimiters, language-tagged or bare, wherever they occur.
	fenceRe = regexp.MustCompile("```[a-zA-Z0-9]*")
	// Trailing commas before a closing brace or bracket.
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	// Runs of consecutive commas.
	commaRunRe = regexp.MustCompile(`,(\s*,)+`)
)

// Normalize extracts the resume submission from a loosely formatted text blob.
// Callers tend to paste the JSON wrapped in code fences and surrounding prose;
// both are tolerated. One repair pass (trailing/double comma removal) is the
// only automatic recovery; if it also fails, the original parser's error is
// the one surfaced.
func Normalize(raw string) (*models.SubmittedContent, error) {
	text := strings.TrimSpace(raw)
	text = fenceRe.ReplaceAllString(text, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found in input", ErrMalformedInput)
	}
	text = text[start : end+1]

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		repaired := repairJSON(text)
		if retryErr := json.Unmarshal([]byte(repaired), &fields); retryErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		text = repaired
	}

	if err := requireFields(fields); err != nil {
		return nil, err
	}

	var submitted models.SubmittedContent
	if err := json.Unmarshal([]byte(text), &submitted); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	logDiagnostics(&submitted)

	return &submitted, nil
}

// repairJSON applies the single normalization pass: drop trailing commas
// before closing brackets/braces and collapse comma runs.
func repairJSON(text string) string {
	text = commaRunRe.ReplaceAllString(text, ",")
	text = trailingCommaRe.ReplaceAllString(text, "$1")
	return text
}

func requireFields(fields map[string]json.RawMessage) error {
	var missing []string
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	present := make([]string, 0, len(fields))
	for name := range fields {
		present = append(present, name)
	}
	sort.Strings(present)

	return &MissingFieldsError{Missing: missing, Present: present}
}

// logDiagnostics emits observability counts only; nothing here is contract.
func logDiagnostics(submitted *models.SubmittedContent) {
	withoutDetails := 0
	for _, entry := range submitted.Experience {
		if len(entry.Details) == 0 {
			withoutDetails++
		}
	}

	logging.GetGlobalLogger().Debug("Submission normalized", map[string]interface{}{
		"skill_categories":        len(submitted.Skills),
		"experience_entries":      len(submitted.Experience),
		"entries_without_details": withoutDetails,
	})
}
