package validation

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Issue represents a validation error with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of linting one document.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// ValidateStructured decodes raw as JSON and checks it against
// StructuredSchema. All violations are reported, ordered by path.
func ValidateStructured(raw []byte) Result {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return Result{Issues: []Issue{{Message: "invalid JSON: " + err.Error()}}}
	}

	err := StructuredSchema().VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return Result{Valid: true}
	}

	issues := collectIssues(err, nil)
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return Result{Issues: issues}
}

// Err folds the issues into a single error, or nil when the result is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Path == "" {
			errs = append(errs, errors.New(issue.Message))
			continue
		}
		errs = append(errs, errors.New(issue.Path+": "+issue.Message))
	}
	return errors.Join(errs...)
}

func collectIssues(err error, out []Issue) []Issue {
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, inner := range e {
			out = collectIssues(inner, out)
		}
		return out
	case *openapi3.SchemaError:
		pointer := e.JSONPointer()
		if name, ok := unsupportedProperty(e); ok {
			pointer = append(pointer, name)
		}
		path := ""
		if len(pointer) > 0 {
			path = "/" + strings.Join(pointer, "/")
		}
		msg := strings.TrimSpace(e.Reason)
		if msg == "" {
			msg = strings.TrimSpace(e.Error())
		}
		return append(out, Issue{
			Path:    path,
			Field:   fieldPathFromPointer(path),
			Message: msg,
		})
	default:
		return append(out, Issue{Message: strings.TrimSpace(err.Error())})
	}
}

// unsupportedProperty recovers the key name of an additionalProperties
// violation, which kin-openapi reports against the parent object.
func unsupportedProperty(e *openapi3.SchemaError) (string, bool) {
	if e.SchemaField != "properties" {
		return "", false
	}
	rest, ok := strings.CutPrefix(e.Reason, "property ")
	if !ok || !strings.HasSuffix(rest, " is unsupported") {
		return "", false
	}
	quoted, err := strconv.QuotedPrefix(rest)
	if err != nil {
		return "", false
	}
	name, err := strconv.Unquote(quoted)
	if err != nil {
		return "", false
	}
	return name, true
}

func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "/")
	if trimmed == "" {
		return ""
	}
	parts := strings.Split(trimmed, "/")
	for i, segment := range parts {
		segment = strings.ReplaceAll(segment, "~1", "/")
		parts[i] = strings.ReplaceAll(segment, "~0", "~")
	}
	return strings.Join(parts, ".")
}
