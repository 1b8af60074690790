package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

// ParseResult decodes a provider response body into an AnalysisResult.
// The body may be wrapped in a Markdown code fence. A body that is not JSON,
// misses a required field, or carries a value of the wrong type yields
// ErrMalformedResponse; no field is defaulted.
func ParseResult(text string) (*models.AnalysisResult, error) {
	body := stripFences(text)
	if body == "" {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedResponse)
	}

	if err := validate(doc, ResponseSchema(), ""); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &result, nil
}

// stripFences removes an optional ```json ... ``` wrapper.
func stripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// validate checks v against schema. Required properties must be present and
// non-null; optional properties may be absent or null.
func validate(v any, schema *genai.Schema, path string) error {
	if schema == nil {
		return nil
	}
	where := path
	if where == "" {
		where = "document"
	}

	switch schema.Type {
	case genai.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %s", where, kindOf(v))
		}
		for _, name := range schema.Required {
			if val, ok := obj[name]; !ok || val == nil {
				return fmt.Errorf("%s: missing required field %q", where, name)
			}
		}
		for name, sub := range schema.Properties {
			val, ok := obj[name]
			if !ok || val == nil {
				continue
			}
			if err := validate(val, sub, join(path, name)); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %s", where, kindOf(v))
		}
		for i, item := range arr {
			if err := validate(item, schema.Items, fmt.Sprintf("%s[%d]", where, i)); err != nil {
				return err
			}
		}
	case genai.TypeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%s: expected string, got %s", where, kindOf(v))
		}
	case genai.TypeNumber, genai.TypeInteger:
		if _, ok := v.(json.Number); !ok {
			return fmt.Errorf("%s: expected number, got %s", where, kindOf(v))
		}
	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%s: expected boolean, got %s", where, kindOf(v))
		}
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}

// mergeSources de-duplicates citations by URL, dropping empty URLs and
// titling untitled entries with their URL.
func mergeSources(in []models.Source) []models.Source {
	seen := make(map[string]bool, len(in))
	var out []models.Source
	for _, s := range in {
		u := strings.TrimSpace(s.URL)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = u
		}
		out = append(out, models.Source{Title: title, URL: u})
	}
	return out
}

// compactJSON is used when logging provider bodies.
func compactJSON(s string, limit int) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		buf.Reset()
		buf.WriteString(s)
	}
	out := buf.String()
	if len(out) > limit {
		out = out[:limit] + "..."
	}
	return out
}
