package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// extractJSON strips markdown code fences and surrounding prose, returning
// the first JSON object in the reply.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
	} else if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
	}
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "{"); start > 0 {
		s = s[start:]
	}
	return s
}

// scrubControlChars removes ASCII control characters that some providers
// leak into replies, preserving the whitespace JSON allows between tokens.
func scrubControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// repairMultilineStrings escapes literal newlines and tabs that appear inside
// JSON string values. Streamed replies occasionally carry SQL with raw line
// breaks, which strict JSON rejects.
func repairMultilineStrings(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			b.WriteRune(r)
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
			b.WriteRune(r)
		case '\n':
			if inString {
				b.WriteString(`\n`)
			} else {
				b.WriteRune(r)
			}
		case '\r':
			if inString {
				b.WriteString(`\r`)
			} else {
				b.WriteRune(r)
			}
		case '\t':
			if inString {
				b.WriteString(`\t`)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseStructured cleans a raw reply, decodes it as JSON, and validates it
// against schema (when non-nil). Returns the canonical JSON bytes.
func parseStructured(provider, raw string, schema map[string]any) (json.RawMessage, error) {
	cleaned := repairMultilineStrings(scrubControlChars(extractJSON(raw)))

	var value any
	dec := json.NewDecoder(bytes.NewReader([]byte(cleaned)))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return nil, &Error{Provider: provider, Message: "unparseable reply", Raw: raw, Err: err}
	}

	if schema != nil {
		if err := validateAgainstSchema(value, schema); err != nil {
			return nil, &Error{Provider: provider, Message: "reply violates schema", Raw: raw, Err: err}
		}
	}

	out, err := json.Marshal(value)
	if err != nil {
		return nil, &Error{Provider: provider, Message: "failed to re-encode reply", Err: err}
	}
	return out, nil
}

// validateAgainstSchema validates a decoded JSON value against a JSON schema
// document given as a map.
func validateAgainstSchema(value any, schema map[string]any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("reply.schema.json", schema); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile("reply.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled.Validate(value)
}
