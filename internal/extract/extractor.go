// Package extract recovers well-formed JSON objects from noisy or truncated
// model output. It is the error-recovery boundary between an unreliable text
// producer and the deterministic scorer: markdown fences, stray prose, and
// missing trailing braces are repaired best-effort before parsing.
package extract

import (
	"encoding/json"
	"strings"
)

// Extract recovers a JSON object from text and decodes it into a generic map.
// It fails with a *MalformedOutputError when no object can be recovered.
func Extract(text string) (map[string]any, error) {
	recovered, err := recoverObject(text)
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(recovered), &obj); err != nil {
		return nil, &MalformedOutputError{
			Message: "JSON parse failed",
			Snippet: truncateSnippet(recovered),
			Cause:   err,
		}
	}
	return obj, nil
}

// ExtractInto recovers a JSON object from text and decodes it into v.
func ExtractInto(text string, v any) error {
	recovered, err := recoverObject(text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(recovered), v); err != nil {
		return &MalformedOutputError{
			Message: "JSON parse failed",
			Snippet: truncateSnippet(recovered),
			Cause:   err,
		}
	}
	return nil
}

// recoverObject performs the repair steps in order: strip fences, slice from the
// first '{' to the last '}' (appending a synthetic terminal brace when none
// exists after the object start), then balance any brace deficit left by
// truncated generation.
func recoverObject(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &MalformedOutputError{Message: "empty response"}
	}

	cleaned := stripFences(text)

	start := strings.Index(cleaned, "{")
	if start == -1 {
		return "", &MalformedOutputError{
			Message: "no JSON object start found",
			Snippet: truncateSnippet(cleaned),
		}
	}

	// A '}' in leading prose before the object start counts the same as no
	// '}' at all: the object itself is unterminated.
	end := strings.LastIndex(cleaned, "}")
	if end < start {
		cleaned += "}"
		end = len(cleaned) - 1
	}

	jsonStr := cleaned[start : end+1]

	// Best-effort repair of truncated generation, not a guarantee.
	opens := strings.Count(jsonStr, "{")
	closes := strings.Count(jsonStr, "}")
	if opens > closes {
		jsonStr += strings.Repeat("}", opens-closes)
	}

	return jsonStr, nil
}

// stripFences removes markdown code-fence markers by literal removal. Models
// wrap JSON in ```json ... ``` blocks even when instructed not to.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
