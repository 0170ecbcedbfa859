package extract

import "fmt"

// maxSnippetLen bounds how much of the attempted substring is carried in a
// MalformedOutputError, so error text stays diagnosable without echoing an
// unbounded model response.
const maxSnippetLen = 512

// MalformedOutputError reports that no well-formed JSON object could be
// recovered from externally generated text. Snippet holds the (bounded)
// substring the parse was attempted on.
type MalformedOutputError struct {
	Message string
	Snippet string
	Cause   error
}

func (e *MalformedOutputError) Error() string {
	msg := fmt.Sprintf("malformed model output: %s", e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Snippet != "" {
		msg = fmt.Sprintf("%s (attempted: %q)", msg, e.Snippet)
	}
	return msg
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// truncateSnippet trims a candidate snippet to maxSnippetLen runes.
func truncateSnippet(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSnippetLen {
		return s
	}
	return string(runes[:maxSnippetLen]) + "..."
}
