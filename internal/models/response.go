package models

// ModelOutput represents a decoded response from the inference API.
// The text field is optional on the wire: Present records whether the payload
// actually carried a usable generated_text string, so callers never have to
// guess from an empty string alone.
type ModelOutput struct {
	GeneratedText string
	Present       bool
}

// Text returns the generated text, or NoResponseText when the payload did not
// contain a usable text field.
func (m *ModelOutput) Text() string {
	if m == nil || !m.Present {
		return NoResponseText
	}
	return m.GeneratedText
}

// HasText reports whether the response carried a usable generated_text field.
func (m *ModelOutput) HasText() bool {
	return m != nil && m.Present
}
