package copywriter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result maps section names to finished copy, preserving the order sections
// were requested in. A duplicate section name keeps its original position;
// the last written copy wins.
type Result struct {
	sections []string
	copy     map[string]string
}

func NewResult() *Result {
	return &Result{copy: make(map[string]string)}
}

// Set stores the final copy for a section, appending the section name on
// first sight and overwriting on repeats.
func (r *Result) Set(section, text string) {
	if _, seen := r.copy[section]; !seen {
		r.sections = append(r.sections, section)
	}
	r.copy[section] = text
}

// Get returns the copy for a section and whether it exists.
func (r *Result) Get(section string) (string, bool) {
	text, ok := r.copy[section]
	return text, ok
}

// Sections returns the section names in insertion order.
func (r *Result) Sections() []string {
	out := make([]string, len(r.sections))
	copy(out, r.sections)
	return out
}

func (r *Result) Len() int { return len(r.sections) }

// MarshalJSON serializes the mapping as a JSON object with keys in
// insertion order. encoding/json randomizes map key order, so the object is
// assembled by hand.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, section := range r.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(section)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.copy[section])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the mapping from a JSON object, keeping the key
// order of the document.
func (r *Result) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("result: expected JSON object, got %v", tok)
	}

	r.sections = nil
	r.copy = make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("result: expected string key, got %v", keyTok)
		}
		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("result: value for section %q: %w", key, err)
		}
		r.Set(key, text)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
