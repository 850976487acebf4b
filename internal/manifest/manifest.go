package manifest

import (
	"encoding/json"
	"os"
)

// Status classifies the result of loading a manifest file.
type Status int

const (
	// StatusOK means the file was read and parsed into a JSON object.
	StatusOK Status = iota

	// StatusNotFound means the file does not exist on disk.
	StatusNotFound

	// StatusMalformed means the file exists but does not contain a valid
	// JSON object (syntax error, wrong top-level type, or unreadable).
	StatusMalformed
)

// Document is the result of loading one manifest file. Load failures are
// carried in Status rather than returned as errors, so callers can report
// "not found" and "invalid syntax" distinctly without re-inspecting the
// filesystem. Fields is only populated when Status is StatusOK.
type Document struct {
	Status Status
	Fields map[string]any
}

// Load reads and parses a JSON manifest at the given path. It never
// returns an error; inspect the Document status instead.
func Load(path string) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{Status: StatusNotFound}
		}
		return Document{Status: StatusMalformed}
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return Document{Status: StatusMalformed}
	}

	return Document{Status: StatusOK, Fields: fields}
}

// Missing returns the required keys absent from the document, preserving
// the order they were given in.
func (d Document) Missing(required []string) []string {
	var missing []string
	for _, key := range required {
		if _, ok := d.Fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// String returns the named field as a string, or "" when the field is
// absent or not a string.
func (d Document) String(key string) string {
	value, _ := d.Fields[key].(string)
	return value
}

// List returns the named field as a JSON array, or nil when the field is
// absent or not an array. Elements keep their decoded types so callers
// can reject non-object entries individually.
func (d Document) List(key string) []any {
	items, _ := d.Fields[key].([]any)
	return items
}
