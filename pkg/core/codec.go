package core

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeDocument serializes the document to its persisted JSON form.
func EncodeDocument(doc Document) ([]byte, error) {
	return json.Marshal(normalize(doc))
}

// DecodeDocument parses the persisted JSON form.
func DecodeDocument(data []byte) (Document, error) {
	var raw struct {
		Notebooks *[]Notebook `json:"notebooks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw.Notebooks == nil {
		return Document{}, fmt.Errorf("%w: missing notebooks", ErrCorrupt)
	}
	return normalize(Document{Notebooks: *raw.Notebooks}), nil
}

// MarshalYAML renders the document as YAML for export.
func MarshalYAML(doc Document) ([]byte, error) {
	return yaml.Marshal(normalize(doc))
}

// UnmarshalYAML parses a YAML export.
func UnmarshalYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return normalize(doc), nil
}

// normalize returns a copy whose slices serialize as [] instead of null.
func normalize(doc Document) Document {
	return doc.clone()
}
