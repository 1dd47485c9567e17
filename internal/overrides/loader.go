package overrides

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bridge-meta/internal/diagnostic"
)

// Format is a document syntax.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatXML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the document syntax from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".xml":
		return FormatXML
	default:
		return FormatUnknown
	}
}

// LoadFile reads and parses an override document. Every failure is reported
// as a diagnostic IO error attributed to path.
func LoadFile(path string) (*Document, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return nil, diagnostic.IO(path, fmt.Errorf("unrecognized document extension %q", filepath.Ext(path)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostic.IO(path, fmt.Errorf("failed to read override document: %w", err))
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, diagnostic.IO(path, err)
	}

	doc.Source = path

	return doc, nil
}

// Parse parses document data in the given syntax.
func Parse(data []byte, format Format) (*Document, error) {
	var doc *Document

	switch format {
	case FormatYAML:
		doc = &Document{}

		err := yaml.Unmarshal(data, doc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse override YAML: %w", err)
		}

	case FormatXML:
		var a xmlAssembly

		err := xml.Unmarshal(data, &a)
		if err != nil {
			return nil, fmt.Errorf("failed to parse override XML: %w", err)
		}

		doc = a.document()

	default:
		return nil, fmt.Errorf("unsupported document format %s", format)
	}

	applyDefaults(doc)

	return doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}
}

// Marshal serializes a Document in the given syntax.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)

	case FormatXML:
		var buf bytes.Buffer

		buf.WriteString(xml.Header)

		enc := xml.NewEncoder(&buf)
		enc.Indent("", "  ")

		if err := enc.Encode(fromDocument(doc)); err != nil {
			return nil, err
		}

		buf.WriteByte('\n')

		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported document format %s", format)
	}
}

// WriteFile writes a Document to path, choosing the syntax from the extension.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal override document: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write override document %s: %w", path, err)
	}

	return nil
}
