package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pkgsync/pkg/errors"
)

// Format selects the manifest encoding.
type Format string

// Supported manifest formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var formats = []Format{FormatJSON, FormatTOML}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return slices.Contains(formats, f)
}

// FormatNames returns the supported format names, for help text and errors.
func FormatNames() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// Document is the manifest written to disk.
type Document struct {
	Packages []Package `json:"packages" toml:"packages"`
}

// jsonIndent matches the four-space layout consumers of the manifest expect.
const jsonIndent = "    "

// WriteJSON encodes doc as indented JSON and writes it to w.
// A nil package list is written as an empty array.
func WriteJSON(doc Document, w io.Writer) error {
	if doc.Packages == nil {
		doc.Packages = []Package{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes doc as TOML and writes it to w. Packages become an array
// of tables; ungrouped packages omit the group key.
func WriteTOML(doc Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write encodes doc in the given format.
func Write(doc Document, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(doc, w)
	case FormatTOML:
		return WriteTOML(doc, w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown manifest format %q", format)
	}
}

// Export writes doc to the file at path, replacing any previous content.
// The document is fully encoded before the file is touched, so an encoding
// failure leaves an existing file as it was.
func Export(doc Document, format Format, path string) error {
	var buf bytes.Buffer
	if err := Write(doc, format, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	return nil
}
