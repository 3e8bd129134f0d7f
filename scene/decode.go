package scene

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shapes"
)

// Scene file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// decoder is satisfied by the json and yaml decoders.
type decoder interface {
	Decode(v any) error
}

// tomlDecoder drops the metadata toml.Decoder returns alongside the error.
type tomlDecoder struct {
	d *toml.Decoder
}

func (t tomlDecoder) Decode(v any) error {
	_, err := t.d.Decode(v)
	return err
}

func newDecoder(r io.Reader, format string) (decoder, error) {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec, nil
	case FormatTOML:
		return tomlDecoder{toml.NewDecoder(r)}, nil
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec, nil
	}
	return nil, fmt.Errorf("scene: unsupported format %q", format)
}

// FormatFromPath returns the scene format implied by the file extension,
// or "" if the extension is not recognized.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}
	return ""
}

// Decode reads a scene in the given format.
func Decode(r io.Reader, format string) (*Scene, error) {
	dec, err := newDecoder(r, format)
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	if err := dec.Decode(sc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("scene: decode %s: %w", format, err)
	}
	return sc, nil
}

// Load reads the scene file at path; the extension picks the format.
func Load(path string) (*Scene, error) {
	format := FormatFromPath(path)
	if format == "" {
		return nil, fmt.Errorf("scene: %s: unrecognized extension (want .yaml, .toml or .json)", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	sc, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	shapes.Logger().Debug("scene loaded", "path", path, "format", format, "specs", len(sc.Shapes))
	return sc, nil
}

// Encode writes sc in the given format.
func Encode(w io.Writer, sc *Scene, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return fmt.Errorf("scene: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(sc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sc)
	}
	return fmt.Errorf("scene: unsupported format %q", format)
}
