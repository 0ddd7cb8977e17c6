package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var builtinData []byte

// ErrUnsupportedFormat is returned for content files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported content format")

// Format identifies the encoding of a content file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Builtin decodes the tables embedded in the binary.
func Builtin() (*Tables, error) {
	return Decode(builtinData, FormatYAML)
}

// FormatFor infers the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads a content file from path, choosing the decoder by extension.
func Load(path string) (*Tables, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read content %s: %w", path, err)
	}
	t, err := Decode(b, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Tables, error) {
	var t Tables
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("invalid content YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &t); err != nil {
			return nil, fmt.Errorf("invalid content TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &t, nil
}
