package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a submitted record.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrDecode            = errors.New("failed to decode input")
	ErrTrailingData      = errors.New("input holds more than one record")
)

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Join(ErrUnsupportedFormat, fmt.Errorf("file %q", path))
	}
}

// Decode reads exactly one record of type T. Unknown fields and anything after
// the record are rejected so typos do not silently validate as empty values.
func Decode[T any](r io.Reader, f Format) (T, error) {
	var v T
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err != nil {
			return v, errors.Join(ErrDecode, err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return v, errors.Join(ErrDecode, ErrTrailingData, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&v); err != nil {
			return v, errors.Join(ErrDecode, err)
		}
		var rest yaml.Node
		if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
			return v, errors.Join(ErrDecode, ErrTrailingData, err)
		}
	default:
		return v, errors.Join(ErrUnsupportedFormat, fmt.Errorf("format %q", f))
	}
	return v, nil
}
