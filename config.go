package cvboot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for parameter files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown parameter file format")

type format int

const (
	formatTOML format = iota
	formatYAML
	formatJSON
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// decodeParams reads a parameter set encoded as f on top of DefaultParams,
// so keys missing from the data keep their default values.
func decodeParams(data []byte, f format) (Params, error) {
	p := DefaultParams()
	var err error
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &p)
	case formatYAML:
		err = yaml.Unmarshal(data, &p)
	case formatJSON:
		err = json.Unmarshal(data, &p)
	}
	return p, err
}

// LoadParams reads a .toml, .yaml/.yml or .json parameter file.
func LoadParams(path string) (Params, error) {
	f, err := formatOf(path)
	if err != nil {
		return Params{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("could not read parameter file %s: %w", path, err)
	}
	p, err := decodeParams(data, f)
	if err != nil {
		return Params{}, fmt.Errorf("could not parse parameter file %s: %w", path, err)
	}
	return p, nil
}

// MarshalParams encodes p in the format implied by path's extension.
func MarshalParams(path string, p Params) ([]byte, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	switch f {
	case formatTOML:
		return toml.Marshal(p)
	case formatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return json.MarshalIndent(p, "", "  ")
	}
}

// SaveParams writes p to path in the format implied by its extension.
func SaveParams(path string, p Params) error {
	data, err := MarshalParams(path, p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write parameter file %s: %w", path, err)
	}
	return nil
}
