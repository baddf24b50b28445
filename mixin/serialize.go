package mixin

import (
	"bytes"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v3"

	"github.com/xuenqlve/patterns/errors"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Trace(err)
	}
	return string(data), nil
}

func ToYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", errors.Trace(err)
	}
	return string(data), nil
}

func ToTOML(v any) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return "", errors.Trace(err)
	}
	return buf.String(), nil
}

// Marshal picks the encoder by format name.
func Marshal(v any, format string) (string, error) {
	switch format {
	case FormatJSON:
		return ToJSON(v)
	case FormatYAML:
		return ToYAML(v)
	case FormatTOML:
		return ToTOML(v)
	default:
		return "", errors.NewPatternErrorf(errors.ErrCodeUnknownKind, "unknown content type %s", format)
	}
}
