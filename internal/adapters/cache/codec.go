package cache

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Codec serializes a cache container to and from a byte stream.
type Codec interface {
	Encode(w io.Writer, v any) error
	Decode(r io.Reader, v any) error
}

// JSONCodec stores the container as indented JSON.
type JSONCodec struct{}

// Encode writes v as indented JSON.
func (JSONCodec) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Decode reads JSON into v.
func (JSONCodec) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// YAMLCodec stores the container as YAML.
type YAMLCodec struct{}

// Encode writes v as YAML.
func (YAMLCodec) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// Decode reads YAML into v.
func (YAMLCodec) Decode(r io.Reader, v any) error {
	return yaml.NewDecoder(r).Decode(v)
}
