// Package yamlutil is the single place the YAML library is imported.
// The config file is decoded here and the yaml output format is encoded here.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds decoded documents. Config files are a few hundred bytes.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// encodeOptions produce block-style output with "- " items indented under
// their key, matching hand-written config files.
var encodeOptions = []yaml.EncodeOption{
	yaml.Indent(2),
	yaml.IndentSequence(true),
	yaml.UseLiteralStyleIfMultiline(true),
}

// strictOptions reject unknown fields. Repeated keys are always an error.
var strictOptions = []yaml.DecodeOption{
	yaml.Strict(),
}

// Marshal renders v as YAML. Multi-line strings use literal blocks.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, encodeOptions...)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: encoding: %w", err)
	}
	return out, nil
}

// UnmarshalStrict decodes data into v, failing on unknown fields,
// duplicate keys, and documents larger than MaxInputSize.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case v == nil:
		return ErrNilDestination
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	if err := yaml.UnmarshalWithOptions(data, v, strictOptions...); err != nil {
		return fmt.Errorf("yamlutil: decoding: %w", err)
	}
	return nil
}
