// Package manifest describes contract packaging metadata and its schema.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	"github.com/0glabs/nitro/abi"
)

// validate is a package-level singleton; constructing a validator per call
// is expensive and reuse is the recommended pattern.
var validate = validator.New()

// Manifest describes a packaged contract module.
type Manifest struct {
	Name        string `json:"name" validate:"required"`
	Version     string `json:"version" validate:"required"`
	Description string `json:"description,omitempty"`

	// Entrypoint is the export symbol the host invokes. Empty means the
	// conventional symbol, abi.EntrypointSymbol.
	Entrypoint string `json:"entrypoint,omitempty"`
}

// Parse decodes and validates a manifest document. A missing entrypoint is
// filled in with the conventional symbol.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}
	if m.Entrypoint == "" {
		m.Entrypoint = abi.EntrypointSymbol
	}
	return &m, nil
}

// Schema returns the JSON Schema (Draft 2020-12) for manifest documents,
// generated by reflecting on the Manifest struct.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	s := reflector.Reflect(&Manifest{})

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
