// Package api carries the OpenAPI contract for the HTTP surface.
package api

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var spec []byte

// Spec returns the raw OpenAPI document as served at /openapi.yaml.
func Spec() []byte {
	return spec
}

// Load parses and validates the embedded contract. The server calls this
// once at startup so a malformed contract fails fast instead of serving
// garbage at /openapi.yaml.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}
