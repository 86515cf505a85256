// Package apidoc holds the OpenAPI description of the HTTP API.
package apidoc

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/m1z23r/drift/pkg/drift"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	return Parse(ctx, document)
}

// Parse accepts a JSON or YAML document and validates it.
func Parse(ctx context.Context, content []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	doc, err := loader.LoadFromData(content)
	if err != nil {
		var raw any
		if yamlErr := yaml.Unmarshal(content, &raw); yamlErr != nil {
			return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
		}
		jsonContent, jsonErr := json.Marshal(raw)
		if jsonErr != nil {
			return nil, fmt.Errorf("failed to convert YAML to JSON: %w", jsonErr)
		}
		doc, err = loader.LoadFromData(jsonContent)
		if err != nil {
			return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
		}
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

type Handler struct {
	doc *openapi3.T
}

func NewHandler(doc *openapi3.T) *Handler {
	return &Handler{doc: doc}
}

func (h *Handler) Serve(c *drift.Context) {
	_ = c.JSON(200, h.doc)
}
