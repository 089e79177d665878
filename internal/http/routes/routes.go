package routes

import (
	"github.com/danielgtaylor/huma/v2"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"

	"github.com/janisto/cloudrun-smoke/internal/http/health"
	"github.com/janisto/cloudrun-smoke/internal/http/ping"
	"github.com/janisto/cloudrun-smoke/internal/http/root"
)

const (
	// Title is the OpenAPI document title.
	Title = "Cloud Run Smoke API"
	// DocsPath is where the docs UI is served when enabled.
	DocsPath = "/api-docs"
)

// NewConfig returns the huma configuration shared by the server and tests.
//
// The default create hooks are dropped: they add a $schema property and a Link
// header to every body, and the endpoints must return their payloads verbatim.
func NewConfig(version string, docsEnabled bool) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.CreateHooks = nil
	cfg.DocsPath = ""
	if docsEnabled {
		cfg.DocsPath = DocsPath
	}
	cfg.OpenAPI.OnAddOperation = append(cfg.OpenAPI.OnAddOperation, documentCBOR)
	return cfg
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	health.Register(api)
	ping.Register(api)
	root.Register(api)
}

// documentCBOR advertises application/cbor next to every JSON response.
func documentCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
