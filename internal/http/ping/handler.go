// Package ping serves a trivial request/response round-trip for smoke tests.
package ping

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Register wires GET /ping.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "get-ping",
		Method:        http.MethodGet,
		Path:          "/ping",
		Summary:       "Ping",
		Tags:          []string{"smoke"},
		DefaultStatus: http.StatusOK,
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{Body: NewPing()}, nil
}
