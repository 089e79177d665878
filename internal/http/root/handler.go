// Package root serves the static greeting at /.
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Register wires GET /.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "get-root",
		Method:        http.MethodGet,
		Path:          "/",
		Summary:       "Greeting",
		Tags:          []string{"smoke"},
		DefaultStatus: http.StatusOK,
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{Body: Hello{Hello: Greeting}}, nil
}
