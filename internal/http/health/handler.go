// Package health serves the liveness endpoints polled by the hosting platform.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const contentTypeJSON = "application/json"

// Paths served by this package. /healthz/ is listed explicitly because chi
// treats trailing slashes as distinct routes.
var routes = []struct {
	path string
	id   string
}{
	{"/healthz", "healthz"},
	{"/healthz/", "healthz-slash"},
	{"/health", "health"},
}

// Register wires GET and HEAD for every health path.
func Register(api huma.API) {
	for _, rt := range routes {
		huma.Register(api, huma.Operation{
			OperationID:   "get-" + rt.id,
			Method:        http.MethodGet,
			Path:          rt.path,
			Summary:       "Liveness check",
			Tags:          []string{"health"},
			DefaultStatus: http.StatusOK,
		}, getHandler)

		huma.Register(api, huma.Operation{
			OperationID:   "head-" + rt.id,
			Method:        http.MethodHead,
			Path:          rt.path,
			Summary:       "Liveness check without body",
			Tags:          []string{"health"},
			DefaultStatus: http.StatusOK,
		}, headHandler)
	}
}

func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{Body: Status{Status: StatusOK}}, nil
}

func headHandler(_ context.Context, _ *struct{}) (*HeadOutput, error) {
	return &HeadOutput{ContentType: contentTypeJSON}, nil
}
