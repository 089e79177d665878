package health

// StatusOK is the only status the endpoint ever reports.
const StatusOK = "ok"

// Status is the health payload.
type Status struct {
	Status string `json:"status" doc:"Liveness status" example:"ok" enum:"ok"`
}

// GetOutput is the GET response wrapper. The content type is negotiated.
type GetOutput struct {
	Body Status
}

// HeadOutput carries headers only, so HEAD responses have no body. Nothing is
// negotiated without a body, so the JSON content type is set explicitly.
type HeadOutput struct {
	ContentType string `header:"Content-Type"`
}
