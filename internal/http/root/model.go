package root

// Greeting is the fixed root payload value.
const Greeting = "cloud run + jenkins"

// Hello is the root response payload.
type Hello struct {
	Hello string `json:"hello" doc:"Static greeting" example:"cloud run + jenkins"`
}

// GetOutput is the response wrapper for GET /.
type GetOutput struct {
	Body Hello
}
