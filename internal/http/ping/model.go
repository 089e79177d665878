package ping

// DefaultMessage is the value every ping response carries.
const DefaultMessage = "pong"

// Ping is the ping response record.
type Ping struct {
	Message string `json:"message" doc:"Always pong" example:"pong" default:"pong"`
}

// NewPing returns a record with the default message.
func NewPing() Ping {
	return Ping{Message: DefaultMessage}
}

// GetOutput is the response wrapper for GET /ping.
type GetOutput struct {
	Body Ping
}
