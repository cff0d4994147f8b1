package common

// ErrorResponse represents a bare error body, used where the wire format is
// fixed (webhook acknowledgements) rather than the standard envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReceivedResponse acknowledges a webhook delivery
type ReceivedResponse struct {
	Received bool `json:"received"`
}
