package api

// Endpoint is the answer to every GET request below /api/
type Endpoint struct {
	Message   string `json:"message" jsonschema:"required"`
	Path      string `json:"path" jsonschema:"required"`
	RequestID string `json:"requestId" jsonschema:"required"`
	Timestamp string `json:"timestamp" jsonschema:"required"` // ISO-8601, UTC
}
