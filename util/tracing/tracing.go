package tracing

// Context identifies a single request across log lines and error responses.
type Context struct {
	RequestID     string
	RequestSource string
}
