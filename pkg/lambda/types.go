package lambda

import "encoding/json"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(req *Request) (*Response, error)

// DefaultHeaders returns the fixed header set attached to every response.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
}

// JSONResponse marshals body and wraps it in a Response carrying the default
// headers. A marshal failure aborts the response and is returned to the
// caller as an unrecoverable error.
func JSONResponse(statusCode int, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    DefaultHeaders(),
		Body:       payload,
	}, nil
}
