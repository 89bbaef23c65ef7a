package client

import "fmt"

// excerptLen caps how much of a raw response body errors carry around.
const excerptLen = 200

// TransportError covers everything that went wrong before a body could be
// decoded: connection failures, DNS errors, timeouts, non-2xx statuses.
type TransportError struct {
	Endpoint string
	Status   int // 0 when the request never completed
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedError means the gateway answered but the body was not what the
// contract promises: invalid JSON, or a numeric-as-string field that does not
// parse. Excerpt keeps the start of the raw body for debugging against the
// gateway.
type MalformedError struct {
	Endpoint string
	Excerpt  string
	Err      error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v (body: %q)", e.Endpoint, e.Err, e.Excerpt)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func excerpt(body []byte) string {
	if len(body) > excerptLen {
		body = body[:excerptLen]
	}
	return string(body)
}
