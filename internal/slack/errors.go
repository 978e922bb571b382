package slack

import "fmt"

// TransportError is a network-level failure: the request never got
// evaluated by Slack (connection refused, timeout, bad HTTP status).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach Slack servers calling %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a protocol-level failure: Slack evaluated the request and
// marked it unsuccessful, carrying its own error code (ok:false).
type APIError struct {
	Op   string
	Code string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed with %s", e.Op, e.Code)
}
