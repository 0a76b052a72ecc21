package assess

import "fmt"

// ApplicationError is a failure the assessment service reported in its
// response body, such as an unknown city. The message is shown to the user
// as-is.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// TransportError covers everything between the panel and a well-formed
// service response: connection failures, unreadable bodies and payloads
// that match neither response shape.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Op
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
