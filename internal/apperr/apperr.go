// Package apperr defines the error taxonomy shared by the core packages.
// Errors are raised at the point of detection and propagate to the transport
// layer unhandled; only the transport decides how a kind maps to a response.
package apperr

type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindValidation     Kind = "validation"
	KindFetch          Kind = "fetch"
	KindParse          Kind = "parse"
)

// Error carries a kind and a message. Status is only meaningful for
// KindFetch, where it holds the upstream HTTP status code, and for the
// rare case where a caller pins an explicit response status.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// PermissionDenied is an authentication failure that responds with 403
// rather than 401, matching the login contract.
func PermissionDenied(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message, Status: 403}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Fetch reports that a feed URL could not be retrieved; status is the
// upstream HTTP status code.
func Fetch(status int, message string) *Error {
	return &Error{Kind: KindFetch, Message: message, Status: status}
}

func Parse(message string) *Error {
	return &Error{Kind: KindParse, Message: message}
}
