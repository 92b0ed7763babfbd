package schemas

// CustomError is the error shape returned to clients. The code is stable and
// machine-readable, the message is safe to display to users.
type CustomError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	// BadRequest is returned when the request body fails binding or validation.
	BadRequest = &CustomError{
		Code:    "ERR-001",
		Message: "The request body is invalid. Please check the request body and try again.",
	}
	// Unauthorized is returned when the request carries no valid access token.
	Unauthorized = &CustomError{
		Code:    "ERR-002",
		Message: "The request is unauthorized. Please login to your account.",
	}
	// InternalServerError is returned when a request fails for an unexpected reason.
	InternalServerError = &CustomError{
		Code:    "ERR-003",
		Message: "An internal server error occurred. Please try again later.",
	}
	// AuthenticationNotImplemented is returned by the authentication placeholder
	// guarding endpoints that ship before the account system does.
	AuthenticationNotImplemented = &CustomError{
		Code:    "ERR-004",
		Message: "Authentication is not yet implemented. Please try again in a later version.",
	}
	// AuthorizationNotImplemented is returned by the role check placeholder.
	AuthorizationNotImplemented = &CustomError{
		Code:    "ERR-005",
		Message: "Authorization is not yet implemented. Please try again in a later version.",
	}
)
