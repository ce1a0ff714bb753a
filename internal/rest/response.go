package rest

type ResponseError struct {
	Message string `json:"message"`
}

// ServerError is the generic failure body: a fixed error label plus the
// underlying message for diagnostics. Raw error detail never goes beyond
// the message string.
type ServerError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newServerError(err error) ServerError {
	return ServerError{
		Error:   "internal server error",
		Message: err.Error(),
	}
}
