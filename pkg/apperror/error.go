package apperror

import "net/http"

// AppError pairs an HTTP status code with the exact message the client sees.
// The wrapped error is for server-side logs only and never leaves the process.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func MethodNotAllowed() *AppError {
	return New(http.StatusMethodNotAllowed, "Method not allowed", nil)
}

// SendFailed covers both missing mail configuration and relay failures.
// The two are deliberately indistinguishable to the client; the cause is
// carried in err for logging.
func SendFailed(err error) *AppError {
	return New(http.StatusInternalServerError, "Send failed", err)
}
