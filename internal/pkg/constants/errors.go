package constants

import "net/http"

// CodedError carries the HTTP status the api layer should answer with.
// Storage errors that have no mapping are surfaced unchanged and end up
// as 500s.
type CodedError struct {
	code    int
	message string
}

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{code: code, message: message}
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound  = NewCodedError(http.StatusNotFound, "not found")
	ErrBadInput    = NewCodedError(http.StatusBadRequest, "bad input")
	ErrEmptyImport = NewCodedError(http.StatusBadRequest, "import file contains no data rows")
)
