package finder

import (
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a search completes without finding a matching object.
var ErrNotFound = errors.New("object not found")

// ErrWaitRetry is returned when a web page's objects are not ready yet, usually
// because the browser is still building them. Callers should wait a little and
// repeat the search.
var ErrWaitRetry = errors.New("web page objects are not ready; wait and retry")

// QueryError is returned when a query is invalid. Msg is meant for the user.
type QueryError struct {
	Msg string
}

func (e *QueryError) Error() string {
	return e.Msg
}

func queryErr(msg string) error {
	return &QueryError{Msg: msg}
}

// Code is the closed set of results a search reports to callers that cannot
// inspect Go errors, such as the CLI's exit status.
type Code int

// The result codes.
const (
	Success Code = iota
	InvalidParameter
	NotFound
	WaitRetry
	// Failed is reported for backend errors at the search root.
	Failed
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case InvalidParameter:
		return "invalid parameter"
	case NotFound:
		return "not found"
	case WaitRetry:
		return "wait and retry"
	default:
		return "failed"
	}
}

// CodeOf maps an error returned by this package to its result code.
func CodeOf(err error) Code {
	var qerr *QueryError
	switch {
	case err == nil:
		return Success
	case errors.As(err, &qerr):
		return InvalidParameter
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.Is(err, ErrWaitRetry):
		return WaitRetry
	default:
		return Failed
	}
}
