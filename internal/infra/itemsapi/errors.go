package itemsapi

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Status)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an *HTTPError.
func StatusCode(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.StatusCode
	}
	return 0
}

// RetryServerErrors is an opt-in retry predicate that gives up on client errors
// (4xx other than 408 and 429). Network and decode failures are still retried.
func RetryServerErrors(err error) bool {
	code := StatusCode(err)
	if code < 400 || code >= 500 {
		return true
	}
	return code == http.StatusRequestTimeout || code == http.StatusTooManyRequests
}
