package exchange

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// StatusError reports a non-2xx response from the key-exchange endpoint.
// Body holds the response body text when one was readable.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("key exchange failed: status %d", e.Status)
	}
	return fmt.Sprintf("key exchange failed: status %d: %s", e.Status, e.Body)
}

// IsRetryable reports whether err looks like a transient exchange failure
// worth retrying: a transport error, or a 5xx/408/429 status. Malformed
// responses and other 4xx statuses are not retryable.
func IsRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status >= 500 ||
			se.Status == http.StatusRequestTimeout ||
			se.Status == http.StatusTooManyRequests
	}
	var ue *url.Error
	return errors.As(err, &ue)
}
