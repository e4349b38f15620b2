package api

import "errors"

// Common remote service errors
var (
	// ErrUnavailable indicates a connectivity-class failure: the request
	// never completed because the service could not be reached. Such
	// failures are routed to the offline queue, never charged against
	// retry counts.
	ErrUnavailable = errors.New("remote service unavailable")

	// ErrRecordNotFound indicates that the record does not exist
	ErrRecordNotFound = errors.New("record not found")
)

// IsConnectivityError reports whether err is a connectivity-class
// failure rather than a rejection by the data layer.
func IsConnectivityError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
