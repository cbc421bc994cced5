package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session errors
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrSessionStorage   = fmt.Errorf("session storage failure")

	// API and service errors. ErrAPIRequest carries the server's detail
	// message when one is present; ErrFetchFailed and ErrUnknown are the
	// generic fallbacks for unstructured and unexpected failures.
	ErrAPIRequest  = fmt.Errorf("API request failed")
	ErrFetchFailed = fmt.Errorf("failed to fetch data from API")
	ErrUnknown     = fmt.Errorf("an unknown error occurred")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
