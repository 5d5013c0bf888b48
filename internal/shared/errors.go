package shared

import "fmt"

var (
	// Chart source errors
	ErrSourceUnavailable = fmt.Errorf("chart source unavailable")
	ErrEmptyRoster       = fmt.Errorf("chart week has no entries")
	ErrChartNotFound     = fmt.Errorf("unknown chart")

	// Date errors. A malformed date is a programming or configuration
	// defect and is fatal to the process, never retried.
	ErrMalformedDate = fmt.Errorf("malformed chart date")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
