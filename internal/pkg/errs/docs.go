// Package errs provides standardized error types for the orders service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the service reports:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but breaks a rule
//   - ObjectNotFoundError: an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// The Cause of an error is the human readable reason shown to API clients;
// Cause(err) extracts it from anywhere in a wrapped chain.
package errs
