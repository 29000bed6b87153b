// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors matching the failure taxonomy of aggregation

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents invalid caller input (category, URL) that is
// rejected before any network I/O is attempted.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// SourceError represents a single feed source that failed to fetch or
// parse. It is recovered locally: the source contributes zero entries and
// the error is logged, never surfaced.
type SourceError struct {
	Source string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s (%s) failed: %v", e.Source, e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *SourceError) Unwrap() error {
	return e.Err
}

// AllSourcesFailedError is surfaced when every configured source for a
// category failed. It carries a retryable, category-level message.
type AllSourcesFailedError struct {
	Category string
	Sources  int
}

// Error implements the error interface
func (e *AllSourcesFailedError) Error() string {
	return fmt.Sprintf("all %d sources for category '%s' failed to fetch", e.Sources, e.Category)
}

// NoFeedsError is surfaced when a category has zero configured sources.
type NoFeedsError struct {
	Category string
}

// Error implements the error interface
func (e *NoFeedsError) Error() string {
	return fmt.Sprintf("no feeds configured for category '%s'", e.Category)
}

// RemoteAPIError represents a transport or decode failure against the
// hosted digest API.
type RemoteAPIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *RemoteAPIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("digest API error: %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("digest API error: %s", e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAllSourcesFailed checks if an error is an AllSourcesFailedError
func IsAllSourcesFailed(err error) bool {
	var allErr *AllSourcesFailedError
	return errors.As(err, &allErr)
}

// IsNoFeeds checks if an error is a NoFeedsError
func IsNoFeeds(err error) bool {
	var noFeedsErr *NoFeedsError
	return errors.As(err, &noFeedsErr)
}

// IsRemoteAPI checks if an error is a RemoteAPIError
func IsRemoteAPI(err error) bool {
	var apiErr *RemoteAPIError
	return errors.As(err, &apiErr)
}

// Retryable reports whether the error represents a condition the user can
// retry. Every category-level failure in this subsystem is retryable.
func Retryable(err error) bool {
	return IsAllSourcesFailed(err) || IsRemoteAPI(err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
