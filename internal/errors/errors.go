// Package errors provides shared error types for the CrossRef API client.
package errors

import (
	"fmt"
)

// maxBodyExcerpt bounds how much of an error response body is carried
// into the error message.
const maxBodyExcerpt = 200

// NotFoundError indicates the provider has no record for an identifier.
type NotFoundError struct {
	Resource   string // "work", "member", "funder", "type"
	Identifier string // DOI, member ID, funder ID, or type ID
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a provider lookup.
func NewNotFoundError(resource, identifier string) *NotFoundError {
	return &NotFoundError{
		Resource:   resource,
		Identifier: identifier,
	}
}

// APIError indicates a non-success response from the provider.
type APIError struct {
	StatusCode int    // HTTP status returned by the provider
	Body       string // response body excerpt (may be empty)
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("crossref api error (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("crossref api error (status %d)", e.StatusCode)
}

// NewAPIError creates an APIError from a provider status and raw body.
func NewAPIError(statusCode int, body []byte) *APIError {
	excerpt := string(body)
	if len(excerpt) > maxBodyExcerpt {
		excerpt = excerpt[:maxBodyExcerpt] + "..."
	}
	return &APIError{
		StatusCode: statusCode,
		Body:       excerpt,
	}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAPIError returns true if the error is an APIError.
func IsAPIError(err error) bool {
	_, ok := err.(*APIError)
	return ok
}
