package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name: "work by doi",
			err: &NotFoundError{
				Resource:   "work",
				Identifier: "10.1037/0003-066X.59.1.29",
			},
			expected: "work not found: 10.1037/0003-066X.59.1.29",
		},
		{
			name: "member by id",
			err: &NotFoundError{
				Resource:   "member",
				Identifier: "98",
			},
			expected: "member not found: 98",
		},
		{
			name: "without resource",
			err: &NotFoundError{
				Identifier: "journal-article",
			},
			expected: "not found: journal-article",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("NotFoundError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("funder", "100000001")

	if err.Resource != "funder" {
		t.Errorf("Resource = %q, want %q", err.Resource, "funder")
	}
	if err.Identifier != "100000001" {
		t.Errorf("Identifier = %q, want %q", err.Identifier, "100000001")
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name: "with body",
			err: &APIError{
				StatusCode: 500,
				Body:       `{"status":"error"}`,
			},
			expected: `crossref api error (status 500): {"status":"error"}`,
		},
		{
			name: "without body",
			err: &APIError{
				StatusCode: 503,
			},
			expected: "crossref api error (status 503)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("APIError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(429, []byte("rate limit exceeded"))

	if err.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", err.StatusCode)
	}
	if err.Body != "rate limit exceeded" {
		t.Errorf("Body = %q, want %q", err.Body, "rate limit exceeded")
	}
}

func TestNewAPIError_TruncatesBody(t *testing.T) {
	long := strings.Repeat("x", maxBodyExcerpt+50)
	err := NewAPIError(502, []byte(long))

	if len(err.Body) != maxBodyExcerpt+3 {
		t.Errorf("Body length = %d, want %d", len(err.Body), maxBodyExcerpt+3)
	}
	if !strings.HasSuffix(err.Body, "...") {
		t.Errorf("Body = %q, want trailing ellipsis", err.Body)
	}
}

func TestIsNotFound(t *testing.T) {
	notFoundErr := &NotFoundError{Resource: "work", Identifier: "10.1000/xyz"}
	apiErr := &APIError{StatusCode: 500}
	plainErr := errors.New("plain error")

	if !IsNotFound(notFoundErr) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if IsNotFound(apiErr) {
		t.Error("IsNotFound should return false for APIError")
	}
	if IsNotFound(plainErr) {
		t.Error("IsNotFound should return false for plain error")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound should return false for nil")
	}
}

func TestIsAPIError(t *testing.T) {
	notFoundErr := &NotFoundError{Resource: "work", Identifier: "10.1000/xyz"}
	apiErr := &APIError{StatusCode: 500}
	plainErr := errors.New("plain error")

	if IsAPIError(notFoundErr) {
		t.Error("IsAPIError should return false for NotFoundError")
	}
	if !IsAPIError(apiErr) {
		t.Error("IsAPIError should return true for APIError")
	}
	if IsAPIError(plainErr) {
		t.Error("IsAPIError should return false for plain error")
	}
	if IsAPIError(nil) {
		t.Error("IsAPIError should return false for nil")
	}
}
