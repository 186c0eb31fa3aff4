// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a CrossRef client method with a matching Args type.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "crossref_search_works")
	Name string

	// Method is the client method name (e.g., "SearchWorks")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (search, read, list)
	Category string

	// ErrPrefix is prepended to failure messages in the error document
	// returned by the tool (e.g., "An error occurred while searching works")
	ErrPrefix string

	// ReadOnly indicates the tool doesn't modify provider state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
