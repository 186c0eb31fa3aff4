package crossref

// Document is a raw CrossRef API response. The provider wraps every payload
// in an envelope ({"status", "message-type", "message-version", "message"}),
// but nothing here depends on that shape: bodies are decoded and returned
// verbatim, unknown fields included.
type Document map[string]any
