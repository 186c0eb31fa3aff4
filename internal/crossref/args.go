package crossref

// MCP tool argument structs with JSON schema tags.
// Every struct carries an optional Mailto override: supplying it routes the
// single call through a fresh client identified to the provider's polite
// pool, leaving the process default client untouched.

// SearchWorksArgs defines parameters for work search
type SearchWorksArgs struct {
	Query   string            `json:"query" jsonschema:"required" jsonschema_description:"Free-text query matched against titles, authors, and other bibliographic fields"`
	Limit   int               `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 20)"`
	Filters map[string]string `json:"filters,omitempty" jsonschema_description:"Additional CrossRef query parameters forwarded verbatim, e.g. {\"filter\": \"from-pub-date:2020-01-01\"}"`
	Mailto  string            `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// GetWorkArgs defines parameters for a single work lookup
type GetWorkArgs struct {
	DOI    string `json:"doi" jsonschema:"required" jsonschema_description:"DOI of the work, e.g. 10.1037/0003-066X.59.1.29"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// SearchJournalsArgs defines parameters for journal search
type SearchJournalsArgs struct {
	Query  string `json:"query,omitempty" jsonschema_description:"Journal name or keywords; omit to list journals"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 20)"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// SearchFundersArgs defines parameters for funder search
type SearchFundersArgs struct {
	Query  string `json:"query,omitempty" jsonschema_description:"Funder name or keywords; omit to list funders"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 20)"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// SearchMembersArgs defines parameters for member search
type SearchMembersArgs struct {
	Query  string `json:"query,omitempty" jsonschema_description:"Member (publisher) name or keywords; omit to list members"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 20)"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// GetMemberArgs defines parameters for a single member lookup
type GetMemberArgs struct {
	ID     string `json:"id" jsonschema:"required" jsonschema_description:"CrossRef member ID, e.g. 98"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// GetFunderArgs defines parameters for a single funder lookup
type GetFunderArgs struct {
	ID     string `json:"id" jsonschema:"required" jsonschema_description:"Open Funder Registry ID, e.g. 100000001"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// ListTypesArgs defines parameters for listing work types
type ListTypesArgs struct {
	// The type registry is small and unfiltered
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// GetTypeArgs defines parameters for a single work type lookup
type GetTypeArgs struct {
	ID     string `json:"id" jsonschema:"required" jsonschema_description:"Work type ID, e.g. journal-article"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// ListLicensesArgs defines parameters for listing licenses
type ListLicensesArgs struct {
	// The license list is unfiltered
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}

// GetAgencyArgs defines parameters for a registration agency lookup
type GetAgencyArgs struct {
	DOI    string `json:"doi" jsonschema:"required" jsonschema_description:"DOI whose registration agency to look up"`
	Mailto string `json:"mailto,omitempty" jsonschema_description:"Contact email for the CrossRef polite pool, used for this call only"`
}
