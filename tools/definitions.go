package tools

// AllTools contains all tool specifications for the CrossRef MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
//
// Every tool accepts an optional mailto parameter: a contact email that joins
// the CrossRef polite pool for that single call without changing the
// process-wide default.
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:      "crossref_search_works",
		Method:    "SearchWorks",
		Title:     "Search Works",
		Category:  "search",
		ErrPrefix: "An error occurred while searching works",
		Description: `Search CrossRef for scholarly works (articles, books, datasets) by free text.

USE WHEN: User asks "find papers about X", "search for articles by Y", "look up publications on Z".

NOT FOR: Fetching one specific work when the DOI is already known (use crossref_get_work_metadata instead).

PARAMETERS:
- query: Search text matched against titles, authors, and bibliographic fields (required)
- limit: Max results (default 20)
- filters: Extra CrossRef query parameters forwarded verbatim (optional)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The CrossRef work list response with items, facets, and total-results count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_search_journals",
		Method:    "SearchJournals",
		Title:     "Search Journals",
		Category:  "search",
		ErrPrefix: "An error occurred while searching journals",
		Description: `Search CrossRef's journal catalog by title or keywords.

USE WHEN: User asks "find the journal X", "which journals cover Y", or wants journal-level metadata such as ISSNs.

NOT FOR: Finding articles published in a journal (use crossref_search_works with a filter instead).

PARAMETERS:
- query: Journal name or keywords; omit to list journals (optional)
- limit: Max results (default 20)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The CrossRef journal list response with titles, ISSNs, and publisher info.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_search_funders",
		Method:    "SearchFunders",
		Title:     "Search Funders",
		Category:  "search",
		ErrPrefix: "An error occurred while searching funders",
		Description: `Search the Open Funder Registry for research funders by name.

USE WHEN: User asks "find the funder X", "what is the funder ID for Y", "search funding bodies".

NOT FOR: Fetching one funder by its known registry ID (use crossref_get_funder instead).

PARAMETERS:
- query: Funder name or keywords; omit to list funders (optional)
- limit: Max results (default 20)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The CrossRef funder list response with names, IDs, and locations.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_search_members",
		Method:    "SearchMembers",
		Title:     "Search Members",
		Category:  "search",
		ErrPrefix: "An error occurred while searching members",
		Description: `Search CrossRef member organizations (publishers) by name.

USE WHEN: User asks "find publisher X", "who publishes Y", "search CrossRef members".

NOT FOR: Fetching one member by its known numeric ID (use crossref_get_member instead).

PARAMETERS:
- query: Member name or keywords; omit to list members (optional)
- limit: Max results (default 20)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The CrossRef member list response with names, IDs, and DOI prefixes.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:      "crossref_get_work_metadata",
		Method:    "GetWork",
		Title:     "Get Work Metadata",
		Category:  "read",
		ErrPrefix: "An error occurred while getting work metadata",
		Description: `Retrieve the full CrossRef metadata record for a single work by DOI.

USE WHEN: User says "get the metadata for DOI X", "look up 10.1038/...", "who wrote the paper with this DOI".

NOT FOR: Finding works by topic or author (use crossref_search_works instead). Not for the DOI's registration agency (use crossref_get_agency).

PARAMETERS:
- doi: DOI of the work, e.g. 10.1037/0003-066X.59.1.29 (required)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The complete work record: title, authors, container, dates, references, and license data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_get_member",
		Method:    "GetMember",
		Title:     "Get Member",
		Category:  "read",
		ErrPrefix: "An error occurred while getting member details",
		Description: `Retrieve one CrossRef member organization by its numeric ID.

USE WHEN: User has a member ID (e.g. from a search) and wants the full record.

NOT FOR: Finding members by name (use crossref_search_members instead).

PARAMETERS:
- id: CrossRef member ID, e.g. 98 (required)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The member record with prefixes, coverage statistics, and contact details.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_get_funder",
		Method:    "GetFunder",
		Title:     "Get Funder",
		Category:  "read",
		ErrPrefix: "An error occurred while getting funder details",
		Description: `Retrieve one funder from the Open Funder Registry by ID.

USE WHEN: User has a funder ID (e.g. 100000001) and wants the full record including hierarchy.

NOT FOR: Finding funders by name (use crossref_search_funders instead).

PARAMETERS:
- id: Open Funder Registry ID, e.g. 100000001 (required)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The funder record with name, alternative names, location, and parent/child funders.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_get_type",
		Method:    "GetType",
		Title:     "Get Work Type",
		Category:  "read",
		ErrPrefix: "An error occurred while getting work type details",
		Description: `Retrieve one CrossRef work type by its ID.

USE WHEN: User asks "what does the type journal-article mean", or needs the label for a known type ID.

NOT FOR: Listing all types (use crossref_list_types instead).

PARAMETERS:
- id: Work type ID, e.g. journal-article (required)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The type record with its ID and human-readable label.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_get_agency",
		Method:    "GetAgency",
		Title:     "Get Registration Agency",
		Category:  "read",
		ErrPrefix: "An error occurred while getting the registration agency",
		Description: `Look up which DOI registration agency (CrossRef, DataCite, mEDRA, ...) registered a DOI.

USE WHEN: User asks "who registered this DOI", or a DOI lookup failed and they want to know if it belongs to another agency.

NOT FOR: Fetching the work's metadata (use crossref_get_work_metadata instead).

PARAMETERS:
- doi: DOI whose registration agency to look up (required)
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The agency record naming the registration agency for the DOI.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LIST TOOLS
	// ==========================================================================
	{
		Name:      "crossref_list_types",
		Method:    "ListTypes",
		Title:     "List Work Types",
		Category:  "list",
		ErrPrefix: "An error occurred while listing work types",
		Description: `List all work types known to CrossRef (journal-article, book-chapter, dataset, ...).

USE WHEN: User asks "what work types exist", or needs valid type IDs for filtering searches.

NOT FOR: Details of one known type (use crossref_get_type instead).

PARAMETERS:
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The full list of type records with IDs and labels.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:      "crossref_list_licenses",
		Method:    "ListLicenses",
		Title:     "List Licenses",
		Category:  "list",
		ErrPrefix: "An error occurred while listing licenses",
		Description: `List content licenses that appear on works deposited with CrossRef.

USE WHEN: User asks "which licenses are used", "list license URLs across CrossRef".

NOT FOR: The license of one specific work (use crossref_get_work_metadata and read its license field).

PARAMETERS:
- mailto: Contact email for this call's polite pool identity (optional)

RETURNS: The license list response with URLs and work counts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByCategory returns the subset of AllTools in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
