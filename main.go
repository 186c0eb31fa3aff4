// CrossRef MCP Server - A Model Context Protocol server for the CrossRef REST API
// Provides tools for searching and reading scholarly work metadata
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/crossref-mcp-server/internal/crossref"
	"github.com/olgasafonova/crossref-mcp-server/tools"
	"github.com/olgasafonova/crossref-mcp-server/tracing"
)

const (
	ServerName    = "crossref-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `CrossRef MCP Server provides tools for querying CrossRef's scholarly metadata registry.

Available tools:
- crossref_search_works: Search scholarly works by free text
- crossref_search_journals: Search the journal catalog
- crossref_search_funders: Search the Open Funder Registry
- crossref_search_members: Search member organizations (publishers)
- crossref_get_work_metadata: Get one work's full metadata by DOI
- crossref_get_member: Get one member by ID
- crossref_get_funder: Get one funder by ID
- crossref_get_type: Get one work type by ID
- crossref_get_agency: Get the registration agency for a DOI
- crossref_list_types: List all work types
- crossref_list_licenses: List content licenses seen on deposited works

All tools accept an optional mailto parameter (contact email) that joins that
single call to CrossRef's polite pool without changing the server default.

Configure via environment variables:
- CROSSREF_MAILTO: Contact email sent with every request (recommended)
- CROSSREF_BASE_URL: Override the API base URL (default https://api.crossref.org)
- CROSSREF_TIMEOUT: HTTP timeout as a Go duration (default 30s)
- CROSSREF_USER_AGENT: Override the User-Agent header`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := crossref.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Create the process-default CrossRef client
	client := crossref.NewClientFromConfig(config, crossref.WithLogger(logger))
	defer client.Close()

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, config, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting CrossRef MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
		"mailto_set", config.HasMailto(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
