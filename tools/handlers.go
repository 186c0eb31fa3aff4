package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/crossref-mcp-server/internal/crossref"
	"github.com/olgasafonova/crossref-mcp-server/metrics"
	"github.com/olgasafonova/crossref-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
//
// All tools share one process-default client built at startup. A call that
// carries its own mailto gets a fresh client for that call, identified to
// the provider's polite pool under the caller's email; the default client
// is never mutated.
type HandlerRegistry struct {
	defaultClient *crossref.Client
	cfg           *crossref.Config
	logger        *slog.Logger

	// newClient builds the per-call client for a mailto override.
	// Swapped out in tests.
	newClient func(mailto string) *crossref.Client
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(defaultClient *crossref.Client, cfg *crossref.Config, logger *slog.Logger) *HandlerRegistry {
	h := &HandlerRegistry{
		defaultClient: defaultClient,
		cfg:           cfg,
		logger:        logger,
	}
	h.newClient = func(mailto string) *crossref.Client {
		override := *cfg
		override.Mailto = mailto
		// Share the default client's transport so per-call clients reuse
		// the same connection pool.
		return crossref.NewClientFromConfig(&override,
			crossref.WithHTTPClient(defaultClient.HTTPClient),
			crossref.WithLogger(logger),
		)
	}
	return h
}

// clientFor resolves the client for one call: the process default, or a
// fresh client when the call supplies its own mailto.
func (h *HandlerRegistry) clientFor(mailto string) *crossref.Client {
	if mailto == "" {
		return h.defaultClient
	}
	return h.newClient(mailto)
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "SearchWorks":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.SearchWorksArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).SearchWorks(ctx, args.Query, args.Limit, args.Filters)
		})
	case "GetWork":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.GetWorkArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).GetWork(ctx, args.DOI)
		})
	case "SearchJournals":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.SearchJournalsArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).SearchJournals(ctx, args.Query, args.Limit)
		})
	case "SearchFunders":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.SearchFundersArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).SearchFunders(ctx, args.Query, args.Limit)
		})
	case "SearchMembers":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.SearchMembersArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).SearchMembers(ctx, args.Query, args.Limit)
		})
	case "GetMember":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.GetMemberArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).GetMember(ctx, args.ID)
		})
	case "GetFunder":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.GetFunderArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).GetFunder(ctx, args.ID)
		})
	case "ListTypes":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.ListTypesArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).ListTypes(ctx)
		})
	case "GetType":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.GetTypeArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).GetType(ctx, args.ID)
		})
	case "ListLicenses":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.ListLicensesArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).ListLicenses(ctx)
		})
	case "GetAgency":
		register(h, server, tool, spec, func(ctx context.Context, args crossref.GetAgencyArgs) (crossref.Document, error) {
			return h.clientFor(args.Mailto).GetAgency(ctx, args.DOI)
		})

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (crossref.Document, error),
) {
	mcp.AddTool(server, tool, wrap(h, spec, method))
}

// wrap builds the MCP handler for a client method, adding panic recovery,
// metrics, tracing, and logging. Failures never surface as protocol errors:
// the handler resolves with a single-key error document so the conversation
// can continue.
func wrap[Args any](
	h *HandlerRegistry,
	spec ToolSpec,
	method func(context.Context, Args) (crossref.Document, error),
) func(context.Context, *mcp.CallToolRequest, Args) (*mcp.CallToolResult, crossref.Document, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, doc crossref.Document, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				metrics.PanicsRecovered.WithLabelValues(spec.Name).Inc()
				h.logger.Error("Panic recovered",
					"tool", spec.Name,
					"panic", rec,
					"stack", string(debug.Stack()))
				res, doc, err = nil, errorEnvelope(spec, fmt.Errorf("internal error: %v", rec)), nil
			}
		}()

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		h.logInvocation(spec, args)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, callErr := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if callErr != nil {
			span.RecordError(callErr)
			span.SetStatus(codes.Error, callErr.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			return nil, errorEnvelope(spec, callErr), nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		return nil, result, nil
	}
}

// errorEnvelope converts a failure into the error document resolved to the
// caller: exactly one "error" key, message prefixed per operation.
func errorEnvelope(spec ToolSpec, err error) crossref.Document {
	return crossref.Document{"error": spec.ErrPrefix + ": " + err.Error()}
}

// logInvocation logs one line per tool call with its primary argument.
func (h *HandlerRegistry) logInvocation(spec ToolSpec, args any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case crossref.SearchWorksArgs:
		attrs = append(attrs, "query", a.Query)
	case crossref.GetWorkArgs:
		attrs = append(attrs, "doi", a.DOI)
	case crossref.SearchJournalsArgs:
		attrs = append(attrs, "query", a.Query)
	case crossref.SearchFundersArgs:
		attrs = append(attrs, "query", a.Query)
	case crossref.SearchMembersArgs:
		attrs = append(attrs, "query", a.Query)
	case crossref.GetMemberArgs:
		attrs = append(attrs, "id", a.ID)
	case crossref.GetFunderArgs:
		attrs = append(attrs, "id", a.ID)
	case crossref.GetTypeArgs:
		attrs = append(attrs, "id", a.ID)
	case crossref.ListTypesArgs:
		// No args to log
	case crossref.ListLicensesArgs:
		// No args to log
	case crossref.GetAgencyArgs:
		attrs = append(attrs, "doi", a.DOI)
	}

	h.logger.Info("Tool invoked", attrs...)
}
