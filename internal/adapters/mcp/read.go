package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docvault/internal/application/commands"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

// Stores maps entity names ("doc", "template", "cartridge") to their
// document stores.
type Stores map[string]ports.DocumentStore

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, stores Stores, search ports.SearchIndex) {
	s.AddTool(readTool(), readHandler(stores))
	s.AddTool(listTool(), listHandler(stores))
	s.AddTool(resolveTool(), resolveHandler(stores))
	if search != nil {
		s.AddTool(searchTool(), searchHandler(search))
	}
}

func typeParam() mcp.ToolOption {
	return mcp.WithString("type",
		mcp.Description("Entity type: doc, template, or cartridge. Defaults to doc."),
	)
}

func scopeParam() mcp.ToolOption {
	return mcp.WithString("scope",
		mcp.Description("Scope: project or shared. Omit to infer it (IDs carry their scope in the prefix; paths are probed project-first)."),
	)
}

// --- read ---

func readTool() mcp.Tool {
	return mcp.NewTool("read",
		mcp.WithDescription("Read a document by ID (e.g. doc007, sdoc012) or by relative path. Returns the content plus the current hash for optimistic-concurrency edits."),
		mcp.WithString("identifier",
			mcp.Description("Document ID or relative path"),
			mcp.Required(),
		),
		typeParam(),
		scopeParam(),
	)
}

func readHandler(stores Stores) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := storeFor(stores, req)
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewReadCommand(store, req.GetString("identifier", ""), req.GetString("scope", ""))
		doc, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		header := fmt.Sprintf("id: %s\npath: %s\nscope: %s\nhash: %s\n\n", doc.ID, doc.Path, doc.Scope, doc.Hash)
		return mcp.NewToolResultText(header + doc.Content), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List documents from the index. Without a scope, merges project and shared; project entries shadowing a shared path are marked as overrides."),
		typeParam(),
		scopeParam(),
		mcp.WithString("prefix",
			mcp.Description("Only list documents whose path starts with this prefix"),
		),
	)
}

func listHandler(stores Stores) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := storeFor(stores, req)
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewListCommand(store, req.GetString("scope", ""), req.GetString("prefix", ""))
		infos, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(infos) == 0 {
			return mcp.NewToolResultText("No documents."), nil
		}
		var sb strings.Builder
		for _, info := range infos {
			sb.WriteString(formatInfo(info))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Resolve an identifier to its (id, path, scope) triple without reading the content."),
		mcp.WithString("identifier",
			mcp.Description("Document ID or relative path"),
			mcp.Required(),
		),
		typeParam(),
		scopeParam(),
	)
}

func resolveHandler(stores Stores) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := storeFor(stores, req)
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewReadCommand(store, req.GetString("identifier", ""), req.GetString("scope", ""))
		doc, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s  %s  %s", doc.ID, doc.Path, doc.Scope)), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search every entity type and scope by keyword (title, path, content)."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(search ports.SearchIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		results, err := search.Search(query)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s (%s)", r.Entity, r.ID, r.Path, r.Scope)
			if r.Snippet != "" {
				fmt.Fprintf(&sb, "  %s", r.Snippet)
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func storeFor(stores Stores, req mcp.CallToolRequest) (ports.DocumentStore, error) {
	name := req.GetString("type", domain.EntityDoc.Name)
	store, ok := stores[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity type: %q (expected doc, template, or cartridge)", name)
	}
	return store, nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatInfo(info domain.Info) string {
	line := fmt.Sprintf("%s  %s (%s)", info.ID, info.Path, info.Scope)
	if info.Title != "" {
		line += "  " + info.Title
	}
	if info.Override {
		line += "  [overrides shared]"
	}
	return line
}
