package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docvault/internal/application/commands"
	"docvault/internal/domain"
)

// RegisterWriteTools adds all mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, stores Stores) {
	s.AddTool(createTool(), createHandler(stores))
	s.AddTool(editTool(), editHandler(stores))
	s.AddTool(moveTool(), moveHandler(stores))
	s.AddTool(deleteTool(), deleteHandler(stores))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a new document at a relative path. Returns the minted ID. The path must not itself look like an ID."),
		mcp.WithString("path",
			mcp.Description("Relative path for the new document (e.g. auth/jwt.md)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Full markdown content, front matter included"),
			mcp.Required(),
		),
		typeParam(),
		scopeParam(),
	)
}

func createHandler(stores Stores) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := storeFor(stores, req)
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewCreateCommand(store,
			req.GetString("path", ""),
			req.GetString("scope", ""),
			req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- edit ---

func editTool() mcp.Tool {
	return mcp.NewTool("edit",
		mcp.WithDescription("Apply edit operations to a document. Operations is a JSON array of "+
			`{op:"replaceOnce"|"replaceAll", oldText, newText} | {op:"replaceRegex", pattern, flags?, replacement} | {op:"replaceAllContent", content}. `+
			"Pass the hash from a previous read as expected_hash to fail fast if the document changed."),
		mcp.WithString("identifier",
			mcp.Description("Document ID or relative path"),
			mcp.Required(),
		),
		mcp.WithString("operations",
			mcp.Description("JSON array of edit operations, applied in order"),
			mcp.Required(),
		),
		mcp.WithString("expected_hash",
			mcp.Description("Optional hash guard from a previous read"),
		),
		typeParam(),
		scopeParam(),
	)
}

func editHandler(stores Stores) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := storeFor(stores, req)
		if err != nil {
			return toolError(err)
		}
		ops, err := domain.DecodeEditOps([]byte(req.GetString("operations", "")))
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewEditCommand(store,
			req.GetString("identifier", ""),
			req.GetString("scope", ""),
			ops,
			req.GetString("expected_hash", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\nnew hash: %s", result.Message, result.Document.Hash)), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move a document to a new path. A move always mints a fresh ID; the old ID stops resolving."),
		mcp.WithString("source",
			mcp.Description("Document ID or relative path to move"),
			mcp.Required(),
		),
		mcp.WithString("destination_path",
			mcp.Description("New relative path"),
			mcp.Required(),
		),
		mcp.WithString("destination_scope",
			mcp.Description("Scope for the destination. Defaults to the source's scope."),
		),
		typeParam(),
	)
}

func moveHandler(stores Stores) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := storeFor(stores, req)
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewMoveCommand(store,
			req.GetString("source", ""),
			req.GetString("destination_path", ""),
			req.GetString("destination_scope", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a document. Idempotent: deleting something already gone reports that, without an error."),
		mcp.WithString("identifier",
			mcp.Description("Document ID or relative path"),
			mcp.Required(),
		),
		mcp.WithString("expected_hash",
			mcp.Description("Optional hash guard from a previous read"),
		),
		typeParam(),
		scopeParam(),
	)
}

func deleteHandler(stores Stores) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := storeFor(stores, req)
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewDeleteCommand(store,
			req.GetString("identifier", ""),
			req.GetString("scope", ""),
			req.GetString("expected_hash", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
