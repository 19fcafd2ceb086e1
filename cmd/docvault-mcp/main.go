package main

import (
	"context"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docvault/internal/adapters/filesystem"
	mcpadapter "docvault/internal/adapters/mcp"
	"docvault/internal/adapters/sqlite"
	"docvault/internal/config"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

func main() {
	workDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("docvault-mcp: %v", err)
	}
	cfg, err := config.Load(workDir)
	if err != nil {
		log.Fatalf("docvault-mcp: %v", err)
	}

	stores := mcpadapter.Stores{}
	all := make([]ports.DocumentStore, 0, len(domain.Entities))
	for _, entity := range domain.Entities {
		project, shared := cfg.Roots(entity)
		store := filesystem.NewStore(entity, project, shared)
		stores[entity.Name] = store
		all = append(all, store)
	}

	// The search index is optional: without a database the search tool is
	// simply not registered.
	var search ports.SearchIndex
	searchIndex := sqlite.NewSearchIndex(cfg.SearchDBPath(), all...)
	if err := searchIndex.Open(); err == nil {
		defer searchIndex.Close()
		search = searchIndex
	}

	mcpServer := server.NewMCPServer(
		"docvault-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, stores, search)
	mcpadapter.RegisterWriteTools(mcpServer, stores)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("docvault-mcp: %v", err)
	}
}
