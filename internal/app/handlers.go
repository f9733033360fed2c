package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// tools lists every MCP tool with its handler.
func (a *App) tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: createGetVersionTool(), Handler: handleGetVersion()},
		{Tool: createSearchTermsTool(), Handler: a.handleSearchTerms()},
		{Tool: createGetTermTool(), Handler: a.handleGetTerm()},
		{Tool: createGenerateTermTool(), Handler: a.handleGenerateTerm()},
		{Tool: createExplainTermTool(), Handler: a.handleExplainTerm()},
		{Tool: createDeleteTermTool(), Handler: a.handleDeleteTerm()},
		{Tool: createResetCatalogTool(), Handler: a.handleResetCatalog()},
	}
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	a.MCPServer.AddTools(a.tools()...)
}

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("vibeterms MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleSearchTerms implements the search_terms tool
func (a *App) handleSearchTerms() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := models.Category(request.GetString("category", string(models.CategoryAll)))
		if category != models.CategoryAll && category != "" && !category.Valid() {
			return errorResult(fmt.Sprintf("Error: unknown category %q", category)), nil
		}
		query := strings.TrimSpace(request.GetString("query", ""))

		terms := a.Catalog.Search(category, query)
		return textResult(FormatTermList(terms, category, query)), nil
	}
}

// handleGetTerm implements the get_term tool
func (a *App) handleGetTerm() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil || id == "" {
			return errorResult("Error: id parameter is required"), nil
		}

		term, ok := a.Catalog.Get(id)
		if !ok {
			return errorResult(fmt.Sprintf("Term not found: %s", id)), nil
		}
		return textResult(FormatTerm(term)), nil
	}
}

// handleGenerateTerm implements the generate_term tool
func (a *App) handleGenerateTerm() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyword, err := request.RequireString("keyword")
		if err != nil || strings.TrimSpace(keyword) == "" {
			return errorResult("Error: keyword parameter is required"), nil
		}

		res := a.GenerateTerm(ctx, keyword)
		if !res.OK() {
			a.Logger.Warn().Str("keyword", keyword).Str("failure", string(res.Failure)).Msg("generate_term failed")
			return errorResult(GenerateFailureMessage(res.Failure)), nil
		}
		return textResult(FormatTerm(*res.Term)), nil
	}
}

// handleExplainTerm implements the explain_term tool
func (a *App) handleExplainTerm() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil || id == "" {
			return errorResult("Error: id parameter is required"), nil
		}

		res, found := a.ExplainTerm(ctx, id, request.GetString("question", ""))
		if !found {
			return errorResult(fmt.Sprintf("Term not found: %s", id)), nil
		}
		if !res.OK() {
			return errorResult(res.Text), nil
		}
		return textResult(res.Text), nil
	}
}

// handleDeleteTerm implements the delete_term tool
func (a *App) handleDeleteTerm() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil || id == "" {
			return errorResult("Error: id parameter is required"), nil
		}

		a.Catalog.DeleteTerm(ctx, id)
		return textResult(fmt.Sprintf("Deleted term %s (%d terms remain)", id, len(a.Catalog.AllTerms()))), nil
	}
}

// handleResetCatalog implements the reset_catalog tool
func (a *App) handleResetCatalog() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		a.Catalog.Reset(ctx)
		return textResult(fmt.Sprintf("Catalog reset to %d built-in terms", len(a.Catalog.AllTerms()))), nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
