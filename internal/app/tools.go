package app

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/vibeterms/internal/models"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the vibeterms server version and status. Use this to verify connectivity."),
	)
}

// createSearchTermsTool returns the search_terms tool definition
func createSearchTermsTool() mcp.Tool {
	categories := append([]string{string(models.CategoryAll)}, models.CategoryValues()...)
	return mcp.NewTool("search_terms",
		mcp.WithDescription("Search the AI builder glossary. Matches the query against word, definition, simple explanation and tags, optionally within one category."),
		mcp.WithString("category",
			mcp.Description("Category filter (default: ALL)"),
			mcp.Enum(categories...),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive search text (default: empty, matches everything)"),
		),
	)
}

// createGetTermTool returns the get_term tool definition
func createGetTermTool() mcp.Tool {
	return mcp.NewTool("get_term",
		mcp.WithDescription("Get one glossary term card by id, including analogy and example prompt."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Term id as returned by search_terms"),
		),
	)
}

// createGenerateTermTool returns the generate_term tool definition
func createGenerateTermTool() mcp.Tool {
	return mcp.NewTool("generate_term",
		mcp.WithDescription("Ask Gemini to write a beginner-friendly term card for a keyword and add it to the glossary."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Development or AI term to explain (e.g., 'Docker', 'RAG')"),
		),
	)
}

// createExplainTermTool returns the explain_term tool definition
func createExplainTermTool() mcp.Tool {
	return mcp.NewTool("explain_term",
		mcp.WithDescription("Ask the AI tutor about a term. Without a question it returns a usage example, a common beginner mistake and a prompt template."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Term id"),
		),
		mcp.WithString("question",
			mcp.Description("Optional follow-up question about the term"),
		),
	)
}

// createDeleteTermTool returns the delete_term tool definition
func createDeleteTermTool() mcp.Tool {
	return mcp.NewTool("delete_term",
		mcp.WithDescription("Remove a term from the glossary. Generated terms are deleted; built-in terms are hidden until reset_catalog."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Term id"),
		),
	)
}

// createResetCatalogTool returns the reset_catalog tool definition
func createResetCatalogTool() mcp.Tool {
	return mcp.NewTool("reset_catalog",
		mcp.WithDescription("Restore the glossary to its built-in state. Deletes all generated terms and unhides every built-in term."),
	)
}
