package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
)

func registerTools(srv *server.MCPServer, svc *app.Service) {
	srv.AddTool(listCatalogsTool(), listCatalogsHandler(svc))
	srv.AddTool(searchCatalogTool(), searchCatalogHandler(svc))
	srv.AddTool(getRecordTool(), getRecordHandler(svc))
	srv.AddTool(listFacetsTool(), listFacetsHandler(svc))
}

func catalogParam() mcp.ToolOption {
	return mcp.WithString("catalog",
		mcp.Required(),
		mcp.Description("Catalog name."),
		mcp.Enum(catalog.Names()...),
	)
}

func listCatalogsTool() mcp.Tool {
	return mcp.NewTool(
		"list_catalogs",
		mcp.WithDescription("List the portfolio catalogs with their sizes and page sizes."),
	)
}

func listCatalogsHandler(svc *app.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		infos, err := svc.Catalogs(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"catalogs": infos,
			"count":    len(infos),
		})
	}
}

func searchCatalogTool() mcp.Tool {
	return mcp.NewTool(
		"search_catalog",
		mcp.WithDescription("Filter a catalog by search text and facet, returning the visible page."),
		catalogParam(),
		mcp.WithString("query",
			mcp.Description("Case-insensitive search text matched against the searchable fields."),
		),
		mcp.WithString("facet",
			mcp.Description("Facet value to match exactly, or ALL."),
		),
		mcp.WithBoolean("expanded",
			mcp.Description("Return every match instead of the first page."),
		),
	)
}

func searchCatalogHandler(svc *app.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("catalog")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		q := catalog.Query{
			Search:   request.GetString("query", ""),
			Facet:    request.GetString("facet", catalog.AllFacet),
			Expanded: request.GetBool("expanded", false),
		}
		res, err := svc.Query(ctx, name, q)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"catalog":  res.Catalog,
			"query":    res.Query,
			"total":    res.Total,
			"matched":  res.Matched,
			"showMore": res.ShowMore,
			"items":    res.Items,
		})
	}
}

func getRecordTool() mcp.Tool {
	return mcp.NewTool(
		"get_record",
		mcp.WithDescription("Fetch the full document of one record."),
		catalogParam(),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier."),
		),
	)
}

func getRecordHandler(svc *app.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("catalog")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		d, err := svc.Record(ctx, name, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(d)
	}
}

func listFacetsTool() mcp.Tool {
	return mcp.NewTool(
		"list_facets",
		mcp.WithDescription("List the facet values of a catalog, ALL first."),
		catalogParam(),
	)
}

func listFacetsHandler(svc *app.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("catalog")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		facets, err := svc.Facets(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"catalog": name,
			"facets":  facets,
		})
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
