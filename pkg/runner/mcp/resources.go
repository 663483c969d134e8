package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
)

const (
	catalogsURI       = "folio://catalogs"
	catalogPrefix     = "folio://catalogs/"
	recordPrefix      = "folio://records/"
	catalogTemplate   = catalogPrefix + "{name}"
	recordURITemplate = recordPrefix + "{name}/{id}"
)

func registerResources(srv *server.MCPServer, svc *app.Service) {
	srv.AddResource(mcp.NewResource(
		catalogsURI,
		"Catalogs",
		mcp.WithResourceDescription("Every portfolio catalog with its size."),
		mcp.WithMIMEType("application/json"),
	), catalogsResource(svc))

	srv.AddResourceTemplate(mcp.NewResourceTemplate(
		catalogTemplate,
		"Catalog Records",
		mcp.WithTemplateDescription("Every record of a catalog, in display order."),
		mcp.WithTemplateMIMEType("application/json"),
	), catalogResource(svc))

	srv.AddResourceTemplate(mcp.NewResourceTemplate(
		recordURITemplate,
		"Record Details",
		mcp.WithTemplateDescription("The full document of a single record."),
		mcp.WithTemplateMIMEType("application/json"),
	), recordResource(svc))
}

func catalogsResource(svc *app.Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		infos, err := svc.Catalogs(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"catalogs": infos,
			"count":    len(infos),
		})
	}
}

func catalogResource(svc *app.Service) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		parts := uriParts(request, catalogPrefix, "name")
		if len(parts) != 1 || parts[0] == "" {
			return nil, fmt.Errorf("catalog name is required")
		}
		res, err := svc.Query(ctx, parts[0], catalog.Query{Expanded: true})
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"catalog": res.Catalog,
			"count":   len(res.Items),
			"items":   res.Items,
		})
	}
}

func recordResource(svc *app.Service) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		parts := uriParts(request, recordPrefix, "name", "id")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("catalog name and record id are required")
		}
		d, err := svc.Record(ctx, parts[0], parts[1])
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"record": d,
		})
	}
}

// uriParts reads the template arguments, falling back to splitting the URI
// after prefix when the server did not bind them.
func uriParts(request mcp.ReadResourceRequest, prefix string, keys ...string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		v := argString(request.Params.Arguments[k])
		if v == "" {
			break
		}
		out = append(out, v)
	}
	if len(out) == len(keys) {
		return out
	}
	rest := strings.TrimPrefix(request.Params.URI, prefix)
	if rest == request.Params.URI {
		return nil
	}
	return strings.Split(rest, "/")
}

func argString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
