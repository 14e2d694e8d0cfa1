package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerCollectionsResource(srv, svc)
	registerActivitiesResource(srv, svc)
	registerFavoritesResource(srv, svc)
	registerMonthTemplate(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerCollectionsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"moodlog://collections",
		"Collections",
		mcp.WithResourceDescription("Stored collections with record counts and health."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		metas := svc.Collections(ctx)
		payload := map[string]any{
			"collections": metas,
			"count":       len(metas),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerActivitiesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"moodlog://activities",
		"Activities",
		mcp.WithResourceDescription("The activity catalog entries can be tagged with."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"activities": svc.App.Activities(ctx),
			"moods":      svc.App.Moods(ctx),
		})
	})
}

func registerFavoritesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"moodlog://favorites",
		"Favorites",
		mcp.WithResourceDescription("Favorite journal entries."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		favorites := svc.ListFavorites(ctx)
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"entries": favorites,
			"count":   len(favorites),
		})
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"moodlog://months/{month}",
		"Month Entries",
		mcp.WithTemplateDescription("Journal entries written in a month (YYYY-MM)."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw := templateArgument(request, "month")
		if raw == "" {
			return nil, fmt.Errorf("month is required")
		}
		month, err := parseMonth(raw, svc.now())
		if err != nil {
			return nil, err
		}

		entries := svc.ListEntries(ctx, month)
		payload := map[string]any{
			"month":   month.Format(monthLayout),
			"count":   len(entries),
			"entries": entries,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"moodlog://entries/{id}",
		"Entry Details",
		mcp.WithTemplateDescription("Detailed information about a single journal entry."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArgument(request, "id")
		if id == "" {
			return nil, fmt.Errorf("entry id is required")
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entry": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArgument reads a URI template variable, which the server may
// deliver as a string or a single-element list.
func templateArgument(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
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
