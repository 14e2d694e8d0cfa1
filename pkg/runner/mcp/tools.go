package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/moodlog/pkg/entry"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCreateEntryTool(srv, svc)
	registerUpdateEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerToggleFavoriteTool(srv, svc)
	registerAddPhotosTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerListFavoritesTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerWeeklyCountsTool(srv, svc)
	registerGaugeTool(srv, svc)
	registerChartTool(srv, svc)
	registerInsightsTool(srv, svc)
	registerCalendarTool(srv, svc)
}

func registerCreateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_entry",
		mcp.WithDescription("Record a mood with an optional note and activities."),
		mcp.WithString("mood",
			mcp.Description("Mood name or id (0-4). Defaults to the last mood used."),
		),
		mcp.WithString("note",
			mcp.Description("Free text note."),
		),
		mcp.WithArray("activities",
			mcp.Description("Activity labels or ids."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("timestamp",
			mcp.Description("Optional RFC3339 timestamp or YYYY-MM-DD date; defaults to now."),
		),
		mcp.WithBoolean("favorite",
			mcp.Description("Mark the entry as a favorite."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood       string   `json:"mood"`
			Note       string   `json:"note"`
			Activities []string `json:"activities"`
			Timestamp  string   `json:"timestamp"`
			Favorite   bool     `json:"favorite"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		at, err := parseOptionalTime(args.Timestamp)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.CreateEntry(ctx, CreateEntryOptions{
			Mood:       args.Mood,
			Note:       args.Note,
			Activities: args.Activities,
			At:         at,
			Favorite:   args.Favorite,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_entry",
		mcp.WithDescription("Change the mood, note, activities or time of an entry. Omitted fields are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier or unique prefix."),
		),
		mcp.WithString("mood", mcp.Description("New mood name or id.")),
		mcp.WithString("note", mcp.Description("New note.")),
		mcp.WithArray("activities",
			mcp.Description("Replacement activity labels or ids."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("timestamp", mcp.Description("New RFC3339 timestamp or YYYY-MM-DD date.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID         string    `json:"id"`
			Mood       *string   `json:"mood"`
			Note       *string   `json:"note"`
			Activities *[]string `json:"activities"`
			Timestamp  string    `json:"timestamp"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		at, err := parseOptionalTime(args.Timestamp)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.UpdateEntry(ctx, UpdateEntryOptions{
			ID:         args.ID,
			Mood:       args.Mood,
			Note:       args.Note,
			Activities: args.Activities,
			At:         at,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry with its mood records, favorite and media files."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"id": id, "deleted": true})
	})
}

func registerToggleFavoriteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_favorite",
		mcp.WithDescription("Add an entry to favorites, or remove it if it already is one."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleFavorite(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddPhotosTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_photos",
		mcp.WithDescription("Attach stored image files to an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
		mcp.WithArray("uris",
			mcp.Required(),
			mcp.Description("Image file uris."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID   string   `json:"id"`
			URIs []string `json:"uris"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.AddPhotos(ctx, args.ID, args.URIs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List the journal entries of a month, newest first."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM; defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month, err := parseMonth(request.GetString("month", ""), svc.now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		entries := svc.ListEntries(ctx, month)
		return toJSONResult(map[string]any{
			"month":   month.Format(monthLayout),
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerListFavoritesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_favorites",
		mcp.WithDescription("List favorite entries."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		favorites := svc.ListFavorites(ctx)
		return toJSONResult(map[string]any{
			"entries": favorites,
			"count":   len(favorites),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by date text (02 January 2006), mood, note or activity label."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text to look for. Blank lists the month."),
		),
		mcp.WithString("month",
			mcp.Description("Month used for a blank query, as YYYY-MM."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results."),
			mcp.Min(1),
			mcp.Max(500),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		limit := request.GetInt("limit", 50)
		month, err := parseMonth(request.GetString("month", ""), svc.now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		results := svc.SearchEntries(ctx, query, month, limit)
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerWeeklyCountsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"weekly_mood_counts",
		mcp.WithDescription("Count the five moods over the Monday-first week containing a date."),
		mcp.WithString("date", mcp.Description("Reference date as YYYY-MM-DD; defaults to today.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := parseDay(request.GetString("date", ""), svc.now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(svc.WeeklyCounts(ctx, ref))
	})
}

func registerGaugeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"mood_gauge",
		mcp.WithDescription("Half-circle gauge segments for the Monday-first week containing a date."),
		mcp.WithString("date", mcp.Description("Reference date as YYYY-MM-DD; defaults to today.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := parseDay(request.GetString("date", ""), svc.now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"segments": svc.Gauge(ctx, ref)})
	})
}

func registerChartTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"weekly_chart",
		mcp.WithDescription("Average mood and dominant colour for each day of the week containing a date."),
		mcp.WithString("date", mcp.Description("Reference date as YYYY-MM-DD; defaults to today.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := parseDay(request.GetString("date", ""), svc.now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"days": svc.Chart(ctx, ref)})
	})
}

func registerInsightsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"insights",
		mcp.WithDescription("Dominant mood, best and worst day, and mood distribution."),
		mcp.WithString("date", mcp.Description("Reference date as YYYY-MM-DD; defaults to today.")),
		mcp.WithString("period",
			mcp.Description("Summarize the month or the week containing the date."),
			mcp.Enum("month", "week"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := parseDay(request.GetString("date", ""), svc.now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		insights, err := svc.Insights(ctx, ref, request.GetString("period", "month"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(insights)
	})
}

func registerCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"calendar",
		mcp.WithDescription("Monday-first month grid with the mood colours of each day."),
		mcp.WithString("month", mcp.Description("Month as YYYY-MM; defaults to the current month.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month, err := parseMonth(request.GetString("month", ""), svc.now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(svc.Calendar(ctx, month))
	})
}

func parseOptionalTime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := entry.ParseTime(raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(dayLayout, raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q", raw)
	}
	return &t, nil
}

func parseDay(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.ParseInLocation(dayLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
	}
	return t, nil
}

func parseMonth(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.ParseInLocation(monthLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", raw)
	}
	return t, nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
