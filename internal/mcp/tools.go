// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/mmdump"
)

// ─── list_channels ────────────────────────────────────────────────────────────

func (s *Server) toolListChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_channels",
		mcplib.WithDescription(`List channels of the Mattermost workspace.

By default only the public channels of the configured team are returned.
Set include_private to true to list every channel the account can see
across all teams, including private channels and direct messages.`),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of channels to return per page (1–200, default 100)"),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Zero-based page number (default 0)"),
		),
		mcplib.WithBoolean("include_private",
			mcplib.Description("Include private and direct channels visible to the account (default false)"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListChannels}
}

func (s *Server) handleListChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var (
		limit          = intArg(req, "limit", 0) // 0: session default
		page           = intArg(req, "page", 0)
		includePrivate = boolArg(req, "include_private", false)
	)

	channels, err := s.sess.ListChannels(ctx, limit, page, includePrivate)
	if err != nil {
		return resultErr(fmt.Errorf("list_channels: %w", err)), nil
	}

	result, err := resultJSON(channels)
	if err != nil {
		return resultErr(fmt.Errorf("list_channels: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_channel_history ──────────────────────────────────────────────────────

func (s *Server) toolGetChannelHistory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_channel_history",
		mcplib.WithDescription(`Retrieve the message history of a channel.

With a positive limit, one page of history is fetched and has_next/has_prev
report whether more pages exist in either direction.  With limit absent or
zero, the full history is fetched by following the pagination cursor, and
has_next/has_prev are omitted.

since_date and before_date accept a calendar date (2025-12-18) or a full
timestamp, interpreted as UTC; together they select the half-open interval
[since, before).  before_post_id and after_post_id position the fetch
relative to a known post.`),
		mcplib.WithString("channel_id",
			mcplib.Description("The channel ID to read messages from"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Number of messages per page; 0 or absent fetches the complete history"),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Zero-based page number (default 0); only used with a positive limit"),
		),
		mcplib.WithString("since_date",
			mcplib.Description("Return only messages created at or after this date/timestamp (UTC)"),
		),
		mcplib.WithString("before_date",
			mcplib.Description("Return only messages created strictly before this date/timestamp (UTC)"),
		),
		mcplib.WithString("before_post_id",
			mcplib.Description("Return only messages before this post ID"),
		),
		mcplib.WithString("after_post_id",
			mcplib.Description("Return only messages after this post ID"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetChannelHistory}
}

// historyResponse is the payload of a successful get_channel_history call.
// HasNext and HasPrev are only present for the bounded, single-page path:
// the unbounded path has exhausted the cursor by construction.
type historyResponse struct {
	Posts   []mmdump.Post `json:"posts"`
	HasNext *bool         `json:"has_next,omitempty"`
	HasPrev *bool         `json:"has_prev,omitempty"`
}

func (s *Server) handleGetChannelHistory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("get_channel_history: channel_id is required")), nil
	}

	limit := intArg(req, "limit", 0)
	page := intArg(req, "page", 0)
	sinceDate, _ := stringArg(req, "since_date")
	beforeDate, _ := stringArg(req, "before_date")
	beforeID, _ := stringArg(req, "before_post_id")
	afterID, _ := stringArg(req, "after_post_id")

	filters, err := mmdump.ResolveFilters(sinceDate, beforeDate, beforeID, afterID)
	if err != nil {
		return resultErr(fmt.Errorf("get_channel_history: %w", err)), nil
	}

	var rsp historyResponse
	if limit > 0 {
		pl, err := s.sess.GetPostsPage(ctx, channelID, limit, page, filters)
		if err != nil {
			return resultErr(fmt.Errorf("get_channel_history: %w", err)), nil
		}
		hasNext, hasPrev := pl.NextPostID != "", pl.PrevPostID != ""
		rsp.HasNext, rsp.HasPrev = &hasNext, &hasPrev
		rsp.Posts, err = mmdump.NormalizePosts(channelID, pl, filters)
		if err != nil {
			return resultErr(fmt.Errorf("get_channel_history: %w", err)), nil
		}
	} else {
		pl, err := s.sess.GetAllPosts(ctx, channelID, filters)
		if err != nil {
			return resultErr(fmt.Errorf("get_channel_history: %w", err)), nil
		}
		rsp.Posts, err = mmdump.NormalizePosts(channelID, pl, filters)
		if err != nil {
			return resultErr(fmt.Errorf("get_channel_history: %w", err)), nil
		}
	}

	result, err := resultJSON(rsp)
	if err != nil {
		return resultErr(fmt.Errorf("get_channel_history: serialise: %w", err)), nil
	}
	return result, nil
}
