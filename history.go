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

package mmdump

// In this file: history retrieval, both the single-page fetch and the
// auto-pagination accumulator.

import (
	"context"
	"errors"
	"time"

	"github.com/rusq/mmdump/internal/mmclient"
)

// ErrNoChannel is returned when the channel ID argument is empty.
var ErrNoChannel = errors.New("channel ID is empty")

// GetPostsPage fetches a single page of channel history.  Exactly one
// remote call is issued; limit and page pass through to the API unchanged
// (page is zero-based).  Errors from the API client propagate unmodified.
func (s *Session) GetPostsPage(ctx context.Context, channelID string, limit, page int, f Filters) (*mmclient.PostList, error) {
	if channelID == "" {
		return nil, ErrNoChannel
	}
	return s.client.GetPostsForChannel(ctx, channelID, page, limit, f.postOptions())
}

// GetAllPosts fetches the complete channel history by following the
// forward cursor.  The initial cursor is the caller-supplied after-post-id
// filter, if any.  Pages are fetched strictly sequentially: each page's
// cursor depends on the previous response.
//
// The merged result has a duplicate-free order sequence; if the remote
// store returns the same identifier twice, the later map entry wins but the
// identifier is not appended again.  The returned PostList carries no
// cursors: by construction they are exhausted.
//
// The loop terminates when the response has no next_post_id, or when a
// page comes back empty while still advertising a cursor.  If the cursor
// never terminates, the request fails with *PageLimitError once the
// configured page cap is reached; no partial results are returned.
func (s *Session) GetAllPosts(ctx context.Context, channelID string, f Filters) (*mmclient.PostList, error) {
	if channelID == "" {
		return nil, ErrNoChannel
	}

	var (
		acc = &mmclient.PostList{
			Posts: make(map[string]mmclient.Post),
		}
		seen       = make(map[string]struct{})
		opt        = f.postOptions()
		fetchStart = time.Now()
	)
	for page := 0; ; page++ {
		if page >= s.cfg.limits.MaxPages {
			return nil, &PageLimitError{ChannelID: channelID, Pages: page}
		}

		pl, err := s.client.GetPostsForChannel(ctx, channelID, 0, s.cfg.limits.Request.Posts, opt)
		if err != nil {
			return nil, err
		}

		for _, id := range pl.Order {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			acc.Order = append(acc.Order, id)
		}
		for id, p := range pl.Posts {
			acc.Posts[id] = p
		}

		s.log.DebugContext(ctx, "posts page fetched",
			"channel", channelID,
			"page", page+1,
			"fetched", len(pl.Order),
			"total", len(acc.Order),
			"elapsed", time.Since(fetchStart),
		)

		if pl.NextPostID == "" {
			break
		}
		if len(pl.Order) == 0 {
			// guard against a remote that returns a live cursor with zero
			// results.
			s.log.WarnContext(ctx, "empty page with a live cursor, stopping",
				"channel", channelID, "cursor", pl.NextPostID)
			break
		}
		opt.AfterID = pl.NextPostID
	}

	s.log.InfoContext(ctx, "history fetch complete", "channel", channelID, "total", len(acc.Order))
	return acc, nil
}
