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

// In this file: conversion of the raw post map + order sequence into the
// flat, ordered display records.

import (
	"time"

	"github.com/rusq/mmdump/internal/mmclient"
)

// Post is the display record for a single message.  The creation instant is
// an ISO-8601 string; the raw epoch value is internal and does not appear
// here.
type Post struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Message    string `json:"message"`
	CreateAt   string `json:"create_at"`
	ReplyCount int    `json:"reply_count,omitempty"`
	RootID     string `json:"root_id,omitempty"`
}

// createAtLayout is ISO-8601 with millisecond precision, so that formatting
// is lossless with respect to the API's epoch-millisecond values.
const createAtLayout = "2006-01-02T15:04:05.000Z07:00"

// NormalizePosts resolves each identifier of the order sequence to its post
// and projects it into a display record, preserving order.  If a
// client-side Before filter is set, records whose creation instant is not
// strictly before it are dropped.  An identifier with no matching map entry
// fails the whole call with *InconsistentPageError.
func NormalizePosts(channelID string, pl *mmclient.PostList, f Filters) ([]Post, error) {
	posts := make([]Post, 0, len(pl.Order))
	for _, id := range pl.Order {
		p, ok := pl.Posts[id]
		if !ok {
			return nil, &InconsistentPageError{ChannelID: channelID, PostID: id}
		}
		if !f.Before.IsZero() && !time.UnixMilli(p.CreateAt).Before(f.Before) {
			continue
		}
		posts = append(posts, Post{
			ID:         p.ID,
			UserID:     p.UserID,
			Message:    p.Message,
			CreateAt:   formatCreateAt(p.CreateAt),
			ReplyCount: p.ReplyCount,
			RootID:     p.RootID,
		})
	}
	return posts, nil
}

// formatCreateAt renders an epoch-millisecond value as an ISO-8601 UTC
// string.
func formatCreateAt(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(createAtLayout)
}
