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

// In this file: channel listing over the two channel sources.

import (
	"context"

	"github.com/rusq/mmdump/internal/mmclient"
)

const (
	defChannelsPerPage = 100
	maxChannelsPerPage = 200
)

// Channel is the display record for a channel.
type Channel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Type          string `json:"type"`
	Purpose       string `json:"purpose,omitempty"`
	Header        string `json:"header,omitempty"`
	TotalMsgCount int64  `json:"total_msg_count"`
}

// channelSource is one of the two capability variants of the channel
// listing: the public team channels, or everything visible to the caller.
type channelSource interface {
	channels(ctx context.Context, page, perPage int) (*mmclient.ChannelList, error)
}

// publicChannels lists the public channels of a single team.
type publicChannels struct {
	cl   clienter
	team string
}

func (p publicChannels) channels(ctx context.Context, page, perPage int) (*mmclient.ChannelList, error) {
	return p.cl.GetPublicChannels(ctx, p.team, page, perPage)
}

// myChannels lists every channel visible to the authenticated user across
// all teams, including private and direct channels.
type myChannels struct {
	cl clienter
}

func (m myChannels) channels(ctx context.Context, page, perPage int) (*mmclient.ChannelList, error) {
	return m.cl.GetMyChannels(ctx, page, perPage)
}

// channelSource is the single place that maps the include-private flag onto
// a source variant.
func (s *Session) channelSource(includePrivate bool) channelSource {
	if includePrivate {
		return myChannels{cl: s.client}
	}
	return publicChannels{cl: s.client, team: s.cfg.team}
}

// ListChannels returns one page of channels.  limit is clamped to [1, 200],
// defaulting to 100; negative page values are treated as zero.  If the
// upstream response carries no channel collection, the call fails with
// *MalformedResponseError holding the raw response.
//
// When includePrivate is false, private and direct channels are filtered
// out regardless of what the upstream returned.
func (s *Session) ListChannels(ctx context.Context, limit, page int, includePrivate bool) ([]Channel, error) {
	if limit <= 0 {
		limit = defChannelsPerPage
	} else if limit > maxChannelsPerPage {
		limit = maxChannelsPerPage
	}
	if page < 0 {
		page = 0
	}

	cl, err := s.channelSource(includePrivate).channels(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	if cl.Channels == nil {
		return nil, &MalformedResponseError{Op: "list channels", Raw: cl.Raw()}
	}

	channels := make([]Channel, 0, len(cl.Channels))
	for _, c := range cl.Channels {
		if !includePrivate && c.Type != mmclient.ChannelTypeOpen {
			continue
		}
		channels = append(channels, Channel{
			ID:            c.ID,
			Name:          c.Name,
			DisplayName:   c.DisplayName,
			Type:          c.Type,
			Purpose:       c.Purpose,
			Header:        c.Header,
			TotalMsgCount: c.TotalMsgCount,
		})
	}

	s.log.DebugContext(ctx, "channels listed", "count", len(channels), "page", page, "private", includePrivate)
	return channels, nil
}
