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

package mmclient

// In this file: wire types of the Mattermost Web API (v4).

import "encoding/json"

// Channel type values as returned by the API.
const (
	ChannelTypeOpen    = "O" // public channel
	ChannelTypePrivate = "P" // private channel
	ChannelTypeDirect  = "D" // direct message
	ChannelTypeGroup   = "G" // group message
)

// Channel is a Mattermost channel.
type Channel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Type          string `json:"type"`
	Purpose       string `json:"purpose"`
	Header        string `json:"header"`
	TotalMsgCount int64  `json:"total_msg_count"`
}

// ChannelList is the response of a channel listing call.  The channels
// endpoints return a bare JSON array; anything else leaves Channels nil and
// the raw body is retained so that the caller can report what the server
// actually sent.
type ChannelList struct {
	Channels []Channel

	raw json.RawMessage
}

// UnmarshalJSON never fails on an unexpected shape: the body is kept as-is
// and Channels stays nil for the caller to detect.
func (cl *ChannelList) UnmarshalJSON(data []byte) error {
	cl.raw = append(cl.raw[:0], data...)
	var channels []Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		cl.Channels = nil
		return nil
	}
	if channels == nil {
		// "null" body.
		channels = []Channel{}
	}
	cl.Channels = channels
	return nil
}

// Raw returns the response body as received from the server.
func (cl *ChannelList) Raw() json.RawMessage {
	return cl.raw
}

// Post is a single Mattermost post.  CreateAt is an epoch value in
// milliseconds.
type Post struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Message    string `json:"message"`
	CreateAt   int64  `json:"create_at"`
	ReplyCount int    `json:"reply_count"`
	RootID     string `json:"root_id"`
}

// PostList is one page of channel history: a post map keyed by post ID, an
// order sequence that defines the display order, and the cursors.  The map
// itself carries no ordering guarantee.
type PostList struct {
	Order      []string        `json:"order"`
	Posts      map[string]Post `json:"posts"`
	NextPostID string          `json:"next_post_id"`
	PrevPostID string          `json:"prev_post_id"`
}

// PostOptions are the server-side history filters.  Since is an epoch value
// in milliseconds; BeforeID and AfterID are opaque post-id cursors.
type PostOptions struct {
	Since    int64
	BeforeID string
	AfterID  string
}
