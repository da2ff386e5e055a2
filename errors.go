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

// In this file: the error taxonomy of the retrieval engine.  Transport
// errors from the API client are not defined here: they propagate with
// their original message and are never reclassified.

import (
	"encoding/json"
	"fmt"
)

// DateFormatError is returned when a supplied date string does not parse.
// It carries the argument name and the offending value so that the caller
// can report them verbatim.
type DateFormatError struct {
	Field string // argument name, i.e. "since_date"
	Value string // the value as supplied
	Err   error  // underlying parse error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date format in %s: %q", e.Field, e.Value)
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when the upstream response is missing
// an expected field, i.e. the channel collection.  Raw holds the response
// body as received, for diagnosis.
type MalformedResponseError struct {
	Op  string // operation that received the response
	Raw json.RawMessage
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed upstream response: %s", e.Op, string(e.Raw))
}

// InconsistentPageError is returned when a page's order sequence references
// a post identifier that has no entry in the page's post map.  This is an
// upstream contract violation and fails the whole request.
type InconsistentPageError struct {
	ChannelID string
	PostID    string
}

func (e *InconsistentPageError) Error() string {
	return fmt.Sprintf("inconsistent page data in channel %s: post %q is in the order sequence but not in the post map", e.ChannelID, e.PostID)
}

// PageLimitError is returned when the auto-pagination accumulator hits the
// configured page cap before the upstream cursor is exhausted.  No partial
// results are returned.
type PageLimitError struct {
	ChannelID string
	Pages     int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("channel %s: pagination limit of %d pages exceeded, remote cursor did not terminate", e.ChannelID, e.Pages)
}
