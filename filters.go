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

// In this file: resolution of user-supplied date strings and post-id
// cursors into the Filters value the retrieval engine operates on.

import (
	"time"

	"github.com/rusq/mmdump/internal/mmclient"
)

// Filters is the normalised filter set for a history request.  Since and
// Before form the half-open interval [Since, Before).  Since translates to
// the API's native "since" parameter; Before has no server-side equivalent
// and is applied by the normaliser after the fetch.  Cursors are opaque:
// the remote store is authoritative about their format.
type Filters struct {
	Since    time.Time // inclusive lower bound, server-side
	Before   time.Time // exclusive upper bound, client-side only
	AfterID  string    // return posts after this post ID
	BeforeID string    // return posts before this post ID
}

// dateLayouts are the accepted date string formats.  Calendar dates are
// interpreted as midnight UTC.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ResolveFilters parses the optional date strings and cursor strings into a
// Filters value.  An unparseable date fails with *DateFormatError; empty
// strings mean "no filter".
func ResolveFilters(sinceDate, beforeDate, beforePostID, afterPostID string) (Filters, error) {
	var f Filters
	if sinceDate != "" {
		t, err := parseDate("since_date", sinceDate)
		if err != nil {
			return Filters{}, err
		}
		f.Since = t
	}
	if beforeDate != "" {
		t, err := parseDate("before_date", beforeDate)
		if err != nil {
			return Filters{}, err
		}
		f.Before = t
	}
	f.BeforeID = beforePostID
	f.AfterID = afterPostID
	return f, nil
}

// parseDate tries each accepted layout in order.
func parseDate(field, value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &DateFormatError{Field: field, Value: value, Err: firstErr}
}

// postOptions converts the server-side subset of the filters into API call
// options.  Before is deliberately not mapped: the posts API has no upper
// bound time parameter.
func (f Filters) postOptions() mmclient.PostOptions {
	var opt mmclient.PostOptions
	if !f.Since.IsZero() {
		opt.Since = f.Since.UnixMilli()
	}
	opt.AfterID = f.AfterID
	opt.BeforeID = f.BeforeID
	return opt
}
