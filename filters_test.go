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

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/mmdump/internal/mmclient"
)

func TestResolveFilters(t *testing.T) {
	type args struct {
		sinceDate    string
		beforeDate   string
		beforePostID string
		afterPostID  string
	}
	tests := []struct {
		name    string
		args    args
		want    Filters
		wantErr bool
	}{
		{
			"all empty",
			args{},
			Filters{},
			false,
		},
		{
			"calendar date is midnight UTC",
			args{sinceDate: "2025-12-18"},
			Filters{Since: time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC)},
			false,
		},
		{
			"date with time",
			args{beforeDate: "2025-12-18T13:45:00"},
			Filters{Before: time.Date(2025, 12, 18, 13, 45, 0, 0, time.UTC)},
			false,
		},
		{
			"rfc3339 with offset",
			args{sinceDate: "2025-12-18T13:45:00+02:00"},
			Filters{Since: time.Date(2025, 12, 18, 13, 45, 0, 0, time.FixedZone("", 2*3600))},
			false,
		},
		{
			"both bounds",
			args{sinceDate: "2025-01-01", beforeDate: "2025-02-01"},
			Filters{
				Since:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				Before: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			false,
		},
		{
			"cursors pass through untouched",
			args{beforePostID: "post1", afterPostID: "post2"},
			Filters{BeforeID: "post1", AfterID: "post2"},
			false,
		},
		{
			"garbage since date",
			args{sinceDate: "yesterday"},
			Filters{},
			true,
		},
		{
			"garbage before date",
			args{beforeDate: "18/12/2025"},
			Filters{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFilters(tt.args.sinceDate, tt.args.beforeDate, tt.args.beforePostID, tt.args.afterPostID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolveFilters() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.want.Since.Equal(got.Since) || !tt.want.Before.Equal(got.Before) {
				t.Errorf("ResolveFilters() = %v, want %v", got, tt.want)
			}
			assert.Equal(t, tt.want.BeforeID, got.BeforeID)
			assert.Equal(t, tt.want.AfterID, got.AfterID)
		})
	}
}

func TestResolveFilters_errorDetail(t *testing.T) {
	_, err := ResolveFilters("", "not a date", "", "")
	require.Error(t, err)
	var dfe *DateFormatError
	require.True(t, errors.As(err, &dfe))
	assert.Equal(t, "before_date", dfe.Field)
	assert.Equal(t, "not a date", dfe.Value)
	assert.Error(t, dfe.Unwrap())
	assert.Contains(t, err.Error(), `"not a date"`)
}

func TestFilters_postOptions(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want mmclient.PostOptions
	}{
		{
			"zero filters, zero options",
			Filters{},
			mmclient.PostOptions{},
		},
		{
			"since converts to epoch millis",
			Filters{Since: time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC)},
			mmclient.PostOptions{Since: 1766016000000},
		},
		{
			"before is not a server-side parameter",
			Filters{Before: time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC)},
			mmclient.PostOptions{},
		},
		{
			"cursors map one to one",
			Filters{AfterID: "after1", BeforeID: "before1"},
			mmclient.PostOptions{AfterID: "after1", BeforeID: "before1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.postOptions())
		})
	}
}
