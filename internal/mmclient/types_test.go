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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		wantChannels []Channel
		wantNil      bool
	}{
		{
			"array of channels",
			`[{"id": "c1", "name": "general", "type": "O"}]`,
			[]Channel{{ID: "c1", Name: "general", Type: "O"}},
			false,
		},
		{
			"empty array",
			`[]`,
			[]Channel{},
			false,
		},
		{
			"null body becomes an empty list",
			`null`,
			[]Channel{},
			false,
		},
		{
			"object body leaves channels nil",
			`{"id": "some.app_error", "message": "nope"}`,
			nil,
			true,
		},
		{
			"string body leaves channels nil",
			`"unexpected"`,
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cl ChannelList
			// decoding never fails, the shape is checked by the caller.
			require.NoError(t, json.Unmarshal([]byte(tt.data), &cl))
			if tt.wantNil {
				assert.Nil(t, cl.Channels)
			} else {
				assert.Equal(t, tt.wantChannels, cl.Channels)
			}
			// raw body is always retained verbatim.
			assert.Equal(t, tt.data, string(cl.Raw()))
		})
	}
}
