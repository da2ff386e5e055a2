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

package network

// In this file: validated limits configuration.

import (
	"github.com/go-playground/validator/v10"
)

// Limits contains the per-session API limits.
type Limits struct {
	// PerMinute is the base request rate, events per minute.  The
	// Mattermost server's default per-user limit is 10 requests per second.
	PerMinute int `toml:"per_minute" validate:"gte=1,lte=6000"`
	// Burst is the limiter burst, requests per second.
	Burst uint `toml:"burst" validate:"gte=1"`
	// Boost is added to PerMinute, to raise or lower the effective rate.
	Boost int `toml:"boost"`
	// Retries is the number of attempts on a rate-limited or transient
	// error.
	Retries int `toml:"retries" validate:"gte=1,lte=10"`
	// MaxPages caps the number of pages the auto-pagination accumulator
	// fetches for a single request, guarding against a cyclic or
	// non-terminating remote cursor.
	MaxPages int `toml:"max_pages" validate:"gte=1,lte=100000"`
	// Request contains the per-request page sizes.
	Request RequestLimit `toml:"request"`
}

// RequestLimit contains the page sizes for one API request.  The server
// caps both at 200.
type RequestLimit struct {
	Channels int `toml:"channels" validate:"gte=1,lte=200"`
	Posts    int `toml:"posts" validate:"gte=1,lte=200"`
}

// DefLimits are the default limits.
var DefLimits = Limits{
	PerMinute: 600,
	Burst:     1,
	Retries:   defNumAttempts,
	MaxPages:  500,
	Request: RequestLimit{
		Channels: 100,
		Posts:    200,
	},
}

var validate = validator.New()

// Validate checks the limits.
func (o *Limits) Validate() error {
	return validate.Struct(o)
}

// Apply replaces the limits with other, if other is valid.
func (o *Limits) Apply(other Limits) error {
	if err := other.Validate(); err != nil {
		return err
	}
	*o = other
	return nil
}
