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

// In this file: mmdump config.

import (
	"github.com/rusq/mmdump/internal/network"
)

// config is the option set for the Session.
type config struct {
	limits network.Limits
	team   string // team ID for the public channel listing
}

// defConfig is the default config used when initialising the Session.
var defConfig = config{
	limits: network.DefLimits,
}
