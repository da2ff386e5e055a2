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

// Package mmdump implements the Mattermost history retrieval engine: it
// turns the remote, cursor-paginated posts API into time-windowed, ordered
// result sets, and exposes channel listings for both the public and the
// all-visible channel scopes.
//
// All fetching methods accept a context and run strictly sequentially: each
// page's cursor depends on the previous page's response, so there is no
// concurrent fan-out.  A Session holds no mutable state between calls.
package mmdump

// In this file: Session initialisation and the API client interface.

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rusq/mmdump/internal/mmclient"
	"github.com/rusq/mmdump/internal/network"
)

//go:generate mockgen -source mmdump.go -destination clienter_mock_test.go -package mmdump -mock_names clienter=mockClienter

// clienter is the subset of the Mattermost Web API client used by the
// Session, extracted for mocking in tests.  Its retry, backoff and
// authentication behaviour belongs to the implementation
// ([mmclient.Client]), not to this package.
type clienter interface {
	// GetPublicChannels returns one page of public channels of the given
	// team.
	GetPublicChannels(ctx context.Context, teamID string, page, perPage int) (*mmclient.ChannelList, error)
	// GetMyChannels returns one page of channels visible to the
	// authenticated user across all teams, including private and direct
	// channels.
	GetMyChannels(ctx context.Context, page, perPage int) (*mmclient.ChannelList, error)
	// GetPostsForChannel returns one page of posts for the channel.
	GetPostsForChannel(ctx context.Context, channelID string, page, perPage int, opt mmclient.PostOptions) (*mmclient.PostList, error)
}

// Session provides access to the channel and history retrieval operations.
// Zero value is not usable, must be initialised with New.
type Session struct {
	client clienter
	log    *slog.Logger

	cfg config
}

// ErrNoClient is returned by New if the client is nil.
var ErrNoClient = errors.New("no client provided")

// Option is the signature of the option-setting function.
type Option func(*Session)

// WithLogger sets the logger for the session.  If not given, or if l is
// nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLimits sets the API limits for the session.  Invalid limits are
// ignored and the defaults remain in effect.
func WithLimits(l network.Limits) Option {
	return func(s *Session) {
		if l.Validate() == nil {
			s.cfg.limits = l
		}
	}
}

// WithTeam sets the team ID that the public channel listing operates on.
func WithTeam(teamID string) Option {
	return func(s *Session) {
		s.cfg.team = teamID
	}
}

// New creates a new Session over the given API client.
func New(cl clienter, opts ...Option) (*Session, error) {
	if cl == nil {
		return nil, ErrNoClient
	}
	s := &Session{
		client: cl,
		log:    slog.Default(),
		cfg:    defConfig,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
