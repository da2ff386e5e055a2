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

// Command mmdump runs the Mattermost MCP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/rusq/mmdump"
	"github.com/rusq/mmdump/cmd/mmdump/internal/cfg"
	"github.com/rusq/mmdump/internal/mcp"
	"github.com/rusq/mmdump/internal/mmclient"
)

var build = "dev"

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience
// trying to create .env file with the notepad as it will battle for having
// the "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func main() {
	loadSecrets(secrets)

	c, err := cfg.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	initLog(c)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, c); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c cfg.Config) error {
	lg := slog.Default()
	lg.InfoContext(ctx, "mmdump starting", "build", build, "url", c.BaseURL, "transport", c.Transport)

	client, err := mmclient.New(c.BaseURL, c.Token, mmclient.WithLimits(c.Limits))
	if err != nil {
		return fmt.Errorf("initialising the API client: %w", err)
	}
	sess, err := mmdump.New(client,
		mmdump.WithTeam(c.Team),
		mmdump.WithLimits(c.Limits),
		mmdump.WithLogger(lg),
	)
	if err != nil {
		return fmt.Errorf("initialising the session: %w", err)
	}

	srv := mcp.New(sess, lg)
	switch mcp.Transport(c.Transport) {
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, c.Addr)
	default:
		return srv.ServeStdio(ctx)
	}
}

// initLog configures the default logger according to the configuration.
// The MCP stdio transport owns stdout, so logs always go to stderr.
func initLog(c cfg.Config) {
	lvl := slog.LevelInfo
	if c.Verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if c.JSONLog {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

// loadSecrets load secrets from the files in the list.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
