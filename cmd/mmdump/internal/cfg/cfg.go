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

// Package cfg resolves the process configuration once at start-up, merging
// four layers in ascending precedence: the default config file, the local
// config file, environment variables, and command line flags.  The result
// is an explicit Config value that is passed to every component that needs
// it; nothing reads configuration ambiently after start-up.
package cfg

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rusq/osenv/v2"

	"github.com/rusq/mmdump/internal/mcp"
	"github.com/rusq/mmdump/internal/network"
)

// localConfigFile is the per-directory config file name.
const localConfigFile = "mmdump.toml"

// Config is the resolved process configuration.
type Config struct {
	// BaseURL is the Mattermost instance URL, i.e. https://mm.example.com.
	BaseURL string `toml:"base_url"`
	// Token is the personal access or bot token.
	Token string `toml:"token"`
	// Team is the team ID used by the public channel listing.
	Team string `toml:"team"`
	// Transport is the MCP transport, "stdio" or "http".
	Transport string `toml:"transport"`
	// Addr is the listen address for the http transport.
	Addr string `toml:"addr"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
	// JSONLog switches the log output to JSON.
	JSONLog bool `toml:"json_log"`

	// Limits overrides the API limits.
	Limits network.Limits `toml:"limits"`

	// Monitoring is consumed by an external scheduler, not by this
	// process; it is carried here so that one file configures both.
	Monitoring Monitoring `toml:"monitoring"`
}

// Monitoring is the monitoring schedule configuration for the external
// scheduler.
type Monitoring struct {
	// Schedule is a cron expression.
	Schedule string `toml:"schedule"`
	// Channels is the list of channel IDs to monitor.
	Channels []string `toml:"channels"`
	// Topics is the list of topics of interest.
	Topics []string `toml:"topics"`
}

// def is the built-in configuration, the lowest-precedence layer.
var def = Config{
	Transport: string(mcp.TransportStdio),
	Addr:      "127.0.0.1:8483",
	Limits:    network.DefLimits,
}

// ErrRequired is returned when a mandatory parameter is missing after all
// layers are merged.
var ErrRequired = errors.New("parameter is required")

// Load resolves the configuration from all four layers.  args are the
// command line arguments without the program name.  output receives usage
// text (pass os.Stderr).
func Load(args []string, output *os.File) (Config, error) {
	c := def

	// config files, lowest precedence first.
	for _, f := range []string{defaultConfigPath(), localConfigFile} {
		if f == "" {
			continue
		}
		if err := loadFile(&c, f); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("mmdump", flag.ContinueOnError)
	fs.SetOutput(output)
	// environment values become flag defaults, so that flags given on the
	// command line take precedence over the environment, which in turn
	// takes precedence over the files.
	fs.StringVar(&c.BaseURL, "url", osenv.Value("MM_URL", c.BaseURL), "Mattermost instance `URL`, i.e. https://mm.example.com")
	fs.StringVar(&c.Token, "token", osenv.Secret("MM_TOKEN", c.Token), "Mattermost access `token`\n(environment: MM_TOKEN)")
	fs.StringVar(&c.Team, "team", osenv.Value("MM_TEAM_ID", c.Team), "team `ID` for the public channel listing")
	fs.StringVar(&c.Transport, "transport", osenv.Value("MM_TRANSPORT", c.Transport), "MCP `transport`: stdio or http")
	fs.StringVar(&c.Addr, "addr", osenv.Value("MM_ADDR", c.Addr), "listen `address` for the http transport")
	fs.BoolVar(&c.Verbose, "v", osenv.Value("DEBUG", c.Verbose), "verbose messages")
	fs.BoolVar(&c.JSONLog, "json-log", c.JSONLog, "log in JSON format")
	fs.IntVar(&c.Limits.MaxPages, "max-pages", c.Limits.MaxPages, "maximum `number` of pages to fetch for one unbounded history request")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL: %w (flag -url, environment MM_URL)", ErrRequired)
	}
	if c.Token == "" {
		return fmt.Errorf("token: %w (flag -token, environment MM_TOKEN)", ErrRequired)
	}
	switch mcp.Transport(c.Transport) {
	case mcp.TransportStdio, mcp.TransportHTTP:
	default:
		return fmt.Errorf("unknown transport: %q", c.Transport)
	}
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	return nil
}

// loadFile merges the TOML file at path into c.  A missing file is not an
// error.
func loadFile(c *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// defaultConfigPath returns the path of the user-level config file, or an
// empty string if the user config directory can not be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mmdump", localConfigFile)
}
