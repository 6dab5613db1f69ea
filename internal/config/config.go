// Package config loads the optional flowreach TOML configuration file.
//
// Every field has a default, so running without a file behaves exactly like
// running with an empty one. Command-line flags take precedence over values
// loaded here; see internal/cli.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/flow"
	"github.com/matzehuels/flowreach/pkg/io"
)

// DefaultAddr is the listen address used by "flowreach serve".
const DefaultAddr = ":8080"

// Config is the decoded configuration file.
type Config struct {
	Engine Engine `toml:"engine"`
	Output Output `toml:"output"`
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
}

// Engine selects the traversal.
type Engine struct {
	Mode string `toml:"mode"`
}

// Output selects the report format.
type Output struct {
	Format string `toml:"format"`
}

// Server configures the HTTP API. Zero limits select the server defaults.
type Server struct {
	Addr          string        `toml:"addr"`
	MaxNodes      int           `toml:"max_nodes"`
	MaxEdges      int           `toml:"max_edges"`
	FrontierLimit int           `toml:"frontier_limit"`
	Timeout       time.Duration `toml:"timeout"`
}

// Log configures logging.
type Log struct {
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine: Engine{Mode: string(flow.ModeFrontier)},
		Output: Output{Format: io.FormatText},
		Server: Server{Addr: DefaultAddr},
	}
}

// Load reads and validates the file at path. Missing keys keep their
// defaults; unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text on top of [Default] and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := flow.ParseMode(c.Engine.Mode); err != nil {
		return err
	}
	if err := io.ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	for _, f := range []struct {
		name  string
		value int64
	}{
		{"server.max_nodes", int64(c.Server.MaxNodes)},
		{"server.max_edges", int64(c.Server.MaxEdges)},
		{"server.frontier_limit", int64(c.Server.FrontierLimit)},
		{"server.timeout", int64(c.Server.Timeout)},
	} {
		if f.value < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s cannot be negative", f.name)
		}
	}
	return nil
}
