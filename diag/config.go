// Package diag provides the ambient logging and configuration used by
// cmd/webidllint and cmd/webidl-repl: a parser.UserInterface implementation
// backed by the standard library log package, and an optional TOML config
// file loader.
package diag

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional .webidllint.toml file's contents. CLI flags only
// need to override what this sets, not fully specify behavior.
type Config struct {
	IgnoreLegacy bool `toml:"ignore_legacy"`
	Quiet        bool `toml:"quiet"`
}

// LoadConfig reads and decodes path. A missing file is not an error: it
// returns the zero Config, since every field already defaults to the
// permissive behavior.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
