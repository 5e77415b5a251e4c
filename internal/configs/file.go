package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// loadFile overlays the keys present in a TOML file onto cfg.
func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in config file %s", undecoded[0].String(), path)
	}
	return nil
}
