package main

import (
	"errors"
	"os"

	"mvcc-go/index"

	"github.com/BurntSushi/toml"
)

// server config, loaded from a toml file
type Config struct {
	Addr              string `toml:"addr"`
	Index             string `toml:"index"`
	VacuumIntervalSec int    `toml:"vacuum_interval_sec"`
}

func defaultConfig() *Config {
	return &Config{
		Addr:              "127.0.0.1:6380",
		Index:             "btree",
		VacuumIntervalSec: 0,
	}
}

// load config from path, a missing file keeps the defaults
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) indexType() (index.IndexType, error) {
	switch cfg.Index {
	case "btree":
		return index.BTREE, nil
	case "rbtree":
		return index.RBTREE, nil
	case "art":
		return index.ARTREE, nil
	case "hash":
		return index.HASH, nil
	}
	return 0, errors.New("unknown index type " + cfg.Index)
}
