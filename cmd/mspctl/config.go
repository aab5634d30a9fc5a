package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type toolConfig struct {
	// PreferV2 makes build emit v2 frames even for commands that fit v1.
	PreferV2 bool
	// FontBlockPadded marks font files whose cells are stored in 64-byte
	// blocks rather than packed back to back.
	FontBlockPadded bool
	// ChunkSize is the read size used when feeding captures to the parser.
	ChunkSize int
}

type fileConfig struct {
	PreferV2        bool `toml:"prefer_v2"`
	FontBlockPadded bool `toml:"font_block_padded"`
	ChunkSize       int  `toml:"chunk_size"`
}

func defaultConfig() toolConfig {
	return toolConfig{
		FontBlockPadded: true,
		ChunkSize:       4096,
	}
}

func loadConfig(path string) (toolConfig, error) {
	cfg := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load mspctl config: %w", err)
	}

	if meta.IsDefined("prefer_v2") {
		cfg.PreferV2 = raw.PreferV2
	}
	if meta.IsDefined("font_block_padded") {
		cfg.FontBlockPadded = raw.FontBlockPadded
	}
	if meta.IsDefined("chunk_size") {
		if raw.ChunkSize <= 0 {
			return toolConfig{}, fmt.Errorf("mspctl config: chunk_size must be positive, got %d", raw.ChunkSize)
		}
		cfg.ChunkSize = raw.ChunkSize
	}
	return cfg, nil
}
