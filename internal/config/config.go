package config

import (
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration.
type Config struct {
	mcp.McpConf

	UI       UIConfig       `json:",optional"`
	API      APIConfig      `json:",optional"`
	Database DatabaseConfig `json:",optional"`
	Checker  CheckerConfig  `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// APIConfig holds the REST API server settings.
type APIConfig struct {
	rest.RestConf
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/plat-emailguard.db"`
}

// CheckerConfig holds check engine settings.
type CheckerConfig struct {
	Workers        int    `json:",default=4"`
	RateLimit      int    `json:",default=120"`
	MessageTimeout string `json:",default=30s"`
}
