// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no --config flag is given.
const EnvConfigFile = "TRUST_CHAIN_CONFIG_FILE"

// Defaults applied before a configuration file is merged.
const (
	DefaultResolvConf       = "/etc/resolv.conf"
	DefaultLookupTimeout    = 2 // seconds; DNSSEC answers are large and retries work better than long waits
	DefaultLookupAttempts   = 3
	DefaultRetryDelayMillis = 0
	DefaultUDPSize          = 4096
	DefaultTLSTimeout       = 5 // seconds
	DefaultTLSPort          = 443
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the inspector configuration structure.
//
// The configuration can be loaded from a JSON or YAML file given on the command
// line or through the TRUST_CHAIN_CONFIG_FILE environment variable, with defaults
// applied for any missing values.
type Config struct {
	// DNS: Resolver settings used by dnsseccheck and namecheck
	DNS struct {
		// ResolvConf: resolv.conf-format file listing the nameservers to query
		ResolvConf string `json:"resolvConf" yaml:"resolvConf"`
		// Servers: Explicit "host:port" resolver list, takes precedence over ResolvConf
		Servers []string `json:"servers,omitempty" yaml:"servers,omitempty"`
		// Timeout: Per-attempt lookup timeout in seconds
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// Attempts: Maximum attempts per lookup when the resolver times out
		Attempts int `json:"attempts" yaml:"attempts"`
		// RetryDelay: Pause between timed-out attempts in milliseconds
		RetryDelay int `json:"retryDelayMillis" yaml:"retryDelayMillis"`
		// UDPSize: Advertised EDNS0 UDP buffer size
		UDPSize int `json:"udpSize" yaml:"udpSize"`
	} `json:"dns" yaml:"dns"`

	// TLS: Peer connection settings used by certcheck
	TLS struct {
		// Timeout: Connect and handshake timeout in seconds
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// DefaultPort: Port used when a target carries no ":port" suffix
		DefaultPort int `json:"defaultPort" yaml:"defaultPort"`
	} `json:"tls" yaml:"tls"`
}

// LookupTimeout returns the per-attempt DNS timeout as a duration.
func (c *Config) LookupTimeout() time.Duration { return time.Duration(c.DNS.Timeout) * time.Second }

// RetryDelay returns the pause between timed-out DNS attempts as a duration.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.DNS.RetryDelay) * time.Millisecond
}

// TLSTimeout returns the TLS connect and handshake timeout as a duration.
func (c *Config) TLSTimeout() time.Duration { return time.Duration(c.TLS.Timeout) * time.Second }

// Default returns a configuration holding only default values.
func Default() *Config {
	cfg := &Config{}
	cfg.DNS.ResolvConf = DefaultResolvConf
	cfg.DNS.Timeout = DefaultLookupTimeout
	cfg.DNS.Attempts = DefaultLookupAttempts
	cfg.DNS.RetryDelay = DefaultRetryDelayMillis
	cfg.DNS.UDPSize = DefaultUDPSize
	cfg.TLS.Timeout = DefaultTLSTimeout
	cfg.TLS.DefaultPort = DefaultTLSPort
	return cfg
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - *Config: The loaded configuration with defaults applied
//   - error: If the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. TRUST_CHAIN_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if a path is known)
//  4. Non-positive values from the file are reset to their defaults
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

func (c *Config) normalize() {
	if c.DNS.ResolvConf == "" {
		c.DNS.ResolvConf = DefaultResolvConf
	}
	if c.DNS.Timeout <= 0 {
		c.DNS.Timeout = DefaultLookupTimeout
	}
	if c.DNS.Attempts <= 0 {
		c.DNS.Attempts = DefaultLookupAttempts
	}
	if c.DNS.RetryDelay < 0 {
		c.DNS.RetryDelay = DefaultRetryDelayMillis
	}
	// 512 is the pre-EDNS0 ceiling; anything smaller cannot carry a DNSKEY set.
	if c.DNS.UDPSize < 512 || c.DNS.UDPSize > 65535 {
		c.DNS.UDPSize = DefaultUDPSize
	}
	if c.TLS.Timeout <= 0 {
		c.TLS.Timeout = DefaultTLSTimeout
	}
	if c.TLS.DefaultPort <= 0 || c.TLS.DefaultPort > 65535 {
		c.TLS.DefaultPort = DefaultTLSPort
	}
}
