package config

// loader.go - configuration loading from an INI file and environment
// variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (LoadFromEnv)
//   3. INI config file        (LoadFromFile)
//   4. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

// fileConfig mirrors the subset of Config an INI file may set.  Ports
// and the request itself stay on the command line — a config file that
// hardwires "which file to fetch" would make every invocation fetch it.
type fileConfig struct {
	Server        string `ini:"server"`
	ControlPort   int    `ini:"control_port"`
	DataPort      int    `ini:"data_port"`
	Wire          string `ini:"wire"`
	NoDNS         bool   `ini:"no_dns"`
	ConnTimeout   int    `ini:"conn_timeout"`   // seconds
	AcceptTimeout int    `ini:"accept_timeout"` // seconds
	Verbose       int    `ini:"verbose"`
}

// LoadFromFile overlays settings from an INI file onto cfg.  Only keys
// present in the file override the existing value.  Call BEFORE
// LoadFromEnv and flag parsing so both take precedence.
func LoadFromFile(cfg *Config, path string) error {
	iniFile, err := ini.Load(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := iniFile.MapTo(&fc); err != nil {
		return err
	}

	if fc.Server != "" {
		cfg.Server = fc.Server
	}
	if fc.ControlPort > 0 {
		cfg.ControlPort = fc.ControlPort
	}
	if fc.DataPort > 0 {
		cfg.DataPort = fc.DataPort
	}
	if fc.Wire != "" {
		cfg.Wire = fc.Wire
	}
	if fc.NoDNS {
		cfg.NoDNS = true
	}
	if fc.ConnTimeout > 0 {
		cfg.ConnTimeout = secondsDuration(fc.ConnTimeout)
	}
	if fc.AcceptTimeout > 0 {
		cfg.AcceptTimeout = secondsDuration(fc.AcceptTimeout)
	}
	if fc.Verbose > 0 {
		cfg.Verbose = fc.Verbose
	}
	return nil
}

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the GOFT_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("GOFT_SERVER"); v != "" {
		cfg.Server = v
	}
	if v := envInt("GOFT_CONTROL_PORT"); v > 0 {
		cfg.ControlPort = v
	}
	if v := envInt("GOFT_DATA_PORT"); v > 0 {
		cfg.DataPort = v
	}
	if v := os.Getenv("GOFT_WIRE"); v != "" {
		cfg.Wire = v
	}
	if envBool("GOFT_NO_DNS") {
		cfg.NoDNS = true
	}
	if v := envInt("GOFT_CONN_TIMEOUT"); v > 0 {
		cfg.ConnTimeout = secondsDuration(v)
	}
	if v := envInt("GOFT_ACCEPT_TIMEOUT"); v > 0 {
		cfg.AcceptTimeout = secondsDuration(v)
	}
	if v := os.Getenv("GOFT_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if envBool("GOFT_STATS") {
		cfg.Stats = true
	}
	if v := envInt("GOFT_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
