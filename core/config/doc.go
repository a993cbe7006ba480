// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for the esta
//              toolchain with support for TOML and YAML formats. Features
//              include automatic file discovery, environment variable
//              injection, validation, hot-reloading, and type-safe access.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the esta toolchain.

Package: config
Title: Core Configuration Management
Description: Provides configuration management capabilities for the esta
             tools with support for TOML and YAML formats, environment
             variable injection, hot-reloading, and type-safe access.
Author: isgasho
Version: v0.1.0
Created: 2026-08-18
Modified: 2026-08-18

Change History:
- 2026-08-18 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable injection and override capabilities
  • Configuration validation with structured rules
  • Hot-reloading via fsnotify with change notification callbacks
  • Thread-safe concurrent access patterns
  • Performance-optimized with caching and lazy loading
  • Structured error codes for all failure paths

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := estaconfig.Load("esta.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	level := cfg.GetString("log.level", "info")
	maxSize := cfg.GetInt("parser.max_source_size", 1048576)
	debounce := cfg.GetDuration("watch.debounce", 200*time.Millisecond)
	paths := cfg.GetStringSlice("check.include", []string{})

# Advanced Configuration Options

Load with custom options:

	cfg, err := estaconfig.LoadWithOptions("esta.toml", estaconfig.LoadOptions{
		Format:    estaconfig.FormatAuto,
		EnvPrefix: estaconfig.DefaultEnvPrefix,
		Defaults: map[string]interface{}{
			"log.level":              "info",
			"log.format":             "console",
			"parser.max_source_size": 1048576,
		},
		Watch: true, // Enable hot-reloading
	})

# Environment Variable Integration

Configuration values are automatically overridden by environment variables
following a consistent naming convention:

	# esta.toml
	[log]
	level = "info"
	format = "console"

	[parser]
	max_source_size = 1048576

	# Environment variables (with the ESTA prefix)
	export ESTA_LOG_LEVEL="debug"
	export ESTA_PARSER_MAX_SOURCE_SIZE="524288"

	cfg, _ := estaconfig.LoadWithOptions("esta.toml", estaconfig.LoadOptions{
		EnvPrefix: "ESTA",
	})

	// Environment variables take precedence
	level := cfg.GetString("log.level")            // Returns "debug"
	size := cfg.GetInt("parser.max_source_size")   // Returns 524288

# Configuration Discovery

The esta command line tools search well-known locations for a configuration
file instead of requiring an explicit path:

	cfg, err := estaconfig.DiscoverWithDefaults()
	// Searches ./esta.toml, ./config/esta.toml, /etc/esta/esta.toml, ...
	// Returns an empty configuration when no file is found, so environment
	// overrides and defaults still apply.

# Configuration Validation

Validate configuration structure and constraints:

	rules := estaconfig.ValidationRules{
		"log.level": {
			Type:    "string",
			Pattern: `^(trace|debug|info|warn|error|fatal)$`,
			Default: "info",
		},
		"parser.max_source_size": {
			Type: "int",
			Min:  1,
			Max:  67108864,
		},
		"watch.debounce": {
			Type:    "duration",
			Default: "200ms",
		},
	}

	result := cfg.Validate(rules)
	if !result.Valid {
		for _, msg := range result.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
	}

# Hot-Reloading and Change Notifications

Monitor configuration files for changes with automatic reloading:

	cfg, err := estaconfig.LoadWithWatch("esta.toml")

	cfg.OnChange(func(oldCfg, newCfg *estaconfig.Config) {
		if oldCfg.GetString("log.level") != newCfg.GetString("log.level") {
			// Adjust the logger level at runtime
		}
	})

	defer cfg.StopWatching()

File watching uses fsnotify on the containing directory so that atomic
editor saves (write temp file, rename over the original) are detected.

# Struct Binding

Bind a configuration section directly to a struct:

	type replSettings struct {
		Prompt      string `config:"prompt"`
		HistorySize int    `config:"history_size"`
	}

	var settings replSettings
	if err := cfg.BindToStruct("repl", &settings); err != nil {
		return err
	}

# Convenience Methods

Quick access patterns for common operations:

	level := cfg.S("log.level", "info")                   // GetString
	size := cfg.I("parser.max_source_size", 1048576)      // GetInt
	color := cfg.B("repl.color", true)                    // GetBool
	debounce := cfg.D("watch.debounce", 200*time.Millisecond) // GetDuration
	include := cfg.SS("check.include", []string{})        // GetStringSlice

# Error Handling Patterns

All configuration operations return structured errors with codes:

	cfg, err := estaconfig.Load("nonexistent.toml")
	if err != nil {
		switch {
		case estaerror.HasCode(err, estaerror.CodeMissingConfig):
			// Config file missing - fall back to defaults
			cfg = estaconfig.LoadFromEnv(estaconfig.DefaultEnvPrefix)
		case estaerror.HasCode(err, estaerror.CodeInvalidConfig):
			// Syntax error in the file, report and abort
			return err
		default:
			return err
		}
	}

# Thread Safety Guarantees

All operations are thread-safe and support concurrent access:

  - Configuration loading and parsing: Thread-safe
  - Value access (Get* methods): Concurrent reads under a read lock
  - Environment variable lookups: Cached with a 5-minute TTL
  - Configuration updates: Atomic updates with proper synchronization
  - Change notifications: Handlers run on their own goroutines
*/
package config
