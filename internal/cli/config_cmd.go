// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - the config command: show, set, and path.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/campus-tui/internal/config"
)

// HandleConfig manages the configuration file.
//
//	campus config            Show the active configuration
//	campus config show       Same
//	campus config set K V    Set a key and save
//	campus config path       Print the config file path
func HandleConfig(deps *Deps, args Args) error {
	p := NewArgParser(args.Raw)

	switch p.Subcommand() {
	case "", "show":
		return configShow(deps, args)
	case "set":
		return configSet(deps, args, p.Positional(1), p.Positional(2))
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		if args.JSON {
			return NewJSONResponse("config", map[string]string{"path": path}).Print()
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s", p.Subcommand())
	}
}

func configShow(deps *Deps, args Args) error {
	cfg := deps.Config
	if args.JSON {
		return NewJSONResponse("config", cfg).Print()
	}

	fmt.Printf("api.url           %s\n", cfg.API.BaseURL)
	fmt.Printf("api.timeout_secs  %d\n", cfg.API.TimeoutSecs)
	fmt.Printf("api.max_retries   %d\n", cfg.API.MaxRetries)
	fmt.Printf("cache.enabled     %t\n", cfg.Cache.Enabled)
	fmt.Printf("ui.theme          %s\n", cfg.UI.Theme)
	fmt.Printf("ui.compact        %t\n", cfg.UI.CompactMode)
	return nil
}

func configSet(deps *Deps, args Args, key, value string) error {
	if key == "" || value == "" {
		return fmt.Errorf("usage: campus config set <key> <value>")
	}

	cfg := deps.Config
	if err := applyConfigKey(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := config.ConfigPathTOML()
	if err != nil {
		return err
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("config", map[string]string{key: value}).Print()
	}
	Successf("Set %s = %s", key, value)
	return nil
}

// applyConfigKey maps a dotted key to its config field.
func applyConfigKey(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "api.url":
		cfg.API.BaseURL = value
	case "api.timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("api.timeout_secs must be a number: %q", value)
		}
		cfg.API.TimeoutSecs = n
	case "api.max_retries":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("api.max_retries must be a number: %q", value)
		}
		cfg.API.MaxRetries = n
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be true or false: %q", value)
		}
		cfg.Cache.Enabled = b
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.compact":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.compact must be true or false: %q", value)
		}
		cfg.UI.CompactMode = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
