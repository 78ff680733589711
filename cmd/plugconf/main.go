// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/plugconf/main.go
// Summary: Terminal shell hosting the plugin configuration dialog.
// Usage: Run `plugconf` and pick a configuration, or `plugconf -config train`.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/plugconf/config"
	"github.com/framegrace/plugconf/internal/logging"
	"github.com/framegrace/plugconf/registry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("plugconf", flag.ContinueOnError)

	configName := fs.String("config", "", "Open the dialog for this configuration on start")
	filePath := fs.String("file", "", "Configuration file for -config (default: <config dir>/plugconf/<config>.ini)")
	pluginDir := fs.String("plugins", "", "Directory scanned for plugin manifests")
	scale := fs.Float64("scale", 0, "Dialog scaling factor (default from gui.json)")
	logPath := fs.String("log", "", "Log file path (default from gui.json)")
	printConfig := fs.Bool("print", false, "Print the -config file and exit")
	listConfigs := fs.Bool("list", false, "List known configurations and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings: %v\n", err)
	}
	if *scale > 0 {
		settings.ScalingFactor = *scale
	}
	if *logPath != "" {
		settings.LogFile = *logPath
	}
	if *pluginDir != "" {
		settings.PluginDir = *pluginDir
	}

	if settings.LogFile != "" {
		closer, err := logging.Setup(settings.LogFile)
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		defer closer.Close()
	}
	log.Printf("Main: Starting plugconf (scaling %.2f)", settings.ScalingFactor)

	reg := registry.New()
	registry.RegisterBuiltIns(reg)
	if settings.PluginDir != "" {
		if err := reg.Scan(settings.PluginDir); err != nil {
			log.Printf("Main: Plugin scan failed: %v", err)
		}
	}

	switch {
	case *listConfigs:
		for _, m := range reg.List() {
			fmt.Printf("%-10s %s\n", m.Name, m.Description)
		}
		return nil

	case *printConfig:
		return handlePrint(reg, *configName, *filePath)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("plugconf needs an interactive terminal")
	}

	overrides := make(map[string]string)
	if *configName != "" && *filePath != "" {
		overrides[*configName] = *filePath
	}
	sh := newShell(reg, settings, overrides)
	return sh.Run(*configName)
}

func handlePrint(reg *registry.Registry, name, path string) error {
	if name == "" {
		return fmt.Errorf("-print requires -config")
	}
	schema := reg.Get(name)
	if schema == nil {
		return fmt.Errorf("unknown config %q", name)
	}
	cfg, err := config.Load(schema, path)
	if err != nil {
		return err
	}
	color := term.IsTerminal(int(os.Stdout.Fd()))
	return config.Highlight(os.Stdout, cfg.Path(), color)
}
