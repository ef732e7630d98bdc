// campus - terminal client for the campus resource booking system.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/campus-tui/internal/cli"
	"github.com/jeranaias/campus-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	// Commands with no backend or session dependencies.
	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	case cli.CmdVersion:
		exitOn(cli.HandleVersion(args))
		return
	}

	deps, err := cli.NewDeps()
	exitOn(err)
	defer deps.Close()

	switch cmd {
	case cli.CmdTUI:
		exitOn(runTUI(deps))
	case cli.CmdLogin:
		exitOn(cli.HandleLogin(deps, args))
	case cli.CmdLogout:
		exitOn(cli.HandleLogout(deps, args))
	case cli.CmdStatus:
		exitOn(cli.HandleStatus(deps, args))
	case cli.CmdResources:
		exitOn(cli.HandleResources(deps, args))
	case cli.CmdBookings:
		exitOn(cli.HandleBookings(deps, args))
	case cli.CmdUsers:
		exitOn(cli.HandleUsers(deps, args))
	case cli.CmdActivity:
		exitOn(cli.HandleActivity(deps, args))
	case cli.CmdConfig:
		exitOn(cli.HandleConfig(deps, args))
	default:
		cli.PrintUsage()
		os.Exit(1)
	}
}

func runTUI(deps *cli.Deps) error {
	a := app.New(app.Options{
		Client: deps.Client,
		Cache:  deps.Cache,
		Store:  deps.Store,
	})

	p := tea.NewProgram(a, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
