// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// Package cli assembles the s2replay command tree: a root command plus
// a players subcommand, using spf13/cobra the way distribution-distribution
// wires its registry command (registry/root.go) and sirupsen/logrus for
// the structured diagnostics the library packages (mpq, versioned,
// protocol, value, replay) deliberately never emit themselves.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is the main command for the s2replay binary. Its flagless,
// no-subcommand form prints the map title then one line per player:
// `s2replay <replay-path>`.
var RootCmd = &cobra.Command{
	Use:   "s2replay <replay-path>",
	Short: "Read StarCraft II replay metadata",
	Long:  "s2replay reads the map title and player list out of a .SC2Replay file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPlayers(args[0], false)
	},
}

func init() {
	RootCmd.AddCommand(PlayersCmd)
}

// Execute runs the command tree, exiting non-zero on failure per the
// external interface's contract.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("s2replay failed")
		os.Exit(1)
	}
}
