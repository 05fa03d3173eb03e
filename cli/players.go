// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blizzreplay/s2replay/replay"
)

// PlayersCmd is the players subcommand. It repeats RootCmd's default
// behavior, plus an opt-in --json dump of the full decoded replay.details
// tree.
var PlayersCmd = &cobra.Command{
	Use:   "players <replay-path>",
	Short: "Print the map title and player list of a replay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPlayers(args[0], asJSON)
	},
}

var asJSON bool

func init() {
	PlayersCmd.Flags().BoolVar(&asJSON, "json", false, "dump the full decoded replay.details tree as JSON instead")
}

func printPlayers(path string, dumpJSON bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	summary, err := replay.Open(f)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("failed to read replay")
		return err
	}

	if dumpJSON {
		out, err := json.MarshalIndent(summary.Details, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal replay.details")
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(summary.Title)
	for _, p := range summary.Players {
		fmt.Printf("  Team %d: %s (%s)\n", p.Team, p.Name, p.Race)
	}
	return nil
}
