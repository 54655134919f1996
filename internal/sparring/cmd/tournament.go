// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sparring "laptudirm.com/x/sparring/pkg/common"
	"laptudirm.com/x/sparring/pkg/eve/tournament"
)

func Tournament() *cobra.Command {
	return &cobra.Command{
		Use:   "tournament config-file",
		Short: "Run a tournament between many agents",
		Long: heredoc.Doc(`tournament runs the tournament described by the given YAML
			file, and saves the final standings to the data directory.

			An example configuration:

			  name: directions
			  agents: [forward, backward, random]
			  scheduler: round-robin  # or gauntlet
			  rounds: 1
			  game-pairs: 50
			  concurrency: 4
			  seed: 1
			  rules: mess
			  openings:
			    file: openings.epd
			    order: random`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := tournament.LoadConfig(args[0])
			if err != nil {
				return err
			}

			tour, err := tournament.NewTournament(config)
			if err != nil {
				return err
			}

			tour.Output = cmd.OutOrStdout()

			logrus.Infof("Starting tournament %s: %d games", config.Name, tour.TotalGames())
			if err := tour.Start(cmd.Context()); err != nil {
				return err
			}

			file, err := sparring.ResultsFile(sparring.Tournaments, config.Name)
			if err != nil {
				return err
			}

			if err := tour.Save(file); err != nil {
				return err
			}

			logrus.Infof("Results saved to %s", file)
			return nil
		},
	}
}
