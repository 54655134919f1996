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
	"laptudirm.com/x/sparring/pkg/eve/sprt"
)

func SPRT() *cobra.Command {
	var config sprt.Config

	cmd := &cobra.Command{
		Use:   "sprt agent-one agent-two",
		Short: "Run a Sequential Probability Ratio Test between two agents",
		Long: heredoc.Doc(`sprt plays pairs of games between the given agents until
			either the null hypothesis, that agent-one is elo0 stronger
			than agent-two, or the alternate hypothesis, that it is elo1
			stronger, is accepted. The test stops undecided after
			--max-games games.

			The final state of the test is saved to the data directory.`),
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			config.Agents = [2]string{args[0], args[1]}

			test, err := sprt.New(config)
			if err != nil {
				return err
			}

			test.Output = cmd.OutOrStdout()

			logrus.Infof("Starting SPRT %s [%.2f, %.2f]", test.Name, test.Elo0, test.Elo1)
			if _, err := test.Start(cmd.Context()); err != nil {
				return err
			}

			file, err := sparring.ResultsFile(sparring.SPRTs, test.Name)
			if err != nil {
				return err
			}

			if err := test.Save(file); err != nil {
				return err
			}

			logrus.Infof("Results saved to %s", file)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Name, "name", "", "Name of the test (default agent-one-vs-agent-two)")
	flags.Float64Var(&config.Elo0, "elo0", 0, "Null hypothesis elo difference")
	flags.Float64Var(&config.Elo1, "elo1", 5, "Alternate hypothesis elo difference")
	flags.Float64Var(&config.Alpha, "alpha", 0.05, "Probability of a type I error")
	flags.Float64Var(&config.Beta, "beta", 0.05, "Probability of a type II error")
	flags.IntVar(&config.MaxGames, "max-games", 10000, "Maximum number of games to play")
	flags.BoolVar(&config.Legacy, "legacy", false, "Use the trinomial model instead of the pentanomial one")
	flags.IntVarP(&config.Concurrency, "concurrency", "c", 1, "Number of games to play at once")
	flags.Uint64VarP(&config.Seed, "seed", "s", 1, "Seed for the agents' random choices")
	flags.StringVarP(&config.Rules, "rules", "r", "", "Rules backend (mess or notnil)")
	flags.StringVar(&config.Openings.File, "openings", "", "Opening book with a FEN or EPD per line")
	flags.StringVar(&config.Openings.Order, "openings-order", "sequential", "Order of the openings (sequential or random)")

	return cmd
}
