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
	"runtime"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/sparring/pkg/eve/rules"
	"laptudirm.com/x/sparring/internal/util"
)

func Root() *cobra.Command {
	var options batteryOptions

	root := &cobra.Command{
		Use:   "sparring",
		Short: "Play chess agents against each other and keep score",
		Long: heredoc.Doc(`sparring plays games of chess between simple move-picking
			agents and reports how often each one wins.

			Run without a command, it plays the standard battery: a number
			of games between MoveForward and RandomAgent, MoveBackward and
			RandomAgent, and MoveForward and MoveBackward, with the agents
			taking turns to play White.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if options.rules, err = rules.Lookup(options.backend); err != nil {
				return err
			}

			if !cmd.Flag("seed").Changed {
				options.seed = uint64(time.Now().UnixNano())
			}

			logrus.Infof("Playing the battery with seed %d", options.seed)

			util.StartSpinner("playing games")
			defer util.PauseSpinner()

			return battery(cmd.Context(), cmd.OutOrStdout(), options)
		},
	}

	flags := root.Flags()
	flags.IntVarP(&options.games, "games", "n", 100, "Number of games per pairing")
	flags.IntVarP(&options.concurrency, "concurrency", "c", runtime.NumCPU(), "Number of games to play at once")
	flags.Uint64VarP(&options.seed, "seed", "s", 0, "Seed for the agents' random choices")
	flags.StringVarP(&options.backend, "rules", "r", rules.DefaultBackend, "Rules backend (mess or notnil)")

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Sparring's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Agents())
	root.AddCommand(Play())
	root.AddCommand(Tournament())
	root.AddCommand(SPRT())

	return root
}
