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
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/match"
	"laptudirm.com/x/sparring/pkg/eve/rules"
)

func Play() *cobra.Command {
	var (
		backend string
		fen     string
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "play white-agent black-agent",
		Short: "Play a single game between two agents",
		Long: heredoc.Doc(`play plays a single game between the given agents and
			prints its moves, its result and the final position.

			The agents are named like in the output of the agents
			command. The game starts from the standard position unless
			another one is given with --fen.`),
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			white, err := agent.Lookup(args[0])
			if err != nil {
				return err
			}

			black, err := agent.Lookup(args[1])
			if err != nil {
				return err
			}

			engine, err := rules.New(backend, fen)
			if err != nil {
				return err
			}

			if !cmd.Flag("seed").Changed {
				seed = uint64(time.Now().UnixNano())
			}

			logrus.Debugf("Playing %s vs %s with seed %d", white, black, seed)

			first := engine.Position().SideToMove

			whiteAgent, blackAgent := newPlayers(white, black, seed)
			outcome, err := match.Play(engine, whiteAgent, blackAgent)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s vs %s\n\n", white, black)
			fmt.Fprintln(out, formatMoves(int(first), outcome.Moves))
			fmt.Fprintf(out, "\n%s {%s}\n", outcome.Result, outcome.Reason)
			fmt.Fprintf(out, "Final Position: %s\n", outcome.FinalFEN)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&backend, "rules", "r", rules.DefaultBackend, "Rules backend (mess or notnil)")
	flags.StringVarP(&fen, "fen", "f", rules.StartFEN, "Starting position of the game")
	flags.Uint64VarP(&seed, "seed", "s", 0, "Seed for the agents' random choices")

	return cmd
}

// newPlayers creates the agents of a game, each with its own random source.
func newPlayers(white, black agent.Factory, seed uint64) (agent.Agent, agent.Agent) {
	return white.New(rand.New(rand.NewSource(seed))),
		black.New(rand.New(rand.NewSource(seed + 1)))
}

// formatMoves formats a list of moves with move numbers, eight moves to a
// line. startPly is 1 if Black played the first move, 0 otherwise.
func formatMoves(startPly int, moves []rules.Move) string {
	var str strings.Builder

	ply := startPly
	for i, mov := range moves {
		switch {
		case ply%2 == 0:
			if i > 0 && (ply/2)%8 == 0 {
				str.WriteString("\n")
			} else if i > 0 {
				str.WriteString(" ")
			}

			fmt.Fprintf(&str, "%d. %s", ply/2+1, mov)
		case i == 0:
			// The first move is a Black move.
			fmt.Fprintf(&str, "%d... %s", ply/2+1, mov)
		default:
			fmt.Fprintf(&str, " %s", mov)
		}

		ply++
	}

	return str.String()
}
