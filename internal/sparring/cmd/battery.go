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
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/rules"
	"laptudirm.com/x/sparring/pkg/eve/tournament"
)

// pairings are the encounters of the standard battery.
var pairings = [][2]string{
	{"forward", "random"},
	{"backward", "random"},
	{"forward", "backward"},
}

type batteryOptions struct {
	games       int
	concurrency int
	seed        uint64

	backend string
	rules   rules.Backend
}

// battery plays every pairing in turn and reports the first agent's win
// rate in each.
func battery(ctx context.Context, out io.Writer, options batteryOptions) error {
	for i, pairing := range pairings {
		var players [2]agent.Factory
		for j, name := range pairing {
			factory, err := agent.Lookup(name)
			if err != nil {
				return err
			}

			players[j] = factory
		}

		encounter := tournament.Encounter{
			Players:     players,
			Games:       options.games,
			Concurrency: options.concurrency,
			Seed:        options.seed + uint64(i),
			Rules:       options.rules,
		}

		tally, err := encounter.Run(ctx)
		if err != nil {
			return err
		}

		logrus.Debugf("%s vs %s: %s", players[0], players[1], &tally)
		fmt.Fprintf(out, "%s vs %s: %s won %.1f%%\n", players[0], players[1], players[0], tally.WinRate()*100)
	}

	return nil
}
