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

// Package tournament runs many games between agents and keeps score.
package tournament

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/match"
	"laptudirm.com/x/sparring/pkg/eve/rules"
)

// Encounter is a series of games between two agents. The first player has
// White in the even numbered games, and the second player in the odd
// numbered ones, so consecutive games form a pair played from the same
// opening with colors reversed.
type Encounter struct {
	Players [2]agent.Factory

	// Games is the number of games to play. A Stop function may end the
	// encounter earlier.
	Games int

	// Concurrency is the number of games played at the same time.
	Concurrency int

	// Seed seeds the random sources of every game.
	Seed uint64

	// Rules creates the rules engine of every game. A nil Rules uses the
	// default backend.
	Rules rules.Backend

	// Openings, if not nil, provides the starting positions. Both games of
	// a pair start from the same opening.
	Openings *Book

	// Stop is called with the running tally after every game. Returning
	// true ends the encounter.
	Stop func(tally *Tally) bool

	// Progress, if not nil, is called with the running tally after every
	// game.
	Progress func(result GameResult, tally *Tally)
}

// Run plays the encounter and returns the tally from the first player's
// point of view. It fails if any game violates the rules of play.
func (encounter *Encounter) Run(ctx context.Context) (Tally, error) {
	var tally Tally

	backend := encounter.Rules
	if backend == nil {
		var err error
		if backend, err = rules.Lookup(rules.DefaultBackend); err != nil {
			return tally, err
		}
	}

	p := pool{
		rules:       backend,
		players:     encounter.Players[:],
		concurrency: encounter.Concurrency,
	}

	err := p.run(ctx, encounter.schedule, func(result GameResult) bool {
		// Player one is player 0.
		color := rules.White
		if result.White != 0 {
			color = rules.Black
		}

		tally.Add(result.Number, match.ScoreFor(result.Result, color))

		logrus.Debugf(
			"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s\n",
			result.Number+1, result.Names[rules.White], result.Names[rules.Black], result,
		)

		if encounter.Progress != nil {
			encounter.Progress(result, &tally)
		}

		return encounter.Stop != nil && encounter.Stop(&tally)
	})

	if err != nil {
		return tally, fmt.Errorf("%s vs %s: %w", encounter.Players[0], encounter.Players[1], err)
	}

	return tally, nil
}

func (encounter *Encounter) schedule(ctx context.Context, games chan<- *Game) error {
	p1, p2 := 0, 1
	for number := 0; number < encounter.Games; number++ {
		game := &Game{
			Round:  1,
			Number: number,
			White:  p1,
			Black:  p2,
			Seed:   encounter.Seed,
		}

		if encounter.Openings != nil {
			game.FEN = encounter.Openings.Current()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case games <- game:
		}

		// Switch turn.
		p1, p2 = p2, p1

		if number%2 == 1 && encounter.Openings != nil {
			encounter.Openings.Next()
		}
	}

	return nil
}
