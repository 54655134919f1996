// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package tournament

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/match"
	"laptudirm.com/x/sparring/pkg/eve/rules"
	"laptudirm.com/x/sparring/pkg/eve/stats"
	"laptudirm.com/x/sparring/pkg/eve/tournament/schedule"
)

// NewTournament prepares the tournament described by config.
func NewTournament(config Config) (*Tournament, error) {
	config.setDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	tour := Tournament{
		Config: config,
		Output: os.Stdout,
		Scores: make([]Score, len(config.Agents)),
	}

	for i, name := range config.Agents {
		factory, err := agent.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("new tour: %w", err)
		}

		tour.players = append(tour.players, factory)
		tour.Scores[i].Name = factory.Name
	}

	var err error
	if tour.rules, err = rules.Lookup(config.Rules); err != nil {
		return nil, fmt.Errorf("new tour: %w", err)
	}

	if config.Openings.File != "" {
		rng := rand.New(rand.NewSource(config.Seed))
		if tour.openings, err = NewBook(config.Openings, rng); err != nil {
			return nil, fmt.Errorf("new tour: %w", err)
		}
	}

	if tour.Scheduler, err = schedule.New(config.Scheduler); err != nil {
		return nil, fmt.Errorf("new tour: %w", err)
	}

	tour.Scheduler.Initialize(len(config.Agents))
	tour.total = config.Rounds * tour.Scheduler.TotalEncounters() * config.GamePairs * 2

	return &tour, nil
}

// Tournament is a multi-agent tournament.
type Tournament struct {
	Config Config

	Scheduler schedule.Scheduler

	// Output is where the standings are reported.
	Output io.Writer

	// Scores has the score of every agent, in the configured order.
	Scores []Score

	players  []agent.Factory
	rules    rules.Backend
	openings *Book

	total, played int
}

// Score is the score of a single agent in a tournament.
type Score struct {
	Name string `yaml:"name"`

	Wins   int `yaml:"wins"`
	Losses int `yaml:"losses"`
	Draws  int `yaml:"draws"`

	Elo   float64 `yaml:"elo"`
	Error float64 `yaml:"error"`
}

// Games returns the number of games the agent played.
func (score Score) Games() int {
	return score.Wins + score.Losses + score.Draws
}

// TotalGames returns the number of games in the tournament.
func (tour *Tournament) TotalGames() int {
	return tour.total
}

// Start runs the tournament to completion.
func (tour *Tournament) Start(ctx context.Context) error {
	p := pool{
		rules:       tour.rules,
		players:     tour.players,
		concurrency: tour.Config.Concurrency,
	}

	return p.run(ctx, tour.schedule, func(result GameResult) bool {
		tour.handle(result)
		return false
	})
}

func (tour *Tournament) schedule(ctx context.Context, games chan<- *Game) error {
	number := 0
	for round := 0; round < tour.Config.Rounds; round++ {
		tour.Scheduler.Initialize(len(tour.players))

		for encounter := 0; encounter < tour.Scheduler.TotalEncounters(); encounter++ {
			p1, p2 := tour.Scheduler.NextEncounter()

			for pair := 0; pair < tour.Config.GamePairs; pair++ {
				for game := 0; game < 2; game++ {
					next := &Game{
						Round:  round + 1,
						Number: number,
						White:  p1,
						Black:  p2,
						Seed:   tour.Config.Seed,
					}

					if tour.openings != nil {
						next.FEN = tour.openings.Current()
					}

					select {
					case <-ctx.Done():
						return ctx.Err()
					case games <- next:
					}

					number++

					// Switch turn.
					p1, p2 = p2, p1
				}

				if tour.openings != nil {
					tour.openings.Next()
				}
			}
		}
	}

	return nil
}

func (tour *Tournament) handle(result GameResult) {
	tour.played++

	white, black := &tour.Scores[result.White], &tour.Scores[result.Black]
	switch match.ScoreFor(result.Result, rules.White) {
	case match.Win:
		white.Wins++
		black.Losses++
	case match.Loss:
		black.Wins++
		white.Losses++
	default:
		white.Draws++
		black.Draws++
	}

	logrus.Infof(
		"\x1b[32mFinished\x1b[0m Round #%d Game #%d: %s vs %s: %s\n",
		result.Round, result.Number+1,
		result.Names[rules.White], result.Names[rules.Black],
		result,
	)

	if tour.played%tour.Config.ReportEvery == 0 || tour.played == tour.total {
		tour.Report()
	}
}

// Standings returns the scores with their elo estimates filled in.
func (tour *Tournament) Standings() []Score {
	standings := make([]Score, len(tour.Scores))
	for i, score := range tour.Scores {
		lower, elo, upper := stats.Elo(score.Wins, score.Draws, score.Losses)
		score.Elo, score.Error = elo, stats.ErrorMargin(lower, elo, upper)
		standings[i] = score
	}

	return standings
}

// Summary is the record of a tournament which is saved to disk.
type Summary struct {
	Config    Config  `yaml:"config"`
	Games     int     `yaml:"games"`
	Standings []Score `yaml:"standings"`
}

// Save writes the tournament's Summary to the given file as YAML.
func (tour *Tournament) Save(file string) error {
	data, err := yaml.Marshal(Summary{
		Config:    tour.Config,
		Games:     tour.played,
		Standings: tour.Standings(),
	})

	if err != nil {
		return err
	}

	return os.WriteFile(file, data, 0644)
}

// Report prints the standings table.
func (tour *Tournament) Report() {
	out := tour.Output
	fmt.Fprintln(out, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(out, "╠══════════════════════════════════════════════════════════╣")
	for i, score := range tour.Standings() {
		format := "║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n"
		if tour.Config.Scheduler == "gauntlet" && i == 0 {
			if score.Elo >= 0 {
				format = "║ \x1b[32m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			} else {
				format = "║ \x1b[31m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			}
		}

		fmt.Fprintf(
			out, format,
			i+1, score.Name,
			score.Elo, score.Error,
			score.Wins, score.Losses, score.Draws,
			score.Games(),
		)
	}
	fmt.Fprintln(out, "╚══════════════════════════════════════════════════════════╝")
}
