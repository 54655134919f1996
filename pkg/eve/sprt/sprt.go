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

// Package sprt runs a sequential probability ratio test between two
// agents: games are played until the results show, with the configured
// confidence, which of two elo differences is the more likely one.
package sprt

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/rules"
	"laptudirm.com/x/sparring/pkg/eve/stats"
	"laptudirm.com/x/sparring/pkg/eve/tournament"
)

// Config describes an SPRT.
type Config struct {
	Name string `yaml:"name"`

	// The agents being tested. The elo hypotheses are about the first
	// agent's strength relative to the second one.
	Agents [2]string `yaml:"agents"`

	// The rules backend used for every game.
	Rules string `yaml:"rules"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Seed of the test's random sources.
	Seed uint64 `yaml:"seed"`

	// Legacy uses the trinomial model on single game results instead of
	// the pentanomial model on game pair results.
	Legacy bool `yaml:"legacy"`

	// The null and the alternate elo hypotheses.
	Elo0 float64 `yaml:"elo0"`
	Elo1 float64 `yaml:"elo1"`

	// Confidence bounds for Error types I and II.
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`

	// MaxGames ends an undecided test.
	MaxGames int `yaml:"max-games"`

	// Print a report after every ReportEvery games.
	ReportEvery int `yaml:"report-every"`

	Openings tournament.OpeningConfig `yaml:"openings"`
}

// State is the result of a finished or interrupted test.
type State struct {
	Wins, Losses, Draws int
	Pairs               [5]int

	LLR      float64
	Decision string
}

// SPRT is a running sequential probability ratio test.
type SPRT struct {
	Config

	// Backend creates the rules engine of every game.
	Backend rules.Backend

	// Output is where reports are printed.
	Output io.Writer

	players  [2]agent.Factory
	openings *tournament.Book

	tally    tournament.Tally
	decision stats.Decision

	lower, upper float64
}

// New prepares the test described by config.
func New(config Config) (*SPRT, error) {
	if config.Alpha <= 0 || config.Alpha >= 1 || config.Beta <= 0 || config.Beta >= 1 {
		return nil, fmt.Errorf("sprt: alpha and beta must be in (0, 1), found %g and %g", config.Alpha, config.Beta)
	}

	if config.Elo0 >= config.Elo1 {
		return nil, fmt.Errorf("sprt: elo0 (%g) must be less than elo1 (%g)", config.Elo0, config.Elo1)
	}

	if config.MaxGames <= 0 {
		config.MaxGames = 10000
	}

	if config.ReportEvery <= 0 {
		config.ReportEvery = 10
	}

	sprt := SPRT{
		Config: config,
		Output: os.Stdout,
	}

	for i, name := range config.Agents {
		factory, err := agent.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("sprt: %w", err)
		}

		sprt.players[i] = factory
	}

	if sprt.Name == "" {
		sprt.Name = fmt.Sprintf("%s-vs-%s", config.Agents[0], config.Agents[1])
	}

	var err error
	if sprt.Backend, err = rules.Lookup(config.Rules); err != nil {
		return nil, fmt.Errorf("sprt: %w", err)
	}

	if config.Openings.File != "" {
		rng := rand.New(rand.NewSource(config.Seed))
		if sprt.openings, err = tournament.NewBook(config.Openings, rng); err != nil {
			return nil, fmt.Errorf("sprt: %w", err)
		}
	}

	sprt.lower, sprt.upper = stats.StoppingBounds(config.Alpha, config.Beta)
	return &sprt, nil
}

// Start plays games until either hypothesis is accepted or the maximum
// number of games is reached, in which case Continue is returned.
func (sprt *SPRT) Start(ctx context.Context) (stats.Decision, error) {
	encounter := tournament.Encounter{
		Players:     sprt.players,
		Games:       sprt.MaxGames,
		Concurrency: sprt.Concurrency,
		Seed:        sprt.Seed,
		Rules:       sprt.Backend,
		Openings:    sprt.openings,

		Stop: func(tally *tournament.Tally) bool {
			sprt.tally = *tally
			sprt.decision = stats.Decide(sprt.LLR(), sprt.lower, sprt.upper)
			if tally.Games()%sprt.ReportEvery == 0 {
				sprt.Report()
			}

			return sprt.decision != stats.Continue
		},
	}

	tally, err := encounter.Run(ctx)
	if err != nil {
		return stats.Continue, fmt.Errorf("sprt: %w", err)
	}

	sprt.tally = tally
	sprt.decision = stats.Decide(sprt.LLR(), sprt.lower, sprt.upper)

	color := "\x1b[33m"
	switch sprt.decision {
	case stats.AcceptH0:
		color = "\x1b[31m"
	case stats.AcceptH1:
		color = "\x1b[32m"
	}

	fmt.Fprintf(sprt.Output, "\n%s%s\n", color, sprt.decision)
	sprt.Report()
	fmt.Fprint(sprt.Output, "\x1b[0m")

	return sprt.decision, nil
}

// LLR returns the log-likelihood ratio of the results so far.
func (sprt *SPRT) LLR() float64 {
	return sprt.tally.LLR(sprt.Elo0, sprt.Elo1, sprt.Legacy)
}

// Tally returns the results so far.
func (sprt *SPRT) Tally() tournament.Tally {
	return sprt.tally
}

// State returns the current state of the test.
func (sprt *SPRT) State() State {
	return State{
		Wins:     sprt.tally.Wins,
		Losses:   sprt.tally.Losses,
		Draws:    sprt.tally.Draws,
		Pairs:    sprt.tally.Pairs,
		LLR:      sprt.LLR(),
		Decision: sprt.decision.String(),
	}
}

// Save writes the configuration and the state of the test to the given
// file as YAML.
func (sprt *SPRT) Save(file string) error {
	data, err := yaml.Marshal(struct {
		Config `yaml:"config"`
		State  `yaml:"state"`
	}{sprt.Config, sprt.State()})

	if err != nil {
		return err
	}

	return os.WriteFile(file, data, 0644)
}

// Report prints the current state of the test.
func (sprt *SPRT) Report() {
	lower, elo, upper := sprt.tally.Elo()
	if !sprt.Legacy {
		lower, elo, upper = sprt.tally.PentaElo()
	}

	err := stats.ErrorMargin(lower, elo, upper)
	n := sprt.tally.Games()

	elo_str := fmt.Sprintf("║ ELO   | %.2f +- %.2f (95%%)", elo, err)
	llr_str := fmt.Sprintf("║ LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f]", sprt.LLR(), sprt.lower, sprt.upper, sprt.Elo0, sprt.Elo1)
	gam_str := fmt.Sprintf("║ GAMES | N: %d W: %d L: %d D: %d", n, sprt.tally.Wins, sprt.tally.Losses, sprt.tally.Draws)
	los_str := fmt.Sprintf("║ LOS   | %.1f%%", stats.LOS(sprt.tally.Wins, sprt.tally.Losses)*100)

	out := sprt.Output
	fmt.Fprintln(out, "╔═════════════════════════════════════════════════╗")
	fmt.Fprintf(out, "%-50s║\n", elo_str)
	fmt.Fprintf(out, "%-50s║\n", llr_str)
	fmt.Fprintf(out, "%-50s║\n", gam_str)
	fmt.Fprintf(out, "%-50s║\n", los_str)
	if !sprt.Legacy {
		penta_str := fmt.Sprintf(
			"║ PENTA | [%d, %d, %d, %d, %d]",
			sprt.tally.Pairs[0], sprt.tally.Pairs[1],
			sprt.tally.Pairs[2],
			sprt.tally.Pairs[3], sprt.tally.Pairs[4],
		)
		fmt.Fprintf(out, "%-50s║\n", penta_str)
	}
	fmt.Fprintln(out, "╚═════════════════════════════════════════════════╝")
}
