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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a tournament.
type Config struct {
	// Name of the tournament, used to name its results file.
	Name string `yaml:"name"`

	// The agents participating in the tournament.
	Agents []string `yaml:"agents"`

	// The rules backend used for every game.
	Rules string `yaml:"rules"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Seed of the tournament's random sources.
	Seed uint64 `yaml:"seed"`

	// round-robin or gauntlet. In a gauntlet the first agent plays against
	// every other agent.
	Scheduler string `yaml:"scheduler"`

	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games
	Rounds    int `yaml:"rounds"`     // Number of rounds to run the tournament for.
	GamePairs int `yaml:"game-pairs"` // Number of game pairs per encounter in every round.

	// Print the standings after every ReportEvery games.
	ReportEvery int `yaml:"report-every"`

	Openings OpeningConfig `yaml:"openings"`
}

// LoadConfig reads a tournament configuration from a YAML file. Missing
// values are replaced by their defaults.
func LoadConfig(file string) (Config, error) {
	var config Config

	data, err := os.ReadFile(file)
	if err != nil {
		return config, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("config: %s: %w", file, err)
	}

	if config.Name == "" {
		config.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	config.setDefaults()
	return config, config.validate()
}

func (config *Config) setDefaults() {
	if config.Name == "" {
		config.Name = "tournament"
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	if config.Rounds < 1 {
		config.Rounds = 1
	}

	if config.GamePairs < 1 {
		config.GamePairs = 1
	}

	if config.ReportEvery < 1 {
		config.ReportEvery = 5
	}
}

func (config *Config) validate() error {
	if len(config.Agents) < 2 {
		return fmt.Errorf("config: %s: at least 2 agents are needed, found %d", config.Name, len(config.Agents))
	}

	return nil
}
