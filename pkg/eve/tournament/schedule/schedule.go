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

// Package schedule decides which players meet each other in a tournament
// round.
package schedule

import "fmt"

// New returns the scheduler with the given name. An empty name selects
// round-robin.
func New(name string) (Scheduler, error) {
	switch name {
	case "round-robin", "":
		return &RoundRobin{}, nil
	case "gauntlet":
		return &Gauntlet{}, nil
	default:
		return nil, fmt.Errorf("schedule: invalid scheduler %q", name)
	}
}

// Scheduler produces the encounters of a single tournament round.
type Scheduler interface {
	// Initialize starts a new round between n players.
	Initialize(n int)

	// NextEncounter returns the indices of the players who meet next.
	// It must be called at most TotalEncounters times per round.
	NextEncounter() (int, int)

	// TotalEncounters returns the number of encounters in a round.
	TotalEncounters() int
}

// Gauntlet pits the first player against every other player.
type Gauntlet struct {
	player_count int
	opponent     int
}

func (g *Gauntlet) Initialize(n int) {
	g.player_count = n
	g.opponent = 0
}

func (g *Gauntlet) NextEncounter() (int, int) {
	g.opponent++
	return 0, g.opponent
}

func (g *Gauntlet) TotalEncounters() int {
	if g.player_count < 2 {
		return 0
	}

	return g.player_count - 1
}
