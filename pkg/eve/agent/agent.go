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

// Package agent contains the move picking strategies which play games.
package agent

import (
	"sort"

	"golang.org/x/exp/rand"

	"laptudirm.com/x/sparring/pkg/eve/rules"
)

// Agent picks a move to play in a position.
type Agent interface {
	// PickMove returns one of the given moves. The moves are the legal
	// moves in the given position, and are never empty.
	PickMove(position rules.Position, moves []rules.Move) rules.Move
}

// Ranker scores a single move in a position. Higher scores are better. A
// move's score must not depend on the other moves available.
type Ranker interface {
	RankMove(position rules.Position, mov rules.Move) int64
}

// Ranked is an Agent which plays the highest ranked move of a Ranker. Ties
// are broken uniformly at random.
type Ranked struct {
	Ranker Ranker

	rng *rand.Rand
}

var _ Agent = (*Ranked)(nil)

// Rank lifts the given Ranker into an Agent.
func Rank(ranker Ranker, rng *rand.Rand) *Ranked {
	return &Ranked{Ranker: ranker, rng: rng}
}

type candidate struct {
	move     rules.Move
	rank     int64
	tiebreak uint64
}

func (agent *Ranked) PickMove(position rules.Position, moves []rules.Move) rules.Move {
	mustHaveMoves(moves)

	candidates := make([]candidate, len(moves))
	for i, mov := range moves {
		candidates[i].move = mov
	}

	// Break any bias from the move generator's ordering.
	agent.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i := range candidates {
		candidates[i].rank = agent.Ranker.RankMove(position, candidates[i].move)
		candidates[i].tiebreak = agent.rng.Uint64()
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}

		return a.tiebreak < b.tiebreak
	})

	return candidates[len(candidates)-1].move
}

// Random is an Agent which plays a uniformly random move.
type Random struct {
	rng *rand.Rand
}

var _ Agent = (*Random)(nil)

// NewRandom creates a new Random agent drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (agent *Random) PickMove(position rules.Position, moves []rules.Move) rules.Move {
	mustHaveMoves(moves)

	shuffled := make([]rules.Move, len(moves))
	copy(shuffled, moves)
	agent.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[0]
}

// mustHaveMoves panics on an empty move list: agents are never asked to
// move in a finished game.
func mustHaveMoves(moves []rules.Move) {
	if len(moves) == 0 {
		panic("agent: asked to pick a move from an empty move list")
	}
}
