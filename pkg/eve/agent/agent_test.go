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

package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"laptudirm.com/x/sparring/pkg/eve/rules"
	"laptudirm.com/x/sparring/pkg/eve/rules/rulestest"
)

var (
	white = rules.Position{SideToMove: rules.White}
	black = rules.Position{SideToMove: rules.Black}
)

// constant ranks every move the same.
type constant struct{}

func (constant) RankMove(rules.Position, rules.Move) int64 { return 0 }

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestPickMoveReturnsInput(t *testing.T) {
	moves := rulestest.Moves("e2e4", "d2d4", "g1f3", "b1c3", "e1e2")
	agents := map[string]Agent{
		"random":   NewRandom(newRNG(1)),
		"forward":  Rank(MoveForward{}, newRNG(2)),
		"backward": Rank(MoveBackward{}, newRNG(3)),
		"constant": Rank(constant{}, newRNG(4)),
	}

	for name, agent := range agents {
		for i := 0; i < 100; i++ {
			original := append([]rules.Move(nil), moves...)
			picked := agent.PickMove(white, moves)

			require.Contains(t, moves, picked, "%s picked a move outside the legal set", name)
			require.Equal(t, original, moves, "%s reordered the legal set", name)
		}
	}
}

func TestPickMoveEmpty(t *testing.T) {
	require.Panics(t, func() { NewRandom(newRNG(1)).PickMove(white, nil) })
	require.Panics(t, func() { Rank(MoveForward{}, newRNG(1)).PickMove(white, []rules.Move{}) })
}

func TestRankedPicksUniqueMaximum(t *testing.T) {
	moves := rulestest.Moves("e2e3", "a2a3", "e2e4", "h2h3", "e1f1", "b1d2")
	for _, m := range moves {
		if m.String() != "e2e4" {
			require.Less(t, MoveForward{}.RankMove(white, m), int64(2), m.String())
		}

		if m.String() != "e1f1" {
			require.Greater(t, MoveForward{}.RankMove(white, m), int64(0), m.String())
		}
	}

	forward := Rank(MoveForward{}, newRNG(7))
	backward := Rank(MoveBackward{}, newRNG(8))

	for i := 0; i < 500; i++ {
		require.Equal(t, "e2e4", forward.PickMove(white, moves).String(),
			"MoveForward should always pick the only double step")
		require.Equal(t, "e1f1", backward.PickMove(white, moves).String(),
			"MoveBackward should always pick the only sideways move")
	}
}

func TestRankedTieBreakIsUniform(t *testing.T) {
	const trials = 4000

	// Both moves advance a single rank.
	moves := rulestest.Moves("a2a3", "h2h3")
	forward := Rank(MoveForward{}, newRNG(11))

	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		counts[forward.PickMove(white, moves).String()]++
	}

	require.Len(t, counts, 2)
	for mov, count := range counts {
		require.InDelta(t, trials/2, count, trials/10, "%s picked %d times out of %d", mov, count, trials)
	}
}

func TestRandomIsUniform(t *testing.T) {
	const trials = 6000

	moves := rulestest.Moves("a2a3", "b2b3", "c2c3")
	random := NewRandom(newRNG(13))

	counts := map[rules.Move]int{}
	for i := 0; i < trials; i++ {
		counts[random.PickMove(white, moves)]++
	}

	for _, mov := range moves {
		require.InDelta(t, trials/3, counts[mov], trials/15, "%s picked %d times", mov, counts[mov])
	}
}

func TestSeededAgentsRepeat(t *testing.T) {
	moves := rulestest.Moves("a2a3", "b2b3", "c2c3", "d2d3", "e2e3")
	one, two := Rank(constant{}, newRNG(42)), Rank(constant{}, newRNG(42))

	for i := 0; i < 50; i++ {
		require.Equal(t, one.PickMove(white, moves), two.PickMove(white, moves))
	}
}

// mirror reflects a move across the middle of the board.
func mirror(t *testing.T, mov rules.Move) rules.Move {
	t.Helper()

	str := mov.String()
	reflected := fmt.Sprintf("%c%c%c%c", str[0], '1'+'8'-str[1], str[2], '1'+'8'-str[3])
	return rulestest.Moves(reflected + str[4:])[0]
}

func TestOrientationSymmetry(t *testing.T) {
	moves := rulestest.Moves("e2e4", "d2d3", "g1f3", "b1a3", "c1h6", "d1d2", "e1f1", "f1b5")
	// c1h6 advances the furthest, and e1f1 is the only move which does
	// not advance at all.
	reflected := make([]rules.Move, len(moves))
	for i, mov := range moves {
		reflected[i] = mirror(t, mov)
	}

	forward := func(position rules.Position, moves []rules.Move) rules.Move {
		return Rank(MoveForward{}, newRNG(21)).PickMove(position, moves)
	}

	backward := func(position rules.Position, moves []rules.Move) rules.Move {
		return Rank(MoveBackward{}, newRNG(22)).PickMove(position, moves)
	}

	// Reflecting the board and swapping colours preserves the choice.
	require.Equal(t, "c1h6", forward(white, moves).String())
	require.Equal(t, mirror(t, forward(white, moves)), forward(black, reflected))
	require.Equal(t, mirror(t, backward(white, moves)), backward(black, reflected))

	// Swapping only the colours turns forwards into backwards.
	require.Equal(t, "e1f1", backward(white, moves).String())
	require.Equal(t, backward(white, moves), forward(black, moves))
	require.Equal(t, forward(white, moves), backward(black, moves))
}

func TestDirectionRanks(t *testing.T) {
	mov := rulestest.Moves("e2e4")[0]
	require.EqualValues(t, 2, MoveForward{}.RankMove(white, mov))
	require.EqualValues(t, -2, MoveForward{}.RankMove(black, mov))
	require.EqualValues(t, -2, MoveBackward{}.RankMove(white, mov))
	require.EqualValues(t, 2, MoveBackward{}.RankMove(black, mov))
}

func TestRegistry(t *testing.T) {
	require.Equal(t, []string{"backward", "forward", "random"}, Names())

	for _, name := range []string{"forward", "MoveForward", "FORWARD"} {
		factory, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, "MoveForward", factory.String())
	}

	_, err := Lookup("stockfish")
	require.Error(t, err)

	factory, err := Lookup("random")
	require.NoError(t, err)
	one, two := factory.New(newRNG(1)), factory.New(newRNG(1))
	require.NotSame(t, one, two, "Factories should create fresh agents")
}
