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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/rules"
	"laptudirm.com/x/sparring/pkg/eve/rules/rulestest"
)

// whiteWins is a rules backend in which White always wins.
func whiteWins(string) (rules.Engine, error) {
	engine := rulestest.New("a2a3", "h2h3")
	engine.Judge = rulestest.AfterPlys(3, rules.WhiteCheckmates)
	return engine, nil
}

func TestBattery(t *testing.T) {
	var out bytes.Buffer
	err := battery(context.Background(), &out, batteryOptions{
		games:       100,
		concurrency: 4,
		seed:        1,
		rules:       whiteWins,
	})
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		"MoveForward vs RandomAgent: MoveForward won 50.0%",
		"MoveBackward vs RandomAgent: MoveBackward won 50.0%",
		"MoveForward vs MoveBackward: MoveForward won 50.0%",
		"",
	}, "\n"), out.String())
}

func TestFormatMoves(t *testing.T) {
	require.Equal(t, "", formatMoves(0, nil))
	require.Equal(t, "1. e2e4 e7e5 2. g1f3", formatMoves(0, rulestest.Moves("e2e4", "e7e5", "g1f3")))
	require.Equal(t, "1... e7e5 2. g1f3", formatMoves(1, rulestest.Moves("e7e5", "g1f3")))

	moves := make([]string, 18)
	for i := range moves {
		moves[i] = "a2a3"
	}

	lines := strings.Split(formatMoves(0, rulestest.Moves(moves...)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "9. a2a3"))
}

func TestNewPlayersAreIndependent(t *testing.T) {
	random, err := agent.Lookup("random")
	require.NoError(t, err)

	moves := rulestest.Moves("a2a3", "b2b3", "c2c3", "d2d3", "e2e3", "f2f3", "g2g3", "h2h3")
	white := rules.Position{SideToMove: rules.White}
	black := rules.Position{SideToMove: rules.Black}

	_, alone := newPlayers(random, random, 5)
	var want []rules.Move
	for i := 0; i < 50; i++ {
		want = append(want, alone.PickMove(black, moves))
	}

	// Black's choices must not depend on how often White was asked.
	other, paired := newPlayers(random, random, 5)
	var got []rules.Move
	for i := 0; i < 50; i++ {
		other.PickMove(white, moves)
		got = append(got, paired.PickMove(black, moves))
	}

	require.Equal(t, want, got)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAgentsCommand(t *testing.T) {
	out, err := execute(t, "agents")
	require.NoError(t, err)

	for _, name := range []string{"random", "forward", "backward", "RandomAgent", "MoveForward", "MoveBackward"} {
		require.Contains(t, out, name)
	}
}

func TestPlayCommand(t *testing.T) {
	// White has already been mated by the fool's mate.
	out, err := execute(t, "play", "forward", "forward", "--seed", "3",
		"--fen", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	require.Contains(t, out, "MoveForward vs MoveForward")
	require.Contains(t, out, "0-1 {Checkmate}")

	_, err = execute(t, "play", "forward", "stockfish")
	require.Error(t, err)

	_, err = execute(t, "play", "forward", "random", "--rules", "shogi")
	require.Error(t, err)
}
