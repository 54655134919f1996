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

package sprt

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/sparring/pkg/eve/rules"
	"laptudirm.com/x/sparring/pkg/eve/rules/rulestest"
	"laptudirm.com/x/sparring/pkg/eve/stats"
)

// advanceWins is a rules backend in which the game is won by White if it
// starts with a double pawn push, and by Black otherwise. MoveForward wins
// every game against MoveBackward in it.
func advanceWins(string) (rules.Engine, error) {
	engine := rulestest.New("e2e4", "e1f1")
	engine.Judge = func(history []rules.Move) rules.Result {
		switch {
		case len(history) < 2:
			return rules.Ongoing
		case history[0].String() == "e2e4":
			return rules.WhiteCheckmates
		default:
			return rules.BlackCheckmates
		}
	}

	return engine, nil
}

// whiteWins is a rules backend in which White always wins.
func whiteWins(string) (rules.Engine, error) {
	engine := rulestest.New("a2a3")
	engine.Judge = rulestest.AfterPlys(1, rules.WhiteCheckmates)
	return engine, nil
}

func newTest(t *testing.T, config Config, backend rules.Backend) (*SPRT, *bytes.Buffer) {
	t.Helper()

	test, err := New(config)
	require.NoError(t, err)

	var out bytes.Buffer
	test.Output = &out
	test.Backend = backend
	return test, &out
}

func config(one, two string) Config {
	return Config{
		Agents:      [2]string{one, two},
		Concurrency: 2,
		Elo0:        0,
		Elo1:        10,
		Alpha:       0.05,
		Beta:        0.05,
		MaxGames:    1000,
	}
}

func TestAcceptH1(t *testing.T) {
	c := config("forward", "backward")
	c.Legacy = true

	test, out := newTest(t, c, advanceWins)
	decision, err := test.Start(context.Background())
	require.NoError(t, err)

	require.Equal(t, stats.AcceptH1, decision)
	tally := test.Tally()
	require.Less(t, tally.Games(), c.MaxGames)
	require.Equal(t, tally.Games(), tally.Wins)
	require.Contains(t, out.String(), "H1 Accepted")
}

func TestAcceptH0(t *testing.T) {
	c := config("backward", "forward")
	c.Legacy = true

	test, out := newTest(t, c, advanceWins)
	decision, err := test.Start(context.Background())
	require.NoError(t, err)

	require.Equal(t, stats.AcceptH0, decision)
	tally := test.Tally()
	require.Equal(t, tally.Games(), tally.Losses)
	require.Contains(t, out.String(), "H0 Accepted")
}

func TestMaxGames(t *testing.T) {
	c := config("random", "random")
	c.MaxGames = 20

	test, out := newTest(t, c, whiteWins)
	decision, err := test.Start(context.Background())
	require.NoError(t, err)

	// Every pair is a win and a loss, which carries no information.
	require.Equal(t, stats.Continue, decision)
	tally := test.Tally()
	require.Equal(t, 20, tally.Games())
	require.Equal(t, 10, tally.Pairs[2])
	require.Contains(t, out.String(), "PENTA | [0, 0, 10, 0, 0]")
}

func TestSave(t *testing.T) {
	c := config("random", "random")
	c.MaxGames = 10

	test, _ := newTest(t, c, whiteWins)
	_, err := test.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, "random-vs-random", test.Name)

	file := filepath.Join(t.TempDir(), "sprt.yaml")
	require.NoError(t, test.Save(file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var saved struct {
		Config Config `yaml:"config"`
		State  State  `yaml:"state"`
	}

	require.NoError(t, yaml.Unmarshal(data, &saved))
	require.Equal(t, test.Config, saved.Config)
	require.Equal(t, 5, saved.State.Wins)
	require.Equal(t, 5, saved.State.Losses)
	require.Equal(t, "Continue", saved.State.Decision)
}

func TestNewErrors(t *testing.T) {
	bad := config("forward", "random")
	bad.Alpha = 0
	_, err := New(bad)
	require.Error(t, err)

	bad = config("forward", "random")
	bad.Elo0, bad.Elo1 = 5, 0
	_, err = New(bad)
	require.Error(t, err)

	_, err = New(config("forward", "stockfish"))
	require.Error(t, err)

	bad = config("forward", "random")
	bad.Rules = "go"
	_, err = New(bad)
	require.Error(t, err)
}
