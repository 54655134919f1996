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

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElo(t *testing.T) {
	lower, elo, upper := Elo(0, 0, 0)
	require.Zero(t, lower)
	require.Zero(t, elo)
	require.Zero(t, upper)

	lower, elo, upper = Elo(40, 20, 40)
	require.InDelta(t, 0, elo, 1e-9)
	require.Less(t, lower, elo)
	require.Greater(t, upper, elo)
	require.InDelta(t, upper-elo, elo-lower, 1e-9, "Even scores should have a symmetric interval")

	// A 75% score is worth about 190.8 elo.
	_, elo, _ = Elo(60, 30, 10)
	require.InDelta(t, 190.85, elo, 0.01)

	// More games narrow the interval.
	lower, elo, upper = Elo(600, 300, 100)
	require.InDelta(t, 190.85, elo, 0.01)
	require.Less(t, ErrorMargin(lower, elo, upper), 30.0)
}

func TestPentaElo(t *testing.T) {
	lower, elo, upper := PentaElo(10, 20, 40, 20, 10)
	require.InDelta(t, 0, elo, 1e-9)
	require.Less(t, lower, elo)
	require.Greater(t, upper, elo)

	_, elo, _ = PentaElo(0, 0, 10, 10, 10)
	require.Greater(t, elo, 0.0)

	_, elo, _ = PentaElo(0, 0, 0, 0, 0)
	require.Zero(t, elo)
}

func TestLOS(t *testing.T) {
	require.Equal(t, 0.5, LOS(0, 0))
	require.InDelta(t, 0.5, LOS(25, 25), 1e-9)
	require.Greater(t, LOS(60, 40), 0.9)
	require.Less(t, LOS(40, 60), 0.1)
}

func TestScoreToElo(t *testing.T) {
	require.Zero(t, ScoreToElo(0))
	require.Zero(t, ScoreToElo(1))
	require.InDelta(t, 0, ScoreToElo(0.5), 1e-9)
	require.InDelta(t, -ScoreToElo(0.25), ScoreToElo(0.75), 1e-9)
}

func TestStoppingBounds(t *testing.T) {
	lower, upper := StoppingBounds(0.05, 0.05)
	require.InDelta(t, -math.Log(19), lower, 1e-9)
	require.InDelta(t, math.Log(19), upper, 1e-9)

	require.Equal(t, AcceptH0, Decide(-3, lower, upper))
	require.Equal(t, AcceptH1, Decide(3, lower, upper))
	require.Equal(t, Continue, Decide(0, lower, upper))
	require.Equal(t, "H1 Accepted", AcceptH1.String())
}

func TestSPRT(t *testing.T) {
	// A player scoring evenly is closer to elo0 = 0 than to elo1 = 10.
	require.Less(t, SPRT(100, 100, 100, 0, 10), 0.0)

	// A player winning most of its games is much closer to elo1.
	lower, upper := StoppingBounds(0.05, 0.05)
	llr := SPRT(600, 200, 200, 0, 10)
	require.Greater(t, llr, 0.0)
	require.Equal(t, AcceptH1, Decide(llr, lower, upper))
}

func TestPentaSPRT(t *testing.T) {
	require.Zero(t, PentaSPRT(0, 0, 0, 0, 0, 0, 10))
	require.Zero(t, PentaSPRT(0, 0, 10, 0, 0, 0, 10), "No variance means no information")

	require.Less(t, PentaSPRT(10, 20, 40, 20, 10, 0, 10), 0.0)
	require.Greater(t, PentaSPRT(5, 10, 40, 60, 30, 0, 10), 0.0)
}
