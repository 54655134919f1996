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

package tournament

import (
	"fmt"

	"laptudirm.com/x/sparring/pkg/eve/match"
	"laptudirm.com/x/sparring/pkg/eve/stats"
)

// Tally is the running score of an encounter, from the point of view of
// its first player.
type Tally struct {
	Wins, Losses, Draws int

	// Pairs is the pentanomial distribution of the results of game pairs,
	// indexed by match.PairResult.Index. Games 2k and 2k+1 form a pair.
	Pairs [5]int

	pending map[int]match.Score
}

// Add records the score of the numbered game.
func (tally *Tally) Add(number int, score match.Score) {
	switch score {
	case match.Win:
		tally.Wins++
	case match.Loss:
		tally.Losses++
	default:
		tally.Draws++
	}

	if tally.pending == nil {
		tally.pending = make(map[int]match.Score)
	}

	pair := number / 2
	if other, found := tally.pending[pair]; found {
		delete(tally.pending, pair)
		tally.Pairs[match.GetPairResult(score, other).Index()]++
		return
	}

	tally.pending[pair] = score
}

// Games returns the number of games recorded.
func (tally *Tally) Games() int {
	return tally.Wins + tally.Losses + tally.Draws
}

// Score returns the points scored, counting a draw as half a win.
func (tally *Tally) Score() float64 {
	return float64(tally.Wins) + float64(tally.Draws)/2
}

// WinRate returns the average points scored per game, in [0, 1].
func (tally *Tally) WinRate() float64 {
	if tally.Games() == 0 {
		return 0
	}

	return tally.Score() / float64(tally.Games())
}

// Elo returns the elo difference estimate with its 95% confidence bounds.
func (tally *Tally) Elo() (lower, elo, upper float64) {
	return stats.Elo(tally.Wins, tally.Draws, tally.Losses)
}

// PentaElo is like Elo, but uses the distribution of game pair results.
func (tally *Tally) PentaElo() (lower, elo, upper float64) {
	return stats.PentaElo(tally.Pairs[0], tally.Pairs[1], tally.Pairs[2], tally.Pairs[3], tally.Pairs[4])
}

// LLR returns the log-likelihood ratio of the hypotheses elo1 and elo0.
// The pentanomial model is used unless legacy is set.
func (tally *Tally) LLR(elo0, elo1 float64, legacy bool) float64 {
	if legacy {
		return stats.SPRT(tally.Wins, tally.Draws, tally.Losses, elo0, elo1)
	}

	return stats.PentaSPRT(tally.Pairs[0], tally.Pairs[1], tally.Pairs[2], tally.Pairs[3], tally.Pairs[4], elo0, elo1)
}

func (tally *Tally) String() string {
	return fmt.Sprintf("W: %d L: %d D: %d [%.3f]", tally.Wins, tally.Losses, tally.Draws, tally.WinRate())
}
