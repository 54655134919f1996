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

// Package stats implements the statistics used to compare two agents from
// the results of the games they played against each other.
package stats

import "math"

// Elo returns the likely elo difference of a player who scored the given
// number of wins, draws and losses, along with the lower and upper bounds
// of its 95% confidence interval.
func Elo(ws, ds, ls int) (lower float64, elo float64, upper float64) {
	N := float64(ws + ds + ls) // total number of games

	if N == 0 {
		return 0, 0, 0
	}

	w := float64(ws) / N // measured win probability
	d := float64(ds) / N // measured draw probability
	l := float64(ls) / N // measured loss probability

	// empirical mean of random variable
	mu := w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	return interval(mu, sigma)
}

// PentaElo is like Elo, but works on the pentanomial distribution of the
// results of game pairs: loss-loss, loss-draw, win-loss or draw-draw,
// win-draw and win-win.
func PentaElo(lls, lds, wldds, wds, wws int) (lower float64, elo float64, upper float64) {
	N := float64(lls + lds + wldds + wds + wws) // total number of pairs

	if N == 0 {
		return 0, 0, 0
	}

	mu, r := pentaMoments(lls, lds, wldds, wds, wws)
	return interval(mu, r/math.Sqrt(N))
}

// LOS returns the likelihood of superiority, the probability that a player
// with the given number of wins and losses is stronger than the opponent.
func LOS(ws, ls int) float64 {
	if ws+ls == 0 {
		return 0.5
	}

	return 0.5 + 0.5*math.Erf(float64(ws-ls)/math.Sqrt(2*float64(ws+ls)))
}

// ScoreToElo converts an expected score in (0, 1) to an elo difference.
// Scores of 0 and 1 have no finite elo difference, and are reported as 0.
func ScoreToElo(score float64) float64 {
	switch {
	case score <= 0, score >= 1:
		return 0

	default:
		return -400 * math.Log10(1/score-1)
	}
}

// ErrorMargin returns the larger distance of the two interval bounds from
// the elo estimate.
func ErrorMargin(lower, elo, upper float64) float64 {
	return math.Max(upper-elo, elo-lower)
}

func interval(mu, sigma float64) (lower float64, elo float64, upper float64) {
	muMin := mu + phiInv(0.025)*sigma
	muMax := mu + phiInv(0.975)*sigma

	return ScoreToElo(muMin), ScoreToElo(mu), ScoreToElo(muMax)
}

// pentaMoments returns the mean and the standard deviation of the score of
// a game pair with the given pentanomial distribution.
func pentaMoments(lls, lds, wldds, wds, wws int) (mu float64, r float64) {
	N := float64(lls + lds + wldds + wds + wws)

	ll := float64(lls) / N     // measured loss-loss probability
	ld := float64(lds) / N     // measured loss-draw probability
	wldd := float64(wldds) / N // measured win-loss/draw-draw probability
	wd := float64(wds) / N     // measured win-draw probability
	ww := float64(wws) / N     // measured win-win probability

	mu = ww + 0.75*wd + 0.5*wldd + 0.25*ld
	return mu, pentaDeviation(ll, ld, wldd, wd, ww, mu)
}

func pentaDeviation(ll, ld, wldd, wd, ww, mu float64) float64 {
	return math.Sqrt(
		ww*math.Pow(1-mu, 2) +
			wd*math.Pow(0.75-mu, 2) +
			wldd*math.Pow(0.5-mu, 2) +
			ld*math.Pow(0.25-mu, 2) +
			ll*math.Pow(0-mu, 2),
	)
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
