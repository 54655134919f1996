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

package stats

import "math"

// Decision is the state of a sequential probability ratio test.
type Decision int

const (
	Continue Decision = iota // Not enough data yet.
	AcceptH0                 // The null hypothesis elo0 is more likely.
	AcceptH1                 // The alternate hypothesis elo1 is more likely.
)

func (decision Decision) String() string {
	switch decision {
	case AcceptH0:
		return "H0 Accepted"
	case AcceptH1:
		return "H1 Accepted"
	default:
		return "Continue"
	}
}

// StoppingBounds returns the log-likelihood ratios at which a test with
// the given type I and type II error probabilities accepts H0 and H1.
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// Decide checks the log-likelihood ratio against the stopping bounds.
func Decide(llr, lower, upper float64) Decision {
	switch {
	case llr <= lower:
		return AcceptH0
	case llr >= upper:
		return AcceptH1
	default:
		return Continue
	}
}

// SPRT does a statistical probability ratio test calculation on the given
// number of wins, draws, and losses and returns the log-likelihood ratio
// (llr) for whether elo0 or elo1 is more likely to be correct.
func SPRT(ws, ds, ls int, elo0, elo1 float64) (llr float64) {
	// Implement Dirichlet([0.5, 0.5, 0.5]) prior
	w := float64(ws) + 0.5
	d := float64(ds) + 0.5
	l := float64(ls) + 0.5

	N := w + d + l // total number of games
	_, dlo := wdlToElo(w/N, d/N, l/N)

	w0, d0, l0 := eloToWDL(elo0, dlo) // elo0 WDL probabilities
	w1, d1, l1 := eloToWDL(elo1, dlo) // elo1 WDL probabilities

	return w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0)
}

// PentaSPRT is like SPRT, but works on the pentanomial distribution of the
// results of game pairs.
func PentaSPRT(lls, lds, wldds, wds, wws int, elo0, elo1 float64) (llr float64) {
	N := float64(lls + lds + wldds + wds + wws) // total number of pairs

	if N == 0 {
		return 0
	}

	ll := float64(lls) / N
	ld := float64(lds) / N
	wldd := float64(wldds) / N
	wd := float64(wds) / N
	ww := float64(wws) / N

	// standard deviation (multiplied by sqrt of N) of a pair score
	_, r := pentaMoments(lls, lds, wldds, wds, wws)
	if r == 0 {
		return 0
	}

	// convert elo bounds to score
	mu0 := neloToScore(elo0, r)
	mu1 := neloToScore(elo1, r)

	r0 := pentaDeviation(ll, ld, wldd, wd, ww, mu0)
	r1 := pentaDeviation(ll, ld, wldd, wd, ww, mu1)

	if r0 == 0 || r1 == 0 {
		return 0
	}

	// A simplified yet very accurate approximation of the exact llr, see
	// http://hardy.uhasselt.be/Fishtest/support_MLE_multinomial.pdf
	return 0.5 * N * math.Log(r0/r1)
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

// wdlToElo converts the wdl probabilities to its bayesian elo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func neloToScore(nelo, r float64) float64 {
	return nelo*math.Sqrt2*r/(800/math.Ln10) + 0.5
}
