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

package match

import "laptudirm.com/x/sparring/pkg/eve/rules"

// Score is the result of a game from the point of view of one player.
type Score int

const (
	Win  Score = +1
	Draw Score = 0
	Loss Score = -1
)

// ScoreFor converts a game result to the score of the player who played
// with the given color.
func ScoreFor(result rules.Result, color rules.Color) Score {
	switch result.Points(color) {
	case 1:
		return Win
	case 0:
		return Loss
	default:
		return Draw
	}
}

// Points returns the points the score is worth: 1 for a win, 0 for a loss
// and half a point for a draw.
func (score Score) Points() float64 {
	return float64(score+1) / 2
}

func (score Score) String() string {
	switch score {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// PairResult is the combined score of a pair of games, in which each
// player played each color once.
type PairResult int

const (
	LossLoss = PairResult(Loss + Loss) // Player 2 Double kills
	DrawLoss = PairResult(Draw + Loss) // Player 2 Wins and Holds
	DrawDraw = PairResult(Draw + Draw) // Win-Loss or Draw-Draw
	WinDraw  = PairResult(Win + Draw)  // Player 1 Wins and Holds
	WinWin   = PairResult(Win + Win)   // Player 1 Double kills
)

// GetPairResult combines the scores of two games from the same player's
// point of view.
func GetPairResult(result1, result2 Score) PairResult {
	return PairResult(result1 + result2)
}

// Index returns the position of the pair result in a pentanomial
// distribution, from LossLoss at 0 to WinWin at 4.
func (pair PairResult) Index() int {
	return int(pair - LossLoss)
}
