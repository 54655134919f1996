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

package rules

// Result is the terminal outcome of a game. The zero value, Ongoing, means
// that the game is not over.
type Result uint8

const (
	Ongoing Result = iota

	WhiteCheckmates
	WhiteResigns
	BlackCheckmates
	BlackResigns
	Stalemate
	DrawAccepted
	DrawDeclared
)

// Results is the closed set of terminal results.
var Results = []Result{
	WhiteCheckmates,
	WhiteResigns,
	BlackCheckmates,
	BlackResigns,
	Stalemate,
	DrawAccepted,
	DrawDeclared,
}

// IsTerminal checks if the result ends the game.
func (result Result) IsTerminal() bool {
	return result >= WhiteCheckmates && result <= DrawDeclared
}

// IsDraw checks if the result is a drawn one.
func (result Result) IsDraw() bool {
	switch result {
	case Stalemate, DrawAccepted, DrawDeclared:
		return true
	default:
		return false
	}
}

// Winner returns the color which won the game. The boolean is false for
// draws and unfinished games.
func (result Result) Winner() (Color, bool) {
	switch result {
	case WhiteCheckmates, BlackResigns:
		return White, true
	case BlackCheckmates, WhiteResigns:
		return Black, true
	default:
		return White, false
	}
}

// Points returns the points scored by the given color: 1 for a win, 0 for
// a loss and half a point for a draw.
func (result Result) Points(color Color) float64 {
	if result.IsDraw() {
		return 0.5
	}

	if winner, decisive := result.Winner(); decisive && winner == color {
		return 1
	}

	return 0
}

// Method returns a short description of how the game ended.
func (result Result) Method() string {
	switch result {
	case WhiteCheckmates, BlackCheckmates:
		return "Checkmate"
	case WhiteResigns, BlackResigns:
		return "Resignation"
	case Stalemate:
		return "Stalemate"
	case DrawAccepted:
		return "Draw Accepted"
	case DrawDeclared:
		return "Draw Declared"
	default:
		return "Ongoing"
	}
}

// String returns the result in PGN notation.
func (result Result) String() string {
	switch result {
	case WhiteCheckmates, BlackResigns:
		return "1-0"
	case BlackCheckmates, WhiteResigns:
		return "0-1"
	case Stalemate, DrawAccepted, DrawDeclared:
		return "1/2-1/2"
	default:
		return "*"
	}
}
