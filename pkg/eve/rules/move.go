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

import (
	"fmt"
	"strings"
)

// Square is a square on the chessboard, numbered a1 = 0 to h8 = 63.
type Square uint8

// File returns the square's file, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the square's rank, 0 for the first rank.
func (sq Square) Rank() int {
	return int(sq) / 8
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

func parseSquare(str string) (Square, error) {
	if len(str) != 2 ||
		str[0] < 'a' || str[0] > 'h' ||
		str[1] < '1' || str[1] > '8' {
		return 0, fmt.Errorf("parse square: invalid square %q", str)
	}

	return Square((str[1]-'1')*8 + (str[0] - 'a')), nil
}

// Move is a single legal transition produced by an Engine. Moves are
// comparable, and two moves are equal iff they have the same source,
// target and promotion.
type Move struct {
	source, target Square

	// promotion is the lowercase piece letter of a promotion, 0 otherwise.
	promotion byte
}

// ParseMove parses a move in UCI long algebraic notation, like e2e4 or
// a7a8q. It is meant for Engine implementations, which are the only ones
// that should be creating moves.
func ParseMove(str string) (Move, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if len(str) != 4 && len(str) != 5 {
		return Move{}, fmt.Errorf("parse move: invalid move %q", str)
	}

	source, err := parseSquare(str[:2])
	if err != nil {
		return Move{}, err
	}

	target, err := parseSquare(str[2:4])
	if err != nil {
		return Move{}, err
	}

	move := Move{source: source, target: target}
	if len(str) == 5 {
		if !strings.ContainsRune("nbrq", rune(str[4])) {
			return Move{}, fmt.Errorf("parse move: invalid promotion in %q", str)
		}

		move.promotion = str[4]
	}

	return move, nil
}

// Source returns the square the moving piece leaves.
func (move Move) Source() Square {
	return move.source
}

// Target returns the square the moving piece lands on.
func (move Move) Target() Square {
	return move.target
}

// Promotion returns the lowercase letter of the promoted piece, or 0.
func (move Move) Promotion() byte {
	return move.promotion
}

func (move Move) String() string {
	str := move.source.String() + move.target.String()
	if move.promotion != 0 {
		str += string(move.promotion)
	}

	return str
}
