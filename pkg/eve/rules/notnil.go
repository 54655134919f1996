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
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// NotnilEngine is an Engine backed by the github.com/notnil/chess library.
type NotnilEngine struct {
	game *chess.Game

	// moves and legal are parallel: legal[i] is moves[i] as a Move.
	moves []*chess.Move
	legal []Move
}

var _ Engine = (*NotnilEngine)(nil)

// NewNotnil creates a new NotnilEngine from the given FEN string.
func NewNotnil(fenstr string) (Engine, error) {
	option, err := chess.FEN(fenstr)
	if err != nil {
		return nil, fmt.Errorf("rules: invalid fen %q: %w", fenstr, err)
	}

	engine := &NotnilEngine{
		game: chess.NewGame(option),
	}

	engine.generate()
	return engine, nil
}

func (engine *NotnilEngine) generate() {
	engine.moves = engine.game.ValidMoves()
	engine.legal = make([]Move, len(engine.moves))
	for i, mov := range engine.moves {
		legal, err := ParseMove(mov.String())
		if err != nil {
			panic(fmt.Sprintf("rules: notnil generated an unreadable move: %v", err))
		}

		engine.legal[i] = legal
	}
}

func (engine *NotnilEngine) Position() Position {
	position := engine.game.Position()
	fen := position.String()

	side := White
	if position.Turn() == chess.Black {
		side = Black
	}

	// The half-move clock is the fifth field of the fen string.
	var clock int
	if fields := strings.Fields(fen); len(fields) == 6 {
		clock, _ = strconv.Atoi(fields[4])
	}

	return Position{
		FEN:        fen,
		SideToMove: side,
		Plys:       len(engine.game.Moves()),
		DrawClock:  clock,
	}
}

func (engine *NotnilEngine) LegalMoves() []Move {
	moves := make([]Move, len(engine.legal))
	copy(moves, engine.legal)
	return moves
}

func (engine *NotnilEngine) MakeMove(mov Move) error {
	for i, legal := range engine.legal {
		if legal == mov {
			if err := engine.game.Move(engine.moves[i]); err != nil {
				return fmt.Errorf("%w %s: %v", ErrIllegalMove, mov, err)
			}

			engine.generate()
			return nil
		}
	}

	return fmt.Errorf("%w %s", ErrIllegalMove, mov)
}

var notnilMethods = map[chess.Method]string{
	chess.Checkmate:            "Checkmate",
	chess.Resignation:          "Resignation",
	chess.DrawOffer:            "Draw Offer",
	chess.Stalemate:            "Stalemate",
	chess.ThreefoldRepetition:  "Threefold Repetition",
	chess.FivefoldRepetition:   "Fivefold Repetition",
	chess.FiftyMoveRule:        "50-move Rule",
	chess.SeventyFiveMoveRule:  "75-move Rule",
	chess.InsufficientMaterial: "Insufficient Material",
}

func (engine *NotnilEngine) Result() (Result, string) {
	outcome, method := engine.game.Outcome(), engine.game.Method()
	reason := notnilMethods[method]

	if outcome == chess.NoOutcome && len(engine.moves) == 0 {
		// Positions loaded from a fen string might not have been evaluated.
		method = engine.game.Position().Status()
		reason = notnilMethods[method]

		switch {
		case method == chess.Stalemate:
			return Stalemate, reason
		case method == chess.Checkmate && engine.Position().SideToMove == White:
			return BlackCheckmates, reason
		case method == chess.Checkmate:
			return WhiteCheckmates, reason
		}
	}

	switch {
	case outcome == chess.NoOutcome:
		return Ongoing, ""

	case method == chess.Checkmate && outcome == chess.WhiteWon:
		return WhiteCheckmates, reason
	case method == chess.Checkmate && outcome == chess.BlackWon:
		return BlackCheckmates, reason

	case method == chess.Resignation && outcome == chess.WhiteWon:
		return BlackResigns, reason
	case method == chess.Resignation && outcome == chess.BlackWon:
		return WhiteResigns, reason

	case method == chess.Stalemate:
		return Stalemate, reason
	case method == chess.DrawOffer:
		return DrawAccepted, reason
	}

	// Fivefold repetition, the 75-move rule and insufficient material are
	// drawn automatically by notnil.
	return DrawDeclared, reason
}

func (engine *NotnilEngine) CanClaimDraw() (bool, string) {
	for _, method := range engine.game.EligibleDraws() {
		switch method {
		case chess.ThreefoldRepetition, chess.FiftyMoveRule:
			return true, notnilMethods[method]
		}
	}

	return false, ""
}
