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

// Package match plays a single game between two agents.
package match

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/rules"
)

var (
	// ErrIllegalMove means an agent picked a move which the rules engine
	// refused to play. It points to a bug in the agent.
	ErrIllegalMove = errors.New("match: illegal move selected")

	// ErrNoResult means the rules engine reported no legal moves in a
	// position which it did not consider to be terminal.
	ErrNoResult = errors.New("match: no legal moves in an unfinished game")
)

// Outcome is the record of a finished game.
type Outcome struct {
	Result rules.Result
	Reason string

	// Moves lists the moves played, and FinalFEN is the position they
	// lead to.
	Moves    []rules.Move
	FinalFEN string
}

// Plys returns the number of half-moves played in the game.
func (outcome Outcome) Plys() int {
	return len(outcome.Moves)
}

func (outcome Outcome) String() string {
	return fmt.Sprintf("%s (%s)", outcome.Result, outcome.Reason)
}

// Play plays a game to completion on the given engine. White moves when
// the engine says White is to move, Black otherwise. The error is non-nil
// only if the game was aborted because of a broken invariant.
func Play(engine rules.Engine, white, black agent.Agent) (Outcome, error) {
	players := [rules.ColorN]agent.Agent{
		rules.White: white,
		rules.Black: black,
	}

	var outcome Outcome
	for {
		// Checkmate and stalemate take precedence over everything else.
		if result, reason := engine.Result(); result != rules.Ongoing {
			outcome.Result, outcome.Reason = result, reason
			break
		}

		if claim, reason := engine.CanClaimDraw(); claim {
			outcome.Result, outcome.Reason = rules.DrawDeclared, reason
			break
		}

		position := engine.Position()

		moves := engine.LegalMoves()
		if len(moves) == 0 {
			return outcome, fmt.Errorf("%w: ply %d: %s", ErrNoResult, len(outcome.Moves)+1, position.FEN)
		}

		mov := players[position.SideToMove].PickMove(position, moves)
		logrus.Tracef("ply %d: %s plays %s", len(outcome.Moves)+1, position.SideToMove, mov)

		if err := engine.MakeMove(mov); err != nil {
			return outcome, fmt.Errorf("%w: ply %d: %s played %s in %s: %v",
				ErrIllegalMove, len(outcome.Moves)+1, position.SideToMove, mov, position.FEN, err)
		}

		outcome.Moves = append(outcome.Moves, mov)
	}

	outcome.FinalFEN = engine.Position().FEN
	return outcome, nil
}
