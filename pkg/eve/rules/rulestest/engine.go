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

// Package rulestest provides a scripted rules.Engine for tests.
package rulestest

import (
	"fmt"
	"strings"

	"laptudirm.com/x/sparring/pkg/eve/rules"
)

// Engine is a scripted rules.Engine. Every ply the side to move is offered
// Moves, and the game's status is decided from the moves played so far by
// the Judge and Claim functions.
type Engine struct {
	// Moves are the legal moves offered every ply, until Judge reports a
	// terminal result.
	Moves []rules.Move

	// Judge returns the result of the game after the given moves. A nil
	// Judge never ends the game.
	Judge func(history []rules.Move) rules.Result

	// Claim reports whether a draw can be claimed after the given moves.
	// A nil Claim never allows a claim.
	Claim func(history []rules.Move) bool

	// History lists the moves played, in order.
	History []rules.Move

	// Call counters, for asserting on how the engine was driven.
	ResultCalls, ClaimCalls, LegalCalls, MakeCalls int
}

var _ rules.Engine = (*Engine)(nil)

// New returns an Engine offering the given UCI moves every ply.
func New(moves ...string) *Engine {
	return &Engine{Moves: Moves(moves...)}
}

// Moves parses the given UCI moves, panicking on malformed ones.
func Moves(moves ...string) []rules.Move {
	parsed := make([]rules.Move, len(moves))
	for i, str := range moves {
		mov, err := rules.ParseMove(str)
		if err != nil {
			panic(err)
		}

		parsed[i] = mov
	}

	return parsed
}

func (engine *Engine) result() rules.Result {
	if engine.Judge == nil {
		return rules.Ongoing
	}

	return engine.Judge(engine.History)
}

func (engine *Engine) Position() rules.Position {
	side := rules.White
	if len(engine.History)%2 == 1 {
		side = rules.Black
	}

	played := make([]string, len(engine.History))
	for i, mov := range engine.History {
		played[i] = mov.String()
	}

	return rules.Position{
		FEN:        "scripted " + strings.Join(played, " "),
		SideToMove: side,
		Plys:       len(engine.History),
	}
}

func (engine *Engine) LegalMoves() []rules.Move {
	engine.LegalCalls++
	if engine.result() != rules.Ongoing {
		return nil
	}

	moves := make([]rules.Move, len(engine.Moves))
	copy(moves, engine.Moves)
	return moves
}

func (engine *Engine) MakeMove(mov rules.Move) error {
	engine.MakeCalls++
	if engine.result() == rules.Ongoing {
		for _, legal := range engine.Moves {
			if legal == mov {
				engine.History = append(engine.History, mov)
				return nil
			}
		}
	}

	return fmt.Errorf("%w %s", rules.ErrIllegalMove, mov)
}

func (engine *Engine) Result() (rules.Result, string) {
	engine.ResultCalls++
	result := engine.result()
	if result == rules.Ongoing {
		return result, ""
	}

	return result, result.Method()
}

func (engine *Engine) CanClaimDraw() (bool, string) {
	engine.ClaimCalls++
	if engine.Claim != nil && engine.Claim(engine.History) {
		return true, "Scripted Claim"
	}

	return false, ""
}

// AfterPlys returns a Judge which ends the game with result once the given
// number of plys have been played.
func AfterPlys(plys int, result rules.Result) func([]rules.Move) rules.Result {
	return func(history []rules.Move) rules.Result {
		if len(history) >= plys {
			return result
		}

		return rules.Ongoing
	}
}
