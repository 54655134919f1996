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

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/board/move"
	"laptudirm.com/x/mess/pkg/board/piece"
	"laptudirm.com/x/mess/pkg/formats/fen"
)

// MessEngine is an Engine backed by the mess chess library.
type MessEngine struct {
	board *board.Board

	// moves and legal are parallel: legal[i] is moves[i] as a Move.
	moves []move.Move
	legal []Move

	plys int
}

var _ Engine = (*MessEngine)(nil)

// NewMess creates a new MessEngine from the given FEN string.
func NewMess(fenstr string) (Engine, error) {
	// mess expects all six fields of the fen string to be present.
	if fields := strings.Fields(fenstr); len(fields) != 6 {
		return nil, fmt.Errorf("rules: invalid fen %q: expected 6 fields, found %d", fenstr, len(fields))
	}

	engine := &MessEngine{
		board: board.New(board.FEN(fen.FromString(fenstr))),
	}

	engine.generate()
	return engine, nil
}

func (engine *MessEngine) generate() {
	engine.moves = engine.board.GenerateMoves(false)
	engine.legal = make([]Move, len(engine.moves))
	for i, mov := range engine.moves {
		legal, err := ParseMove(mov.String())
		if err != nil {
			panic(fmt.Sprintf("rules: mess generated an unreadable move: %v", err))
		}

		engine.legal[i] = legal
	}
}

func (engine *MessEngine) sideToMove() Color {
	if engine.board.SideToMove == piece.White {
		return White
	}

	return Black
}

func (engine *MessEngine) Position() Position {
	fen := [6]string(engine.board.FEN())
	return Position{
		FEN:        strings.Join(fen[:], " "),
		SideToMove: engine.sideToMove(),
		Plys:       engine.plys,
		DrawClock:  int(engine.board.DrawClock),
	}
}

func (engine *MessEngine) LegalMoves() []Move {
	moves := make([]Move, len(engine.legal))
	copy(moves, engine.legal)
	return moves
}

func (engine *MessEngine) MakeMove(mov Move) error {
	for i, legal := range engine.legal {
		if legal == mov {
			engine.board.MakeMove(engine.moves[i])
			engine.plys++
			engine.generate()
			return nil
		}
	}

	return fmt.Errorf("%w %s", ErrIllegalMove, mov)
}

func (engine *MessEngine) Result() (Result, string) {
	if len(engine.moves) > 0 {
		return Ongoing, ""
	}

	if !engine.board.IsInCheck(engine.board.SideToMove) {
		return Stalemate, "Stalemate"
	}

	if engine.sideToMove() == White {
		return BlackCheckmates, "Checkmate"
	}

	return WhiteCheckmates, "Checkmate"
}

func (engine *MessEngine) CanClaimDraw() (bool, string) {
	switch {
	case engine.board.DrawClock >= 100:
		return true, "50-move Rule"
	case engine.board.IsThreefoldRepetition():
		return true, "Threefold Repetition"
	case engine.board.IsInsufficientMaterial():
		return true, "Insufficient Material"
	}

	return false, ""
}
