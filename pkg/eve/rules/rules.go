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

// Package rules is the boundary between the self-play core and the chess
// rules libraries. The core never inspects a board directly: it asks an
// Engine for legal moves, hands it the chosen move and asks it whether the
// game is over.
package rules

import (
	"errors"
	"fmt"
	"sort"
)

// StartFEN is the standard starting position of chess.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrIllegalMove is returned by MakeMove when the move is not a member of
// the current legal move list.
var ErrIllegalMove = errors.New("rules: illegal move")

// Engine tracks the state of a single game of chess.
type Engine interface {
	// Position returns a snapshot of the current position. Snapshots are
	// values and are not affected by later moves.
	Position() Position

	// LegalMoves returns the legal moves in the current position. The
	// returned slice belongs to the caller.
	LegalMoves() []Move

	// MakeMove plays the given move, which must be one of the moves
	// returned by LegalMoves for the current position.
	MakeMove(Move) error

	// Result reports the game's result along with a reason, or Ongoing
	// if the game is not over yet.
	Result() (Result, string)

	// CanClaimDraw reports whether the side to move may claim a draw,
	// and on what grounds.
	CanClaimDraw() (bool, string)
}

// Backend creates a new Engine starting from the given FEN.
type Backend func(fen string) (Engine, error)

var backends = map[string]Backend{
	"mess":   NewMess,
	"notnil": NewNotnil,
}

// DefaultBackend is used when no backend is named.
const DefaultBackend = "mess"

// New creates an Engine using the named backend. An empty name selects the
// default backend, and an empty fen the standard starting position.
func New(backend, fen string) (Engine, error) {
	create, err := Lookup(backend)
	if err != nil {
		return nil, err
	}

	return create(fen)
}

// Lookup returns the named backend. An empty name selects the default
// backend. The returned Backend starts from the standard position when it
// is given an empty fen.
func Lookup(backend string) (Backend, error) {
	if backend == "" {
		backend = DefaultBackend
	}

	create, found := backends[backend]
	if !found {
		return nil, fmt.Errorf("rules: unknown backend %q", backend)
	}

	return func(fen string) (Engine, error) {
		if fen == "" {
			fen = StartFEN
		}

		return create(fen)
	}, nil
}

// Backends lists the names of the available backends.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Color is the color of a side.
type Color uint8

const (
	White Color = iota
	Black

	ColorN = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Position is an immutable snapshot of a game.
type Position struct {
	FEN        string
	SideToMove Color

	// Plys is the number of half-moves played since the game began.
	Plys int

	// DrawClock is the number of half-moves since the last capture or
	// pawn move.
	DrawClock int
}
