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

package agent

import "laptudirm.com/x/sparring/pkg/eve/rules"

// MoveForward ranks moves by how far they advance the moving piece towards
// the opponent's side of the board.
type MoveForward struct{}

func (MoveForward) RankMove(position rules.Position, mov rules.Move) int64 {
	return forwardShift(position, mov)
}

// MoveBackward ranks moves by how far they retreat the moving piece towards
// its own side of the board.
type MoveBackward struct{}

func (MoveBackward) RankMove(position rules.Position, mov rules.Move) int64 {
	return -forwardShift(position, mov)
}

// forwardShift is the number of ranks mov advances, from the point of view
// of the side to move.
func forwardShift(position rules.Position, mov rules.Move) int64 {
	shift := int64(mov.Target().Rank() - mov.Source().Rank())
	if position.SideToMove == rules.Black {
		return -shift
	}

	return shift
}
