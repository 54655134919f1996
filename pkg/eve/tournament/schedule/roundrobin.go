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

package schedule

import "slices"

// RoundRobin makes every player meet every other player once per round,
// using the circle method. With an odd number of players a phantom player
// is added, and encounters against it are skipped.
type RoundRobin struct {
	player_count int
	pair_number  int

	circle_top, circle_bottom []int
}

func (rr *RoundRobin) Initialize(n int) {
	rr.player_count = n
	rounded_total := n + n%2

	rr.circle_top = make([]int, rounded_total/2)
	rr.circle_bottom = make([]int, rounded_total/2)

	for i := 0; i < rounded_total/2; i++ {
		rr.circle_top[i] = i
		rr.circle_bottom[i] = rounded_total - i - 1
	}

	rr.pair_number = 0
}

func (rr *RoundRobin) NextEncounter() (int, int) {
	for {
		if rr.pair_number >= len(rr.circle_top) {
			rr.rotate()
		}

		player1 := rr.circle_top[rr.pair_number]
		player2 := rr.circle_bottom[rr.pair_number]
		rr.pair_number++

		if player1 < rr.player_count && player2 < rr.player_count {
			return player1, player2
		}
	}
}

// rotate turns the circle by one place, keeping the first player fixed.
func (rr *RoundRobin) rotate() {
	rr.pair_number = 0

	last_idx := len(rr.circle_top) - 1
	last_elem := rr.circle_top[last_idx]

	rr.circle_top = slices.Insert(rr.circle_top, 1, rr.circle_bottom[0])[:last_idx+1]
	rr.circle_bottom = append(rr.circle_bottom[1:], last_elem)
}

func (rr *RoundRobin) TotalEncounters() int {
	return rr.player_count * (rr.player_count - 1) / 2
}
