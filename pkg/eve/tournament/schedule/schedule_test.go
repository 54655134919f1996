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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func encounters(scheduler Scheduler, n int) [][2]int {
	scheduler.Initialize(n)

	var pairs [][2]int
	for i := 0; i < scheduler.TotalEncounters(); i++ {
		p1, p2 := scheduler.NextEncounter()
		pairs = append(pairs, [2]int{p1, p2})
	}

	return pairs
}

func TestRoundRobin(t *testing.T) {
	for n := 2; n <= 9; n++ {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			seen := map[[2]int]bool{}
			for _, pair := range encounters(&RoundRobin{}, n) {
				p1, p2 := pair[0], pair[1]
				require.NotEqual(t, p1, p2)
				require.True(t, p1 >= 0 && p1 < n && p2 >= 0 && p2 < n)

				if p1 > p2 {
					p1, p2 = p2, p1
				}

				require.False(t, seen[[2]int{p1, p2}], "%d vs %d scheduled twice", p1, p2)
				seen[[2]int{p1, p2}] = true
			}

			require.Len(t, seen, n*(n-1)/2)
		})
	}
}

func TestRoundRobinReinitialize(t *testing.T) {
	rr := &RoundRobin{}
	require.Equal(t, encounters(rr, 5), encounters(rr, 5))
}

func TestGauntlet(t *testing.T) {
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}}, encounters(&Gauntlet{}, 4))
	require.Empty(t, encounters(&Gauntlet{}, 1))
}

func TestNew(t *testing.T) {
	for name, want := range map[string]Scheduler{
		"":            &RoundRobin{},
		"round-robin": &RoundRobin{},
		"gauntlet":    &Gauntlet{},
	} {
		scheduler, err := New(name)
		require.NoError(t, err)
		require.IsType(t, want, scheduler)
	}

	_, err := New("swiss")
	require.Error(t, err)
}
