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

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/rand"

	"laptudirm.com/x/sparring/internal/util"
)

// Factory creates fresh instances of an Agent. Every game gets its own
// instance so that no agent state is shared between games.
type Factory struct {
	// Name is the agent's display name.
	Name string

	// Description is a one line summary of the agent's strategy.
	Description string

	// New creates a new agent which draws its randomness from rng.
	New func(rng *rand.Rand) Agent
}

func (factory Factory) String() string {
	return factory.Name
}

// Registry maps agent identifiers to their factories.
var Registry = map[string]Factory{
	"random": {
		Name:        "RandomAgent",
		Description: "Plays a uniformly random legal move",
		New: func(rng *rand.Rand) Agent {
			return NewRandom(rng)
		},
	},

	"forward": {
		Name:        "MoveForward",
		Description: "Advances a piece as far as possible towards the opponent",
		New: func(rng *rand.Rand) Agent {
			return Rank(MoveForward{}, rng)
		},
	},

	"backward": {
		Name:        "MoveBackward",
		Description: "Retreats a piece as far as possible towards its own side",
		New: func(rng *rand.Rand) Agent {
			return Rank(MoveBackward{}, rng)
		},
	},
}

// Lookup finds the Factory of the agent with the given identifier or
// display name. Names are case insensitive.
func Lookup(name string) (Factory, error) {
	if factory, found := Registry[strings.ToLower(name)]; found {
		return factory, nil
	}

	for _, factory := range Registry {
		if strings.EqualFold(factory.Name, name) {
			return factory, nil
		}
	}

	return Factory{}, fmt.Errorf("agent: unknown agent %q", name)
}

// Names returns the identifiers of the registered agents in natural order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return util.AlphanumLess(names[i], names[j])
	})

	return names
}
