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

package tournament

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/sparring/pkg/eve/agent"
	"laptudirm.com/x/sparring/pkg/eve/match"
	"laptudirm.com/x/sparring/pkg/eve/rules"
)

// Game describes a single game to be played.
type Game struct {
	// Round and Number identify the game. Number is 0-based and unique
	// within a run.
	Round, Number int

	// White and Black are indices into the participating players.
	White, Black int

	// FEN is the starting position, empty for the standard one.
	FEN string

	// Seed is the seed of the game's random sources.
	Seed uint64
}

// GameResult is a finished Game.
type GameResult struct {
	*Game
	Names [rules.ColorN]string

	match.Outcome
}

func (result GameResult) String() string {
	if winner, decisive := result.Result.Winner(); decisive {
		return fmt.Sprintf("%s wins by %s", result.Names[winner], result.Reason)
	}

	return fmt.Sprintf("Draw by %s", result.Reason)
}

// seedFor derives the seed of one of the random sources of a game. The
// derived seeds depend only on the run's seed and the game number, so a
// run gives the same results no matter how its games are scheduled.
func seedFor(seed uint64, number int, color rules.Color) uint64 {
	return splitmix(seed ^ splitmix(uint64(number)<<1|uint64(color)))
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// pool plays games between the given players on a fixed number of worker
// goroutines.
type pool struct {
	rules       rules.Backend
	players     []agent.Factory
	concurrency int
}

// run plays the games sent by schedule, and passes their results to handle
// one at a time. Returning true from handle stops the run early: games
// still in flight are discarded. The first error aborts the whole run.
func (pool *pool) run(
	ctx context.Context,
	schedule func(ctx context.Context, games chan<- *Game) error,
	handle func(result GameResult) (stop bool),
) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	games := make(chan *Game)
	results := make(chan GameResult)

	g.Go(func() error {
		defer close(games)
		return schedule(ctx, games)
	})

	var wg sync.WaitGroup
	for i := 0; i < max(pool.concurrency, 1); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return pool.thread(ctx, games, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	stopped := false
	g.Go(func() error {
		for result := range results {
			// Keep draining after a stop so that no worker is left blocked.
			if !stopped && handle(result) {
				stopped = true
				stop()
			}
		}

		return nil
	})

	err := g.Wait()
	if stopped && errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func (pool *pool) thread(ctx context.Context, games <-chan *Game, results chan<- GameResult) error {
	for game := range games {
		result, err := pool.play(game)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- result:
		}
	}

	return nil
}

// play plays a single game with freshly created agents.
func (pool *pool) play(game *Game) (GameResult, error) {
	result := GameResult{
		Game: game,
		Names: [rules.ColorN]string{
			rules.White: pool.players[game.White].Name,
			rules.Black: pool.players[game.Black].Name,
		},
	}

	logrus.Debugf(
		"\x1b[33mStarting\x1b[0m Round #%d Game #%d: %s vs %s\n",
		game.Round, game.Number+1, result.Names[rules.White], result.Names[rules.Black],
	)

	engine, err := pool.rules(game.FEN)
	if err != nil {
		return result, fmt.Errorf("tournament: game %d: %w", game.Number+1, err)
	}

	white := pool.players[game.White].New(rand.New(rand.NewSource(seedFor(game.Seed, game.Number, rules.White))))
	black := pool.players[game.Black].New(rand.New(rand.NewSource(seedFor(game.Seed, game.Number, rules.Black))))

	result.Outcome, err = match.Play(engine, white, black)
	if err != nil {
		return result, fmt.Errorf("tournament: game %d: %s vs %s: %w",
			game.Number+1, result.Names[rules.White], result.Names[rules.Black], err)
	}

	return result, nil
}
