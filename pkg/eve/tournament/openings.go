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

package tournament

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/rand"
)

// OpeningConfig configures an opening book.
type OpeningConfig struct {
	// File is a text file with one FEN or EPD position per line.
	File string `yaml:"file"`

	// Order is either "sequential" (the default) or "random".
	Order string `yaml:"order"`

	// Start is the 1-based line to start from in sequential order.
	Start int `yaml:"start"`
}

// Book is a list of starting positions. Lines which are empty or start
// with a '#' are skipped.
type Book struct {
	entries []string
	random  bool
	current int

	rng *rand.Rand
}

// NewBook reads the opening book described by config. rng is used only if
// the openings are picked in random order.
func NewBook(config OpeningConfig, rng *rand.Rand) (*Book, error) {
	var book Book
	switch config.Order {
	case "", "sequential":
	case "random":
		book.random = true
		book.rng = rng
	default:
		return nil, fmt.Errorf("openings: invalid order %q", config.Order)
	}

	file, err := os.ReadFile(config.File)
	if err != nil {
		return nil, fmt.Errorf("openings: %w", err)
	}

	for _, line := range strings.Split(string(file), "\n") {
		line = strings.Trim(line, "\n\r\t ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		book.entries = append(book.entries, epdToFEN(line))
	}

	if len(book.entries) == 0 {
		return nil, fmt.Errorf("openings: %s: no positions found", config.File)
	}

	if config.Start > 0 {
		book.current = (config.Start - 1) % len(book.entries)
	}

	if book.random {
		book.Next()
	}

	return &book, nil
}

// Next moves on to the next opening.
func (book *Book) Next() {
	if book.random {
		book.current = book.rng.Intn(len(book.entries))
		return
	}

	book.current = (book.current + 1) % len(book.entries)
}

// Current returns the FEN of the current opening.
func (book *Book) Current() string {
	return book.entries[book.current]
}

// Len returns the number of openings in the book.
func (book *Book) Len() int {
	return len(book.entries)
}

// epdToFEN turns an EPD line into a FEN string. EPD positions have no move
// counters, so the counters of a new game are added.
func epdToFEN(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 6 && isNumber(fields[4]) && isNumber(fields[5]) {
		return strings.Join(fields[:6], " ")
	}

	if len(fields) < 4 {
		return line
	}

	return strings.Join(fields[:4], " ") + " 0 1"
}

func isNumber(str string) bool {
	return strings.Trim(str, "0123456789") == "" && str != ""
}
