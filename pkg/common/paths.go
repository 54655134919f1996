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

package sparring

import (
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"
)

// Kinds of runs whose results are saved.
const (
	Tournaments = "tournaments"
	SPRTs       = "sprt"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ResultsFile returns the path of the YAML file where the results of the
// named run are saved, creating its directory if necessary. The file lives
// in the XDG data directory, usually ~/.local/share/sparring.
func ResultsFile(kind, name string) (string, error) {
	name = unsafeChars.ReplaceAllString(name, "_")
	return xdg.DataFile(filepath.Join("sparring", kind, name+".yaml"))
}
