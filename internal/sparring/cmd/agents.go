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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/sparring/pkg/eve/agent"
)

func Agents() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "Lists the available agents",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "\u001B[32mAvailable Agents\u001B[0m:")
			fmt.Fprintln(out)

			for _, name := range agent.Names() {
				factory := agent.Registry[name]
				id := fmt.Sprintf("\x1b[34m%s\x1b[0m:", name)
				fmt.Fprintf(out, "- %-20s %-14s %s\n", id, factory.Name, factory.Description)
			}

			return nil
		},
	}
}
