//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package cli

import (
	"bufio"
	"fmt"
	"slices"
	"strings"

	"github.com/fogfish/ulid"
	"github.com/spf13/cobra"
)

func (a *app) sortCommand() *cobra.Command {
	var (
		reverse bool
		unique  bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort identifiers read from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := readAll(cmd)
			if err != nil {
				return err
			}

			slices.SortFunc(seq, func(x, y ulid.ULID) int {
				if reverse {
					x, y = y, x
				}
				order, _ := ulid.Compare(x, y)
				return order
			})

			if unique {
				seq = slices.CompactFunc(seq, ulid.Equal)
			}

			for _, id := range seq {
				if err := a.print(cmd.OutOrStdout(), id.String(), generated{ID: id}); err != nil {
					return err
				}
			}

			a.logger.Debug().Int("count", len(seq)).Msg("sorted")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "descending order")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop duplicates")
	return cmd
}

// readAll parses identifiers from stdin, blank lines are skipped
func readAll(cmd *cobra.Command) ([]ulid.ULID, error) {
	var seq []ulid.ULID

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, err := ulid.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		seq = append(seq, id)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return seq, nil
}
