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
	"fmt"
	"time"

	"github.com/fogfish/ulid"
	"github.com/spf13/cobra"
)

type identity struct {
	ID        ulid.ULID `json:"id"`
	Timestamp uint64    `json:"timestamp"`
	Time      string    `json:"time"`
	Entropy   string    `json:"entropy"`
}

type generated struct {
	ID ulid.ULID `json:"id"`
}

func describe(id ulid.ULID) identity {
	return identity{
		ID:        id,
		Timestamp: id.Timestamp(),
		Time:      id.Time().UTC().Format(time.RFC3339Nano),
		Entropy:   id.Entropy(),
	}
}

func (a *app) newCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate new identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			for i := 0; i < count; i++ {
				id := ulid.New(a.clock)
				if err := a.print(cmd.OutOrStdout(), id.String(), generated{ID: id}); err != nil {
					return err
				}
			}

			a.logger.Debug().Int("count", count).Msg("generated")
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")
	return cmd
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse ID...",
		Short: "Decode timestamp and entropy of identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := ulid.Parse(arg)
				if err != nil {
					return err
				}

				v := describe(id)
				text := fmt.Sprintf("%s\t%d\t%s\t%s", v.ID, v.Timestamp, v.Time, v.Entropy)
				if err := a.print(cmd.OutOrStdout(), text, v); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
