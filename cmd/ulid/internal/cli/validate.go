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
	"errors"
	"fmt"

	"github.com/fogfish/ulid"
	"github.com/spf13/cobra"
)

// ErrInvalidInput is returned if any of identifiers is malformed
var ErrInvalidInput = errors.New("invalid identifiers")

type validity struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate ID...",
		Short: "Check identifiers against the grammar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0

			for _, arg := range args {
				v := validity{Input: arg, Valid: ulid.IsValid(arg)}

				status := "valid"
				if !v.Valid {
					status = "invalid"
					invalid++
					a.logger.Warn().Str("input", arg).Msg("invalid identifier")
				}

				if err := a.print(cmd.OutOrStdout(), arg+"\t"+status, v); err != nil {
					return err
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidInput, invalid, len(args))
			}

			return nil
		},
	}
}

type ordering struct {
	A     ulid.ULID `json:"a"`
	B     ulid.ULID `json:"b"`
	Order int       `json:"order"`
}

func (a *app) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two identifiers, prints -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := ulid.Parse(args[0])
			if err != nil {
				return err
			}

			y, err := ulid.Parse(args[1])
			if err != nil {
				return err
			}

			order, err := ulid.Compare(x, y)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), fmt.Sprint(order), ordering{A: x, B: y, Order: order})
		},
	}
}
