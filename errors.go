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

package ulid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that text is not a ULID
	ErrInvalidFormat = errors.New("invalid ULID format")

	// ErrInvalidArgument indicates that absent ULID is used as an operand
	ErrInvalidArgument = errors.New("invalid ULID argument")
)

// FormatError is returned by Parse, it carries rejected input
type FormatError struct {
	Input string
	// Position of the first symbol outside of alphabet, -1 if the length is wrong
	At int
}

func (e *FormatError) Error() string {
	switch {
	case e.Input == "":
		return fmt.Sprintf("%s: absent value", ErrInvalidFormat)
	case e.At < 0:
		return fmt.Sprintf("%s: expected %d symbols, got %d in %q", ErrInvalidFormat, Size, len(e.Input), e.Input)
	default:
		return fmt.Sprintf("%s: invalid symbol %q at %d in %q", ErrInvalidFormat, e.Input[e.At], e.At, e.Input)
	}
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }
