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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

/*

New generates ULID using the clock. ⟨𝒕⟩ is read once, each symbol of ⟨𝒓⟩
is an independent draw of the clock's entropy.

	      10 symbols               16 symbols
	|------------------|--------------------------------|
	        ⟨𝒕⟩                      ⟨𝒓⟩

*/
func New(clock Chronos) ULID {
	b := make([]byte, Size)
	encodeT(b[:sizeT], clock.T())
	drawR(b[sizeT:], clock)

	return ULID{s: string(b)}
}

// Make generates ULID using default clock
func Make() ULID {
	return New(Clock)
}

// NewString produces text of new ULID using default clock. It is
// the hook for identity providers (e.g. primary keys of storage layer),
// the text is opaque unique value.
func NewString() string {
	return Make().s
}

// Parse validates text and wraps it as ULID. The text is not re-encoded.
// The error is *FormatError, it matches ErrInvalidFormat.
func Parse(s string) (ULID, error) {
	if at, ok := scan(s); !ok {
		return Zero, &FormatError{Input: s, At: at}
	}

	return ULID{s: s}, nil
}

// MustParse is like Parse but panics if text is not ULID
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return id
}

// IsValid returns true if text is accepted by Parse
func IsValid(s string) bool {
	_, ok := scan(s)
	return ok
}

/*******************************************************************************

ULID Ordering

*******************************************************************************/

/*

Compare orders ULIDs lexicographically, the order is consistent with
generation time. It returns -1 if a < b, 0 if a == b and +1 if a > b.
Absent (zero) operand is ErrInvalidArgument.
*/
func Compare(a, b ULID) (int, error) {
	switch {
	case a.IsZero():
		return 0, fmt.Errorf("%w: cannot compare absent ULID", ErrInvalidArgument)
	case b.IsZero():
		return 0, fmt.Errorf("%w: cannot compare to absent ULID", ErrInvalidArgument)
	}

	return strings.Compare(a.s, b.s), nil
}

// Compare orders ULID against other one, see Compare
func (id ULID) Compare(other ULID) (int, error) {
	return Compare(id, other)
}

// Equal returns true if ULIDs are identical
func Equal(a, b ULID) bool {
	return a.s == b.s
}

// Before returns true if a is less than b. It panics on absent operand.
func Before(a, b ULID) bool {
	return mustCompare(a, b) < 0
}

// After returns true if a is greater than b. It panics on absent operand.
func After(a, b ULID) bool {
	return mustCompare(a, b) > 0
}

func mustCompare(a, b ULID) int {
	x, err := Compare(a, b)
	if err != nil {
		panic(err)
	}

	return x
}

/*******************************************************************************

Lenses of ULID

*******************************************************************************/

// IsZero returns true for absent ULID
func (id ULID) IsZero() bool {
	return id.s == ""
}

// String returns canonical text of ULID
func (id ULID) String() string {
	return id.s
}

// Timestamp returns ⟨𝒕⟩ fraction, milliseconds since Unix epoch
func (id ULID) Timestamp() uint64 {
	if id.IsZero() {
		return 0
	}

	return decodeT(id.s)
}

// Time returns ⟨𝒕⟩ fraction as time
func (id ULID) Time() time.Time {
	return Time(id.Timestamp())
}

// Entropy returns ⟨𝒓⟩ fraction as symbols
func (id ULID) Entropy() string {
	if id.IsZero() {
		return ""
	}

	return id.s[sizeT:]
}

// Hash of ULID text, equal values have equal hashes
func (id ULID) Hash() uint64 {
	return xxhash.Sum64String(id.s)
}

/*******************************************************************************

Codecs

*******************************************************************************/

// MarshalText encodes ULID to canonical text
func (id ULID) MarshalText() ([]byte, error) {
	return []byte(id.s), nil
}

// UnmarshalText decodes canonical text to ULID
func (id *ULID) UnmarshalText(b []byte) (err error) {
	*id, err = Parse(string(b))
	return
}

// MarshalJSON encodes ULID as JSON string, absent value is null
func (id ULID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(id.s)
}

// UnmarshalJSON decodes JSON string to ULID, null is absent value
func (id *ULID) UnmarshalJSON(b []byte) (err error) {
	if string(b) == "null" {
		*id = Zero
		return
	}

	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	*id, err = Parse(val)
	return
}
