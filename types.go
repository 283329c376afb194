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

// Chronos is an abstraction of clock and entropy used by the library.
type Chronos interface {
	// Wall-clock time ⟨𝒕⟩ in milliseconds since Unix epoch
	T() uint64
	// Uniformly distributed random symbol ⟨𝒓⟩ within [0, 32)
	R() uint8
}

// Config option of default clock behavior.
// Config options allows to define custom strategies to read
// ⟨𝒕⟩ timestamp or to draw ⟨𝒓⟩ random symbols.
type Config func(*clock)

// ULID is native representation of Universally Unique Lexicographically
// Sortable Identifier. The value wraps the canonical 26 symbols text:
//
//	      10 symbols               16 symbols
//	|------------------|--------------------------------|
//	        ⟨𝒕⟩                      ⟨𝒓⟩
//
// The zero value is "absent" identifier, it is never generated or parsed.
type ULID struct{ s string }

// Zero is the absent identifier
var Zero ULID
