/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

/*

Package ulid implements Universally Unique Lexicographically Sortable
Identifiers for Golang applications. The identifier is 128-bit value
encoded as 26 symbols text, which is sortable by creation time.

Key features

↣ IDs allocation does not require centralized authority, node identity or
coordination between processes.

↣ IDs are sortable by allocation time with millisecond precision. The plain
string comparison is the order.

↣ The text is the only representation. It is safe for URLs, file names and
database keys.

Identity Schema

  10 symbols (50 bit)        16 symbols (80 bit)
  |------------------|--------------------------------|
         ⟨𝒕⟩                       ⟨𝒓⟩

↣ ⟨𝒕⟩ is 48-bit UTC timestamp with millisecond precision, encoded most
significant symbol first. The timestamp overflows in year 10889.

↣ ⟨𝒓⟩ is 80 bits of randomness, each of 16 symbols is independent draw.
The randomness is not cryptographic, the identifier is unique but guessable.

Each symbol belongs to Crockford's base32 alphabet

  0123456789ABCDEFGHJKMNPQRSTVWXYZ

The grammar of the text is ^[0-9A-HJKMNP-TV-Z]{26}$. Lower case symbols are
not accepted, the text is never normalized.

Identifiers generated within same millisecond are ordered by ⟨𝒓⟩, which
carries no meaning.

Usage

  id := ulid.Make()

  id, err := ulid.Parse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
  if errors.Is(err, ulid.ErrInvalidFormat) {
    // ...
  }

  order, err := ulid.Compare(a, b)

*/
package ulid
