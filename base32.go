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

// Alphabet is Crockford's base32 symbols, the index of symbol is its value.
// Symbols I, L, O and U are excluded.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	// Size of ULID text
	Size = sizeT + sizeR

	// number of symbols in ⟨𝒕⟩ and ⟨𝒓⟩ fractions
	sizeT = 10
	sizeR = 16

	// none marks bytes outside of alphabet in the decode table
	none = 0xff
)

// decode maps byte to symbol value, it is derived from Alphabet once.
var decode = func() (table [256]byte) {
	for i := range table {
		table[i] = none
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = byte(i)
	}
	return
}()

func encode32(x uint8) byte {
	return Alphabet[x&0x1f]
}

func decode32(c byte) (uint8, bool) {
	x := decode[c]
	return x, x != none
}
