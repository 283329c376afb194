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

// encodeT writes ⟨𝒕⟩ fraction as sizeT symbols, most significant first.
// The timestamp is divided by 32 repeatedly, the buffer is filled
// back-to-front.
func encodeT(b []byte, t uint64) {
	for i := sizeT - 1; i >= 0; i-- {
		b[i] = encode32(uint8(t % 32))
		t /= 32
	}
}

// decodeT folds ⟨𝒕⟩ fraction back to integer. The text must be valid.
func decodeT(s string) (t uint64) {
	for i := 0; i < sizeT; i++ {
		x, _ := decode32(s[i])
		t = t<<5 | uint64(x)
	}
	return
}

// drawR writes ⟨𝒓⟩ fraction, each symbol is independent draw of entropy.
func drawR(b []byte, clock Chronos) {
	for i := range b {
		b[i] = encode32(clock.R())
	}
}

// scan checks the text against grammar ^[0-9A-HJKMNP-TV-Z]{26}$.
// It returns position of first symbol outside of alphabet, the position is
// -1 if length is wrong.
func scan(s string) (int, bool) {
	if len(s) != Size {
		return -1, false
	}

	for i := 0; i < len(s); i++ {
		if _, ok := decode32(s[i]); !ok {
			return i, false
		}
	}

	return 0, true
}
