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

import "time"

// MaxTime is the largest ⟨𝒕⟩ representable by 48-bit timestamp
const MaxTime uint64 = 1<<48 - 1

// Timestamp converts time to ⟨𝒕⟩, milliseconds since Unix epoch
func Timestamp(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}

// Time converts ⟨𝒕⟩ milliseconds since Unix epoch to time
func Time(ms uint64) time.Time {
	return time.UnixMilli(int64(ms))
}
