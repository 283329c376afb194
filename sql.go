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
	"database/sql/driver"
	"fmt"
)

// Scan implements sql.Scanner, it accepts canonical text. NULL is absent ULID.
func (id *ULID) Scan(src any) (err error) {
	switch v := src.(type) {
	case nil:
		*id = Zero
	case string:
		*id, err = Parse(v)
	case []byte:
		*id, err = Parse(string(v))
	default:
		err = fmt.Errorf("%w: cannot scan %T", ErrInvalidFormat, src)
	}

	return
}

// Value implements driver.Valuer, absent ULID is stored as NULL.
func (id ULID) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}

	return id.s, nil
}
