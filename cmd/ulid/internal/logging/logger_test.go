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

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fogfish/ulid/cmd/ulid/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("id", "01ARZ3NDEKTSV4RRFFQ69G5FAV").Msg("generated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "generated", entry["message"])
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", entry["id"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "warn", Format: "console"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("invalid identifier")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "invalid identifier")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, level("debug"))
	assert.Equal(t, zerolog.InfoLevel, level("info"))
	assert.Equal(t, zerolog.WarnLevel, level("warn"))
	assert.Equal(t, zerolog.ErrorLevel, level("error"))
	assert.Equal(t, zerolog.InfoLevel, level("unknown"))
}
