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
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fogfish/ulid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestNew(t *testing.T) {
	out, _, err := run(t, "", "new")
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	assert.Len(t, id, ulid.Size)
	assert.True(t, ulid.IsValid(id))
}

func TestNewCount(t *testing.T) {
	out, _, err := run(t, "", "new", "-n", "5")
	require.NoError(t, err)

	seq := lines(out)
	require.Len(t, seq, 5)
	for _, id := range seq {
		assert.True(t, ulid.IsValid(id), id)
	}
}

func TestNewInvalidCount(t *testing.T) {
	_, _, err := run(t, "", "new", "-n", "0")
	assert.Error(t, err)
}

func TestNewSeed(t *testing.T) {
	a, _, err := run(t, "", "new", "--seed", "42")
	require.NoError(t, err)

	b, _, err := run(t, "", "new", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSpace(a)[10:], strings.TrimSpace(b)[10:])
}

func TestNewJSON(t *testing.T) {
	out, _, err := run(t, "", "new", "--format", "json")
	require.NoError(t, err)

	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, ulid.IsValid(v.ID))
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "", "parse", "01ARYZ6S41TSV4RRFFQ69G5FAV")
	require.NoError(t, err)

	fields := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, fields, 4)
	assert.Equal(t, "01ARYZ6S41TSV4RRFFQ69G5FAV", fields[0])
	assert.Equal(t, "1469918176385", fields[1])
	assert.Equal(t, time.UnixMilli(1469918176385).UTC().Format(time.RFC3339Nano), fields[2])
	assert.Equal(t, "TSV4RRFFQ69G5FAV", fields[3])
}

func TestParseJSON(t *testing.T) {
	out, _, err := run(t, "", "parse", "--format", "json", "01ARYZ6S41TSV4RRFFQ69G5FAV")
	require.NoError(t, err)

	var v identity
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "01ARYZ6S41TSV4RRFFQ69G5FAV", v.ID.String())
	assert.Equal(t, uint64(1469918176385), v.Timestamp)
	assert.Equal(t, "TSV4RRFFQ69G5FAV", v.Entropy)
}

func TestParseInvalid(t *testing.T) {
	_, _, err := run(t, "", "parse", "01arz3ndektsv4rrffq69g5fav")
	assert.ErrorIs(t, err, ulid.ErrInvalidFormat)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "", "validate", "01ARZ3NDEKTSV4RRFFQ69G5FAV", "0123456789ABCDEFILOQRSTUVWX")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, []string{
		"01ARZ3NDEKTSV4RRFFQ69G5FAV\tvalid",
		"0123456789ABCDEFILOQRSTUVWX\tinvalid",
	}, lines(out))
}

func TestValidateLogs(t *testing.T) {
	_, stderr, err := run(t, "", "validate", "--log-format", "json", "1234567890123456789012345")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines(stderr)[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "1234567890123456789012345", entry["input"])
}

func TestValidateAll(t *testing.T) {
	out, _, err := run(t, "", "validate", "--format", "json", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)

	var v validity
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.Valid)
}

func TestCompare(t *testing.T) {
	a := "01ARYZ6S41TSV4RRFFQ69G5FAV"
	b := "01ARYZ6S42TSV4RRFFQ69G5FAV"

	for expect, args := range map[string][]string{
		"-1": {a, b},
		"1":  {b, a},
		"0":  {a, a},
	} {
		out, _, err := run(t, "", append([]string{"compare"}, args...)...)
		require.NoError(t, err)
		assert.Equal(t, expect, strings.TrimSpace(out))
	}
}

func TestCompareInvalid(t *testing.T) {
	_, _, err := run(t, "", "compare", "01ARYZ6S41TSV4RRFFQ69G5FAV", "")
	assert.ErrorIs(t, err, ulid.ErrInvalidFormat)
}

func TestSort(t *testing.T) {
	in := "01ARYZ6S42TSV4RRFFQ69G5FAV\n\n01ARYZ6S41TSV4RRFFQ69G5FAV\n01ARYZ6S42TSV4RRFFQ69G5FAV\n"

	out, _, err := run(t, in, "sort")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"01ARYZ6S41TSV4RRFFQ69G5FAV",
		"01ARYZ6S42TSV4RRFFQ69G5FAV",
		"01ARYZ6S42TSV4RRFFQ69G5FAV",
	}, lines(out))

	out, _, err = run(t, in, "sort", "-r", "-u")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"01ARYZ6S42TSV4RRFFQ69G5FAV",
		"01ARYZ6S41TSV4RRFFQ69G5FAV",
	}, lines(out))
}

func TestSortInvalid(t *testing.T) {
	_, _, err := run(t, "01ARYZ6S41TSV4RRFFQ69G5FAV\nnot-an-id\n", "sort")
	assert.ErrorIs(t, err, ulid.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "line 2")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "", "new", "--format", "xml")
	assert.Error(t, err)
}
