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

// Package sqlkey stores records keyed by ULID in SQL database. The table is
// the identity consumer: it asks for a new key text and keeps it opaque.
package sqlkey

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect of SQL database
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

// Config of the store
type Config struct {
	// ConnectionString is URL-style: postgres://, mysql://, sqlite://
	ConnectionString string

	// Table keeps records, default "records"
	Table string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

const defaultTable = "records"

var (
	// ErrNotFound indicates that record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConfig indicates that config is malformed
	ErrConfig = errors.New("invalid config")
)

var tableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func (cfg *Config) table() (string, error) {
	if cfg.Table == "" {
		return defaultTable, nil
	}

	if !tableName.MatchString(cfg.Table) {
		return "", fmt.Errorf("%w: table name %q", ErrConfig, cfg.Table)
	}

	return cfg.Table, nil
}

// detectDialect detects the database dialect from the connection string
func detectDialect(connectionString string) (Dialect, string, error) {
	if connectionString == "" {
		return "", "", fmt.Errorf("%w: connection string is empty", ErrConfig)
	}

	lower := strings.ToLower(connectionString)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, connectionString, nil
	case strings.HasPrefix(lower, "mysql://"):
		return DialectMySQL, connectionString[len("mysql://"):], nil
	case strings.HasPrefix(lower, "sqlite://"):
		dsn := connectionString[len("sqlite://"):]
		// shared cache lets every connection of the pool see the same database
		if dsn == ":memory:" {
			dsn = "file::memory:?mode=memory&cache=shared"
		}
		return DialectSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: unsupported connection string %q", ErrConfig, connectionString)
	}
}

// placeholder of n-th (1-based) query argument
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
