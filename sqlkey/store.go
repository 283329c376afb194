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

package sqlkey

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fogfish/ulid"
)

// KeyFunc produces text of new primary key
type KeyFunc func() string

// Option of the store
type Option func(*Store)

// WithKeyFunc configures custom primary key generator
func WithKeyFunc(f KeyFunc) Option {
	return func(s *Store) {
		s.key = f
	}
}

// Record is a row of the table
type Record struct {
	ID      ulid.ULID
	Payload string
}

// Store of records keyed by ULID
type Store struct {
	db      *sql.DB
	dialect Dialect
	table   string
	key     KeyFunc
}

// DefaultPageSize is used by List if limit is not defined
const DefaultPageSize = 100

// Open connects to the database
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	dialect, dsn, err := detectDialect(cfg.ConnectionString)
	if err != nil {
		return nil, err
	}

	table, err := cfg.table()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{
		db:      db,
		dialect: dialect,
		table:   table,
		key:     ulid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Close the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Dialect of the database
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Migrate creates the table if it does not exist
func (s *Store) Migrate(ctx context.Context) error {
	query := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (id CHAR(%d) NOT NULL PRIMARY KEY, payload TEXT NOT NULL)",
		s.table, ulid.Size,
	)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}

	return nil
}

// Insert stores payload under new primary key
func (s *Store) Insert(ctx context.Context, payload string) (ulid.ULID, error) {
	id, err := ulid.Parse(s.key())
	if err != nil {
		return ulid.Zero, fmt.Errorf("primary key: %w", err)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (id, payload) VALUES (%s, %s)",
		s.table, s.dialect.placeholder(1), s.dialect.placeholder(2),
	)

	if _, err := s.db.ExecContext(ctx, query, id, payload); err != nil {
		return ulid.Zero, fmt.Errorf("failed to insert %s: %w", id, err)
	}

	return id, nil
}

// Get reads record by key. Malformed key is ulid.ErrInvalidFormat.
func (s *Store) Get(ctx context.Context, key string) (Record, error) {
	id, err := ulid.Parse(key)
	if err != nil {
		return Record{}, err
	}

	query := fmt.Sprintf(
		"SELECT id, payload FROM %s WHERE id = %s",
		s.table, s.dialect.placeholder(1),
	)

	var rec Record
	err = s.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	case err != nil:
		return Record{}, fmt.Errorf("failed to get %s: %w", id, err)
	}

	return rec, nil
}

// Delete removes record by key
func (s *Store) Delete(ctx context.Context, key string) error {
	id, err := ulid.Parse(key)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE id = %s",
		s.table, s.dialect.placeholder(1),
	)

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// List returns page of records ordered by key, which is the creation order.
// The page starts after the given key, empty key starts from the beginning.
func (s *Store) List(ctx context.Context, after string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	var (
		query string
		args  []any
	)

	if after == "" {
		query = fmt.Sprintf(
			"SELECT id, payload FROM %s ORDER BY id LIMIT %d",
			s.table, limit,
		)
	} else {
		cursor, err := ulid.Parse(after)
		if err != nil {
			return nil, err
		}

		query = fmt.Sprintf(
			"SELECT id, payload FROM %s WHERE id > %s ORDER BY id LIMIT %d",
			s.table, s.dialect.placeholder(1), limit,
		)
		args = append(args, cursor)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.table, err)
	}
	defer rows.Close()

	seq := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Payload); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.table, err)
		}
		seq = append(seq, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.table, err)
	}

	return seq, nil
}
