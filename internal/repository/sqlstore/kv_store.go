package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

const DefaultTable = "client_storage"

// KeyValueStore persists client storage in a SQL table. The same statements
// run on PostgreSQL and SQLite; placeholders are rebound per driver.
type KeyValueStore struct {
	db    *sqlx.DB
	table string
}

func NewKeyValueStore(db *sqlx.DB, table string) *KeyValueStore {
	if strings.TrimSpace(table) == "" {
		table = DefaultTable
	}
	return &KeyValueStore{db: db, table: pq.QuoteIdentifier(strings.TrimSpace(table))}
}

func (s *KeyValueStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			namespace  TEXT NOT NULL,
			item_key   TEXT NOT NULL,
			item_value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, item_key)
		)
	`, s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("sqlstore: ensure schema: %w", err)
	}
	return nil
}

func (s *KeyValueStore) Get(ctx context.Context, namespace, key string) (string, error) {
	query := s.db.Rebind(fmt.Sprintf(`
		SELECT item_value
		FROM %s
		WHERE namespace = ? AND item_key = ?
	`, s.table))

	var value string
	if err := s.db.GetContext(ctx, &value, query, namespace, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ports.ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *KeyValueStore) Set(ctx context.Context, namespace, key, value string) error {
	query := s.db.Rebind(fmt.Sprintf(`
		INSERT INTO %s (namespace, item_key, item_value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (namespace, item_key)
		DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at
	`, s.table))
	_, err := s.db.ExecContext(ctx, query, namespace, key, value)
	return err
}

func (s *KeyValueStore) Delete(ctx context.Context, namespace, key string) error {
	query := s.db.Rebind(fmt.Sprintf(`
		DELETE FROM %s
		WHERE namespace = ? AND item_key = ?
	`, s.table))
	_, err := s.db.ExecContext(ctx, query, namespace, key)
	return err
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)
