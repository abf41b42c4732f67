package settings

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

// ErrNoValue is returned when a settings key has no stored value.
var ErrNoValue = errors.New("no value stored")

// Store is the durable key-value store behind all configuration:
// schema override, custom tools and the active-tool list.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	LoadAll(ctx context.Context) (map[string][]byte, error)
}

type postgresStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoValue
		}
		return nil, errors.Wrapf(err, "get setting %q", key)
	}
	return value, nil
}

func (s *postgresStore) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = $2,
			updated_at = $3
	`
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now())
	return errors.Wrapf(err, "save setting %q", key)
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = $1`, key)
	return errors.Wrapf(err, "delete setting %q", key)
}

func (s *postgresStore) LoadAll(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "scan setting row")
		}
		out[key] = value
	}
	return out, rows.Err()
}
