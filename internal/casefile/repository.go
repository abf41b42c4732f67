package casefile

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"exclusion-diagnostic/internal/answers"
)

// ErrNotFound is returned when a case id does not exist.
var ErrNotFound = errors.New("case not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Case, error)
	List(ctx context.Context) ([]Case, error)
	Save(ctx context.Context, c *Case) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Case, error) {
	query := `SELECT id, title, tool_id, tool_name, tool_color, answers, created_at, updated_at FROM cases WHERE id = $1`

	c, err := scanCase(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get case")
	}
	return c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]Case, error) {
	query := `SELECT id, title, tool_id, tool_name, tool_color, answers, created_at, updated_at FROM cases ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list cases")
	}
	defer rows.Close()

	var out []Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan case row")
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Save(ctx context.Context, c *Case) error {
	answersJSON, err := json.Marshal(c.Answers)
	if err != nil {
		return errors.Wrap(err, "marshal answers")
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()

	query := `
		INSERT INTO cases (id, title, tool_id, tool_name, tool_color, answers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = $2,
			answers = $6,
			updated_at = $8
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Title, c.ToolID, c.ToolName, c.ToolColor, answersJSON, c.CreatedAt, c.UpdatedAt)
	return errors.Wrap(err, "save case")
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete case")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*Case, error) {
	var c Case
	var answersJSON []byte

	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.ToolID,
		&c.ToolName,
		&c.ToolColor,
		&answersJSON,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &c.Answers); err != nil {
			return nil, errors.Wrap(err, "unmarshal answers")
		}
	}
	if c.Answers == nil {
		c.Answers = answers.Map{}
	}
	return &c, nil
}
