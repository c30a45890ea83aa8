package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"messageboard/internal/models"
	"messageboard/internal/service"

	_ "github.com/lib/pq"
)

// PostgresRepo stores messages in a table keyed by the hex ObjectID. The seq
// column preserves insertion order for unfiltered listings.
type PostgresRepo struct {
	db *sql.DB

	mu          sync.Mutex
	schemaReady bool
}

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS messages (
		seq BIGSERIAL PRIMARY KEY,
		id VARCHAR(24) NOT NULL UNIQUE,
		name TEXT,
		message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

// NewPostgresRepo opens a pool for connStr. The table is created on first
// use, so a database that is down at startup does not prevent serving.
func NewPostgresRepo(connStr string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return NewPostgresRepoFromDB(db), nil
}

func NewPostgresRepoFromDB(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

var _ service.MessageRepository = (*PostgresRepo)(nil)

func (r *PostgresRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return r.ensureSchema(ctx)
}

func (r *PostgresRepo) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *PostgresRepo) ensureSchema(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.schemaReady {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to ensure messages table exists: %w", err)
	}
	r.schemaReady = true
	return nil
}

func (r *PostgresRepo) ListMessages(ctx context.Context) ([]models.Message, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	query := `SELECT id, name, message, created_at, updated_at
	          FROM messages
	          ORDER BY seq ASC;`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	return scanMessages(rows)
}

func (r *PostgresRepo) FindMessages(ctx context.Context, id primitive.ObjectID) ([]models.Message, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	query := `SELECT id, name, message, created_at, updated_at
	          FROM messages
	          WHERE id=$1;`
	rows, err := r.db.QueryContext(ctx, query, id.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	return scanMessages(rows)
}

func (r *PostgresRepo) InsertMessage(ctx context.Context, msg *models.Message) error {
	if err := r.ensureSchema(ctx); err != nil {
		return err
	}
	query := `INSERT INTO messages (id, name, message, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5);`
	_, err := r.db.ExecContext(ctx, query, msg.ID.Hex(), nullString(msg.Name), nullString(msg.Text), msg.CreatedAt, msg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	defer rows.Close()

	results := []models.Message{}
	for rows.Next() {
		var msg models.Message
		var rawID string
		var name, text sql.NullString
		if err := rows.Scan(&rawID, &name, &text, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
			return nil, err
		}
		id, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			return nil, fmt.Errorf("stored message has invalid id %q: %w", rawID, err)
		}
		msg.ID = id
		if name.Valid {
			msg.Name = &name.String
		}
		if text.Valid {
			msg.Text = &text.String
		}
		results = append(results, msg)
	}
	return results, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
