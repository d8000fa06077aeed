package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/azzaconstruction/contact-backend/internal/models"
)

// PostgresStore keeps the same six logical columns as the spreadsheet backends
// in a contact_submissions table, for deployments that outgrow spreadsheets.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects, verifies the connection and creates the table if it
// does not exist.
func OpenPostgres(postgresURI string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", postgresURI)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := NewPostgresStore(db)
	if err := s.initTable(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPostgresStore wraps an existing connection without touching the schema.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) initTable() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS contact_submissions (
		id UUID PRIMARY KEY,
		submitted_at TIMESTAMPTZ NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		phone TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create contact_submissions table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, sub models.Submission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, submitted_at, name, email, subject, message, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.New(), sub.Timestamp, sub.Name, sub.Email, sub.Subject, sub.Message, sub.Phone)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (s *PostgresStore) All(ctx context.Context) ([]models.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT submitted_at, name, email, subject, message, phone
		FROM contact_submissions
		ORDER BY submitted_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.Timestamp, &sub.Name, &sub.Email, &sub.Subject, &sub.Message, &sub.Phone); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
