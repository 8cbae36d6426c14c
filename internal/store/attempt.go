package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one recorded answer submission.
type Attempt struct {
	ID            string
	Sequence      int64
	PacketKey     string
	QuestionIndex int
	Answer        string
	Correct       bool
	Timestamp     time.Time
}

// AttemptRepo provides append and read access to submitted answers.
type AttemptRepo interface {
	// Append records an attempt. ID, Sequence and Timestamp are filled in
	// when empty.
	Append(ctx context.Context, a *Attempt) error

	// Recent returns up to limit attempts, newest first. limit <= 0 means
	// no limit.
	Recent(ctx context.Context, limit int) ([]Attempt, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO attempts (id, packet_key, question_index, answer, correct, created_at)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING sequence`,
		a.ID, a.PacketKey, a.QuestionIndex, a.Answer, a.Correct, a.Timestamp.UnixNano(),
	).Scan(&a.Sequence)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	q := `SELECT sequence, id, packet_key, question_index, answer, correct, created_at
	      FROM attempts ORDER BY sequence DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a  Attempt
			ts int64
		)
		if err := rows.Scan(&a.Sequence, &a.ID, &a.PacketKey, &a.QuestionIndex, &a.Answer, &a.Correct, &ts); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Timestamp = time.Unix(0, ts).UTC()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}
