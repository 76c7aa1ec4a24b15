package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

type FeedbackRepo struct {
	db *sql.DB
}

func NewFeedbackRepo(db *sql.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

func toDomainFeedback(fr feedbackRow) domain.Feedback {
	return domain.Feedback{
		ID:        fr.ID,
		Username:  fr.Username,
		Body:      fr.Body,
		UserID:    fr.UserID,
		CreatedAt: fr.CreatedAt,
		UpdatedAt: fr.UpdatedAt,
	}
}

func (r *FeedbackRepo) scanFeedbackRow(row *sql.Row) (feedbackRow, error) {
	var fr feedbackRow
	err := row.Scan(
		&fr.ID,
		&fr.Username,
		&fr.Body,
		&fr.UserID,
		&fr.CreatedAt,
		&fr.UpdatedAt,
	)
	return fr, err
}

func (r *FeedbackRepo) queryList(ctx context.Context, q string, args ...any) ([]domain.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var fr feedbackRow
		if err := rows.Scan(
			&fr.ID,
			&fr.Username,
			&fr.Body,
			&fr.UserID,
			&fr.CreatedAt,
			&fr.UpdatedAt,
		); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, toDomainFeedback(fr))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// ---------- feedback.Repo ----------

func (r *FeedbackRepo) Create(ctx context.Context, f domain.Feedback) (domain.Feedback, error) {
	if f.ID == "" {
		return domain.Feedback{}, domain.ErrMissingField("id")
	}
	if f.UserID == "" {
		return domain.Feedback{}, domain.ErrMissingField("user_id")
	}
	if strings.TrimSpace(f.Body) == "" {
		return domain.Feedback{}, domain.ErrEmptyFeedback()
	}

	const q = `
INSERT INTO feedback (id, username, body, user_id)
VALUES ($1,$2,$3,$4)
RETURNING id, username, body, user_id, created_at, updated_at;
`
	fr, err := r.scanFeedbackRow(r.db.QueryRowContext(ctx, q, f.ID, f.Username, f.Body, f.UserID))
	if err != nil {
		return domain.Feedback{}, domain.ErrDBUnavailable(err)
	}
	return toDomainFeedback(fr), nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (domain.Feedback, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Feedback{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT id, username, body, user_id, created_at, updated_at
FROM feedback
WHERE id = $1
LIMIT 1;
`
	fr, err := r.scanFeedbackRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Feedback{}, domain.ErrFeedbackNotFound()
		}
		return domain.Feedback{}, domain.ErrDBUnavailable(err)
	}
	return toDomainFeedback(fr), nil
}

func (r *FeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	const q = `
SELECT id, username, body, user_id, created_at, updated_at
FROM feedback
ORDER BY created_at DESC;
`
	return r.queryList(ctx, q)
}

func (r *FeedbackRepo) ListByUser(ctx context.Context, userID string) ([]domain.Feedback, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.ErrMissingField("user_id")
	}

	const q = `
SELECT id, username, body, user_id, created_at, updated_at
FROM feedback
WHERE user_id = $1
ORDER BY created_at DESC;
`
	return r.queryList(ctx, q, userID)
}

func (r *FeedbackRepo) UpdateBody(ctx context.Context, id, body string) (domain.Feedback, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Feedback{}, domain.ErrMissingField("id")
	}
	if strings.TrimSpace(body) == "" {
		return domain.Feedback{}, domain.ErrEmptyFeedback()
	}

	const q = `
UPDATE feedback
SET body = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING id, username, body, user_id, created_at, updated_at;
`
	fr, err := r.scanFeedbackRow(r.db.QueryRowContext(ctx, q, id, body))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Feedback{}, domain.ErrFeedbackNotFound()
		}
		return domain.Feedback{}, domain.ErrDBUnavailable(err)
	}
	return toDomainFeedback(fr), nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM feedback WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrFeedbackNotFound()
	}
	return nil
}
