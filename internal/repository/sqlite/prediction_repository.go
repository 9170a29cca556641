package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/repository"
)

const createPredictionsTable = `
CREATE TABLE IF NOT EXISTS user_predictions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	prediction_result TEXT NOT NULL,
	input_data TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_user_predictions_user_id ON user_predictions(user_id);
`

type PredictionRepository struct {
	db *sql.DB
}

func NewPredictionRepository(db *sql.DB) repository.PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPredictionsTable); err != nil {
		return fmt.Errorf("create user_predictions table: %w", err)
	}
	return nil
}

func (r *PredictionRepository) Create(ctx context.Context, record *domain.PredictionRecord) (int64, error) {
	record.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO user_predictions (user_id, prediction_result, input_data, created_at)
VALUES (?, ?, ?, ?)`,
		record.UserID,
		record.Result,
		record.InputData,
		record.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert prediction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("prediction last insert id: %w", err)
	}
	record.ID = id
	return id, nil
}

// ListByUser returns the user's most recent predictions. Ordering is by
// creation time descending with id as the tie-breaker, so same-timestamp
// rows come back in reverse insertion order.
func (r *PredictionRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.PredictionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, prediction_result, input_data, created_at
FROM user_predictions
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var records []domain.PredictionRecord
	for rows.Next() {
		var rec domain.PredictionRecord
		var createdAt time.Time
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Result, &rec.InputData, &createdAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		rec.CreatedAt = createdAt.Local()
		records = append(records, rec)
	}

	return records, rows.Err()
}
