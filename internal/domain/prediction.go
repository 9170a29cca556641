package domain

import "time"

// PredictionRecord is one saved prediction for an authenticated user.
// Records are append-only: never updated or deleted.
type PredictionRecord struct {
	ID        int64
	UserID    int64
	Result    string
	InputData string
	CreatedAt time.Time
}
