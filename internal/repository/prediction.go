package repository

import (
	"context"

	"careerpath/internal/domain"
)

// PredictionRepository manages the append-only prediction history.
type PredictionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, record *domain.PredictionRecord) (int64, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.PredictionRecord, error)
}
