package service

import (
	"context"
	"encoding/json"
	"fmt"

	"careerpath/internal/assessment"
	"careerpath/internal/domain"
	"careerpath/internal/repository"
)

// DefaultHistoryLimit caps how many past predictions are returned.
const DefaultHistoryLimit = 10

// Predictor is the read-only classifier capability. The concrete model is
// loaded once at startup and shared.
type Predictor interface {
	Predict(vector []float64) (string, error)
}

// PredictionResult is the outcome of one assessment.
type PredictionResult struct {
	Role    string
	Related []string
}

// PredictionService runs the encode -> predict -> persist pipeline.
type PredictionService interface {
	// Predict classifies an assessment. When userID is non-zero the result
	// is appended to that user's history; userID 0 is demo mode and nothing
	// is persisted.
	Predict(ctx context.Context, a assessment.Assessment, userID int64) (*PredictionResult, error)
	History(ctx context.Context, userID int64, limit int) ([]domain.PredictionRecord, error)
}

type predictionService struct {
	predictor   Predictor
	predictions repository.PredictionRepository
}

func NewPredictionService(predictor Predictor, predictions repository.PredictionRepository) PredictionService {
	return &predictionService{
		predictor:   predictor,
		predictions: predictions,
	}
}

func (s *predictionService) Predict(ctx context.Context, a assessment.Assessment, userID int64) (*PredictionResult, error) {
	vector, err := assessment.Encode(a)
	if err != nil {
		return nil, fmt.Errorf("encode assessment: %w", err)
	}

	role, err := s.predictor.Predict(vector)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	if userID > 0 {
		raw, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("serialize assessment: %w", err)
		}
		record := &domain.PredictionRecord{
			UserID:    userID,
			Result:    role,
			InputData: string(raw),
		}
		// a storage fault fails the whole request rather than silently
		// dropping the history entry
		if _, err := s.predictions.Create(ctx, record); err != nil {
			return nil, err
		}
	}

	return &PredictionResult{
		Role:    role,
		Related: domain.RelatedCareers[role],
	}, nil
}

func (s *predictionService) History(ctx context.Context, userID int64, limit int) ([]domain.PredictionRecord, error) {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	return s.predictions.ListByUser(ctx, userID, limit)
}
