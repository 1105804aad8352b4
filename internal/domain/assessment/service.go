package assessment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cardioscore/risk-api/internal/domain/patient"
)

// AssessRequest carries the raw patient record plus an optional caller
// reference used to group history per patient.
type AssessRequest struct {
	PatientRef *string `json:"patient_ref,omitempty"`
	patient.PatientRecord
}

// Service runs the scoring pipeline and records history.
type Service struct {
	scorer *Scorer
	repo   Repository
}

func NewService(scorer *Scorer, repo Repository) *Service {
	return &Service{scorer: scorer, repo: repo}
}

// Assess validates the record, scores it, and persists the result. Scoring
// itself is pure; persistence is the only side effect.
func (s *Service) Assess(ctx context.Context, req *AssessRequest) (*RiskAssessment, error) {
	if err := req.PatientRecord.Validate(); err != nil {
		return nil, err
	}

	vec, err := patient.BuildFeatures(req.PatientRecord)
	if err != nil {
		return nil, err
	}

	a, err := s.scorer.Score(vec)
	if err != nil {
		return nil, err
	}

	a.ID = uuid.New()
	a.PatientRef = req.PatientRef
	a.Age = req.Age
	a.Factors = BuildFactorSummary(req.PatientRecord)

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*RiskAssessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*RiskAssessment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientRef string, limit, offset int) ([]*RiskAssessment, int, error) {
	return s.repo.ListByPatient(ctx, patientRef, limit, offset)
}
