package assessment

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores assessment history.
type Repository interface {
	Create(ctx context.Context, a *RiskAssessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*RiskAssessment, error)
	List(ctx context.Context, limit, offset int) ([]*RiskAssessment, int, error)
	ListByPatient(ctx context.Context, patientRef string, limit, offset int) ([]*RiskAssessment, int, error)
}
