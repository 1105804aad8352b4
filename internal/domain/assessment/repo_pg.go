package assessment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a Postgres-backed assessment history repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const assessmentCols = `id, patient_ref, age, probability_percent, tier, relative_risk, created_at`

func scanAssessment(row pgx.Row) (*RiskAssessment, error) {
	var a RiskAssessment
	err := row.Scan(&a.ID, &a.PatientRef, &a.Age, &a.ProbabilityPercent,
		&a.Tier, &a.RelativeRisk, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Recommendations = a.Tier.Recommendations()
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *RiskAssessment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO risk_assessment (id, patient_ref, age, probability_percent, tier, relative_risk)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		a.ID, a.PatientRef, a.Age, a.ProbabilityPercent, a.Tier, a.RelativeRisk,
	).Scan(&a.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*RiskAssessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM risk_assessment WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*RiskAssessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM risk_assessment`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM risk_assessment
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return collectAssessments(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientRef string, limit, offset int) ([]*RiskAssessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM risk_assessment WHERE patient_ref = $1`, patientRef).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM risk_assessment
		WHERE patient_ref = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, patientRef, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return collectAssessments(rows, total)
}

func collectAssessments(rows pgx.Rows, total int) ([]*RiskAssessment, int, error) {
	var out []*RiskAssessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
