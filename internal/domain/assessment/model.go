package assessment

import (
	"time"

	"github.com/google/uuid"
)

// RiskTier is the discrete risk category derived from the continuous
// probability via fixed cut points.
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierModerate RiskTier = "moderate"
	TierHigh     RiskTier = "high"
)

// Tier cut points, in percent. A boundary value belongs to the upper tier:
// exactly 20.0 is moderate and exactly 50.0 is high. The same rule applies
// everywhere a probability is classified.
const (
	moderateCutoff = 20.0
	highCutoff     = 50.0
)

// TierForProbability classifies a probability percentage. It is a pure,
// monotonic function of its input.
func TierForProbability(percent float64) RiskTier {
	switch {
	case percent < moderateCutoff:
		return TierLow
	case percent < highCutoff:
		return TierModerate
	default:
		return TierHigh
	}
}

// DisplayName returns the tier label shown to clinicians.
func (t RiskTier) DisplayName() string {
	switch t {
	case TierLow:
		return "Low Risk"
	case TierModerate:
		return "Moderate Risk"
	case TierHigh:
		return "High Risk"
	default:
		return string(t)
	}
}

// tierRecommendations is the static recommendation copy keyed by tier.
// Content-level text, not computed.
var tierRecommendations = map[RiskTier][]string{
	TierLow: {
		"Continue maintaining healthy lifestyle habits",
		"Regular exercise and balanced diet",
		"Annual health check-ups",
	},
	TierModerate: {
		"Consider lifestyle modifications",
		"Monitor blood pressure and cholesterol regularly",
		"Discuss prevention strategies with your doctor",
	},
	TierHigh: {
		"Immediate medical consultation recommended",
		"Consider medication if advised by physician",
		"Urgent lifestyle changes needed",
	},
}

// Recommendations returns the fixed recommendation set for the tier. The
// returned slice is a copy; callers may not mutate the shared table.
func (t RiskTier) Recommendations() []string {
	recs := tierRecommendations[t]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// RelativeRiskFor compares the probability to the midpoint of the tier cut
// points and labels it against the population baseline.
func RelativeRiskFor(percent float64) string {
	if percent > (moderateCutoff+highCutoff)/2 {
		return "High"
	}
	return "Average"
}

// RiskAssessment is the output of one scoring call, persisted as history.
type RiskAssessment struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientRef         *string   `db:"patient_ref" json:"patient_ref,omitempty"`
	Age                int       `db:"age" json:"age"`
	ProbabilityPercent float64   `db:"probability_percent" json:"probability_percent"`
	Tier               RiskTier  `db:"tier" json:"tier"`
	RelativeRisk       string    `db:"relative_risk" json:"relative_risk"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`

	// Derived presentation fields, recomputed from the persisted columns.
	Recommendations []string        `db:"-" json:"recommendations"`
	Factors         []FactorSummary `db:"-" json:"factors,omitempty"`
}

// FactorSummary is one row of the per-factor qualitative breakdown shown
// alongside an assessment.
type FactorSummary struct {
	Factor string `json:"factor"`
	Value  string `json:"value"`
	Level  string `json:"level"`
}
