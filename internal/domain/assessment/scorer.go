package assessment

import (
	"fmt"
	"math"

	"github.com/cardioscore/risk-api/internal/artifact"
	"github.com/cardioscore/risk-api/internal/domain/patient"
)

// logitClamp bounds the linear score before the sigmoid so exp never
// overflows or underflows. exp(35) ≈ 1.6e15, far beyond any probability
// resolution that matters clinically.
const logitClamp = 35.0

// ScoringError reports degenerate or unusable fitted parameters. It is
// deterministic for a given artifact state — retrying the same call is
// futile.
type ScoringError struct {
	Reason string
}

func (e *ScoringError) Error() string {
	return "scoring failed: " + e.Reason
}

// Standardize transforms a raw feature vector into z-scores using the fitted
// scaler. A zero scale entry means the training column was constant; it is
// guarded here so a degenerate artifact can never produce Inf or NaN.
func Standardize(vec patient.FeatureVector, scaler artifact.ScalerParameters) ([]float64, error) {
	if len(vec) != patient.FeatureCount {
		return nil, &patient.ValidationError{
			Field:  "features",
			Reason: fmt.Sprintf("expected %d values, got %d", patient.FeatureCount, len(vec)),
		}
	}
	z := make([]float64, len(vec))
	for i := range vec {
		if scaler.Scale[i] == 0 {
			return nil, &ScoringError{
				Reason: fmt.Sprintf("scaler scale[%d] (%s) is zero", i, patient.FeatureNames[i]),
			}
		}
		z[i] = (vec[i] - scaler.Mean[i]) / scaler.Scale[i]
	}
	return z, nil
}

// Destandardize inverts Standardize. Used to verify a scaler round-trips.
func Destandardize(z []float64, scaler artifact.ScalerParameters) patient.FeatureVector {
	x := make(patient.FeatureVector, len(z))
	for i := range z {
		x[i] = z[i]*scaler.Scale[i] + scaler.Mean[i]
	}
	return x
}

// sigmoid applies the logistic link with the logit clamped to a safe range,
// so the result is always a finite value in [0,1].
func sigmoid(logit float64) float64 {
	if logit > logitClamp {
		logit = logitClamp
	} else if logit < -logitClamp {
		logit = -logitClamp
	}
	return 1 / (1 + math.Exp(-logit))
}

// Scorer applies the fitted model to feature vectors. It holds only
// immutable artifact state, so a single scorer is shared by all requests
// without locking.
type Scorer struct {
	scaler artifact.ScalerParameters
	model  artifact.ScoringModel
}

// NewScorer creates a scorer over a loaded artifact bundle.
func NewScorer(bundle *artifact.Bundle) *Scorer {
	return &Scorer{scaler: bundle.Scaler, model: bundle.Model}
}

// PredictProbability returns the raw model probability in [0,1] for a
// feature vector. Inference is deterministic: identical input and artifacts
// produce a bit-identical result.
func (s *Scorer) PredictProbability(vec patient.FeatureVector) (float64, error) {
	z, err := Standardize(vec, s.scaler)
	if err != nil {
		return 0, err
	}

	logit := s.model.Intercept
	for i, c := range s.model.Coefficients {
		logit += c * z[i]
	}

	return sigmoid(logit), nil
}

// Score runs the full pipeline for a feature vector: probability, tier, and
// the fixed recommendation set for that tier.
func (s *Scorer) Score(vec patient.FeatureVector) (*RiskAssessment, error) {
	p, err := s.PredictProbability(vec)
	if err != nil {
		return nil, err
	}

	percent := p * 100
	tier := TierForProbability(percent)

	return &RiskAssessment{
		ProbabilityPercent: percent,
		Tier:               tier,
		RelativeRisk:       RelativeRiskFor(percent),
		Recommendations:    tier.Recommendations(),
	}, nil
}
