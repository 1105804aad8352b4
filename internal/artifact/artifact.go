// Package artifact loads the fitted scaler and model parameters produced by
// the offline training pipeline. Artifacts are read once at process start and
// shared read-only across all scoring calls; a load failure is fatal to the
// serving process — there is no fallback model.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/cardioscore/risk-api/internal/domain/patient"
)

var (
	// ErrNotFound indicates a missing artifact file.
	ErrNotFound = errors.New("artifact not found")
	// ErrCorrupt indicates an artifact that exists but cannot be used:
	// malformed JSON, wrong vector length, or non-finite parameters.
	ErrCorrupt = errors.New("artifact corrupt")
)

// ScalerParameters holds the per-feature mean and scale (standard deviation)
// of the fitted standardizer, in feature schema order.
type ScalerParameters struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// ScoringModel holds the fitted logistic regression parameters, in feature
// schema order.
type ScoringModel struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Bundle is an immutable scaler/model pair. All scoring calls share one
// bundle without locking.
type Bundle struct {
	Scaler ScalerParameters
	Model  ScoringModel
}

// Load reads and validates the scaler and model artifacts. Loading is
// deterministic: the same files always produce the same bundle.
func Load(scalerPath, modelPath string) (*Bundle, error) {
	var scaler ScalerParameters
	if err := loadJSON(scalerPath, &scaler); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	if err := validateVector("scaler mean", scaler.Mean); err != nil {
		return nil, err
	}
	if err := validateVector("scaler scale", scaler.Scale); err != nil {
		return nil, err
	}

	var model ScoringModel
	if err := loadJSON(modelPath, &model); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if err := validateVector("model coefficients", model.Coefficients); err != nil {
		return nil, err
	}
	if math.IsNaN(model.Intercept) || math.IsInf(model.Intercept, 0) {
		return nil, fmt.Errorf("%w: model intercept is not finite", ErrCorrupt)
	}

	return &Bundle{Scaler: scaler, Model: model}, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return nil
}

func validateVector(name string, v []float64) error {
	if len(v) != patient.FeatureCount {
		return fmt.Errorf("%w: %s has length %d, want %d",
			ErrCorrupt, name, len(v), patient.FeatureCount)
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s[%d] is not finite", ErrCorrupt, name, i)
		}
	}
	return nil
}
