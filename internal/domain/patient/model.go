package patient

import "fmt"

// Sex is a closed categorical type. The fitted model encodes sex as a 0/1
// indicator, so the mapping is total: every valid value has exactly one
// encoding.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// Valid reports whether s is one of the closed set of values.
func (s Sex) Valid() bool {
	return s == SexFemale || s == SexMale
}

// Indicator returns the model encoding for the sex: 1 for male, 0 for female.
func (s Sex) Indicator() float64 {
	if s == SexMale {
		return 1
	}
	return 0
}

// indicator maps a yes/no clinical flag to its model encoding.
func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// PatientRecord is the raw clinical input to a risk assessment. It is treated
// as immutable once built; derived quantities such as BMI are recomputed on
// every scoring call rather than stored back onto the record.
type PatientRecord struct {
	Age              int     `json:"age"`
	Sex              Sex     `json:"sex"`
	CurrentSmoker    bool    `json:"current_smoker"`
	CigarettesPerDay int     `json:"cigarettes_per_day"`
	TotalCholesterol float64 `json:"total_cholesterol"` // mg/dL
	SystolicBP       float64 `json:"systolic_bp"`       // mm Hg
	DiastolicBP      float64 `json:"diastolic_bp"`      // mm Hg
	HeightCm         float64 `json:"height_cm"`
	WeightKg         float64 `json:"weight_kg"`
	HeartRate        float64 `json:"heart_rate"` // resting, bpm
	Glucose          float64 `json:"glucose"`    // fasting, mg/dL
	Diabetes         bool    `json:"diabetes"`
	Hypertension     bool    `json:"hypertension"`
}

// ValidationError reports malformed input: a caller bug rather than a
// scoring failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func rangeErr(field string, lo, hi float64) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("must be between %g and %g", lo, hi)}
}

// Validate checks the record against the clinical input ranges enforced by
// the intake form. The feature builder itself does not clamp or re-check
// ranges; this is the request layer's responsibility.
func (r PatientRecord) Validate() error {
	if r.Age < 1 || r.Age > 120 {
		return rangeErr("age", 1, 120)
	}
	if !r.Sex.Valid() {
		return &ValidationError{Field: "sex", Reason: `must be "male" or "female"`}
	}
	if r.CigarettesPerDay < 0 || r.CigarettesPerDay > 100 {
		return rangeErr("cigarettes_per_day", 0, 100)
	}
	if r.TotalCholesterol < 100 || r.TotalCholesterol > 400 {
		return rangeErr("total_cholesterol", 100, 400)
	}
	if r.SystolicBP < 80 || r.SystolicBP > 250 {
		return rangeErr("systolic_bp", 80, 250)
	}
	if r.DiastolicBP < 60 || r.DiastolicBP > 200 {
		return rangeErr("diastolic_bp", 60, 200)
	}
	if r.HeightCm < 100 || r.HeightCm > 250 {
		return rangeErr("height_cm", 100, 250)
	}
	if r.WeightKg < 30 || r.WeightKg > 300 {
		return rangeErr("weight_kg", 30, 300)
	}
	if r.HeartRate < 40 || r.HeartRate > 200 {
		return rangeErr("heart_rate", 40, 200)
	}
	if r.Glucose < 50 || r.Glucose > 400 {
		return rangeErr("glucose", 50, 400)
	}
	return nil
}

// BMI returns weight(kg) / height(m)². It is a pure computed property and is
// never cached on the record.
func (r PatientRecord) BMI() float64 {
	heightM := r.HeightCm / 100
	return r.WeightKg / (heightM * heightM)
}
