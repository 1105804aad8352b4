package patient

// FeatureCount is the width of the fitted model's feature schema.
const FeatureCount = 12

// FeatureNames lists the schema columns in their fixed order. The scaler and
// model were fitted on this exact order; it must never be reordered.
var FeatureNames = [FeatureCount]string{
	"age", "male", "currentSmoker", "cigsPerDay", "totChol", "sysBP",
	"diaBP", "BMI", "heartRate", "glucose", "diabetes", "prevalentHyp",
}

// FeatureVector is an ordered numeric feature row in the fixed schema order.
type FeatureVector []float64

// BuildFeatures assembles the feature vector for a record. It is a pure
// function: categorical fields are encoded through their total 0/1 mappings
// and BMI is derived from height and weight. Range enforcement belongs to
// the caller; the only guard here is against a mathematically undefined BMI.
func BuildFeatures(r PatientRecord) (FeatureVector, error) {
	if r.HeightCm <= 0 {
		return nil, &ValidationError{Field: "height_cm", Reason: "must be positive"}
	}
	if r.WeightKg <= 0 {
		return nil, &ValidationError{Field: "weight_kg", Reason: "must be positive"}
	}

	return FeatureVector{
		float64(r.Age),
		r.Sex.Indicator(),
		indicator(r.CurrentSmoker),
		float64(r.CigarettesPerDay),
		r.TotalCholesterol,
		r.SystolicBP,
		r.DiastolicBP,
		r.BMI(),
		r.HeartRate,
		r.Glucose,
		indicator(r.Diabetes),
		indicator(r.Hypertension),
	}, nil
}
