package assessment

import (
	"fmt"

	"github.com/cardioscore/risk-api/internal/domain/patient"
)

// Qualitative factor levels. These mirror widely used clinical cut points
// (cholesterol ≥240 high, BP 140/90 hypertensive, BMI 30 obese) and are
// independent of the fitted model.
const (
	levelLow      = "Low"
	levelModerate = "Moderate"
	levelHigh     = "High"
	levelHigher   = "Higher"
	levelLower    = "Lower"
)

// BuildFactorSummary produces the per-factor qualitative breakdown for a
// record. Purely informational; it has no effect on the scored probability.
func BuildFactorSummary(r patient.PatientRecord) []FactorSummary {
	ageLevel := levelLow
	if r.Age > 65 {
		ageLevel = levelHigh
	} else if r.Age > 45 {
		ageLevel = levelModerate
	}

	sexLevel := levelLower
	if r.Sex == patient.SexMale {
		sexLevel = levelHigher
	}

	smokingLevel := levelLow
	smokingValue := "no"
	if r.CurrentSmoker {
		smokingLevel = levelHigh
		smokingValue = fmt.Sprintf("%d/day", r.CigarettesPerDay)
	}

	cholLevel := levelLow
	if r.TotalCholesterol > 240 {
		cholLevel = levelHigh
	} else if r.TotalCholesterol > 200 {
		cholLevel = levelModerate
	}

	bpLevel := levelLow
	if r.SystolicBP > 140 || r.DiastolicBP > 90 {
		bpLevel = levelHigh
	} else if r.SystolicBP > 120 {
		bpLevel = levelModerate
	}

	bmi := r.BMI()
	bmiLevel := levelLow
	if bmi > 30 {
		bmiLevel = levelHigh
	} else if bmi > 25 {
		bmiLevel = levelModerate
	}

	diabetesLevel := levelLow
	diabetesValue := "no"
	if r.Diabetes {
		diabetesLevel = levelHigh
		diabetesValue = "yes"
	}

	return []FactorSummary{
		{Factor: "Age", Value: fmt.Sprintf("%d", r.Age), Level: ageLevel},
		{Factor: "Sex", Value: string(r.Sex), Level: sexLevel},
		{Factor: "Smoking", Value: smokingValue, Level: smokingLevel},
		{Factor: "Cholesterol", Value: fmt.Sprintf("%.0f mg/dL", r.TotalCholesterol), Level: cholLevel},
		{Factor: "Blood Pressure", Value: fmt.Sprintf("%.0f/%.0f", r.SystolicBP, r.DiastolicBP), Level: bpLevel},
		{Factor: "BMI", Value: fmt.Sprintf("%.1f", bmi), Level: bmiLevel},
		{Factor: "Diabetes", Value: diabetesValue, Level: diabetesLevel},
	}
}

// RiskFactorInfo is a static educational entry about a cardiovascular risk
// factor.
type RiskFactorInfo struct {
	Factor      string `json:"factor"`
	Description string `json:"description"`
}

// KnownRiskFactors is the static educational factor list served by the API.
var KnownRiskFactors = []RiskFactorInfo{
	{Factor: "Age", Description: "Risk increases significantly with age"},
	{Factor: "Smoking", Description: "Doubles the risk of heart disease"},
	{Factor: "Cholesterol", Description: "High levels (>240 mg/dL) significantly increase risk"},
	{Factor: "Blood Pressure", Description: "High BP (>140/90) is a major risk factor"},
	{Factor: "Diabetes", Description: "Increases risk by 2-4 times"},
	{Factor: "BMI", Description: "Obesity (BMI >30) increases risk substantially"},
}
