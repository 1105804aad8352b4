package assessment

import (
	"testing"

	"github.com/cardioscore/risk-api/internal/domain/patient"
)

func baselineRecord() patient.PatientRecord {
	return patient.PatientRecord{
		Age: 40, Sex: patient.SexFemale,
		TotalCholesterol: 180, SystolicBP: 110, DiastolicBP: 70,
		HeightCm: 165, WeightKg: 60, HeartRate: 70, Glucose: 85,
	}
}

func factorLevel(t *testing.T, factors []FactorSummary, name string) string {
	t.Helper()
	for _, f := range factors {
		if f.Factor == name {
			return f.Level
		}
	}
	t.Fatalf("factor %q not present in summary", name)
	return ""
}

func TestBuildFactorSummary_Baseline(t *testing.T) {
	factors := BuildFactorSummary(baselineRecord())

	if len(factors) != 7 {
		t.Fatalf("expected 7 factors, got %d", len(factors))
	}
	for _, name := range []string{"Age", "Cholesterol", "Blood Pressure", "BMI", "Smoking", "Diabetes"} {
		if lvl := factorLevel(t, factors, name); lvl != levelLow {
			t.Errorf("%s: expected %q for a healthy baseline, got %q", name, levelLow, lvl)
		}
	}
	if lvl := factorLevel(t, factors, "Sex"); lvl != levelLower {
		t.Errorf("Sex: expected %q for female, got %q", levelLower, lvl)
	}
}

func TestBuildFactorSummary_Thresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*patient.PatientRecord)
		factor string
		want   string
	}{
		{"age over 45", func(r *patient.PatientRecord) { r.Age = 46 }, "Age", levelModerate},
		{"age over 65", func(r *patient.PatientRecord) { r.Age = 66 }, "Age", levelHigh},
		{"male", func(r *patient.PatientRecord) { r.Sex = patient.SexMale }, "Sex", levelHigher},
		{"smoker", func(r *patient.PatientRecord) { r.CurrentSmoker = true; r.CigarettesPerDay = 10 }, "Smoking", levelHigh},
		{"cholesterol over 200", func(r *patient.PatientRecord) { r.TotalCholesterol = 210 }, "Cholesterol", levelModerate},
		{"cholesterol over 240", func(r *patient.PatientRecord) { r.TotalCholesterol = 250 }, "Cholesterol", levelHigh},
		{"systolic over 120", func(r *patient.PatientRecord) { r.SystolicBP = 130 }, "Blood Pressure", levelModerate},
		{"systolic over 140", func(r *patient.PatientRecord) { r.SystolicBP = 150 }, "Blood Pressure", levelHigh},
		{"diastolic over 90", func(r *patient.PatientRecord) { r.DiastolicBP = 95 }, "Blood Pressure", levelHigh},
		{"overweight", func(r *patient.PatientRecord) { r.WeightKg = 72 }, "BMI", levelModerate}, // 72/1.65² ≈ 26.4
		{"obese", func(r *patient.PatientRecord) { r.WeightKg = 85 }, "BMI", levelHigh},          // ≈ 31.2
		{"diabetic", func(r *patient.PatientRecord) { r.Diabetes = true }, "Diabetes", levelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baselineRecord()
			tt.mutate(&rec)
			factors := BuildFactorSummary(rec)
			if got := factorLevel(t, factors, tt.factor); got != tt.want {
				t.Errorf("%s: expected %q, got %q", tt.factor, tt.want, got)
			}
		})
	}
}

func TestBuildFactorSummary_SmokingValue(t *testing.T) {
	rec := baselineRecord()
	rec.CurrentSmoker = true
	rec.CigarettesPerDay = 15

	factors := BuildFactorSummary(rec)
	for _, f := range factors {
		if f.Factor == "Smoking" {
			if f.Value != "15/day" {
				t.Errorf("expected smoking value %q, got %q", "15/day", f.Value)
			}
			return
		}
	}
	t.Fatal("smoking factor missing")
}

func TestKnownRiskFactors(t *testing.T) {
	if len(KnownRiskFactors) != 6 {
		t.Fatalf("expected 6 known risk factors, got %d", len(KnownRiskFactors))
	}
	for _, f := range KnownRiskFactors {
		if f.Factor == "" || f.Description == "" {
			t.Errorf("incomplete entry: %+v", f)
		}
	}
}
