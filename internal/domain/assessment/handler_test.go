package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler(repo Repository) *Handler {
	return NewHandler(newTestService(repo))
}

func doJSON(h echo.HandlerFunc, method, target, body string, params map[string]string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	err := h(c)
	return rec, err
}

const validBody = `{
	"age": 55,
	"sex": "male",
	"current_smoker": true,
	"cigarettes_per_day": 10,
	"total_cholesterol": 230,
	"systolic_bp": 135,
	"diastolic_bp": 85,
	"height_cm": 175,
	"weight_kg": 82,
	"heart_rate": 72,
	"glucose": 95
}`

func TestCreateAssessment(t *testing.T) {
	repo := newMockRepo()
	h := newTestHandler(repo)

	rec, err := doJSON(h.CreateAssessment, http.MethodPost, "/api/v1/assessments", validBody, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got RiskAssessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Error("expected assigned ID in response")
	}
	if got.Tier == "" {
		t.Error("expected a tier in response")
	}
	if len(got.Recommendations) != 3 {
		t.Errorf("expected 3 recommendations, got %d", len(got.Recommendations))
	}
	if len(got.Factors) != 7 {
		t.Errorf("expected 7 factor rows, got %d", len(got.Factors))
	}
	if len(repo.assessments) != 1 {
		t.Errorf("expected 1 persisted assessment, got %d", len(repo.assessments))
	}
}

func TestCreateAssessment_InvalidRecord(t *testing.T) {
	h := newTestHandler(newMockRepo())

	body := strings.Replace(validBody, `"age": 55`, `"age": 250`, 1)
	_, err := doJSON(h.CreateAssessment, http.MethodPost, "/api/v1/assessments", body, nil)

	var httpErr *echo.HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		httpErr = he
	} else {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestCreateAssessment_MalformedBody(t *testing.T) {
	h := newTestHandler(newMockRepo())

	_, err := doJSON(h.CreateAssessment, http.MethodPost, "/api/v1/assessments", `{"age": "not a number"}`, nil)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestGetAssessment(t *testing.T) {
	repo := newMockRepo()
	h := newTestHandler(repo)

	rec, err := doJSON(h.CreateAssessment, http.MethodPost, "/api/v1/assessments", validBody, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var created RiskAssessment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	rec, err = doJSON(h.GetAssessment, http.MethodGet, "/api/v1/assessments/"+created.ID.String(), "",
		map[string]string{"id": created.ID.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got RiskAssessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, got.ID)
	}
}

func TestGetAssessment_NotFound(t *testing.T) {
	h := newTestHandler(newMockRepo())

	_, err := doJSON(h.GetAssessment, http.MethodGet, "/api/v1/assessments/"+uuid.NewString(), "",
		map[string]string{"id": uuid.NewString()})

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestGetAssessment_InvalidID(t *testing.T) {
	h := newTestHandler(newMockRepo())

	_, err := doJSON(h.GetAssessment, http.MethodGet, "/api/v1/assessments/not-a-uuid", "",
		map[string]string{"id": "not-a-uuid"})

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestListAssessments(t *testing.T) {
	repo := newMockRepo()
	h := newTestHandler(repo)

	for i := 0; i < 3; i++ {
		if _, err := doJSON(h.CreateAssessment, http.MethodPost, "/api/v1/assessments", validBody, nil); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	rec, err := doJSON(h.ListAssessments, http.MethodGet, "/api/v1/assessments?limit=2&offset=0", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data    []RiskAssessment `json:"data"`
		Total   int              `json:"total"`
		HasMore bool             `json:"has_more"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("expected total 3, got %d", resp.Total)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 items with limit=2, got %d", len(resp.Data))
	}
	if !resp.HasMore {
		t.Error("expected has_more with a third item remaining")
	}
}

func TestListAssessments_PatientFilter(t *testing.T) {
	repo := newMockRepo()
	h := newTestHandler(repo)

	body := strings.Replace(validBody, `{`, `{"patient_ref": "patient-7",`, 1)
	if _, err := doJSON(h.CreateAssessment, http.MethodPost, "/api/v1/assessments", body, nil); err != nil {
		t.Fatalf("create with ref: %v", err)
	}
	if _, err := doJSON(h.CreateAssessment, http.MethodPost, "/api/v1/assessments", validBody, nil); err != nil {
		t.Fatalf("create without ref: %v", err)
	}

	rec, err := doJSON(h.ListAssessments, http.MethodGet, "/api/v1/assessments?patient_ref=patient-7", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data  []RiskAssessment `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected exactly 1 match, got total=%d len=%d", resp.Total, len(resp.Data))
	}
	if resp.Data[0].PatientRef == nil || *resp.Data[0].PatientRef != "patient-7" {
		t.Errorf("expected patient_ref %q, got %v", "patient-7", resp.Data[0].PatientRef)
	}
}

func TestListRiskFactors(t *testing.T) {
	h := newTestHandler(newMockRepo())

	rec, err := doJSON(h.ListRiskFactors, http.MethodGet, "/api/v1/risk-factors", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var factors []RiskFactorInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &factors); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(factors) != len(KnownRiskFactors) {
		t.Errorf("expected %d factors, got %d", len(KnownRiskFactors), len(factors))
	}
}
