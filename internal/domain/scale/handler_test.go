package scale

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack/internal/platform/auth"
)

func authedContext(e *echo.Echo, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerRecordWeight(t *testing.T) {
	e := echo.New()
	svc, _, owner, patientID := fixture()
	h := NewHandler(svc)

	body := fmt.Sprintf(`{"patient_id":%q,"weight_kg":70,"height_m":1.75}`, patientID)
	c, rec := authedContext(e, http.MethodPost, "/api/v1/scale", body, owner)
	if err := h.RecordWeight(c); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var res RecordWeightResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.BMI == nil || *res.BMI != 22.86 {
		t.Errorf("bmi = %v", res.BMI)
	}
}

func TestHandlerRecordWeight_Invalid(t *testing.T) {
	e := echo.New()
	svc, _, owner, patientID := fixture()
	h := NewHandler(svc)

	body := fmt.Sprintf(`{"patient_id":%q,"weight_kg":-1,"height_m":1.75}`, patientID)
	c, _ := authedContext(e, http.MethodPost, "/api/v1/scale", body, owner)
	err := h.RecordWeight(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerListWeightHistory(t *testing.T) {
	e := echo.New()
	svc, _, owner, patientID := fixture()
	h := NewHandler(svc)

	if _, err := svc.RecordWeight(context.Background(), owner, RecordWeightInput{
		PatientID: patientID, WeightKg: 70, HeightM: 1.75,
	}); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}

	c, rec := authedContext(e, http.MethodGet, "/", "", owner)
	c.SetParamNames("patientId")
	c.SetParamValues(patientID.String())
	if err := h.ListWeightHistory(c); err != nil {
		t.Fatalf("ListWeightHistory: %v", err)
	}
	var history WeightHistory
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if history.Total != 1 || history.LatestBMI == nil {
		t.Errorf("unexpected history: %s", rec.Body.String())
	}
}

func TestHandlerWeightSummary_ForeignPatient(t *testing.T) {
	e := echo.New()
	svc, _, owner, patientID := fixture()
	h := NewHandler(svc)

	if _, err := svc.RecordWeight(context.Background(), owner, RecordWeightInput{
		PatientID: patientID, WeightKg: 70, HeightM: 1.75,
	}); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}

	c, _ := authedContext(e, http.MethodGet, "/", "", uuid.New())
	c.SetParamNames("patientId")
	c.SetParamValues(patientID.String())
	err := h.WeightSummary(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign patient, got %v", err)
	}
}
