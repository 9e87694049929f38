package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"

	"client-scheduler/internal/auth"
	"client-scheduler/internal/handler"
	"client-scheduler/internal/middleware"
	"client-scheduler/internal/model"
	"client-scheduler/internal/report"
	"client-scheduler/internal/store"
)

const testSecret = "test-secret"

type spySink struct {
	records []bool
}

func (s *spySink) Record(at time.Time, success bool, username string) error {
	s.records = append(s.records, success)
	return nil
}

func setup(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface, *spySink) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	st := store.New(mock, "app")
	sink := &spySink{}
	authn := auth.NewAuthenticator(st, auth.PlainVerifier{}, sink, zap.NewNop())
	h := handler.New(st, authn, testSecret, zap.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.Register(r, middleware.NewRateLimiter(100, 100))
	return r, mock, sink
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.MakeToken(&model.User{ID: 1, Name: "admin"}, testSecret)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return tok
}

func expectUsers(mock pgxmock.PgxPoolIface) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "password", "created_at", "created_by", "updated_at", "updated_by",
		}).AddRow(1, "admin", "pass", now, "app", now, "app"))
}

// ----- login -----

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		wantStatus int
		wantAudit  bool
	}{
		{"valid credentials", "admin", "pass", http.StatusOK, true},
		{"wrong password", "admin", "wrong", http.StatusUnauthorized, false},
		{"password case differs", "admin", "PASS", http.StatusUnauthorized, false},
		{"unknown user", "ghost", "pass", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock, sink := setup(t)
			expectUsers(mock)

			rec := doJSON(t, r, "POST", "/auth/login",
				map[string]string{"username": tt.username, "password": tt.password}, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if len(sink.records) != 1 {
				t.Fatalf("expected 1 audit record, got %d", len(sink.records))
			}
			if sink.records[0] != tt.wantAudit {
				t.Errorf("audit outcome: got %v", sink.records[0])
			}

			if tt.wantStatus == http.StatusOK {
				var body map[string]any
				json.NewDecoder(rec.Body).Decode(&body)
				if body["token"] == nil || body["token"] == "" {
					t.Error("missing token")
				}
				if body["name"] != "admin" {
					t.Errorf("name: got %v", body["name"])
				}
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	r, _, sink := setup(t)

	for _, body := range []map[string]string{
		{"username": "", "password": "pass"},
		{"username": "admin", "password": ""},
		{},
	} {
		rec := doJSON(t, r, "POST", "/auth/login", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	}
	if len(sink.records) != 0 {
		t.Errorf("rejected input must not reach the audit sink, got %d records", len(sink.records))
	}
}

// A database failure is reported distinctly from bad credentials so the
// client can show a targeted message.
func TestLoginDatabaseError(t *testing.T) {
	r, mock, sink := setup(t)
	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WillReturnError(fmt.Errorf("connection refused"))

	rec := doJSON(t, r, "POST", "/auth/login",
		map[string]string{"username": "admin", "password": "pass"}, "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if len(sink.records) != 0 {
		t.Error("db failure is not an attempt outcome; no audit record expected")
	}
}

// ----- auth gate -----

func TestAPIRequiresToken(t *testing.T) {
	r, _, _ := setup(t)

	rec := doJSON(t, r, "GET", "/api/customers", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, r, "GET", "/api/customers", nil, "garbage.token.here")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", rec.Code)
	}
}

// ----- customers -----

func TestCreateCustomer(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(id\),0\)\+1 FROM customers`).
		WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(4))
	mock.ExpectExec(`INSERT INTO customers`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	rec := doJSON(t, r, "POST", "/api/customers", map[string]any{
		"name": "Daddy Warbucks", "address": "1919 Boardwalk",
		"postalCode": "01291", "phone": "869-908-1875", "divisionId": 3,
	}, tok)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got model.Customer
	json.NewDecoder(rec.Body).Decode(&got)
	if got.ID != 4 {
		t.Errorf("expected allocated id 4, got %d", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteCustomerIdempotent(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)

	mock.ExpectExec(`DELETE FROM customers`).
		WithArgs(42).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	rec := doJSON(t, r, "DELETE", "/api/customers/42", nil, tok)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for nonexistent id, got %d", rec.Code)
	}
}

func TestNextCustomerIDEmptyTable(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)

	mock.ExpectQuery(`SELECT MAX\(id\) FROM customers`).
		WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(nil))

	rec := doJSON(t, r, "GET", "/api/customers/next-id", nil, tok)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

// ----- appointments -----

func TestCreateAppointmentValidation(t *testing.T) {
	r, _, _ := setup(t)
	tok := sessionToken(t)

	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{
			"start": start, "end": start.Add(time.Hour),
			"customerId": 1, "userId": 1, "contactId": 1,
		}},
		{"end before start", map[string]any{
			"title": "X", "start": start, "end": start.Add(-time.Hour),
			"customerId": 1, "userId": 1, "contactId": 1,
		}},
		{"end equals start", map[string]any{
			"title": "X", "start": start, "end": start,
			"customerId": 1, "userId": 1, "contactId": 1,
		}},
		{"missing references", map[string]any{
			"title": "X", "start": start, "end": start.Add(time.Hour),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, "POST", "/api/appointments", tt.body, tok)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

// ----- reports -----

func expectAppointments(mock pgxmock.PgxPoolIface) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "title", "description", "location", "type", "start_time", "end_time",
		"customer_id", "user_id", "contact_id",
		"created_at", "created_by", "updated_at", "updated_by",
	}
	jan := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM appointments`).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(1, "a", "", "", "Planning", jan, jan.Add(time.Hour), 1, 1, 5, now, "app", now, "app").
			AddRow(2, "b", "", "", "Planning", mar, mar.Add(time.Hour), 2, 1, 3, now, "app", now, "app").
			AddRow(3, "c", "", "", "De-Briefing", mar, mar.Add(time.Hour), 1, 1, 5, now, "app", now, "app"))
}

func TestReportByType(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)
	expectAppointments(mock)

	rec := doJSON(t, r, "GET", "/api/reports/by-type", nil, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var counts []report.Count
	json.NewDecoder(rec.Body).Decode(&counts)
	if len(counts) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(counts))
	}
	total := 0
	for _, c := range counts {
		total += c.Total
	}
	if total != 3 {
		t.Errorf("group totals must cover every appointment, got %d", total)
	}
}

func TestReportByMonth(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)
	expectAppointments(mock)

	rec := doJSON(t, r, "GET", "/api/reports/by-month", nil, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var counts []report.Count
	json.NewDecoder(rec.Body).Decode(&counts)
	if len(counts) != 2 || counts[0].Label != "January" || counts[1].Label != "March" {
		t.Errorf("unexpected months: %+v", counts)
	}
}

func TestReportByCustomer(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)
	expectAppointments(mock)

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM customers`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "address", "postal_code", "phone", "division_id",
			"created_at", "created_by", "updated_at", "updated_by",
		}).AddRow(1, "Daddy Warbucks", "", "", "", 3, now, "app", now, "app"))

	rec := doJSON(t, r, "GET", "/api/reports/by-customer", nil, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var counts []report.Count
	json.NewDecoder(rec.Body).Decode(&counts)
	if len(counts) != 2 {
		t.Fatalf("expected 2 groups, got %+v", counts)
	}
	if counts[0].Label != "Daddy Warbucks" || counts[0].Total != 2 {
		t.Errorf("resolved group mismatch: %+v", counts[0])
	}
	if counts[1].Label != "customer #2" {
		t.Errorf("unresolved reference keeps its own group: %+v", counts[1])
	}
}

func TestContactAppointments(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)
	expectAppointments(mock)

	rec := doJSON(t, r, "GET", "/api/contacts/5/appointments", nil, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var apps []model.Appointment
	json.NewDecoder(rec.Body).Decode(&apps)
	if len(apps) != 2 || apps[0].ID != 1 || apps[1].ID != 3 {
		t.Errorf("expected appointments 1 and 3 in order, got %+v", apps)
	}
}

func TestContactAppointmentsNoMatches(t *testing.T) {
	r, mock, _ := setup(t)
	tok := sessionToken(t)
	expectAppointments(mock)

	rec := doJSON(t, r, "GET", "/api/contacts/99/appointments", nil, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("no matches is not an error, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]" && body != "[]\n" {
		t.Errorf("expected empty array, got %q", body)
	}
}
