package followups

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insulin-worksheet/internal/domain/dosing"
	"insulin-worksheet/internal/domain/worksheets"
	"insulin-worksheet/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// fixedWorksheetsRepo devuelve siempre el mismo worksheet (para pasar el
// chequeo de ownership sin armar todo el flujo de creación).
type fixedWorksheetsRepo struct {
	ws worksheets.Worksheet
}

func (r fixedWorksheetsRepo) Create(ctx context.Context, w worksheets.Worksheet) error {
	return nil
}

func (r fixedWorksheetsRepo) GetByID(ctx context.Context, id string) (worksheets.Worksheet, error) {
	if id != r.ws.ID {
		return worksheets.Worksheet{}, worksheets.ErrNotFound
	}
	return r.ws, nil
}

func (r fixedWorksheetsRepo) ListByClinician(ctx context.Context, clinicianUserID string) ([]worksheets.Worksheet, error) {
	return nil, nil
}

// failingFollowUpsRepo simula un storage caído en la escritura.
type failingFollowUpsRepo struct{}

func (failingFollowUpsRepo) Create(ctx context.Context, f FollowUp) error {
	return errors.New("connection refused")
}

func (failingFollowUpsRepo) GetByID(ctx context.Context, id string) (FollowUp, error) {
	return FollowUp{}, errors.New("connection refused")
}

func (failingFollowUpsRepo) ListByWorksheet(ctx context.Context, worksheetID string) ([]FollowUp, error) {
	return nil, errors.New("connection refused")
}

func (failingFollowUpsRepo) Void(ctx context.Context, id string) error {
	return errors.New("connection refused")
}

func newHandlerTestServer(repo Repository) *httptest.Server {
	wsRepo := fixedWorksheetsRepo{ws: worksheets.Worksheet{
		ID:              "ws-1",
		ClinicianUserID: "clinician-1",
	}}

	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	RegisterRoutes(r, NewService(repo), worksheets.NewService(wsRepo, dosing.NewService()))
	return httptest.NewServer(r)
}

// Un fallo del repo en Create no es un error del caller: 500, no 400.
func TestCreateFollowUp_StorageFailureIs500(t *testing.T) {
	ts := newHandlerTestServer(failingFollowUpsRepo{})
	defer ts.Close()

	body := strings.NewReader(`{"seen_at":"` + time.Now().UTC().Format(time.RFC3339) + `","fasting_mg_dl":140}`)
	req, _ := http.NewRequest("POST", ts.URL+"/worksheets/ws-1/followups", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Debug-User-ID", "clinician-1")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 for storage failure, got %d", res.StatusCode)
	}
}

// Las reglas de negocio sí son 400.
func TestCreateFollowUp_InvalidInputIs400(t *testing.T) {
	ts := newHandlerTestServer(newTestRepo())
	defer ts.Close()

	// fasting_mg_dl faltante => ErrInvalidInput del service.
	body := strings.NewReader(`{"seen_at":"` + time.Now().UTC().Format(time.RFC3339) + `"}`)
	req, _ := http.NewRequest("POST", ts.URL+"/worksheets/ws-1/followups", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Debug-User-ID", "clinician-1")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid input, got %d", res.StatusCode)
	}
}
