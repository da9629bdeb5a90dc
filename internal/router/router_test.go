package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insulin-worksheet/internal/router"
)

func TestHTTP_EndToEnd_WorksheetLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	clinicianID := "clinician-1"
	otherID := "clinician-2"

	// 1) Clínico crea un worksheet (70kg basal-bolus, glucemia 250)
	worksheetID := createWorksheet(t, ts.URL, clinicianID, map[string]any{
		"patient_label": "HC 40213",
		"weight_kg":     70,
		"regimen":       "basal_bolus",
		"glucose":       250,
	})

	// 2) El worksheet devuelve la recomendación esperada
	{
		st, body := doReq(t, ts.URL, "GET", "/worksheets/"+worksheetID, clinicianID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get worksheet, got %d body=%s", st, string(body))
		}

		var resp struct {
			Recommendation struct {
				TotalDailyUnits float64 `json:"total_daily_units"`
				CorrectionUnits int     `json:"correction_units"`
			} `json:"recommendation"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Recommendation.TotalDailyUnits != 35 {
			t.Fatalf("expected total 35 U, got %.1f body=%s", resp.Recommendation.TotalDailyUnits, string(body))
		}
		if resp.Recommendation.CorrectionUnits != 6 {
			t.Fatalf("expected 6U correction, got %d body=%s", resp.Recommendation.CorrectionUnits, string(body))
		}
	}

	// 3) Otro clínico NO puede verlo ni exportarlo
	{
		st, _ := doReq(t, ts.URL, "GET", "/worksheets/"+worksheetID, otherID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for another clinician, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/worksheets/"+worksheetID+"/pdf", otherID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 pdf for another clinician, got %d", st)
		}
	}

	// 4) Export a PDF
	{
		req, _ := http.NewRequest("GET", ts.URL+"/worksheets/"+worksheetID+"/pdf", nil)
		req.Header.Set("X-Debug-User-ID", clinicianID)
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("pdf request: %v", err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 pdf export, got %d", res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		raw, _ := io.ReadAll(res.Body)
		if !bytes.HasPrefix(raw, []byte("%PDF")) {
			t.Fatalf("pdf body does not start with %%PDF")
		}
	}

	// 5) Follow-up de titulación: crear, listar, anular
	followUpID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/worksheets/"+worksheetID+"/followups", clinicianID, map[string]any{
			"seen_at":              time.Now().UTC().Format(time.RFC3339),
			"fasting_mg_dl":        145,
			"adjusted_total_units": 38,
			"note":                 "fasting above target, +3U",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create follow-up, got %d body=%s", st, string(body))
		}

		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID == "" {
			t.Fatalf("create follow-up: missing id body=%s", string(body))
		}
		followUpID = resp.ID
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/worksheets/"+worksheetID+"/followups", clinicianID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list follow-ups, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/worksheets/"+worksheetID+"/followups/"+followUpID+"/void", clinicianID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 void follow-up, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"status":"voided"`) {
			t.Fatalf("expected voided status in body=%s", string(body))
		}
	}

	// 6) Otro clínico no puede tocar los follow-ups
	{
		st, _ := doReq(t, ts.URL, "GET", "/worksheets/"+worksheetID+"/followups", otherID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 list follow-ups for another clinician, got %d", st)
		}
	}

	// 7) El listado del dueño tiene exactamente su worksheet
	{
		st, body := doReq(t, ts.URL, "GET", "/worksheets", clinicianID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list worksheets, got %d body=%s", st, string(body))
		}
		var items []json.RawMessage
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 worksheet for owner, got %d", len(items))
		}

		st, body = doReq(t, ts.URL, "GET", "/worksheets", otherID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list worksheets, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("expected 0 worksheets for other clinician, got %d", len(items))
		}
	}
}

func TestHTTP_Calculate_Stateless(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Sin auth: el cálculo puro no guarda nada y no exige identidad.
	st, body := doReq(t, ts.URL, "POST", "/dosing/calculate", "", map[string]any{
		"weight_kg": 70,
		"regimen":   "basal_bolus",
		"glucose":   250,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 calculate, got %d body=%s", st, string(body))
	}

	var resp struct {
		TotalDailyUnits float64 `json:"total_daily_units"`
		CorrectionUnits int     `json:"correction_units"`
		Components      []struct {
			Units float64 `json:"units"`
		} `json:"components"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.TotalDailyUnits != 35 {
		t.Fatalf("expected total 35 U, got %.1f", resp.TotalDailyUnits)
	}
	if resp.CorrectionUnits != 6 {
		t.Fatalf("expected 6U correction, got %d", resp.CorrectionUnits)
	}
	if len(resp.Components) != 4 || resp.Components[0].Units != 17.5 {
		t.Fatalf("unexpected components body=%s", string(body))
	}
}

func TestHTTP_Calculate_RejectsBadInput(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// peso inválido => 400
	st, _ := doReq(t, ts.URL, "POST", "/dosing/calculate", "", map[string]any{
		"weight_kg": 0,
		"regimen":   "basal",
		"glucose":   120,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero weight, got %d", st)
	}

	// glucemia fuera de tabla => 422 con warning de override clínico
	st, body := doReq(t, ts.URL, "POST", "/dosing/calculate", "", map[string]any{
		"weight_kg": 70,
		"regimen":   "basal",
		"glucose":   400,
	})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for glucose above table, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), "clinical judgment") {
		t.Fatalf("expected clinical override warning in body=%s", string(body))
	}
}

func TestHTTP_FormMetadata(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	{
		st, body := doReq(t, ts.URL, "GET", "/dosing/regimens", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 regimens, got %d", st)
		}
		var items []struct {
			Regimen string `json:"regimen"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 4 {
			t.Fatalf("expected 4 regimens, got %d body=%s", len(items), string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/dosing/correction-table", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 correction table, got %d", st)
		}
		var resp struct {
			Bins []struct {
				Units int `json:"units"`
			} `json:"bins"`
			UpperBound int `json:"upper_bound_mg_dl"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Bins) != 5 || resp.UpperBound != 350 {
			t.Fatalf("unexpected correction table body=%s", string(body))
		}
	}
}

func TestHTTP_VoidFollowUp_CrossWorksheetDoesNotMutate(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Clínico A registra un worksheet con un follow-up activo.
	wsA := createWorksheet(t, ts.URL, "clinician-a", map[string]any{
		"weight_kg": 70,
		"regimen":   "basal",
		"glucose":   120,
	})
	followUpA := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/worksheets/"+wsA+"/followups", "clinician-a", map[string]any{
			"seen_at":       time.Now().UTC().Format(time.RFC3339),
			"fasting_mg_dl": 150,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create follow-up, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		followUpA = resp.ID
	}

	// Clínico B tiene su propio worksheet e intenta anular el follow-up de A
	// colgándolo de su propio path.
	wsB := createWorksheet(t, ts.URL, "clinician-b", map[string]any{
		"weight_kg": 80,
		"regimen":   "basal",
		"glucose":   120,
	})
	{
		st, _ := doReq(t, ts.URL, "POST", "/worksheets/"+wsB+"/followups/"+followUpA+"/void", "clinician-b", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for cross-worksheet void, got %d", st)
		}
	}

	// El follow-up de A tiene que seguir activo: el 404 no puede dejar
	// el registro ajeno mutado.
	{
		st, body := doReq(t, ts.URL, "GET", "/worksheets/"+wsA+"/followups", "clinician-a", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list follow-ups, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"status":"active"`) {
			t.Fatalf("expected follow-up still active, body=%s", string(body))
		}
		if strings.Contains(string(body), `"status":"voided"`) {
			t.Fatalf("cross-worksheet void mutated the record, body=%s", string(body))
		}
	}
}

func TestHTTP_GetWorksheet_UnknownIs404(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/worksheets/no-such-worksheet", "clinician-1", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown worksheet, got %d", st)
	}
}

func TestHTTP_CreateWorksheet_RequiresAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/worksheets", "", map[string]any{
		"weight_kg": 70,
		"regimen":   "basal",
		"glucose":   120,
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}
}

func createWorksheet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/worksheets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create worksheet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create worksheet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
