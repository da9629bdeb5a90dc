package worksheets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"insulin-worksheet/internal/domain/dosing"
	"insulin-worksheet/internal/middleware"
	"insulin-worksheet/internal/platform/pdfexport"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/worksheets", func(wr chi.Router) {
		wr.Post("/", createWorksheetHandler(svc))
		wr.Get("/", listWorksheetsHandler(svc))

		wr.Get("/{worksheetID}", getWorksheetHandler(svc))
		wr.Get("/{worksheetID}/pdf", exportWorksheetPDFHandler(svc))
	})
}

type createWorksheetRequest struct {
	PatientLabel string  `json:"patient_label"`
	WeightKg     float64 `json:"weight_kg"`
	Regimen      string  `json:"regimen"`
	Glucose      float64 `json:"glucose"`
	GlucoseUnit  string  `json:"glucose_unit"`
	InsulinNaive bool    `json:"insulin_naive"`
}

type patientInputResponse struct {
	WeightKg     float64 `json:"weight_kg"`
	Regimen      string  `json:"regimen"`
	Glucose      float64 `json:"glucose"`
	GlucoseUnit  string  `json:"glucose_unit"`
	InsulinNaive bool    `json:"insulin_naive"`
}

type worksheetResponse struct {
	ID              string                        `json:"id"`
	ClinicianUserID string                        `json:"clinician_user_id"`
	PatientLabel    string                        `json:"patient_label"`
	Input           patientInputResponse          `json:"input"`
	Recommendation  dosing.RecommendationResponse `json:"recommendation"`
	CreatedAt       time.Time                     `json:"created_at"`
}

// createWorksheetHandler godoc
// @Summary Create a saved dosing worksheet
// @Description Computa y guarda un worksheet para el clínico autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags worksheets
// @Accept json
// @Produce json
// @Param input body createWorksheetRequest true "patient parameters"
// @Success 201 {object} worksheetResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /worksheets [post]
func createWorksheetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createWorksheetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ws, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			PatientLabel: req.PatientLabel,
			Patient: dosing.PatientInput{
				WeightKg:     req.WeightKg,
				Regimen:      dosing.Regimen(req.Regimen),
				Glucose:      req.Glucose,
				GlucoseUnit:  dosing.GlucoseUnit(req.GlucoseUnit),
				InsulinNaive: req.InsulinNaive,
			},
		})
		if err != nil {
			writeCreateError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toWorksheetResponse(ws))
	}
}

// listWorksheetsHandler godoc
// @Summary List my worksheets
// @Description Lista los worksheets del clínico autenticado (solo propios).
// @Tags worksheets
// @Produce json
// @Success 200 {array} worksheetResponse
// @Router /worksheets [get]
func listWorksheetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByClinician(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]worksheetResponse, 0, len(items))
		for _, ws := range items {
			out = append(out, toWorksheetResponse(ws))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getWorksheetHandler godoc
// @Summary Get a worksheet
// @Tags worksheets
// @Produce json
// @Param worksheetID path string true "worksheet id"
// @Success 200 {object} worksheetResponse
// @Failure 404 {string} string "not found"
// @Router /worksheets/{worksheetID} [get]
func getWorksheetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, status, msg := authorizedWorksheet(svc, r)
		if status != http.StatusOK {
			http.Error(w, msg, status)
			return
		}
		writeJSON(w, http.StatusOK, toWorksheetResponse(ws))
	}
}

// exportWorksheetPDFHandler godoc
// @Summary Export a worksheet as PDF
// @Description Renderiza el resumen en PDF. Formateo puro: un fallo acá no afecta las respuestas JSON del worksheet.
// @Tags worksheets
// @Produce application/pdf
// @Param worksheetID path string true "worksheet id"
// @Success 200 {file} file
// @Failure 404 {string} string "not found"
// @Router /worksheets/{worksheetID}/pdf [get]
func exportWorksheetPDFHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, status, msg := authorizedWorksheet(svc, r)
		if status != http.StatusOK {
			http.Error(w, msg, status)
			return
		}

		pdfBytes, err := pdfexport.Render(buildWorksheetDocument(ws))
		if err != nil {
			http.Error(w, "export error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=worksheet-%s.pdf", ws.ID))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdfBytes)
	}
}

// authorizedWorksheet resuelve el worksheet del path y aplica ownership:
// solo el clínico que lo creó puede verlo o exportarlo.
func authorizedWorksheet(svc *Service, r *http.Request) (Worksheet, int, string) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return Worksheet{}, http.StatusUnauthorized, "unauthorized"
	}

	worksheetID := chi.URLParam(r, "worksheetID")
	ws, err := svc.GetByID(r.Context(), worksheetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Worksheet{}, http.StatusNotFound, "worksheet not found"
		}
		// Un storage caído no es "no existe".
		return Worksheet{}, http.StatusInternalServerError, "internal error"
	}

	if ws.ClinicianUserID != claims.UserID {
		return Worksheet{}, http.StatusForbidden, "forbidden"
	}

	return ws, http.StatusOK, ""
}

func writeCreateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, dosing.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dosing.ErrGlucoseOutOfRange):
		// Mismo contrato que /dosing/calculate: 422 + aviso de override clínico.
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   err.Error(),
			"warning": "Glucose reading is above the correction table. Use manual clinical judgment; this worksheet does not extrapolate beyond its top bin.",
		})
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// buildWorksheetDocument arma el Document genérico que pdfexport sabe renderizar.
func buildWorksheetDocument(ws Worksheet) pdfexport.Document {
	rec := ws.Recommendation

	unit := string(ws.Input.GlucoseUnit)
	if unit == "" {
		unit = string(dosing.UnitMgDL)
	}

	patientRows := []pdfexport.Row{
		{Label: "Patient", Value: orDash(ws.PatientLabel)},
		{Label: "Weight", Value: fmt.Sprintf("%.1f kg", ws.Input.WeightKg)},
		{Label: "Blood glucose", Value: fmt.Sprintf("%.1f %s (%d mg/dL)", ws.Input.Glucose, unit, rec.GlucoseMgDL)},
		{Label: "Regimen", Value: rec.RegimenName},
		{Label: "Insulin-naive", Value: yesNo(ws.Input.InsulinNaive)},
	}

	doseRows := []pdfexport.Row{
		{Label: "Total daily dose", Value: fmt.Sprintf("%.1f U (%.2f U/kg)", rec.TotalDailyUnits, rec.UnitsPerKg)},
	}
	for _, c := range rec.Components {
		doseRows = append(doseRows, pdfexport.Row{
			Label: c.Label,
			Value: fmt.Sprintf("%.1f U (%.1f%%)", c.Units, c.Percent),
		})
	}
	doseRows = append(doseRows, pdfexport.Row{
		Label: "Correction dose",
		Value: fmt.Sprintf("%d U (at %d mg/dL)", rec.CorrectionUnits, rec.GlucoseMgDL),
	})

	sections := []pdfexport.Section{
		{Title: "Patient parameters", Rows: patientRows},
		{Title: "Dosing recommendation", Rows: doseRows},
		{Title: "Titration guidance", Text: rec.Titration},
	}
	if rec.Warning != "" {
		sections = append(sections, pdfexport.Section{Title: "Clinical warning", Text: rec.Warning})
	}

	return pdfexport.Document{
		Title:    "SMART Insulin Worksheet",
		Caption:  fmt.Sprintf("Worksheet %s - generated %s", ws.ID, ws.CreatedAt.UTC().Format("2006-01-02 15:04 UTC")),
		Sections: sections,
		Footer:   "This worksheet is a calculation aid, not a prescription. Verify all doses against local protocols and clinical judgment.",
	}
}

func toWorksheetResponse(ws Worksheet) worksheetResponse {
	return worksheetResponse{
		ID:              ws.ID,
		ClinicianUserID: ws.ClinicianUserID,
		PatientLabel:    ws.PatientLabel,
		Input: patientInputResponse{
			WeightKg:     ws.Input.WeightKg,
			Regimen:      string(ws.Input.Regimen),
			Glucose:      ws.Input.Glucose,
			GlucoseUnit:  string(ws.Input.GlucoseUnit),
			InsulinNaive: ws.Input.InsulinNaive,
		},
		Recommendation: dosing.ToRecommendationResponse(ws.Recommendation),
		CreatedAt:      ws.CreatedAt,
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (dosing/worksheets/followups) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
