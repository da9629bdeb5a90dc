package followups

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"insulin-worksheet/internal/domain/worksheets"
	"insulin-worksheet/internal/middleware"
	"insulin-worksheet/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, wsSvc *worksheets.Service) {
	r.Route("/worksheets/{worksheetID}/followups", func(fr chi.Router) {
		fr.Post("/", createFollowUpHandler(svc, wsSvc))
		fr.Get("/", listFollowUpsHandler(svc, wsSvc))

		// Anular (void) un follow-up registrado por error.
		fr.Post("/{followUpID}/void", voidFollowUpHandler(svc, wsSvc))
	})
}

type createFollowUpRequest struct {
	SeenAt             string   `json:"seen_at"` // RFC3339
	FastingMgDL        int      `json:"fasting_mg_dl"`
	AdjustedTotalUnits *float64 `json:"adjusted_total_units"` // opcional
	Note               string   `json:"note"`
}

type followUpResponse struct {
	ID                 string    `json:"id"`
	WorksheetID        string    `json:"worksheet_id"`
	RecordedBy         string    `json:"recorded_by"`
	SeenAt             time.Time `json:"seen_at"`
	FastingMgDL        int       `json:"fasting_mg_dl"`
	AdjustedTotalUnits *float64  `json:"adjusted_total_units,omitempty"`
	Note               string    `json:"note"`
	Status             Status    `json:"status"`
	RecordedAt         time.Time `json:"recorded_at"`
}

// createFollowUpHandler godoc
// @Summary Registrar un follow-up de titulación
// @Description Agrega una entrada al log de titulación del worksheet: glucemia en ayunas observada y, si hubo ajuste, el nuevo total diario. Solo el clínico dueño del worksheet.
// @Tags followups
// @Accept json
// @Produce json
// @Param worksheetID path string true "ID del worksheet"
// @Param payload body createFollowUpRequest true "Datos de la revisión; seen_at en RFC3339"
// @Success 201 {object} followUpResponse
// @Failure 400 {string} string "invalid json / seen_at inválido / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "worksheet not found"
// @Router /worksheets/{worksheetID}/followups [post]
func createFollowUpHandler(svc *Service, wsSvc *worksheets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, worksheetID, ok := authorize(w, r, wsSvc)
		if !ok {
			return
		}

		var req createFollowUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.SeenAt)
		if err != nil {
			http.Error(w, "seen_at must be RFC3339", http.StatusBadRequest)
			return
		}

		f, err := svc.Create(r.Context(), worksheetID, claims.UserID, CreateInput{
			SeenAt:             t,
			FastingMgDL:        req.FastingMgDL,
			AdjustedTotalUnits: req.AdjustedTotalUnits,
			Note:               req.Note,
		})
		if err != nil {
			writeFollowUpError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toFollowUpResponse(f))
	}
}

// listFollowUpsHandler godoc
// @Summary Listar follow-ups de un worksheet
// @Tags followups
// @Produce json
// @Param worksheetID path string true "ID del worksheet"
// @Success 200 {array} followUpResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "worksheet not found"
// @Router /worksheets/{worksheetID}/followups [get]
func listFollowUpsHandler(svc *Service, wsSvc *worksheets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, worksheetID, ok := authorize(w, r, wsSvc)
		if !ok {
			return
		}

		items, err := svc.ListByWorksheet(r.Context(), worksheetID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]followUpResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFollowUpResponse(f))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// voidFollowUpHandler godoc
// @Summary Anular un follow-up
// @Tags followups
// @Produce json
// @Param worksheetID path string true "ID del worksheet"
// @Param followUpID path string true "ID del follow-up"
// @Success 200 {object} followUpResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /worksheets/{worksheetID}/followups/{followUpID}/void [post]
func voidFollowUpHandler(svc *Service, wsSvc *worksheets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, worksheetID, ok := authorize(w, r, wsSvc)
		if !ok {
			return
		}

		followUpID := chi.URLParam(r, "followUpID")

		// El follow-up tiene que colgar del worksheet del path (no cruzar IDs).
		// Se verifica ANTES de anular: mutar primero dejaría voided un registro
		// ajeno aunque la respuesta sea 404.
		f, err := svc.GetByID(r.Context(), followUpID)
		if err != nil {
			writeFollowUpError(w, err)
			return
		}
		if f.WorksheetID != worksheetID {
			http.Error(w, "follow-up not found", http.StatusNotFound)
			return
		}

		f, err = svc.Void(r.Context(), followUpID)
		if err != nil {
			writeFollowUpError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toFollowUpResponse(f))
	}
}

// writeFollowUpError mapea errores del service a HTTP: reglas de negocio a
// 400, inexistente a 404, fallas de storage a 500.
func writeFollowUpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "follow-up not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// authorize resuelve claims + worksheet del path y aplica ownership.
// Escribe la respuesta de error y devuelve ok=false si no pasa.
func authorize(w http.ResponseWriter, r *http.Request, wsSvc *worksheets.Service) (claims auth.Claims, worksheetID string, ok bool) {
	c, found := middleware.GetClaims(r.Context())
	if !found || strings.TrimSpace(c.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, "", false
	}

	worksheetID = chi.URLParam(r, "worksheetID")
	ws, err := wsSvc.GetByID(r.Context(), worksheetID)
	if err != nil {
		if errors.Is(err, worksheets.ErrNotFound) {
			http.Error(w, "worksheet not found", http.StatusNotFound)
		} else {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return auth.Claims{}, "", false
	}

	if ws.ClinicianUserID != c.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return auth.Claims{}, "", false
	}

	return c, worksheetID, true
}

func toFollowUpResponse(f FollowUp) followUpResponse {
	return followUpResponse{
		ID:                 f.ID,
		WorksheetID:        f.WorksheetID,
		RecordedBy:         f.RecordedBy,
		SeenAt:             f.SeenAt,
		FastingMgDL:        f.FastingMgDL,
		AdjustedTotalUnits: f.AdjustedTotalUnits,
		Note:               f.Note,
		Status:             f.Status,
		RecordedAt:         f.RecordedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (dosing/worksheets/followups) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
