package dosing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dosing", func(dr chi.Router) {
		// Cálculo puro, sin persistencia (una interacción => un recompute).
		dr.Post("/calculate", calculateHandler(svc))

		// Metadata para el formulario (selector de régimen, escala de corrección).
		dr.Get("/regimens", listRegimensHandler())
		dr.Get("/correction-table", correctionTableHandler(svc))
	})
}

type calculateRequest struct {
	WeightKg     float64 `json:"weight_kg"`
	Regimen      string  `json:"regimen"`
	Glucose      float64 `json:"glucose"`
	GlucoseUnit  string  `json:"glucose_unit"` // "mg/dL" (default) o "mmol/L"
	InsulinNaive bool    `json:"insulin_naive"`
}

type DoseComponentResponse struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Units   float64 `json:"units"`
}

type RecommendationResponse struct {
	Regimen         string                  `json:"regimen"`
	RegimenName     string                  `json:"regimen_name"`
	UnitsPerKg      float64                 `json:"units_per_kg"`
	TotalDailyUnits float64                 `json:"total_daily_units"`
	Components      []DoseComponentResponse `json:"components"`
	GlucoseMgDL     int                     `json:"glucose_mg_dl"`
	CorrectionUnits int                     `json:"correction_units"`
	Titration       string                  `json:"titration"`
	Warning         string                  `json:"warning,omitempty"`
}

type regimenResponse struct {
	Regimen         string                  `json:"regimen"`
	Name            string                  `json:"name"`
	UnitsPerKg      float64                 `json:"units_per_kg"`
	NaiveUnitsPerKg float64                 `json:"naive_units_per_kg"`
	Split           []DoseComponentResponse `json:"split"`
	Titration       string                  `json:"titration"`
}

type correctionBinResponse struct {
	FromMgDL int `json:"from_mg_dl"`
	ToMgDL   int `json:"to_mg_dl"`
	Units    int `json:"units"`
}

type correctionTableResponse struct {
	Bins       []correctionBinResponse `json:"bins"`
	UpperBound int                     `json:"upper_bound_mg_dl"`
}

type outOfRangeResponse struct {
	Error   string `json:"error"`
	Warning string `json:"warning"`
}

// calculateHandler godoc
// @Summary Compute an insulin dosing recommendation
// @Description Computa una recomendación sin guardarla: total diario por peso y régimen, reparto fijo, corrección por escala y guía de titulación.
// @Tags dosing
// @Accept json
// @Produce json
// @Param input body calculateRequest true "patient parameters"
// @Success 200 {object} RecommendationResponse
// @Failure 400 {string} string "invalid input"
// @Failure 422 {object} outOfRangeResponse "glucemia por encima de la tabla"
// @Router /dosing/calculate [post]
func calculateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Compute(PatientInput{
			WeightKg:     req.WeightKg,
			Regimen:      Regimen(req.Regimen),
			Glucose:      req.Glucose,
			GlucoseUnit:  GlucoseUnit(req.GlucoseUnit),
			InsulinNaive: req.InsulinNaive,
		})
		if err != nil {
			writeComputeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToRecommendationResponse(rec))
	}
}

// listRegimensHandler godoc
// @Summary List supported insulin regimens
// @Description Lista los regímenes y sus constantes (para armar el selector del formulario).
// @Tags dosing
// @Produce json
// @Success 200 {array} regimenResponse
// @Router /dosing/regimens [get]
func listRegimensHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		plans := Plans()
		out := make([]regimenResponse, 0, len(plans))
		for _, p := range plans {
			split := make([]DoseComponentResponse, 0, len(p.Split))
			for _, s := range p.Split {
				split = append(split, DoseComponentResponse{Label: s.Label, Percent: s.Percent})
			}
			out = append(out, regimenResponse{
				Regimen:         string(p.Regimen),
				Name:            p.Name,
				UnitsPerKg:      p.UnitsPerKg,
				NaiveUnitsPerKg: p.NaiveUnitsPerKg,
				Split:           split,
				Titration:       p.Titration,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// correctionTableHandler godoc
// @Summary Get the active correction table
// @Tags dosing
// @Produce json
// @Success 200 {object} correctionTableResponse
// @Router /dosing/correction-table [get]
func correctionTableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		bins := svc.Table().Bins()
		out := correctionTableResponse{
			Bins:       make([]correctionBinResponse, 0, len(bins)),
			UpperBound: svc.Table().UpperBound(),
		}
		for _, b := range bins {
			out.Bins = append(out.Bins, correctionBinResponse{
				FromMgDL: b.FromMgDL,
				ToMgDL:   b.ToMgDL,
				Units:    b.Units,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeComputeError mapea errores del calculador a HTTP.
// Out-of-range no es un 400 genérico: devuelve 422 con aviso de override clínico.
func writeComputeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrGlucoseOutOfRange):
		writeJSON(w, http.StatusUnprocessableEntity, outOfRangeResponse{
			Error:   err.Error(),
			Warning: "Glucose reading is above the correction table. Use manual clinical judgment; this worksheet does not extrapolate beyond its top bin.",
		})
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// ToRecommendationResponse es exportado porque worksheets embebe la misma
// representación en sus respuestas (misma forma JSON en ambos módulos).
func ToRecommendationResponse(rec Recommendation) RecommendationResponse {
	components := make([]DoseComponentResponse, 0, len(rec.Components))
	for _, c := range rec.Components {
		components = append(components, DoseComponentResponse{
			Label:   c.Label,
			Percent: c.Percent,
			Units:   c.Units,
		})
	}
	return RecommendationResponse{
		Regimen:         string(rec.Regimen),
		RegimenName:     rec.RegimenName,
		UnitsPerKg:      rec.UnitsPerKg,
		TotalDailyUnits: rec.TotalDailyUnits,
		Components:      components,
		GlucoseMgDL:     rec.GlucoseMgDL,
		CorrectionUnits: rec.CorrectionUnits,
		Titration:       rec.Titration,
		Warning:         rec.Warning,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (dosing/worksheets/followups) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
