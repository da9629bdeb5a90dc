package dosing

import (
	"errors"
	"math"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Umbral de hipoglucemia: debajo de esto el worksheet avisa antes que dosificar.
const hypoglycemiaMgDL = 70

// Service es el calculador de dosis. Sin estado ni repositorio:
// cada Compute es función pura de su input (mismo input => mismo output).
type Service struct {
	table CorrectionTable
}

func NewService() *Service {
	return &Service{table: DefaultCorrectionTable()}
}

// NewServiceWithTable permite inyectar una tabla distinta (tests, protocolos locales).
func NewServiceWithTable(t CorrectionTable) *Service {
	return &Service{table: t}
}

// Table expone la tabla de corrección activa.
func (s *Service) Table() CorrectionTable {
	return s.table
}

// LookupCorrection devuelve las unidades de corrección para una glucemia en mg/dL.
func (s *Service) LookupCorrection(glucoseMgDL int) (int, error) {
	return s.table.Lookup(glucoseMgDL)
}

// Compute arma la recomendación completa:
// total diario = peso * factor del régimen, reparto porcentual fijo,
// corrección por tabla y texto de titulación.
//
// Errores:
// - ErrInvalidInput: peso <= 0, régimen desconocido, glucemia <= 0.
// - ErrGlucoseOutOfRange: glucemia por encima de la tabla (no se clampa).
func (s *Service) Compute(in PatientInput) (Recommendation, error) {
	if in.WeightKg <= 0 {
		return Recommendation{}, ErrInvalidInput
	}
	if in.GlucoseUnit != "" && in.GlucoseUnit != UnitMgDL && in.GlucoseUnit != UnitMmolL {
		return Recommendation{}, ErrInvalidInput
	}

	plan, ok := PlanFor(in.Regimen)
	if !ok {
		return Recommendation{}, ErrInvalidInput
	}

	glucose := in.GlucoseMgDL()
	if glucose <= 0 {
		return Recommendation{}, ErrInvalidInput
	}

	correction, err := s.table.Lookup(glucose)
	if err != nil {
		return Recommendation{}, err
	}

	factor := plan.FactorFor(in.InsulinNaive)
	total := roundUnits(in.WeightKg * factor)

	components := make([]DoseComponent, 0, len(plan.Split))
	for _, part := range plan.Split {
		components = append(components, DoseComponent{
			Label:   part.Label,
			Percent: part.Percent,
			Units:   roundUnits(total * part.Percent / 100),
		})
	}

	rec := Recommendation{
		Regimen:         plan.Regimen,
		RegimenName:     plan.Name,
		UnitsPerKg:      factor,
		TotalDailyUnits: total,
		Components:      components,
		GlucoseMgDL:     glucose,
		CorrectionUnits: correction,
		Titration:       plan.Titration,
	}

	if glucose < hypoglycemiaMgDL {
		rec.Warning = "Glucose below 70 mg/dL: treat hypoglycemia first; do not initiate or increase insulin until resolved."
	}

	return rec, nil
}

// roundUnits redondea a 0.1 U para presentación (lapiceras de media unidad
// existen, pero el worksheet reporta con un decimal y deja el redondeo
// final a criterio del prescriptor).
func roundUnits(u float64) float64 {
	return math.Round(u*10) / 10
}
