package worksheets

import (
	"time"

	"insulin-worksheet/internal/domain/dosing"
)

// Worksheet es un cálculo que el clínico decidió guardar: snapshot del input
// del paciente y de la recomendación computada en ese momento.
// Inmutable después de creado; no hay PATCH (un worksheet corregido es un
// worksheet nuevo).
type Worksheet struct {
	ID              string
	ClinicianUserID string

	// Identificación libre del paciente (iniciales, nro de historia, etc.).
	// El worksheet no gestiona datos demográficos.
	PatientLabel string

	Input          dosing.PatientInput
	Recommendation dosing.Recommendation

	CreatedAt time.Time
}
