package followups

import "time"

// Status del registro de seguimiento.
type Status string

const (
	StatusActive Status = "active"
	StatusVoided Status = "voided"
)

// FollowUp es una entrada del log de titulación de un worksheet: qué se
// observó y qué se ajustó en una revisión. Append-only: se anula (void),
// nunca se edita ni se borra.
type FollowUp struct {
	ID          string
	WorksheetID string

	// Clínico que registró la revisión.
	RecordedBy string

	// Fecha de la revisión (puede ser anterior al registro).
	SeenAt time.Time

	// Glucemia en ayunas observada, mg/dL.
	FastingMgDL int

	// Nuevo total diario si se ajustó la dosis. nil = sin cambio.
	AdjustedTotalUnits *float64

	Note string

	Status     Status
	RecordedAt time.Time
}
