package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"insulin-worksheet/internal/domain/dosing"
	"insulin-worksheet/internal/domain/worksheets"
)

type WorksheetsRepo struct {
	db *sql.DB
}

func NewWorksheetsRepo(db *sql.DB) *WorksheetsRepo {
	return &WorksheetsRepo{db: db}
}

// La recomendación se guarda como JSONB: es un snapshot inmutable que nunca
// se consulta por campos, así que no vale la pena normalizarla en columnas.
func (r *WorksheetsRepo) Create(ctx context.Context, w worksheets.Worksheet) error {
	recJSON, err := json.Marshal(w.Recommendation)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO worksheets (
			id, clinician_user_id, patient_label,
			weight_kg, regimen, glucose, glucose_unit, insulin_naive,
			recommendation,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		w.ID,
		w.ClinicianUserID,
		w.PatientLabel,
		w.Input.WeightKg,
		string(w.Input.Regimen),
		w.Input.Glucose,
		string(w.Input.GlucoseUnit),
		w.Input.InsulinNaive,
		recJSON,
		w.CreatedAt,
	)
	return err
}

func (r *WorksheetsRepo) GetByID(ctx context.Context, id string) (worksheets.Worksheet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return worksheets.Worksheet{}, worksheets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, clinician_user_id, patient_label,
			weight_kg, regimen, glucose, glucose_unit, insulin_naive,
			recommendation,
			created_at
		FROM worksheets
		WHERE id = $1
	`, id)

	w, err := scanWorksheet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return worksheets.Worksheet{}, worksheets.ErrNotFound
		}
		return worksheets.Worksheet{}, err
	}
	return w, nil
}

func (r *WorksheetsRepo) ListByClinician(ctx context.Context, clinicianUserID string) ([]worksheets.Worksheet, error) {
	clinicianUserID = strings.TrimSpace(clinicianUserID)
	if clinicianUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, clinician_user_id, patient_label,
			weight_kg, regimen, glucose, glucose_unit, insulin_naive,
			recommendation,
			created_at
		FROM worksheets
		WHERE clinician_user_id = $1
		ORDER BY created_at ASC
	`, clinicianUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]worksheets.Worksheet, 0)
	for rows.Next() {
		w, err := scanWorksheet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorksheet(row rowScanner) (worksheets.Worksheet, error) {
	var w worksheets.Worksheet
	var regimen, unit string
	var recJSON []byte

	if err := row.Scan(
		&w.ID,
		&w.ClinicianUserID,
		&w.PatientLabel,
		&w.Input.WeightKg,
		&regimen,
		&w.Input.Glucose,
		&unit,
		&w.Input.InsulinNaive,
		&recJSON,
		&w.CreatedAt,
	); err != nil {
		return worksheets.Worksheet{}, err
	}

	w.Input.Regimen = dosing.Regimen(regimen)
	w.Input.GlucoseUnit = dosing.GlucoseUnit(unit)

	if err := json.Unmarshal(recJSON, &w.Recommendation); err != nil {
		return worksheets.Worksheet{}, err
	}

	return w, nil
}
